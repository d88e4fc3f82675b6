package controllers

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctrl *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	utils.BuildPlainTextResponse(w, constvars.StatusOK, constvars.ServerRunningMessage)
}

func (ctrl *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildRawResponse(w, constvars.StatusOK, map[string]string{"status": constvars.HealthyMessage})
}
