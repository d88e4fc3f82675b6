package main

import (
	"clinic-booking-service/internal/app/config"
	"fmt"

	"github.com/goccy/go-json"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

type buildInfo struct {
	Version              string `json:"version"`
	Tag                  string `json:"tag"`
	Env                  string `json:"env"`
	AvailabilityStrategy string `json:"availabilityStrategy"`
	EnforceSlotValidity  bool   `json:"enforceSlotValidity"`
}

func main() {
	internalConfig := config.NewInternalConfig()

	out, err := json.MarshalIndent(buildInfo{
		Version:              Version,
		Tag:                  Tag,
		Env:                  internalConfig.App.Env,
		AvailabilityStrategy: internalConfig.Availability.Strategy,
		EnforceSlotValidity:  internalConfig.Booking.EnforceSlotValidity,
	}, "", "  ")
	if err != nil {
		fmt.Printf("Version: %s\nTag: %s\n", Version, Tag)
		return
	}
	fmt.Println(string(out))
}
