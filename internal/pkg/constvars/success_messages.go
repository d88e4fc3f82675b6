package constvars

const (
	ServerRunningMessage = "Server Running"
	HealthyMessage       = "ok"
)
