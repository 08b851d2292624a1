package models

// HealthCheckResponse returns a health check response
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
