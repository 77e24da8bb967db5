package models

type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by the health check.
type StatusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type Endpoints struct {
	Health string `json:"health"`
	Chat   string `json:"chat"`
}

// BannerResponse is served at the API root.
type BannerResponse struct {
	Message   string    `json:"message"`
	Endpoints Endpoints `json:"endpoints"`
	Status    string    `json:"status"`
	Timestamp string    `json:"timestamp"`
}
