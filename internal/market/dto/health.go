package dto

// HealthResponse reports service liveness and dataset state.
type HealthResponse struct {
	Status     string `json:"status"`
	DataLoaded bool   `json:"data_loaded"`
	Records    int    `json:"records"`
}
