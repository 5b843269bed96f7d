package httpapi

type RunStatus struct {
	RunID     string `json:"run_id"`
	StartedAt string `json:"started_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	Companies int    `json:"companies"`
	Running   bool   `json:"running"`
}

type StartRunRequest struct {
	Companies []string `json:"companies"`
}

type StartRunResponse struct {
	OK    bool   `json:"ok"`
	RunID string `json:"run_id"`
}
