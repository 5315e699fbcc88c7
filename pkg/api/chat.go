package api

type AskRequest struct {
	Role  string `json:"role"`
	Input string `json:"input"`
}

type AskResponse struct {
	Role   string `json:"role"`
	Answer string `json:"answer"`
}

type RolesResponse struct {
	Roles   []string `json:"roles"`
	Default string   `json:"default"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
