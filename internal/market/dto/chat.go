package dto

// ChatRequest is a question for the assistant, optionally about one company.
type ChatRequest struct {
	Question string `json:"question"`
	Company  string `json:"company,omitempty"`
}

// ChatResponse is the assistant's markdown answer.
type ChatResponse struct {
	Answer string `json:"answer"`
	Cached bool   `json:"cached"`
}
