package model

// Role values allowed in a conversation history entry.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one caller-supplied history entry. History lives only for the
// duration of a request; nothing is persisted server-side.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

// ChatResponse is the success body of POST /chat.
type ChatResponse struct {
	OK       bool   `json:"ok"`
	Answer   string `json:"answer"`
	ThreadID string `json:"threadId"`
}

// ChatResult is what the answer pipeline hands back to the controller.
type ChatResult struct {
	Answer   string
	ThreadID string
}

// ReserveRequest is the body of POST /reserve. Note is the only optional field.
type ReserveRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Persons int    `json:"persons"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Note    string `json:"note"`
}

// Valid reports whether all required reservation fields are present.
func (r *ReserveRequest) Valid() bool {
	return r.Name != "" && r.Phone != "" && r.Persons > 0 && r.Date != "" && r.Time != ""
}

// ReserveResponse is the success body of POST /reserve.
type ReserveResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

// ErrorResponse is the failure body of every endpoint.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	OK       bool     `json:"ok"`
	HasKey   bool     `json:"hasKey"`
	Origins  []string `json:"origins"`
	FastMode bool     `json:"fastMode"`
	Version  string   `json:"version"`
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	OK    bool   `json:"ok"`
	Model string `json:"model"`
	Reply string `json:"reply"`
}
