package entity

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a recommendation conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Recommendation is the orchestrator reply. Error is set only when the model
// reply could not be parsed and Message carries the raw text instead.
type Recommendation struct {
	Message string `json:"message"`
	Games   []Game `json:"games"`
	Error   string `json:"error,omitempty"`
}
