package domain

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single conversation message. History is an ordered slice of turns
// and is consumed read-only by the query rewriter.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Route is the backend selected for a standalone query.
type Route string

const (
	RouteSQL    Route = "sql"
	RouteVector Route = "vector"
)

// ChatReply is the final answer for one /chat request.
type ChatReply struct {
	Reply    string `json:"reply"`
	ToolUsed Route  `json:"tool_used"`
}

// Prompt is one chat-completion call: optional system message, optional prior
// turns, the current user message, sampling temperature and whether the
// response must be a JSON object.
type Prompt struct {
	System      string
	History     []Turn
	User        string
	Temperature float32
	JSONObject  bool
}
