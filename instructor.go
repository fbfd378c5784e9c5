package instructor

// Mode tags the response-shape convention a decode call expects. Only
// ModeParallelTools is decodable by this package; the other tags exist so
// callers can route responses produced under a different convention.
type Mode string

const (
	// ModeTools is the single-tool-call convention.
	ModeTools Mode = "tools"
	// ModeJSON is the bare-JSON-object convention.
	ModeJSON Mode = "json"
	// ModeParallelTools is the convention where one response carries a list
	// of independently named, independently argumented tool calls.
	ModeParallelTools Mode = "parallel_tools"
)

// ToolCall is one named call within a response. Arguments is the raw JSON
// payload, parsed and validated by the candidate the name dispatches to.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Response is the narrow transport contract this package reads from: an
// ordered list of tool calls. Adapters for concrete client libraries live in
// response.go; any transport can participate by implementing this interface
// (or by building a CallList directly).
type Response interface {
	ToolCalls() []ToolCall
}

// CallList is a literal Response. Useful in tests and for transports without
// a dedicated adapter.
type CallList []ToolCall

func (c CallList) ToolCalls() []ToolCall { return c }
