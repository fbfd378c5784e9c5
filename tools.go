package instructor

import "github.com/tmc/langchaingo/llms"

// FunctionDefinition describes one candidate's schema in the common
// function-calling wire shape.
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters"`
}

// ToolDefinition is the {"type": "function", "function": ...} descriptor
// attached per candidate to an outbound LLM request.
type ToolDefinition struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

// Tools returns one descriptor per candidate, in declaration order. Use it
// to advertise the candidate schemas on the request that is expected to
// answer with parallel tool calls.
func (p *Parallel) Tools() []ToolDefinition {
	out := make([]ToolDefinition, 0, len(p.candidates))
	for _, c := range p.candidates {
		out = append(out, ToolDefinition{
			Type: "function",
			Function: FunctionDefinition{
				Name:        c.Name(),
				Description: c.Description(),
				Parameters:  c.Schema(),
			},
		})
	}
	return out
}

// LangChainTools returns the candidate descriptors as langchaingo tools,
// ready for llms.WithTools. Order matches Candidates.
func (p *Parallel) LangChainTools() []llms.Tool {
	out := make([]llms.Tool, 0, len(p.candidates))
	for _, c := range p.candidates {
		out = append(out, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        c.Name(),
				Description: c.Description(),
				Parameters:  c.Schema(),
			},
		})
	}
	return out
}
