package instructor

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/tmc/langchaingo/llms"
)

// FromContentResponse adapts a langchaingo content response. The first
// choice's tool calls become the call list, in response order; calls without
// a function payload are skipped. A nil response or one without choices
// yields an empty call list.
func FromContentResponse(resp *llms.ContentResponse) Response {
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return CallList(nil)
	}
	choice := resp.Choices[0]
	calls := make(CallList, 0, len(choice.ToolCalls))
	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil {
			continue
		}
		calls = append(calls, ToolCall{
			ID:        tc.ID,
			Name:      tc.FunctionCall.Name,
			Arguments: tc.FunctionCall.Arguments,
		})
	}
	return calls
}

// FromAnthropicMessage adapts an Anthropic message. The tool_use content
// blocks become the call list, in content order. A nil message yields an
// empty call list.
func FromAnthropicMessage(msg *anthropic.Message) Response {
	if msg == nil {
		return CallList(nil)
	}
	var calls CallList
	for _, block := range msg.Content {
		if block.Type != anthropic.ContentBlockTypeToolUse {
			continue
		}
		calls = append(calls, ToolCall{
			ID:        block.ID,
			Name:      block.Name,
			Arguments: string(block.Input),
		})
	}
	return calls
}
