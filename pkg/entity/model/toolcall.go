package model

import "encoding/json"

// ToolCallFunction is the function requested by a single tool call. The
// platform sends arguments either as a JSON object or as a JSON-encoded
// string containing one.
type ToolCallFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCall is a single requested function invocation.
type ToolCall struct {
	ID       string           `json:"id"`
	Function ToolCallFunction `json:"function"`
}

// Message wraps the list of tool calls of one webhook request.
type Message struct {
	ToolCalls []ToolCall `json:"toolCalls"`
}

// WebhookRequest is the outer envelope sent by the assistant platform.
type WebhookRequest struct {
	Message Message `json:"message"`
}

// ToolCallResult pairs a processed tool call with its payload.
type ToolCallResult struct {
	ToolCallID string      `json:"toolCallId"`
	Result     interface{} `json:"result"`
}

// WebhookResponse is the result envelope, one result per processed call.
type WebhookResponse struct {
	Results []ToolCallResult `json:"results"`
}

// DecodeArguments unmarshals the call's arguments into v, unwrapping the
// string-encoded form first when present.
func (f ToolCallFunction) DecodeArguments(v interface{}) error {
	raw := f.Arguments
	if len(raw) == 0 || string(raw) == "null" {
		raw = json.RawMessage(`{}`)
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return NewValidationError("Malformed arguments")
		}
		raw = json.RawMessage(s)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return NewValidationError("Malformed arguments")
	}
	return nil
}
