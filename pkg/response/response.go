// Package response defines the wire error envelope. Successful responses
// carry bare DTOs; only failures are wrapped.
package response

// ErrorBody is the inner error object of the envelope.
type ErrorBody struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// ErrorEnvelope is the JSON body returned for every failed request:
// {"error":{"message":...,"code":...,"fields":{...}}}.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// NewError builds the envelope for a failure.
func NewError(message, code string, fields map[string][]string) ErrorEnvelope {
	return ErrorEnvelope{Error: ErrorBody{Message: message, Code: code, Fields: fields}}
}
