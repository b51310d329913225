// File: internal/api/envelope.go
package api

// Envelope 全域回應模型：所有端點都包裝成 {success, message?, data?}
// swagger:model api.Envelope
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps a successful payload.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage wraps a successful payload with a message.
func OKMessage(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail wraps a failure message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
