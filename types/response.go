package types

// Envelope is the response wrapper used by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// ListEnvelope wraps a collection listing with its size.
func ListEnvelope(data interface{}, count int) Envelope {
	return Envelope{Success: true, Data: data, Count: &count}
}

// ErrorEnvelope builds a failed response carrying only a message.
func ErrorEnvelope(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
