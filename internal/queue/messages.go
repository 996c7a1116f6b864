package queue

import (
	"encoding/json"
	"time"
)

// ContactMessage carries one contact-form submission from the web
// server to the mail worker.
type ContactMessage struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewContactMessage stamps a submission with the receive time.
func NewContactMessage(name, email, subject, body string) *ContactMessage {
	return &ContactMessage{
		Name:       name,
		Email:      email,
		Subject:    subject,
		Body:       body,
		ReceivedAt: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ContactMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ContactMessageFromJSON creates a message from JSON bytes.
func ContactMessageFromJSON(data []byte) (*ContactMessage, error) {
	var msg ContactMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
