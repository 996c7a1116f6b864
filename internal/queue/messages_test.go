package queue

import (
	"testing"
	"time"
)

func TestNewContactMessage(t *testing.T) {
	msg := NewContactMessage("Ada", "ada@example.com", "Feedback", "Great site")

	if msg.Name != "Ada" || msg.Email != "ada@example.com" {
		t.Errorf("NewContactMessage() sender = %v <%v>, want Ada <ada@example.com>", msg.Name, msg.Email)
	}
	if msg.ReceivedAt.IsZero() {
		t.Error("NewContactMessage() ReceivedAt should not be zero")
	}
	if time.Since(msg.ReceivedAt) > time.Second {
		t.Error("NewContactMessage() ReceivedAt should be recent")
	}
}

func TestContactMessage_JSON(t *testing.T) {
	received := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msg := &ContactMessage{
		Name:       "Ada",
		Email:      "ada@example.com",
		Subject:    "Feedback",
		Body:       "Great site",
		ReceivedAt: received,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := ContactMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("ContactMessageFromJSON() error = %v", err)
	}

	if parsed.Email != msg.Email || parsed.Body != msg.Body {
		t.Errorf("Parsed message = %+v, want %+v", parsed, msg)
	}
	if !parsed.ReceivedAt.Equal(msg.ReceivedAt) {
		t.Errorf("Parsed ReceivedAt = %v, want %v", parsed.ReceivedAt, msg.ReceivedAt)
	}
}

func TestContactMessage_InvalidJSON(t *testing.T) {
	if _, err := ContactMessageFromJSON([]byte(`{"name": 42`)); err == nil {
		t.Error("ContactMessageFromJSON() should fail with invalid JSON")
	}
}
