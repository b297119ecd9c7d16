package amqp

import (
	"testing"
	"time"

	"salonledger/internal/core"
)

func TestNewRecordSyncMessage(t *testing.T) {
	msg := NewRecordSyncMessage(12345, core.KindAppointment)

	if msg.ID != 12345 {
		t.Errorf("ID = %v, want 12345", msg.ID)
	}
	if msg.Kind != core.KindAppointment {
		t.Errorf("Kind = %v, want %v", msg.Kind, core.KindAppointment)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestRecordSyncMessage_JSON(t *testing.T) {
	timestamp := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msg := &RecordSyncMessage{
		ID:        7,
		Kind:      core.KindExpense,
		Timestamp: timestamp,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := RecordSyncMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("RecordSyncMessageFromJSON() error = %v", err)
	}

	if parsed.ID != msg.ID {
		t.Errorf("Parsed ID = %v, want %v", parsed.ID, msg.ID)
	}
	if parsed.Kind != msg.Kind {
		t.Errorf("Parsed Kind = %v, want %v", parsed.Kind, msg.Kind)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestRecordSyncMessage_InvalidJSON(t *testing.T) {
	if _, err := RecordSyncMessageFromJSON([]byte(`{"id": "not_a_number"}`)); err == nil {
		t.Error("RecordSyncMessageFromJSON() should fail with invalid JSON")
	}
}
