package amqp

import (
	"encoding/json"
	"time"

	"salonledger/internal/core"
)

// RecordSyncMessage tells the worker to replay one locally stored row into
// the spreadsheet. It carries only the database id and kind; the worker
// fetches the full row from the repository.
type RecordSyncMessage struct {
	ID        int64     `json:"id"`
	Kind      core.Kind `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRecordSyncMessage(id int64, kind core.Kind) *RecordSyncMessage {
	return &RecordSyncMessage{
		ID:        id,
		Kind:      kind,
		Timestamp: time.Now(),
	}
}

func (m *RecordSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RecordSyncMessageFromJSON(data []byte) (*RecordSyncMessage, error) {
	var msg RecordSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
