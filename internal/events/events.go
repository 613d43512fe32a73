// Package events is a small SSE fan-out hub with a JSON envelope.
package events

import (
	"encoding/json"
	"time"
)

// Event names published by the engine.
const (
	TypeRatingCreated    = "rating_created"
	TypeSpecialAdded     = "special_added"
	TypeSpecialsImported = "specials_imported"
	TypeSeedCompleted    = "seed_completed"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
