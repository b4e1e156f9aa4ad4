package events

import (
	"encoding/json"
	"time"
)

const (
	TypeStateChanged     = "state.changed"
	TypeSessionExpired   = "session.expired"
	TypeProfileRefreshed = "profile.refreshed"
	TypeConfigSaved      = "config.saved"
	TypeDirectorySeeded  = "directory.seeded"
)

// Version is bumped when an event payload changes shape.
const Version = 1

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, data any) string {
	return MakeEventAt(time.Now(), reqID, typ, data)
}

func MakeEventAt(at time.Time, reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err == nil {
			raw = b
		}
	}
	e := Event{
		Type:      typ,
		Version:   Version,
		At:        at.UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
