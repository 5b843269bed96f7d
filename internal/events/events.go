package events

import (
	"encoding/json"
	"time"
)

const (
	TypeCompanyDone = "company_done"
	TypeRunDone     = "run_done"
)

type Event struct {
	Type    string          `json:"type"`
	Version int             `json:"v"`
	At      time.Time       `json:"at"`
	RunID   string          `json:"run_id,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Progress is the payload of TypeCompanyDone and TypeRunDone events.
type Progress struct {
	Index   int    `json:"index"`
	Company string `json:"company,omitempty"`
	Website string `json:"website,omitempty"`
	Jobs    int    `json:"jobs"`
	Done    int    `json:"done"`
	Total   int    `json:"total"`
}

func MakeEvent(runID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:    typ,
		Version: v,
		At:      time.Now().UTC(),
		RunID:   runID,
		Data:    raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// ParseEvent decodes an event produced by MakeEvent.
func ParseEvent(s string) (Event, error) {
	var e Event
	err := json.Unmarshal([]byte(s), &e)
	return e, err
}
