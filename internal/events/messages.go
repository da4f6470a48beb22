package events

import (
	"encoding/json"

	"ledger/internal/ledger"
)

// EncodeChange serializes a change event for the wire.
func EncodeChange(ch ledger.Change) ([]byte, error) {
	return json.Marshal(ch)
}

// DecodeChange parses a change event from the wire.
func DecodeChange(data []byte) (ledger.Change, error) {
	var ch ledger.Change
	if err := json.Unmarshal(data, &ch); err != nil {
		return ledger.Change{}, err
	}
	return ch, nil
}
