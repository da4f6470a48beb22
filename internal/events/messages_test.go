package events

import (
	"testing"
	"time"

	"ledger/internal/ledger"
)

func TestChangeRoundTrip(t *testing.T) {
	in := ledger.Change{
		Collection: "transactions",
		Op:         ledger.OpCreate,
		ID:         "id-1",
		At:         time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
	data, err := EncodeChange(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := DecodeChange(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestDecodeChangeRejectsGarbage(t *testing.T) {
	if _, err := DecodeChange([]byte(`{bad`)); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
