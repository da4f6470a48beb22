package http

import (
	"ledger/internal/core"
)

// API payloads carry amounts as decimal strings ("12.34") and dates as
// "2006-01-02". Parsing happens here, at the boundary, so malformed input
// becomes an explicit error before any repository sees it.

func parseAmount(s string) (core.Money, error) {
	return core.ParseAmount(s)
}

func parseOptionalAmount(s *string) (*core.Money, error) {
	if s == nil {
		return nil, nil
	}
	m, err := core.ParseAmount(*s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func parseOptionalDate(s *string) (*core.Date, error) {
	if s == nil {
		return nil, nil
	}
	d, err := core.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseOptionalRate converts a percent string ("4.5") to basis points.
func parseOptionalRate(s *string) (*int64, error) {
	if s == nil {
		return nil, nil
	}
	m, err := core.ParseAmount(*s)
	if err != nil {
		return nil, err
	}
	bps := m.Cents
	return &bps, nil
}
