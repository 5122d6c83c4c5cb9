package entity

import (
	"encoding/json"
	"fmt"
)

// unavailableSentinel is the JSON string emitted for values the upstream
// provider could not supply.
const unavailableSentinel = "N/A"

// Amount is a numeric value that may be unavailable. It marshals to a plain
// JSON number when present and to the string "N/A" when not, so API clients
// and cached entries share one representation.
type Amount struct {
	value float64
	valid bool
}

// Num returns an available Amount holding v.
func Num(v float64) Amount {
	return Amount{value: v, valid: true}
}

// Unavailable returns the sentinel Amount.
func Unavailable() Amount {
	return Amount{}
}

// Float64 reports the numeric value and whether it is available.
func (a Amount) Float64() (float64, bool) {
	return a.value, a.valid
}

// IsUnavailable reports whether the value is the sentinel.
func (a Amount) IsUnavailable() bool {
	return !a.valid
}

// MarshalJSON emits a JSON number, or "N/A" for the sentinel.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return json.Marshal(unavailableSentinel)
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON accepts a JSON number or the string "N/A".
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == unavailableSentinel {
			*a = Amount{}
			return nil
		}
		return fmt.Errorf("unexpected amount string %q", s)
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	*a = Amount{value: v, valid: true}
	return nil
}
