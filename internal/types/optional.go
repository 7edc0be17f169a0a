package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// NotAvailable is rendered in place of any value the upstream payload omitted.
const NotAvailable = "N/A"

// OptionalFloat is a numeric reading that may be missing from the upstream payload.
// A missing reading renders as NotAvailable, never as zero.
type OptionalFloat struct {
	Value float64
	Valid bool
}

// SomeFloat returns a present value.
func SomeFloat(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Valid: true}
}

// FloatFrom converts a decoded JSON pointer field. A nil pointer is absent.
func FloatFrom(p *float64) OptionalFloat {
	if p == nil {
		return OptionalFloat{}
	}
	return SomeFloat(*p)
}

// String renders the shortest exact representation ("15.2", "70") or NotAvailable.
func (o OptionalFloat) String() string {
	if !o.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

// MarshalJSON writes a number, or the NotAvailable string when absent.
func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON accepts a number, null, or the NotAvailable string.
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*o = OptionalFloat{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != NotAvailable {
			return fmt.Errorf("invalid optional number %q", s)
		}
		*o = OptionalFloat{}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = SomeFloat(v)
	return nil
}

// OptionalString is a text field that may be missing from the upstream payload.
type OptionalString struct {
	Value string
	Valid bool
}

// SomeString returns a present value.
func SomeString(s string) OptionalString {
	return OptionalString{Value: s, Valid: true}
}

// StringFrom converts a decoded JSON pointer field. A nil pointer is absent.
func StringFrom(p *string) OptionalString {
	if p == nil {
		return OptionalString{}
	}
	return SomeString(*p)
}

func (o OptionalString) String() string {
	if !o.Valid {
		return NotAvailable
	}
	return o.Value
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON treats null and the NotAvailable string as absent.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = OptionalString{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == NotAvailable {
		*o = OptionalString{}
		return nil
	}
	*o = SomeString(s)
	return nil
}
