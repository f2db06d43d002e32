package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleInt accepts a JSON number, a numeric string, or "" / null for unset.
// Form inputs post numbers as strings.
type FlexibleInt struct {
	Value int
	Set   bool
}

func (fi *FlexibleInt) UnmarshalJSON(data []byte) error {
	if fi == nil {
		return fmt.Errorf("FlexibleInt: nil receiver")
	}
	trimmed := bytes.TrimSpace(data)
	*fi = FlexibleInt{}
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("FlexibleInt: %q is not a whole number", s)
		}
		*fi = FlexibleInt{Value: n, Set: true}
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err == nil {
		n, err := num.Int64()
		if err != nil {
			return fmt.Errorf("FlexibleInt: %s is not a whole number", num)
		}
		*fi = FlexibleInt{Value: int(n), Set: true}
		return nil
	}

	return fmt.Errorf("FlexibleInt: expected string or number, got %s", string(data))
}

// Ptr returns nil when unset.
func (fi FlexibleInt) Ptr() *int {
	if !fi.Set {
		return nil
	}
	v := fi.Value
	return &v
}
