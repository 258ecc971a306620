package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexBool is a bool that can be unmarshaled from a JSON bool or a JSON string.
// Older clients send checklist flags as "true"/"false" text.
type FlexBool bool

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexBool(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			*f = false
			return nil
		}
		val, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("FlexBool: invalid boolean string %q: %w", s, err)
		}
		*f = FlexBool(val)
		return nil
	}

	return fmt.Errorf("FlexBool: unexpected type, expected bool or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Bool converts FlexBool back to bool.
func (f FlexBool) Bool() bool {
	return bool(f)
}
