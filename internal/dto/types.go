package dto

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string ("React, Node.js, Postgres") and normalizes it
// into an ordered list. Admin forms submit list fields as free text, so
// both shapes arrive in practice.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	// Array form first.
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = trimNonEmpty(items)
		return nil
	}

	// Fall back to a comma-separated scalar.
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = trimNonEmpty(strings.Split(raw, ","))
	return nil
}

func trimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JSONSlice converts the list into the jsonb column type.
func (l StringList) JSONSlice() datatypes.JSONSlice[string] {
	return datatypes.NewJSONSlice([]string(l))
}
