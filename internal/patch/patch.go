// Package patch implements the partial-update merge shared by every PATCH
// endpoint. A request body is decoded into a set of present fields, so an
// explicit null can be told apart from a field that was simply omitted.
package patch

import (
	"encoding/json"
	"fmt"
)

// Field binds the JSON names a client may use for one record field to the
// destination the value decodes into. Keys[0] is the canonical (camelCase)
// name; additional keys are accepted aliases such as the snake_case form.
// Dst must be a pointer into the record being merged.
type Field struct {
	Keys []string
	Dst  any
}

// FieldSet is a decoded request body: field present (possibly null) vs
// field absent.
type FieldSet map[string]json.RawMessage

// Parse decodes a JSON object body into a FieldSet. An empty body is a
// valid empty patch.
func Parse(body []byte) (FieldSet, error) {
	if len(body) == 0 {
		return FieldSet{}, nil
	}
	var fs FieldSet
	if err := json.Unmarshal(body, &fs); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return fs, nil
}

// Apply copies every field present in fs onto its destination and leaves
// absent fields untouched. An explicit null clears pointer destinations
// (nullable fields) and is a no-op for the rest. Keys without a matching
// Field entry are ignored, which is what keeps id and server-managed
// columns out of reach of the client.
func Apply(fs FieldSet, fields []Field) error {
	for _, f := range fields {
		raw, ok := lookup(fs, f.Keys)
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, f.Dst); err != nil {
			return fmt.Errorf("field %q: %w", f.Keys[0], err)
		}
	}
	return nil
}

func lookup(fs FieldSet, keys []string) (json.RawMessage, bool) {
	for _, k := range keys {
		if raw, ok := fs[k]; ok {
			return raw, true
		}
	}
	return nil, false
}
