package models

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Patch is a decoded partial-update body. Keys present with a JSON null
// clear the field; absent keys leave it untouched.
type Patch map[string]json.RawMessage

// FieldSet lists the JSON fields a patch may touch, mapped to whether the
// field accepts null.
type FieldSet map[string]bool

var nullLiteral = []byte("null")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), nullLiteral)
}

// ApplyPatch shallow-merges patch over current. Keys outside fields are
// ignored, so identifiers and server-managed timestamps cannot be rewritten.
func ApplyPatch[T any](current T, patch Patch, fields FieldSet) (T, error) {
	var zero T

	base, err := json.Marshal(current)
	if err != nil {
		return zero, err
	}
	doc := make(map[string]json.RawMessage)
	if err = json.Unmarshal(base, &doc); err != nil {
		return zero, err
	}

	verr := &ValidationError{}
	for name, raw := range patch {
		nullable, ok := fields[name]
		if !ok {
			continue
		}
		if isNull(raw) && !nullable {
			verr.add(name, "must not be null")
			continue
		}
		doc[name] = raw
	}
	if len(verr.Fields) > 0 {
		return zero, verr.sorted()
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return zero, err
	}
	var out T
	if err = Decode(merged, &out); err != nil {
		return zero, err
	}
	return out, nil
}
