package models

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
)

var ErrNotFound = errors.New("record not found")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level failures for a rejected input or patch.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) sorted() *ValidationError {
	sort.Slice(e.Fields, func(i, j int) bool {
		if e.Fields[i].Field == e.Fields[j].Field {
			return e.Fields[i].Message < e.Fields[j].Message
		}
		return e.Fields[i].Field < e.Fields[j].Field
	})
	return e
}

// ValidateStruct checks a record against the rules in its validate tags and
// reports every failing field.
func ValidateStruct(record any) error {
	v := validate.Struct(record)
	v.StopOnError = false

	verr := &ValidationError{}
	if !v.Validate() {
		names := jsonNames(record)
		for field, messages := range v.Errors.All() {
			if name, ok := names[field]; ok {
				field = name
			}
			for _, msg := range messages {
				verr.add(field, msg)
			}
		}
	}
	if c, ok := record.(fieldChecker); ok {
		verr.Fields = append(verr.Fields, c.checkFields()...)
	}
	if len(verr.Fields) == 0 {
		return nil
	}
	return verr.sorted()
}

// fieldChecker is implemented by records with rules the validate tags cannot
// express.
type fieldChecker interface {
	checkFields() []FieldError
}

// jsonNames maps Go field names to their wire names so errors point at the
// keys a client actually sent.
func jsonNames(record any) map[string]string {
	t := reflect.TypeOf(record)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	names := make(map[string]string)
	if t.Kind() != reflect.Struct {
		return names
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag != "" && tag != "-" {
			names[f.Name] = tag
		}
	}
	return names
}

// Decode unmarshals data into dst and reports failures as a ValidationError.
func Decode(data []byte, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return DecodeError(data, dst, err)
	}
	return nil
}

// DecodeError converts a JSON decoding failure into a ValidationError. When
// data is an object, each member is decoded on its own against the matching
// field of dst so the error names the offending key.
func DecodeError(data []byte, dst any, err error) *ValidationError {
	var members map[string]json.RawMessage
	if json.Unmarshal(data, &members) == nil {
		if verr := fieldTypeErrors(members, dst); verr != nil {
			return verr
		}
	}
	return NewValidationError("body", "malformed JSON: "+err.Error())
}

func fieldTypeErrors(members map[string]json.RawMessage, dst any) *ValidationError {
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	verr := &ValidationError{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		raw, ok := members[name]
		if name == "" || name == "-" || !ok {
			continue
		}
		if json.Unmarshal(raw, reflect.New(f.Type).Interface()) != nil {
			verr.add(name, "must be "+describeType(f.Type))
		}
	}
	if len(verr.Fields) == 0 {
		return nil
	}
	return verr.sorted()
}

var timeType = reflect.TypeOf(time.Time{})

func describeType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch {
	case t == timeType:
		return "an RFC 3339 timestamp"
	case t.Kind() == reflect.String:
		return "a string"
	case t.Kind() == reflect.Bool:
		return "a boolean"
	case t.Kind() >= reflect.Int && t.Kind() <= reflect.Uint64:
		return "an integer"
	case t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64:
		return "a number"
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
