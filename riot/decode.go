package riot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// decode parses body into T. An empty or null body is a NotFound outcome;
// type mismatches and missing required fields are decode failures naming the
// offending field path. Unknown fields are ignored.
//
// A struct field is required unless it is a pointer or tagged omitempty.
func decode[T any](body []byte) (T, error) {
	var out T

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, &Error{Kind: KindNotFound, Reason: "empty response body"}
	}

	if err := json.Unmarshal(trimmed, &out); err != nil {
		var zero T
		return zero, decodeError(err)
	}

	var tree any
	if err := json.Unmarshal(trimmed, &tree); err != nil {
		var zero T
		return zero, decodeError(err)
	}
	if path, ok := missingRequired(reflect.TypeOf(out), tree, ""); !ok {
		var zero T
		return zero, &Error{Kind: KindDecode, Field: path, Reason: "missing required field"}
	}

	return out, nil
}

func decodeError(err error) *Error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return &Error{
			Kind:   KindDecode,
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("type mismatch: expected %s, got JSON %s", typeErr.Type, typeErr.Value),
			Err:    err,
		}
	case errors.As(err, &syntaxErr):
		return &Error{
			Kind:   KindDecode,
			Reason: fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset),
			Err:    err,
		}
	default:
		return &Error{Kind: KindDecode, Reason: err.Error(), Err: err}
	}
}

type fieldInfo struct {
	name     string
	typ      reflect.Type
	required bool
}

var (
	fieldCache      sync.Map // reflect.Type -> []fieldInfo
	unmarshalerType = reflect.TypeFor[json.Unmarshaler]()
)

// missingRequired walks the generic JSON tree alongside t and returns the path
// of the first required field that is absent or null.
func missingRequired(t reflect.Type, v any, path string) (string, bool) {
	if t == nil || v == nil {
		return "", true
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return "", true
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return "", true
		}
		for _, f := range structFields(t) {
			val, present := obj[f.name]
			if !present || val == nil {
				if f.required {
					return joinPath(path, f.name), false
				}
				continue
			}
			if p, ok := missingRequired(f.typ, val, joinPath(path, f.name)); !ok {
				return p, false
			}
		}
	case reflect.Slice, reflect.Array:
		arr, ok := v.([]any)
		if !ok {
			return "", true
		}
		for i, elem := range arr {
			if p, ok := missingRequired(t.Elem(), elem, path+"["+strconv.Itoa(i)+"]"); !ok {
				return p, false
			}
		}
	case reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok {
			return "", true
		}
		for _, k := range slices.Sorted(maps.Keys(obj)) {
			if p, ok := missingRequired(t.Elem(), obj[k], joinPath(path, k)); !ok {
				return p, false
			}
		}
	}
	return "", true
}

func structFields(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	var fields []fieldInfo
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, fieldInfo{
			name:     name,
			typ:      sf.Type,
			required: sf.Type.Kind() != reflect.Pointer && !strings.Contains(opts, "omitempty"),
		})
	}

	fieldCache.Store(t, fields)
	return fields
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
