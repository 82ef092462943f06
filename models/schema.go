package models

import (
	"reflect"
	"strings"
)

// FieldSchema describes one field of an entity: its JSON name and type,
// whether the caller must supply it, the validation constraints beyond
// presence, and the default applied when it is omitted.
type FieldSchema struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Constraints []string `json:"constraints,omitempty"`
	Default     any      `json:"default,omitempty"`
}

type EntitySchema struct {
	Collection string        `json:"collection"`
	Fields     []FieldSchema `json:"fields"`
}

// Schemas returns the structural definition of the four domain entities,
// derived from the same struct tags the validator enforces.
func Schemas() map[string]EntitySchema {
	out := make(map[string]EntitySchema, 4)
	for _, kind := range []string{"user", "product", "review", "order"} {
		entity := entityKinds[kind]()
		entity.ApplyDefaults()
		out[kind] = EntitySchema{
			Collection: entity.CollectionName(),
			Fields:     fieldSchemas(entity),
		}
	}
	return out
}

func fieldSchemas(entity Entity) []FieldSchema {
	v := reflect.ValueOf(entity).Elem()
	t := v.Type()

	fields := make([]FieldSchema, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		rules := strings.Split(sf.Tag.Get("validate"), ",")
		fs := FieldSchema{
			Name:        name,
			Type:        jsonType(sf.Type),
			Constraints: constraintRules(rules),
		}

		if def, ok := defaultValue(v.Field(i)); ok {
			fs.Default = def
		} else {
			fs.Required = hasRule(rules, "required")
		}
		fields = append(fields, fs)
	}
	return fields
}

// defaultValue reports the value ApplyDefaults filled in, if any. A nil
// pointer or a zero value means the field carries no default.
func defaultValue(v reflect.Value) (any, bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil, false
		}
		return v.Elem().Interface(), true
	case reflect.Slice:
		if v.IsNil() {
			return nil, false
		}
		return []any{}, true
	default:
		if v.IsZero() {
			return nil, false
		}
		return v.Interface(), true
	}
}

func constraintRules(rules []string) []string {
	var out []string
	for _, r := range rules {
		switch r {
		case "", "required", "omitempty", "dive":
		default:
			out = append(out, r)
		}
	}
	return out
}

func hasRule(rules []string, want string) bool {
	for _, r := range rules {
		if r == want {
			return true
		}
	}
	return false
}

func jsonType(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
