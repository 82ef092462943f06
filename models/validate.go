package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Entity is a validated domain record bound to a store collection.
type Entity interface {
	CollectionName() string
	ApplyDefaults()
}

// entityKinds maps a kind name to a constructor for its entity type.
var entityKinds = map[string]func() Entity{
	"user":     func() Entity { return &User{} },
	"product":  func() Entity { return &Product{} },
	"review":   func() Entity { return &Review{} },
	"order":    func() Entity { return &Order{} },
	"wishlist": func() Entity { return &WishlistItem{} },
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the JSON field names the caller sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError is a single field-level constraint violation.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every field-level violation found in a payload.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	reasons := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		reasons = append(reasons, f.Field+" "+f.Reason)
	}
	return "validation failed: " + strings.Join(reasons, "; ")
}

// Validate decodes payload into the entity type registered for kind,
// applies defaults for omitted fields, and checks every field constraint.
// On success the returned Entity is fully typed and ready to persist; on
// failure the error is a *ValidationError and nothing is persisted.
func Validate(kind string, payload []byte) (Entity, error) {
	newEntity, ok := entityKinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}

	entity := newEntity()
	if err := json.Unmarshal(payload, entity); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", kind, err)
	}

	entity.ApplyDefaults()
	if err := ValidateEntity(entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// ValidateEntity checks an already-constructed entity against its field
// constraints. Defaults are assumed to be applied.
func ValidateEntity(entity Entity) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:  fieldPath(fe),
			Reason: reasonFor(fe),
		})
	}
	return &ValidationError{Fields: fieldErrs}
}

// fieldPath strips the entity type prefix from the validator namespace,
// e.g. "Order.items[0].qty" -> "items[0].qty".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s constraint", fe.Tag())
	}
}
