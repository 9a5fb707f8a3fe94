package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/mesto-api/internal/utils"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They are the JSON names of the model fields.
const (
	FieldID       = "_id"
	FieldName     = "name"
	FieldAbout    = "about"
	FieldAvatar   = "avatar"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldLink     = "link"
	FieldOwner    = "owner"
)

const (
	tagObjectID   = "objectid"
	tagURLPattern = "url_pattern"
)

// MessageInvalidID is reported for malformed identities.
const MessageInvalidID = "Некорректно введен ID"

// urlPattern accepts http(s) links with an optional www. prefix, a dotted host
// name ending in a 2–8 character label and an optional path.
var urlPattern = regexp.MustCompile(`^https?://(www\.)?([A-Za-z0-9][A-Za-z0-9-]*\.?)*\.[A-Za-z0-9-]{2,8}(/[\w#!:.?+=&%@\-/]*)?$`)

// IsURL reports whether s matches the link pattern used for avatars and
// card pictures.
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}

// StructValidator validates tagged structs with go-playground/validator.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a StructValidator with the custom tags
// registered and returns it as the Validator interface.
func NewStructValidator() Validator {
	return newStructValidator()
}

func newStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation(tagObjectID, func(fl validator.FieldLevel) bool {
		return utils.IsObjectID(fl.Field().String())
	})
	_ = v.RegisterValidation(tagURLPattern, func(fl validator.FieldLevel) bool {
		return IsURL(fl.Field().String())
	})

	return &StructValidator{validate: v}
}

// Validate checks obj (a struct or a pointer to one) against its
// `validate` tags. When fields are given only those JSON fields are checked.
//
// Returns ErrUnsupportedType for non-struct input, ErrUnknownField for a
// field name the struct does not declare, and *ValidationError listing
// every violation otherwise.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, value.Interface())
	} else {
		names, lookupErr := structFieldNames(value.Type(), fields)
		if lookupErr != nil {
			return lookupErr
		}
		err = v.validate.StructPartialCtx(ctx, value.Interface(), names...)
	}

	return translate(err)
}

// structFieldNames maps JSON field names onto Go field names.
func structFieldNames(t reflect.Type, jsonNames []string) ([]string, error) {
	names := make([]string, 0, len(jsonNames))

	for _, jsonName := range jsonNames {
		found := false
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tagName := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if tagName == jsonName || (tagName == "" && f.Name == jsonName) {
				names = append(names, f.Name)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, jsonName)
		}
	}

	return names, nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		result.Fields = append(result.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}

	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("поле %s обязательно", fe.Field())
	case "min":
		return fmt.Sprintf("поле %s должно содержать не менее %s символов", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("поле %s должно содержать не более %s символов", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("поле %s должно быть корректным email", fe.Field())
	case tagURLPattern:
		return fmt.Sprintf("поле %s должно быть ссылкой", fe.Field())
	case tagObjectID:
		return MessageInvalidID
	default:
		return fmt.Sprintf("поле %s некорректно", fe.Field())
	}
}

// ValidateID checks that id is a 24-character hexadecimal identity.
func ValidateID(id string) error {
	if !utils.IsObjectID(id) {
		return ErrInvalidID
	}

	return nil
}
