package schema

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFieldKind     = errors.New("schema: unsupported field kind")
	ErrInvalidFieldName         = errors.New("schema: invalid field name")
	ErrMissingRequiredAttribute = errors.New("schema: missing required attribute")

	ErrTemplateNameRequired  = errors.New("schema: template name is required")
	ErrTemplateLabelRequired = errors.New("schema: template label is required")
)

// UnsupportedFieldKindError reports a kind absent from the registry.
type UnsupportedFieldKindError struct {
	Kind FieldKind
}

func (e *UnsupportedFieldKindError) Error() string {
	if e == nil || e.Kind == "" {
		return ErrUnsupportedFieldKind.Error()
	}
	return fmt.Sprintf("%s: %s", ErrUnsupportedFieldKind.Error(), e.Kind)
}

func (e *UnsupportedFieldKindError) Unwrap() error {
	return ErrUnsupportedFieldKind
}

// InvalidFieldNameError reports a field name that is empty or sanitizes to
// the empty string.
type InvalidFieldNameError struct {
	Name string
}

func (e *InvalidFieldNameError) Error() string {
	if e == nil || e.Name == "" {
		return ErrInvalidFieldName.Error()
	}
	return fmt.Sprintf("%s: %q", ErrInvalidFieldName.Error(), e.Name)
}

func (e *InvalidFieldNameError) Unwrap() error {
	return ErrInvalidFieldName
}

// MissingRequiredAttributeError surfaces a registry misconfiguration: a
// required attribute with no example default and no built-in fallback.
type MissingRequiredAttributeError struct {
	Kind      FieldKind
	Attribute string
}

func (e *MissingRequiredAttributeError) Error() string {
	if e == nil {
		return ErrMissingRequiredAttribute.Error()
	}
	return fmt.Sprintf("%s: %s.%s", ErrMissingRequiredAttribute.Error(), e.Kind, e.Attribute)
}

func (e *MissingRequiredAttributeError) Unwrap() error {
	return ErrMissingRequiredAttribute
}
