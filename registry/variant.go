package registry

import (
	"fmt"
	"reflect"

	"github.com/ethz-asl/variant/errors"
)

// Variant is a runtime-typed container instantiated from a type
// descriptor's factory. It holds a default-constructed instance of the
// underlying concrete type: a Go scalar for builtins, a member-name
// keyed map for compounds. Ownership is exclusive to whoever requested
// creation unless the caller explicitly hands the value out.
//
// A Variant carries no internal synchronization; concurrent use of the
// same instance requires external locking by the caller.
type Variant struct {
	descriptor *Descriptor
	value      any
}

// Descriptor returns the type descriptor this variant was created from
func (v Variant) Descriptor() *Descriptor {
	return v.descriptor
}

// Value returns the contained instance
func (v Variant) Value() any {
	return v.value
}

// IsEmpty reports whether the variant was never initialized from a
// descriptor
func (v Variant) IsEmpty() bool {
	return v.descriptor == nil
}

// TypeIdentifier returns the identifier of the variant's type, or the
// empty string for an empty variant
func (v Variant) TypeIdentifier() string {
	if v.descriptor == nil {
		return ""
	}
	return v.descriptor.identifier
}

// Set replaces the contained value. The replacement must have the same
// concrete Go type as the current value; a differing type fails with
// ErrDataTypeMismatch.
func (v *Variant) Set(value any) error {
	if v.descriptor == nil {
		return errors.WrapInvalid(errors.ErrInvalidDataType,
			"Variant", "Set", "assigning to empty variant")
	}
	expected := reflect.TypeOf(v.value)
	provided := reflect.TypeOf(value)
	if expected != provided {
		return errors.WrapInvalid(errors.ErrDataTypeMismatch,
			"Variant", "Set",
			fmt.Sprintf("provided type [%v] mismatches expected type [%v]", provided, expected))
	}
	v.value = value
	return nil
}

// Field returns the named member value of a compound variant
func (v Variant) Field(name string) (any, error) {
	fields, ok := v.value.(map[string]any)
	if !ok {
		return nil, errors.WrapInvalid(errors.ErrInvalidOperation,
			"Variant", "Field", "field access on non-compound variant")
	}
	value, ok := fields[name]
	if !ok {
		return nil, errors.WrapInvalid(errors.ErrNoSuchMember,
			"Variant", "Field", fmt.Sprintf("field with name [%s]", name))
	}
	return value, nil
}

// SetField assigns the named member value of a compound variant. The
// member must exist; its previous value's concrete type must match.
func (v *Variant) SetField(name string, value any) error {
	fields, ok := v.value.(map[string]any)
	if !ok {
		return errors.WrapInvalid(errors.ErrInvalidOperation,
			"Variant", "SetField", "field access on non-compound variant")
	}
	current, ok := fields[name]
	if !ok {
		return errors.WrapInvalid(errors.ErrNoSuchMember,
			"Variant", "SetField", fmt.Sprintf("field with name [%s]", name))
	}
	if current != nil && value != nil && reflect.TypeOf(current) != reflect.TypeOf(value) {
		return errors.WrapInvalid(errors.ErrDataTypeMismatch,
			"Variant", "SetField",
			fmt.Sprintf("provided type [%v] mismatches expected type [%v] for field [%s]",
				reflect.TypeOf(value), reflect.TypeOf(current), name))
	}
	fields[name] = value
	return nil
}

// String implements fmt.Stringer
func (v Variant) String() string {
	if v.descriptor == nil {
		return "<empty>"
	}
	return fmt.Sprintf("%s: %v", v.descriptor.identifier, v.value)
}
