package registry

import (
	"fmt"
	"strings"

	"github.com/ethz-asl/variant/errors"
)

// Kind classifies a type descriptor. The set is closed: a type is either
// a builtin scalar or a compound of named members.
type Kind int

// Descriptor kinds
const (
	KindBuiltin Kind = iota
	KindCompound
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// Member describes one entry of a compound type's ordered member list.
type Member struct {
	// Name is the member name as declared in the definition
	Name string
	// Type is the member's type identifier, fully qualified for compounds
	Type string
	// Array indicates an array-valued member
	Array bool
	// Size is the fixed element count for fixed-size arrays; 0 means
	// variable length. Only meaningful when Array is true.
	Size int
}

// TypeSpec renders the member's declared type including any array suffix,
// e.g. "float64", "uint8[]", "geometry_msgs/Point[4]".
func (m Member) TypeSpec() string {
	if !m.Array {
		return m.Type
	}
	if m.Size > 0 {
		return fmt.Sprintf("%s[%d]", m.Type, m.Size)
	}
	return m.Type + "[]"
}

// String renders the member as a definition line
func (m Member) String() string {
	return m.TypeSpec() + " " + m.Name
}

// Descriptor is the canonical identity of a registered value type.
// Exactly one descriptor exists per registered identifier. A descriptor
// is mutable only until it is registered; registration seals it, and any
// later mutation fails with an immutable-type error.
type Descriptor struct {
	identifier string
	kind       Kind
	factory    func() any

	// Compound state
	members    []Member
	definition string
	signature  string

	sealed bool
}

// NewBuiltin creates a builtin scalar descriptor. The factory constructs
// a default instance of the concrete Go type the descriptor names.
func NewBuiltin(identifier string, factory func() any) *Descriptor {
	return &Descriptor{
		identifier: identifier,
		kind:       KindBuiltin,
		factory:    factory,
	}
}

// NewCompound creates an unsealed compound descriptor with no members.
// Members are added with AddMember before the descriptor is registered.
func NewCompound(identifier string) *Descriptor {
	return &Descriptor{
		identifier: identifier,
		kind:       KindCompound,
	}
}

// Identifier returns the stable type identifier
func (d *Descriptor) Identifier() string {
	return d.identifier
}

// Kind returns the builtin/compound classification
func (d *Descriptor) Kind() Kind {
	return d.kind
}

// IsBuiltin reports whether the descriptor names a builtin scalar type
func (d *Descriptor) IsBuiltin() bool {
	return d.kind == KindBuiltin
}

// Package returns the package segment of the identifier, or the empty
// string for unqualified identifiers (builtins).
func (d *Descriptor) Package() string {
	if i := strings.Index(d.identifier, "/"); i > 0 {
		return d.identifier[:i]
	}
	return ""
}

// BareName returns the identifier with its package segment stripped
func (d *Descriptor) BareName() string {
	if i := strings.Index(d.identifier, "/"); i >= 0 {
		return d.identifier[i+1:]
	}
	return d.identifier
}

// AddMember appends a member to a compound descriptor's ordered member
// list. Fails with ErrInvalidOperation on builtins and with
// ErrImmutableDataType once the descriptor has been registered.
func (d *Descriptor) AddMember(m Member) error {
	if d.kind != KindCompound {
		return errors.WrapInvalid(errors.ErrInvalidOperation,
			"Descriptor", "AddMember", "adding member to builtin type "+d.identifier)
	}
	if d.sealed {
		return errors.WrapFatal(errors.ErrImmutableDataType,
			"Descriptor", "AddMember", "modifying registered type "+d.identifier)
	}
	d.members = append(d.members, m)
	return nil
}

// SetDefinition records the raw definition text a compound descriptor
// was built from. Fails with ErrImmutableDataType once registered.
func (d *Descriptor) SetDefinition(text string) error {
	if d.sealed {
		return errors.WrapFatal(errors.ErrImmutableDataType,
			"Descriptor", "SetDefinition", "modifying registered type "+d.identifier)
	}
	d.definition = text
	return nil
}

// Members returns a copy of the ordered member list. Builtins have none.
func (d *Descriptor) Members() []Member {
	out := make([]Member, len(d.members))
	copy(out, d.members)
	return out
}

// NumMembers returns the number of members
func (d *Descriptor) NumMembers() int {
	return len(d.members)
}

// Member returns the member at the given index
func (d *Descriptor) Member(index int) (Member, error) {
	if index < 0 || index >= len(d.members) {
		return Member{}, errors.WrapInvalid(errors.ErrNoSuchMember,
			"Descriptor", "Member", fmt.Sprintf("member with index [%d]", index))
	}
	return d.members[index], nil
}

// MemberByName returns the member with the given name
func (d *Descriptor) MemberByName(name string) (Member, error) {
	for _, m := range d.members {
		if m.Name == name {
			return m, nil
		}
	}
	return Member{}, errors.WrapInvalid(errors.ErrNoSuchMember,
		"Descriptor", "MemberByName", fmt.Sprintf("member with name [%s]", name))
}

// Definition returns the raw definition text of a compound descriptor.
// If none was set explicitly, the canonical text derived from the member
// list is returned.
func (d *Descriptor) Definition() string {
	if d.definition != "" {
		return d.definition
	}
	var b strings.Builder
	for _, m := range d.members {
		b.WriteString(m.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Signature returns the 32-character hexadecimal compatibility signature
// of a registered compound descriptor, or the empty string before
// registration and for builtins.
func (d *Descriptor) Signature() string {
	return d.signature
}

// NewVariant constructs a variant value holding a default instance of
// the descriptor's concrete type. The variant is owned exclusively by
// the caller. Fails with ErrInvalidOperation on an unregistered
// descriptor, whose factory has not been bound yet.
func (d *Descriptor) NewVariant() (Variant, error) {
	if d.factory == nil {
		return Variant{}, errors.WrapInvalid(errors.ErrInvalidOperation,
			"Descriptor", "NewVariant", "instantiating unregistered type "+d.identifier)
	}
	return Variant{descriptor: d, value: d.factory()}, nil
}

// String implements fmt.Stringer
func (d *Descriptor) String() string {
	return d.identifier
}
