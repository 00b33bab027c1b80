package msgtype

import (
	"github.com/ethz-asl/variant/registry"
)

// MessageType is the immutable-by-convention bundle of (data type,
// signature, definition) describing one message type. The zero value is
// empty and invalid; Clear resets a populated instance to the empty
// state with a wildcard signature.
//
// A MessageType carries no internal synchronization; concurrent use of
// the same instance requires external locking by the caller.
type MessageType struct {
	dataType   string
	signature  string
	definition string
}

// New creates a message type from its three components
func New(dataType, signature, definition string) MessageType {
	return MessageType{
		dataType:   dataType,
		signature:  signature,
		definition: definition,
	}
}

// FromDescriptor snapshots an already-resolved compound type descriptor
// into a message type, copying identifier, signature and definition
// directly without invoking the recursive resolver.
func FromDescriptor(d *registry.Descriptor) MessageType {
	return MessageType{
		dataType:   d.Identifier(),
		signature:  d.Signature(),
		definition: d.Definition(),
	}
}

// DataType returns the type identifier
func (t MessageType) DataType() string {
	return t.dataType
}

// SetDataType sets the type identifier
func (t *MessageType) SetDataType(dataType string) {
	t.dataType = dataType
}

// Signature returns the compatibility signature
func (t MessageType) Signature() string {
	return t.signature
}

// SetSignature sets the compatibility signature
func (t *MessageType) SetSignature(signature string) {
	t.signature = signature
}

// Definition returns the concatenated definition text
func (t MessageType) Definition() string {
	return t.definition
}

// SetDefinition sets the concatenated definition text
func (t *MessageType) SetDefinition(definition string) {
	t.definition = definition
}

// Clear resets the message type to (empty, wildcard, empty)
func (t *MessageType) Clear() {
	t.dataType = ""
	t.signature = registry.SignatureWildcard
	t.definition = ""
}

// IsValid reports whether the message type is complete: the signature is
// non-empty and either the wildcard token or exactly 32 lowercase
// hexadecimal characters, and both data type and definition are
// non-empty.
func (t MessageType) IsValid() bool {
	return t.signature != "" &&
		registry.IsValidSignature(t.signature) &&
		t.dataType != "" &&
		t.definition != ""
}

// Equal reports whether two message types denote the same type: data
// type and signature both match. The definition text is a derived
// artifact, not an identity component, and is ignored.
func (t MessageType) Equal(other MessageType) bool {
	return t.dataType == other.dataType && t.signature == other.signature
}

// String renders the message type as its data type alone
func (t MessageType) String() string {
	return t.dataType
}
