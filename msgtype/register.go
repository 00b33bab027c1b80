package msgtype

import (
	"fmt"
	"strings"

	"github.com/ethz-asl/variant/errors"
	"github.com/ethz-asl/variant/msgdef"
	"github.com/ethz-asl/variant/registry"
)

// definitionBlock is one type's slice of a concatenated definition text
type definitionBlock struct {
	identifier string
	text       string
}

// RegisterDefinition registers descriptors for every type contained in
// a resolved message type's concatenated definition, dependencies
// first, and returns the root descriptor. Types already present in the
// registry are left untouched. After registration the root descriptor
// carries a computed signature, which AttachSignature can copy back
// onto the message type.
func RegisterDefinition(reg *registry.Registry, t MessageType) (*registry.Descriptor, error) {
	if !t.IsValid() {
		return nil, errors.WrapInvalid(errors.ErrInvalidMessageType,
			"msgtype", "RegisterDefinition", "registering invalid message type")
	}

	rootIdentifier := t.DataType()
	if !strings.Contains(rootIdentifier, "/") {
		if rootIdentifier != headerBareName {
			return nil, errors.WrapInvalid(errors.ErrInvalidMessageType,
				"msgtype", "RegisterDefinition",
				fmt.Sprintf("message type [%s] is invalid", rootIdentifier))
		}
		rootIdentifier = headerFullName
	}

	blocks, err := splitBlocks(rootIdentifier, t.Definition())
	if err != nil {
		return nil, err
	}

	pending := make(map[string]definitionBlock, len(blocks))
	for _, b := range blocks {
		if _, err := reg.Lookup(b.identifier); err == nil {
			continue
		}
		pending[b.identifier] = b
	}

	// Dependencies can appear before or after their dependents in the
	// concatenated text, so registration iterates to a fixed point:
	// each pass registers every block whose compound member types are
	// all known.
	for len(pending) > 0 {
		progress := false

		for identifier, b := range pending {
			ready, err := blockReady(reg, pending, b)
			if err != nil {
				return nil, err
			}
			if !ready {
				continue
			}

			members, err := msgdef.ParseDefinition(b.text)
			if err != nil {
				return nil, err
			}
			d := registry.NewCompound(identifier)
			for _, m := range members {
				m.Type = normalizeMemberType(m.Type)
				if err := d.AddMember(m); err != nil {
					return nil, err
				}
			}
			if err := d.SetDefinition(b.text); err != nil {
				return nil, err
			}
			if err := reg.Register(d); err != nil {
				return nil, err
			}

			delete(pending, identifier)
			progress = true
		}

		if !progress {
			remaining := make([]string, 0, len(pending))
			for identifier := range pending {
				remaining = append(remaining, identifier)
			}
			return nil, errors.WrapInvalid(errors.ErrUnknownDataType,
				"msgtype", "RegisterDefinition",
				fmt.Sprintf("unresolvable member dependencies among %v", remaining))
		}
	}

	return reg.Lookup(rootIdentifier)
}

// blockReady reports whether all compound member types of a block are
// already registered. Member types neither registered nor pending in
// the same definition are an error.
func blockReady(reg *registry.Registry, pending map[string]definitionBlock,
	b definitionBlock) (bool, error) {
	members, err := msgdef.ParseDefinition(b.text)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		memberType := normalizeMemberType(m.Type)
		if reg.IsBuiltin(memberType) {
			continue
		}
		if !strings.Contains(memberType, "/") {
			return false, errors.WrapInvalid(errors.ErrInvalidMessageType,
				"msgtype", "RegisterDefinition",
				fmt.Sprintf("member type [%s] of [%s] is unqualified", m.Type, b.identifier))
		}
		if _, err := reg.Lookup(memberType); err == nil {
			continue
		}
		if _, ok := pending[memberType]; ok {
			return false, nil
		}
		return false, errors.WrapInvalid(errors.ErrUnknownDataType,
			"msgtype", "RegisterDefinition",
			fmt.Sprintf("member type [%s] of [%s] has no definition block", memberType, b.identifier))
	}
	return true, nil
}

func normalizeMemberType(memberType string) string {
	if memberType == headerBareName {
		return headerFullName
	}
	return memberType
}

// splitBlocks separates a concatenated definition into per-type blocks.
// The root block carries no banner; every other block is introduced by
// the 80-character rule line and a "MSG: <type>" line.
func splitBlocks(rootIdentifier, definition string) ([]definitionBlock, error) {
	chunks := strings.Split(definition, "\n"+separatorRule+"\n")

	blocks := []definitionBlock{{identifier: rootIdentifier, text: chunks[0]}}

	for _, chunk := range chunks[1:] {
		newline := strings.Index(chunk, "\n")
		if newline < 0 || !strings.HasPrefix(chunk, "MSG: ") {
			return nil, errors.WrapInvalid(errors.ErrDefinitionParseFailed,
				"msgtype", "splitBlocks", "dependency block missing MSG banner")
		}
		identifier := strings.TrimSpace(chunk[len("MSG: "):newline])
		blocks = append(blocks, definitionBlock{
			identifier: identifier,
			text:       chunk[newline+1:],
		})
	}

	return blocks, nil
}
