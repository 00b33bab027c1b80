package registry

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethz-asl/variant/errors"
)

// SignatureWildcard is the signature token that matches any signature
const SignatureWildcard = "*"

// IsValidSignature reports whether s is a well-formed compatibility
// signature: the wildcard token or exactly 32 lowercase hexadecimal
// characters.
func IsValidSignature(s string) bool {
	if s == SignatureWildcard {
		return true
	}
	if len(s) != 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// computeSignature derives the compatibility signature of a compound
// descriptor: the MD5 digest of its canonical member text, in which
// builtin members appear with their declared type spec and compound
// members have their type replaced by that type's own signature. The
// digest therefore changes whenever any transitively reachable member
// layout changes. memo caches sub-signatures within one computation;
// together with the registry's acyclic registration order it bounds the
// recursion.
//
// Callers must hold r.mu.
func (r *Registry) computeSignature(d *Descriptor, memo map[string]string) (string, error) {
	if cached, ok := memo[d.identifier]; ok {
		return cached, nil
	}
	// Guard against member cycles: a type under computation hashes as
	// its identifier rather than recursing forever.
	memo[d.identifier] = d.identifier

	var b strings.Builder
	for _, m := range d.members {
		member, ok := r.byIdentifier[m.Type]
		if !ok {
			return "", errors.WrapInvalid(errors.ErrUnknownDataType,
				"Registry", "computeSignature",
				fmt.Sprintf("member type [%s] of [%s]", m.Type, d.identifier))
		}

		if member.kind == KindBuiltin {
			b.WriteString(m.TypeSpec())
		} else if member.signature != "" {
			b.WriteString(member.signature)
		} else {
			sub, err := r.computeSignature(member, memo)
			if err != nil {
				return "", err
			}
			b.WriteString(sub)
		}
		b.WriteString(" ")
		b.WriteString(m.Name)
		b.WriteString("\n")
	}

	sum := md5.Sum([]byte(b.String()))
	signature := hex.EncodeToString(sum[:])
	memo[d.identifier] = signature
	return signature, nil
}
