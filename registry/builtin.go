package registry

import "time"

// builtinFactories maps each builtin scalar identifier to a factory
// producing a default-constructed instance of its concrete Go type.
// The set is fixed; it mirrors the primitive types of the message
// definition grammar.
var builtinFactories = map[string]func() any{
	"bool":     func() any { return false },
	"byte":     func() any { return uint8(0) },
	"char":     func() any { return uint8(0) },
	"int8":     func() any { return int8(0) },
	"uint8":    func() any { return uint8(0) },
	"int16":    func() any { return int16(0) },
	"uint16":   func() any { return uint16(0) },
	"int32":    func() any { return int32(0) },
	"uint32":   func() any { return uint32(0) },
	"int64":    func() any { return int64(0) },
	"uint64":   func() any { return uint64(0) },
	"float32":  func() any { return float32(0) },
	"float64":  func() any { return float64(0) },
	"string":   func() any { return "" },
	"time":     func() any { return time.Time{} },
	"duration": func() any { return time.Duration(0) },
}

// BuiltinIdentifiers returns the identifiers of all builtin scalar types
func BuiltinIdentifiers() []string {
	out := make([]string, 0, len(builtinFactories))
	for identifier := range builtinFactories {
		out = append(out, identifier)
	}
	return out
}
