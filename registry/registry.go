package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/ethz-asl/variant/errors"
)

// Registry is the process-wide catalog mapping a type identifier to its
// canonical descriptor. Exactly one descriptor exists per registered
// identifier.
type Registry struct {
	mu           sync.RWMutex
	byIdentifier map[string]*Descriptor
	byBareName   map[string][]*Descriptor
	logger       *slog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the structured logger used for registration events
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a registry pre-populated with the builtin scalar
// types.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byIdentifier: make(map[string]*Descriptor),
		byBareName:   make(map[string][]*Descriptor),
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	for identifier, factory := range builtinFactories {
		d := NewBuiltin(identifier, factory)
		d.sealed = true
		r.byIdentifier[identifier] = d
		r.byBareName[identifier] = append(r.byBareName[identifier], d)
	}

	return r
}

// Register adds a descriptor to the catalog and seals it against further
// mutation. For compounds it binds the variant factory and computes the
// definition-derived compatibility signature; every compound member type
// referenced by the descriptor must already be registered.
func (r *Registry) Register(d *Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.identifier == "" {
		return errors.WrapInvalid(errors.ErrInvalidDataType,
			"Registry", "Register", "registering descriptor with empty identifier")
	}
	if _, exists := r.byIdentifier[d.identifier]; exists {
		return errors.WrapInvalid(errors.ErrInvalidOperation,
			"Registry", "Register", "re-registering type "+d.identifier)
	}

	if d.kind == KindCompound {
		signature, err := r.computeSignature(d, make(map[string]string))
		if err != nil {
			return errors.Wrap(err, "Registry", "Register", "signature computation for "+d.identifier)
		}
		d.signature = signature
		d.factory = func() any { return r.emptyCompound(d) }
	}

	d.sealed = true
	r.byIdentifier[d.identifier] = d
	r.byBareName[d.BareName()] = append(r.byBareName[d.BareName()], d)

	r.logger.Debug("registered data type",
		"identifier", d.identifier,
		"kind", d.kind.String(),
		"members", len(d.members))

	return nil
}

// Lookup resolves an identifier to its canonical descriptor. Fully
// qualified identifiers resolve exactly; an unqualified identifier
// resolves through the bare-name alias table and fails with
// ErrAmbiguousIdentifier when the same bare name is registered under
// more than one package. An unknown identifier fails with
// ErrUnknownDataType.
func (r *Registry) Lookup(identifier string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.byIdentifier[identifier]; ok {
		return d, nil
	}

	if !strings.Contains(identifier, "/") {
		candidates := r.byBareName[identifier]
		switch len(candidates) {
		case 0:
			// fall through to not-found
		case 1:
			return candidates[0], nil
		default:
			return nil, errors.WrapInvalid(errors.ErrAmbiguousIdentifier,
				"Registry", "Lookup",
				fmt.Sprintf("data type identifier [%s] is used ambiguously", identifier))
		}
	}

	return nil, errors.WrapInvalid(errors.ErrUnknownDataType,
		"Registry", "Lookup", fmt.Sprintf("data type [%s] does not exist", identifier))
}

// IsBuiltin reports whether the identifier names a registered builtin
// scalar. Unknown identifiers are not builtin; the resolver relies on
// this to schedule them for recursive loading.
func (r *Registry) IsBuiltin(identifier string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byIdentifier[identifier]
	return ok && d.kind == KindBuiltin
}

// NewVariant instantiates a variant value for the identified type
func (r *Registry) NewVariant(identifier string) (Variant, error) {
	d, err := r.Lookup(identifier)
	if err != nil {
		return Variant{}, err
	}
	return d.NewVariant()
}

// Identifiers returns all registered identifiers in sorted order
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.byIdentifier))
	for identifier := range r.byIdentifier {
		out = append(out, identifier)
	}
	sort.Strings(out)
	return out
}

// Clear empties the catalog, including builtins. Intended for process
// teardown and tests; the registry must be repopulated before further
// lookups.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byIdentifier = make(map[string]*Descriptor)
	r.byBareName = make(map[string][]*Descriptor)
}

// emptyCompound builds the default instance of a compound type: a map
// keyed by member name, each member default-constructed in turn. Arrays
// start empty for variable length and zero-filled at their fixed size
// otherwise. Unresolvable member types yield nil entries; registration
// has already validated members, so this only happens after a Clear.
func (r *Registry) emptyCompound(d *Descriptor) map[string]any {
	fields := make(map[string]any, len(d.members))
	for _, m := range d.members {
		member, err := r.Lookup(m.Type)
		if err != nil || member.factory == nil {
			fields[m.Name] = nil
			continue
		}
		if m.Array {
			n := m.Size
			values := make([]any, n)
			for i := 0; i < n; i++ {
				values[i] = member.factory()
			}
			fields[m.Name] = values
			continue
		}
		fields[m.Name] = member.factory()
	}
	return fields
}
