package msgtype

import (
	"bufio"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/ethz-asl/variant/errors"
	"github.com/ethz-asl/variant/metric"
	"github.com/ethz-asl/variant/msgdef"
	"github.com/ethz-asl/variant/registry"
)

// PackageResolver maps a package name to the storage location holding
// its message definitions.
type PackageResolver interface {
	// ResolvePackage returns the location of the named package, or an
	// error wrapping errors.ErrPackageNotFound if the package cannot be
	// resolved.
	ResolvePackage(name string) (string, error)
}

// DefinitionLoader loads the raw definition text stored at a resource
// path produced by the resolver.
type DefinitionLoader interface {
	// LoadDefinition returns the raw text of the definition resource,
	// or an error wrapping errors.ErrDefinitionUnreadable if the
	// resource is missing or unreadable.
	LoadDefinition(resource string) (string, error)
}

// Reserved alias: an unqualified "Header" type is implicitly qualified
// by the std_msgs package.
const (
	headerBareName   = "Header"
	headerPackage    = "std_msgs"
	headerFullName   = headerPackage + "/" + headerBareName
	definitionSuffix = ".msg"
)

// separatorRule is the 80-character rule line preceding every dependency
// block after the first in a concatenated definition.
var separatorRule = strings.Repeat("=", 80)

// Resolver discovers all transitively required compound member types of
// a root identifier exactly once, loads each one's raw definition via
// the external collaborators, and concatenates them into one
// self-contained definition text.
//
// Resolution is synchronous and single-threaded: it blocks on each load
// in strict discovery order with no overlap, timeout or retry. A
// Resolver holds no mutable state between calls and may be shared;
// resolutions are computed fresh each time.
type Resolver struct {
	registry *registry.Registry
	packages PackageResolver
	loader   DefinitionLoader
	logger   *slog.Logger
	metrics  *metric.Metrics
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithLogger sets the structured logger used for resolution tracing
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation of resolutions
func WithMetrics(m *metric.Metrics) ResolverOption {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// NewResolver creates a resolver backed by the given registry and
// external collaborators.
func NewResolver(reg *registry.Registry, packages PackageResolver,
	loader DefinitionLoader, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry: reg,
		packages: packages,
		loader:   loader,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Load resolves the root identifier into target. The target is
// unconditionally cleared before resolution starts, so a failed
// resolution leaves it cleared rather than restored to its prior state;
// callers needing rollback must snapshot beforehand.
//
// The signature field is not computed here: after a successful Load the
// target carries the wildcard signature, to be supplied or validated by
// a collaborator that computes one over the canonical definition (see
// registry signature computation and AttachSignature).
func (r *Resolver) Load(target *MessageType, rootType string) error {
	start := time.Now()
	err := r.load(target, rootType)

	if r.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		r.metrics.ResolutionsTotal.WithLabelValues(status).Inc()
		r.metrics.ResolutionDuration.Observe(time.Since(start).Seconds())
	}

	return err
}

// Resolve is a convenience wrapper around Load returning a fresh
// message type.
func (r *Resolver) Resolve(rootType string) (MessageType, error) {
	var t MessageType
	if err := r.Load(&t, rootType); err != nil {
		return MessageType{}, err
	}
	return t, nil
}

func (r *Resolver) load(target *MessageType, rootType string) error {
	target.Clear()

	// Discovery working set: the membership set guarantees each
	// identifier is scheduled at most once, which also makes the walk
	// cycle-safe; the FIFO queue fixes first-discovery processing order
	// and with it the order of blocks in the concatenated text.
	scheduled := map[string]struct{}{rootType: {}}
	queue := []string{rootType}

	var definition strings.Builder

	for len(queue) > 0 {
		currentType := queue[0]

		var pkg, typeName string
		if i := strings.Index(currentType, "/"); i > 0 {
			pkg = currentType[:i]
			typeName = currentType[i+1:]
		} else {
			typeName = currentType
		}

		if pkg == "" {
			if typeName != headerBareName {
				return errors.WrapInvalid(errors.ErrInvalidMessageType,
					"Resolver", "Load",
					fmt.Sprintf("message type [%s] is invalid", currentType))
			}
			pkg = headerPackage
		}

		if typeName == "" {
			return errors.WrapInvalid(errors.ErrInvalidDataType,
				"Resolver", "Load",
				fmt.Sprintf("message type [%s] has an empty type name", currentType))
		}

		location, err := r.packages.ResolvePackage(pkg)
		if err != nil {
			return errors.WrapFatal(errors.ErrPackageNotFound,
				"Resolver", "Load",
				fmt.Sprintf("resolving package [%s]: %v", pkg, err))
		}
		if location == "" {
			return errors.WrapFatal(errors.ErrPackageNotFound,
				"Resolver", "Load",
				fmt.Sprintf("package [%s] has no location", pkg))
		}

		resource := path.Join(location, "msg", typeName+definitionSuffix)
		text, err := r.loader.LoadDefinition(resource)
		if err != nil {
			return errors.WrapFatal(errors.ErrDefinitionUnreadable,
				"Resolver", "Load",
				fmt.Sprintf("loading [%s]: %v", resource, err))
		}

		if r.metrics != nil {
			r.metrics.DefinitionsLoaded.Inc()
		}
		r.logger.Debug("loaded message definition",
			"type", currentType,
			"resource", resource,
			"bytes", len(text))

		if text != "" {
			scanner := bufio.NewScanner(strings.NewReader(text))
			for scanner.Scan() {
				member, ok := msgdef.ParseLine(scanner.Text())
				if !ok {
					continue
				}

				memberType := member.Type
				if memberType == headerBareName {
					memberType = headerFullName
				}

				if r.registry.IsBuiltin(memberType) {
					continue
				}
				if _, seen := scheduled[memberType]; seen {
					continue
				}
				scheduled[memberType] = struct{}{}
				queue = append(queue, memberType)
			}
			if err := scanner.Err(); err != nil {
				return errors.WrapInvalid(errors.ErrDefinitionParseFailed,
					"Resolver", "Load",
					fmt.Sprintf("scanning definition of [%s]: %v", currentType, err))
			}

			// Every block after the first is prefixed by the separator
			// banner naming the type it belongs to. The root block
			// carries no prefix.
			if definition.Len() > 0 {
				definition.WriteString("\n")
				definition.WriteString(separatorRule)
				definition.WriteString("\n")
				definition.WriteString("MSG: ")
				definition.WriteString(currentType)
				definition.WriteString("\n")
			}
			definition.WriteString(text)
		}

		queue = queue[1:]
	}

	if definition.Len() > 0 {
		target.dataType = rootType
		target.definition = definition.String()
	}

	return nil
}

// AttachSignature sets the target's signature from the registry's
// descriptor for its data type. Types unknown to the registry keep the
// wildcard signature; that is not an error.
func (r *Resolver) AttachSignature(target *MessageType) error {
	if target.dataType == "" {
		return errors.WrapInvalid(errors.ErrInvalidMessageType,
			"Resolver", "AttachSignature", "attaching signature to empty message type")
	}

	d, err := r.registry.Lookup(target.dataType)
	if err != nil {
		if errors.Is(err, errors.ErrUnknownDataType) {
			return nil
		}
		return err
	}

	if s := d.Signature(); s != "" {
		target.signature = s
	}
	return nil
}

// VerifySignature checks the message type's signature against the
// registry's descriptor for its data type. A wildcard signature matches
// anything; a concrete signature differing from the descriptor's fails
// with ErrSignatureMismatch. Types unknown to the registry pass.
func (r *Resolver) VerifySignature(t MessageType) error {
	if t.signature == registry.SignatureWildcard {
		return nil
	}

	d, err := r.registry.Lookup(t.dataType)
	if err != nil {
		if errors.Is(err, errors.ErrUnknownDataType) {
			return nil
		}
		return err
	}

	if expected := d.Signature(); expected != "" && expected != t.signature {
		return errors.WrapInvalid(errors.ErrSignatureMismatch,
			"Resolver", "VerifySignature",
			fmt.Sprintf("provided signature [%s] mismatches expected signature [%s] for [%s]",
				t.signature, expected, t.dataType))
	}
	return nil
}
