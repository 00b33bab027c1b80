// Package registry provides the type-identity model of the variant
// library: canonical type descriptors classified as builtin or compound,
// a process-wide read-mostly catalog for looking them up, variant values
// instantiated from descriptor factories, and the compatibility-signature
// computation for compound types.
//
// # Overview
//
// Every data type handled by the library is described by exactly one
// Descriptor. Builtin descriptors cover the fixed primitive vocabulary
// (bool, the sized integers, floats, string, time, duration) and are
// installed by NewRegistry. Compound descriptors are built by callers
// from parsed definition text, one Member per declared field, and sealed
// on registration.
//
// The registry is an explicitly constructed dependency, not an ambient
// singleton: callers receive it injected and share one instance. It is
// populated before the first resolution and treated as read-mostly
// thereafter; concurrent lookups from simultaneous resolution calls are
// safe to interleave.
//
// # Quick Start
//
//	reg := registry.NewRegistry()
//
//	d := registry.NewCompound("geometry_msgs/Point")
//	d.AddMember(registry.Member{Name: "x", Type: "float64"})
//	d.AddMember(registry.Member{Name: "y", Type: "float64"})
//	d.AddMember(registry.Member{Name: "z", Type: "float64"})
//	if err := reg.Register(d); err != nil {
//	    return err
//	}
//
//	point, err := reg.Lookup("geometry_msgs/Point")
//
// # Identifier Lookup
//
// Lookup accepts either a fully qualified identifier ("pkg/Type") or a
// bare type name. A bare name resolves only when exactly one registered
// compound type carries it; several candidates yield
// errors.ErrAmbiguousIdentifier and none yield errors.ErrUnknownDataType.
//
// # Signatures
//
// Register computes each compound descriptor's compatibility signature:
// an MD5 digest over the canonical member list, with compound member
// types replaced by their own signatures so that any change anywhere in
// the nesting changes the root digest. SignatureWildcard ("*") stands
// for "signature unknown" and matches nothing but itself.
//
// # Variants
//
// A Variant pairs a descriptor with a dynamically typed value. The
// registry builds empty variants from any registered descriptor;
// compound variants hold a map keyed by member name with fixed-size
// arrays pre-filled to their declared length.
package registry
