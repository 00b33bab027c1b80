// Package msgtype provides the message-type value object and the
// recursive resolver that turns a bare type identifier into a validated,
// fully self-contained definition.
//
// # Overview
//
// A MessageType bundles three pieces of identity:
//
//  1. The data type, a "pkg/Type" identifier
//  2. The compatibility signature, an MD5 hex digest or the wildcard "*"
//  3. The definition, the concatenated text of the type and every
//     transitive compound dependency
//
// Two message types are considered equal when data type and signature
// agree; the definition text never participates in comparison.
//
// # Resolution
//
// The Resolver discovers a type's dependency closure breadth-first. It
// loads the root definition, scans it for compound member types,
// schedules each unseen one exactly once, and appends every loaded block
// to the growing definition. Blocks after the first are introduced by an
// 80-character rule line and a "MSG: <type>" banner.
//
// Package lookup and definition loading are delegated to two small
// collaborator interfaces, PackageResolver and DefinitionLoader, so the
// resolver never touches the filesystem itself. The pkgindex package
// provides the standard filesystem implementation of both.
//
//	resolver := msgtype.NewResolver(reg, index, index)
//	mt, err := resolver.Resolve("geometry_msgs/Pose")
//
// Load clears its target before doing any work: a failed resolution
// leaves the message type empty, never partially populated and never
// rolled back to its prior state.
//
// # Registration
//
// RegisterDefinition walks a resolved definition's blocks and registers
// a compound descriptor for each contained type, dependencies first.
// AttachSignature then copies the registry's computed signature back
// onto the message type, and VerifySignature checks a carried signature
// against the registry's.
package msgtype
