// Package variant provides dynamic message-type introspection for
// tools that publish, subscribe to, and inspect structured messages
// whose exact field layout is unknown at build time.
//
// # Architecture
//
// A tool only ever sees a type identifier string such as
// "geometry_msgs/Pose". The library discovers the full structural
// definition, and a compatibility signature, by recursively resolving
// member types from external definition sources:
//
//	┌──────────────────────────────────────┐
//	│            cmd/typeinfo              │  CLI wiring
//	└──────────────────────────────────────┘
//	            ↓ uses
//	┌──────────────────────────────────────┐
//	│   msgtype (MessageType, Resolver)    │  Recursive discovery,
//	│                                      │  value object, signatures
//	└──────────────────────────────────────┘
//	     ↓ consults            ↓ loads via
//	┌───────────────┐   ┌─────────────────┐
//	│   registry    │   │    pkgindex     │  Type catalog / filesystem
//	│  (+ msgdef)   │   │                 │  package lookup
//	└───────────────┘   └─────────────────┘
//	            ↓ binds via
//	┌──────────────────────────────────────┐
//	│        pubsub (NATS transport)       │  Advertise / Subscribe
//	└──────────────────────────────────────┘
//
// # Packages
//
//   - registry: canonical type descriptors (builtin scalars and
//     compounds with ordered members), a read-mostly lookup catalog,
//     variant values, and signature computation
//   - msgdef: the definition-line parser
//   - msgtype: the MessageType value object and the recursive resolver
//     that concatenates a type's definition with all its transitive
//     compound dependencies
//   - pkgindex: filesystem implementation of the resolver's package
//     lookup and definition load collaborators
//   - pubsub: NATS publish/subscribe binding with validity gating
//   - metric: Prometheus instrumentation
//   - errors: the shared error taxonomy
//
// # Usage
//
//	reg := registry.NewRegistry()
//	index, err := pkgindex.NewIndex([]string{"/opt/msg_packages"})
//	if err != nil {
//		return err
//	}
//	resolver := msgtype.NewResolver(reg, index, index)
//
//	mt, err := resolver.Resolve("geometry_msgs/Pose")
//	if err != nil {
//		return err
//	}
//	if _, err := msgtype.RegisterDefinition(reg, mt); err == nil {
//		_ = resolver.AttachSignature(&mt)
//	}
//
//	client := pubsub.NewClient("nats://localhost:4222")
//	if err := client.Connect(); err != nil {
//		return err
//	}
//	pub := client.Advertise(mt, "/robot/pose", 16, false, nil)
//	_ = pub.Publish(payload)
package variant
