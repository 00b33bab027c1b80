// Package pkgindex maps package names to filesystem locations holding
// message definitions, and loads raw definition text from those
// locations. It is the filesystem implementation of the resolver's
// package-lookup and definition-load collaborators.
//
// # Discovery
//
// Packages are discovered by scanning search roots: every immediate
// child directory of a root that contains a msg/ subdirectory is a
// package, named after the directory. A missing root is skipped with a
// warning rather than failing the scan. Definitions live in
// <location>/msg/<Type>.msg files.
//
//	ix, err := pkgindex.NewIndex([]string{"/opt/defs"})
//	if err != nil {
//	    return err
//	}
//	resolver := msgtype.NewResolver(reg, ix, ix)
//
// # Manifest
//
// Additional packages can be pinned through a YAML manifest mapping
// package names to explicit locations; pinned entries override scanned
// results on collision.
//
//	manifest, err := pkgindex.LoadManifest("packages.yaml")
//	ix, err := pkgindex.NewIndex(roots, pkgindex.WithManifest(manifest))
//
// # Watching
//
// Watch starts an fsnotify watcher on the search roots and re-scans
// whenever their contents change, so packages added at runtime become
// resolvable without a restart. Lookups are safe to interleave with
// re-scans. Stop a running watcher with Close.
package pkgindex
