// Package msgdef recognizes raw message definition text. A definition
// line declares one member of a compound type; the parser extracts the
// declared type name, the member name and, for array members, the
// optional fixed element count.
//
// # Line Shapes
//
// Two shapes are recognized, tried in fixed order with the first match
// winning:
//
//	type[size] name    array member, empty size means unbounded
//	type name          plain member
//
// A trailing "=value" marks a constant, which declares a member of its
// builtin type. Comments start at '#' and run to the end of the line;
// blank, comment-only and malformed lines are skipped.
//
// ParseLine handles a single line; ParseDefinition scans a whole
// definition text and returns the declared members in order.
package msgdef
