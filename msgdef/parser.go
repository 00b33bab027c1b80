package msgdef

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethz-asl/variant/errors"
	"github.com/ethz-asl/variant/registry"
)

// The two recognized line shapes, tried in this fixed order. Array form
// first, then plain form; the first match wins. A trailing "=value"
// marks a constant, which declares a member of its builtin type.
var (
	arrayRe   = regexp.MustCompile(`^\s*([a-zA-Z_][\w]*(?:/[a-zA-Z_][\w]*)?)\s*\[\s*([0-9]*)\s*\]\s+([a-zA-Z_][\w]*)\s*(?:=.*)?$`)
	plainRe   = regexp.MustCompile(`^\s*([a-zA-Z_][\w]*(?:/[a-zA-Z_][\w]*)?)\s+([a-zA-Z_][\w]*)\s*(?:=.*)?$`)
	commentRe = regexp.MustCompile(`#.*$`)
)

// ParseLine recognizes one definition line. It reports the declared
// member and true on a match; blank lines, comments and malformed lines
// report false and are skipped by the caller.
func ParseLine(line string) (registry.Member, bool) {
	line = commentRe.ReplaceAllString(line, "")

	if m := arrayRe.FindStringSubmatch(line); m != nil {
		size := 0
		if m[2] != "" {
			// The pattern only admits digits, so this cannot fail.
			size, _ = strconv.Atoi(m[2])
		}
		return registry.Member{
			Name:  m[3],
			Type:  m[1],
			Array: true,
			Size:  size,
		}, true
	}

	if m := plainRe.FindStringSubmatch(line); m != nil {
		return registry.Member{
			Name: m[2],
			Type: m[1],
		}, true
	}

	return registry.Member{}, false
}

// ParseDefinition scans a whole raw definition text line by line and
// returns the declared members in order. Unrecognized lines are skipped.
func ParseDefinition(text string) ([]registry.Member, error) {
	var members []registry.Member

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		if m, ok := ParseLine(scanner.Text()); ok {
			members = append(members, m)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapInvalid(errors.ErrDefinitionParseFailed,
			"msgdef", "ParseDefinition", fmt.Sprintf("scanning definition: %v", err))
	}

	return members, nil
}
