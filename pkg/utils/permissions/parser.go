// Package permissions parses the octal mode given for destination
// directories.
package permissions

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDirPerms applies when no mode is configured.
const DefaultDirPerms = 0o755

// ParseOctalString parses an octal permission string into a uint16.
// Handles formats like "755", "0755", "0o755". An empty string yields
// DefaultDirPerms.
func ParseOctalString(s string) (uint16, error) {
	if s == "" {
		return DefaultDirPerms, nil
	}

	trimmed := strings.TrimPrefix(s, "0o")
	trimmed = strings.TrimPrefix(trimmed, "0")
	if trimmed == "" {
		return 0, fmt.Errorf("invalid permission string %q: empty mode", s)
	}

	val, err := strconv.ParseUint(trimmed, 8, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	if val > 0o777 {
		return 0, fmt.Errorf("invalid permission string %q: out of range", s)
	}
	// a directory nobody can enter is useless as a destination
	if val&0o100 == 0 {
		return 0, fmt.Errorf("invalid permission string %q: owner execute bit required for directories", s)
	}

	return uint16(val), nil
}

// FormatOctal formats a permission value as an octal string
func FormatOctal(perm uint16) string {
	return fmt.Sprintf("0%o", perm)
}
