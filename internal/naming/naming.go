// Package naming validates bounded context names before anything touches the
// filesystem. The name becomes both a directory and a Cargo package name, so
// strict mode applies Cargo's crate naming rules on top of the path checks
// that always run.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLength is the longest name accepted in strict mode.
const MaxLength = 64

// ErrInvalidName is wrapped by every validation failure.
var ErrInvalidName = errors.New("invalid bounded context name")

var cratePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// reserved holds Rust keywords and crate names Cargo refuses for packages.
var reserved = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true, "abstract": true,
	"become": true, "box": true, "do": true, "final": true, "gen": true,
	"macro": true, "override": true, "priv": true, "try": true,
	"typeof": true, "unsized": true, "virtual": true, "yield": true,
	"std": true, "core": true, "alloc": true, "proc_macro": true,
	"proc-macro": true, "test": true,
}

// Validate reports whether name can be used for a new bounded context.
// Path-level checks always apply; strict adds the Cargo package rules.
func Validate(name string, strict bool) error {
	if err := validatePath(name); err != nil {
		return err
	}
	if !strict {
		return nil
	}

	if len(name) > MaxLength {
		return invalid(name, "must be at most %d characters", MaxLength)
	}
	if !cratePattern.MatchString(name) {
		return invalid(name, "must match pattern [A-Za-z][A-Za-z0-9_-]*")
	}
	if reserved[strings.ToLower(name)] {
		return invalid(name, "is a reserved Rust keyword or crate name")
	}
	return nil
}

func validatePath(name string) error {
	switch {
	case name == "":
		return invalid(name, "must not be empty")
	case !utf8.ValidString(name):
		return invalid(name, "must be valid UTF-8")
	case name == "." || name == "..":
		return invalid(name, "must not be a relative directory reference")
	case strings.ContainsAny(name, `/\`):
		return invalid(name, "must not contain path separators")
	case strings.TrimSpace(name) != name:
		return invalid(name, "must not start or end with whitespace")
	case strings.IndexFunc(name, unicode.IsControl) >= 0:
		return invalid(name, "must not contain control characters")
	}
	return nil
}

func invalid(name, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidName, name, fmt.Sprintf(format, args...))
}
