package core

import (
	"fmt"
	"strings"

	"github.com/dsgibbons/lance/pkg/core/status"
	"github.com/dsgibbons/lance/pkg/errors"
)

func invalidRef(format string, args ...interface{}) error {
	return errors.New(fmt.Sprintf(format, args...)).Wrap(status.ErrInvalidRef)
}

// CheckValidRef verifies that a candidate tag name conforms to git ref
// formatting rules, so that names remain safe as storage path segments and
// unambiguous with relative or special references.
//
// The check is purely local: it performs no I/O.
func CheckValidRef(name string) error {
	if name == "" {
		return invalidRef("ref cannot be empty")
	}

	for _, component := range strings.Split(name, "/") {
		if strings.HasPrefix(component, ".") || strings.HasSuffix(component, ".lock") {
			return invalidRef("slash-separated component of ref %q cannot begin with a dot or end with .lock", name)
		}
	}

	if strings.Contains(name, "..") {
		return invalidRef("ref %q cannot have two consecutive dots", name)
	}

	for _, c := range name {
		if c < ' ' || c == 0x7f || c == ' ' || c == '~' || c == '^' || c == ':' {
			return invalidRef("ref %q cannot have ASCII control characters, space, ~, ^, or :", name)
		}
	}

	if strings.ContainsAny(name, "?*[") {
		return invalidRef("ref %q cannot have question-mark, asterisk, or open bracket", name)
	}

	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") || strings.Contains(name, "//") {
		return invalidRef("ref %q cannot begin or end with a slash, or contain consecutive slashes", name)
	}

	if strings.HasSuffix(name, ".") {
		return invalidRef("ref %q cannot end with a dot", name)
	}

	if strings.Contains(name, "@{") {
		return invalidRef("ref %q cannot contain a sequence @{", name)
	}

	if name == "@" {
		return invalidRef("ref cannot be the single character @")
	}

	if strings.Contains(name, `\`) {
		return invalidRef("ref %q cannot contain a backslash", name)
	}

	return nil
}
