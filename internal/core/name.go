package core

import "fmt"

// maxNameLen is the crates.io limit on crate name length.
const maxNameLen = 64

// ValidateName checks a crate name against the registry's naming rules:
// non-empty, at most 64 characters, starting with an ASCII letter, and
// containing only ASCII letters, digits, '-', or '_'.
//
// Returns an *InvalidNameError on the first rule that fails.
func ValidateName(name string) error {
	if name == "" {
		return &InvalidNameError{Name: name, Reason: "crate name cannot be empty"}
	}
	if len(name) > maxNameLen {
		return &InvalidNameError{
			Name:   name,
			Reason: fmt.Sprintf("crate name exceeds %d characters: %d", maxNameLen, len(name)),
		}
	}
	first := name[0]
	if !isASCIIAlpha(first) {
		return &InvalidNameError{
			Name:   name,
			Reason: fmt.Sprintf("crate name must start with a letter, found %q", first),
		}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isASCIIAlpha(c) && !isASCIIDigit(c) && c != '-' && c != '_' {
			return &InvalidNameError{
				Name:   name,
				Reason: fmt.Sprintf("invalid character in crate name: %q", c),
			}
		}
	}
	return nil
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
