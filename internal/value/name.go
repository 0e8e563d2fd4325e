package value

import "fmt"

// Name is identifier-shaped text: letters, digits and underscore, not
// starting with a digit. Map keys and enum payloads use Name rather than
// raw strings. Converting trusted text with Name(s) is allowed; untrusted
// text goes through MakeName.
type Name string

// InvalidNameError reports text that does not match the identifier grammar.
type InvalidNameError struct {
	Text string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q", e.Text)
}

// MakeName validates s against the identifier grammar and returns it as a
// Name, or an *InvalidNameError.
func MakeName(s string) (Name, error) {
	if !ValidName(s) {
		return "", &InvalidNameError{Text: s}
	}
	return Name(s), nil
}

// ValidName reports whether s matches the identifier grammar.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
