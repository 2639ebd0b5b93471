package utils

import "fmt"

// EnumValidator builds a field validator restricting values to the
// allowed member set.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not an allowed member", s)
	}
}

// OptionalEnumValidator accepts the empty string in addition to the
// allowed member set, for attributes the provider may omit.
func OptionalEnumValidator(allowed ...string) func(string) error {
	inner := EnumValidator(allowed...)
	return func(s string) error {
		if s == "" {
			return nil
		}
		return inner(s)
	}
}
