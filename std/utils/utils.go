package utils

// Version from source control, set at build time with
// -ldflags "-X github.com/dcastro/dequenet/std/utils.Version=..."
var Version string = "unknown"

// If is the ternary operator (eager evaluation)
func If[T any](cond bool, t, f T) T {
	if cond {
		return t
	} else {
		return f
	}
}

// Reversed returns a reversed copy of s.
func Reversed[T any](s []T) []T {
	r := make([]T, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}
