package textutil

// Ternary returns a when cond holds and b otherwise. Recipe builders use it
// for optional prefixes such as "@" and "-e ".
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
