package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// IndexOf returns the 1-based position of the first element equal to v, or 0 if absent.
func IndexOf[S ~[]E, E comparable](s S, v E) int {
	for i := range s {
		if s[i] == v {
			return i + 1
		}
	}

	return 0
}
