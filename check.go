//go:build !vector_debug

package vector

// assert is compiled out unless the vector_debug tag is set. Release
// builds trust the caller; out-of-range slot access still hits the
// runtime's bounds check against capacity.
func assert(bool, string) {}
