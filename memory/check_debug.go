//go:build vector_debug

package memory

func assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
