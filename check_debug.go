//go:build vector_debug

package vector

func assert(cond bool, msg string) {
	if !cond {
		logger.Error(msg)
		panic(msg)
	}
}
