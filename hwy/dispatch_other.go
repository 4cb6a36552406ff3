//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures, wasm included, report scalar mode.
	// Kernels still run their 4-lane form; it is lowered to plain Go.
	setScalarMode()
}

// HasSSE41 returns false on architectures other than amd64.
func HasSSE41() bool {
	return false
}

// HasASIMD returns false on architectures other than arm64.
func HasASIMD() bool {
	return false
}
