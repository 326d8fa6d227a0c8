//go:build !amd64 && !arm64

package lanes

func init() {
	// Other architectures fall back to scalar mode for now.
	// 16-byte blocks keep lane counts consistent with SSE2/NEON targets.
	setScalarMode()
}
