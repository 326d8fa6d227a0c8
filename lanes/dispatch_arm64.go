//go:build arm64

package lanes

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	// ASIMD (NEON) is mandatory on arm64, but x/sys/cpu only reports
	// features on some OSes; darwin always has it.
	if cpu.ARM64.HasASIMD || runtime.GOOS == "darwin" {
		currentLevel = DispatchNEON
		currentWidth = 16
		currentName = "neon"
		return
	}
	setScalarMode()
}
