package crmath

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// hasFMA reports whether math.FMA compiles to a single instruction on this
// CPU. Without it math.FMA falls back to a software routine, so TwoProd
// uses Dekker's splitting instead; both forms are exact.
var hasFMA = detectFMA()

func detectFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasFMA
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64":
		return true
	default:
		return false
	}
}
