// features.go - reports a Bus's wired-in optional capabilities

package psxbus

import (
	"fmt"
	"runtime"
	"sort"
)

// Features lists the capabilities this bus has attached, sorted for
// stable output.
func (b *Bus) Features() []string {
	var f []string
	if b.cfg.ExtendedRAM {
		f = append(f, "extended-ram")
	}
	if b.script != nil {
		f = append(f, "scripting-hook")
	}
	if b.cartridge != nil {
		f = append(f, "pio-cartridge")
	}
	if b.tracer != nil && b.cfg.TraceKernelCalls {
		f = append(f, "kernel-call-trace")
	}
	if b.invalidate != nil {
		f = append(f, "code-cache-invalidation")
	}
	sort.Strings(f)
	return f
}

// PrintFeatures prints a runtime/feature summary for b in the style of
// a build-info banner: Go toolchain version, OS/arch, then the wired
// capability list (or "(none)" if nothing beyond the core is attached).
func (b *Bus) PrintFeatures() {
	fmt.Printf("psxbus (Go %s, %s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Println("Wired capabilities:")
	features := b.Features()
	for _, f := range features {
		fmt.Printf("  %s\n", f)
	}
	if len(features) == 0 {
		fmt.Println("  (none)")
	}
}
