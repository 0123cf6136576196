// config.go - bus configuration

package psxbus

// Config selects the optional behaviours of a Bus. Configuration/path
// plumbing (where a BIOS dump actually lives on disk, user-facing flags)
// is out of scope for this package; Config only carries the switches the
// bus itself needs to decide between two behaviours it already knows
// how to perform.
type Config struct {
	// ExtendedRAM requests 8 MiB of guest RAM instead of 2 MiB. The LUT
	// still only mirrors this up to the hardware's actual RAM-size
	// register bit (scratchpad offset 0x1061, bit 0); setting this true
	// without also wiring a guest write to that register has no effect;
	// the RAM backing store is 8 MiB either way.
	ExtendedRAM bool

	// PIOConnected indicates a dynamic PIO cartridge (Cartridge
	// interface) is attached at EXP1 and should be consulted on the
	// slow path instead of fast-LUT-mapping EXP1's static backing store.
	PIOConnected bool

	// ScriptingEnabled enables the Lua scripting hook for unmapped
	// accesses (C4.4.1). When false, unmapped accesses use the bare
	// sentinel-value fallback with no script consultation.
	ScriptingEnabled bool

	// FirstChanceExceptions is a bitmask indexed by the raw 0-31 exccode
	// (an ExcXXX constant shifted right by 2). RaiseException reports
	// through its return value whether the raised code's bit is set
	// here; the bus itself neither pauses the emulation nor logs.
	FirstChanceExceptions uint32

	// TraceKernelCalls enables the C9 kernel-call trace hook.
	TraceKernelCalls bool

	// Debug is carried for embedders; nothing in this package reads it,
	// and slow-path and unmapped accesses are not logged either way.
	Debug bool
}

// DefaultConfig returns the configuration a freshly booted console would
// use absent any host-side overrides: 2 MiB RAM, no PIO cartridge,
// scripting off, no first-chance exceptions, no tracing.
func DefaultConfig() Config {
	return Config{}
}
