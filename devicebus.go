// devicebus.go - capability interfaces consulted on the slow path

package psxbus

// DeviceBus is implemented by the MMIO peripherals (GPU, SPU, CDROM,
// MDEC, timers, DMA controller) that live outside this package. The bus
// core never models a device itself; it only dispatches to whichever
// DeviceBus is registered for a given MMIO sub-range.
//
// Read/Write are only ever called from the slow path (the page the
// address falls in missed the LUT), so the cost of an interface call
// here is irrelevant to the bus's hot-path performance budget.
type DeviceBus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, v uint8)
	Write16(addr uint32, v uint16)
	Write32(addr uint32, v uint32)

	// Clear notifies the device (typically a code-cache-owning
	// component outside this package) that the guest has just written
	// to [addr, addr+length), invalidating any cached translation of
	// that range.
	Clear(addr uint32, length uint32)
}

// Cartridge is implemented by a PIO expansion cartridge living on the
// EXP1 bus. Unlike DeviceBus, a Cartridge is optional and only
// consulted when Config.PIOConnected is set. With PIOConnected false,
// EXP1 is served from its static backing store through the LUT; with
// PIOConnected set and no cartridge attached, EXP1 accesses are unmapped
// (the two boot-probe offsets still read 0xFF).
type Cartridge interface {
	Read8(addr uint32) uint8
	Write8(addr uint32, v uint8)
}

// ScriptHook is consulted for a guest access that misses every backing
// store and device range (C4.4.1). It may choose to supply a value (for
// a read) or simply observe the access (for a write); the returned bool
// reports whether the hook actually produced a value, letting the
// caller fall back to the bare sentinel when it did not.
type ScriptHook interface {
	OnUnknownRead(addr uint32, width int) (value uint32, handled bool)
	OnUnknownWrite(addr uint32, width int, value uint32)
}

// KernelCallTracer is consulted through Bus.TraceKernelCall, which the
// opcode interpreter calls when control is about to reach a BIOS
// A0/B0/C0 call vector (C9). It is purely observational; nothing about
// dispatch depends on the tracer's return.
type KernelCallTracer interface {
	TraceCall(table uint8, function uint8, regs *CPURegs)
}
