// access.go - read/write primitives

package psxbus

import "encoding/binary"

// AccessKind distinguishes an instruction fetch from a data access. The
// bus returns the same value for either kind and does no cycle
// accounting; nothing in this package acts on the difference.
type AccessKind int

const (
	AccessData AccessKind = iota
	AccessCode
)

// Read8 returns the byte at addr, consulting the read LUT first and
// falling back to the device bus / cartridge / scripting hook chain on
// a miss.
func (b *Bus) Read8(addr uint32) uint8 {
	if entry := b.pt.lookupRead(addr); entry != nil {
		if off := offset(addr); off < uint32(len(entry)) {
			return entry[off]
		}
	}
	return b.slowRead8(addr)
}

// Read16 returns the little-endian halfword at addr. A LUT hit reads it
// directly; a miss dispatches to the slow path's own 16-bit handling
// rather than widening into two byte reads.
func (b *Bus) Read16(addr uint32) uint16 {
	if entry := b.pt.lookupRead(addr); entry != nil {
		off := offset(addr)
		if off+2 <= uint32(len(entry)) {
			return binary.LittleEndian.Uint16(entry[off : off+2])
		}
	}
	return b.slowRead16(addr)
}

// Read32 returns the little-endian word at addr. kind distinguishes an
// instruction fetch from a data load; the result does not vary with it.
func (b *Bus) Read32(addr uint32, kind AccessKind) uint32 {
	if entry := b.pt.lookupRead(addr); entry != nil {
		off := offset(addr)
		if off+4 <= uint32(len(entry)) {
			return binary.LittleEndian.Uint32(entry[off : off+4])
		}
	}
	return b.slowRead32(addr, kind)
}

// Write8 stores v at addr, consulting the write LUT first.
func (b *Bus) Write8(addr uint32, v uint8) {
	if entry := b.pt.lookupWrite(addr); entry != nil {
		if off := offset(addr); off < uint32(len(entry)) {
			entry[off] = v
			b.onRAMWrite(addr, 1)
			return
		}
	}
	b.slowWrite8(addr, v)
}

// Write16 stores the little-endian halfword v at addr. A LUT miss
// dispatches to the slow path's own 16-bit handling rather than
// widening into two byte writes.
func (b *Bus) Write16(addr uint32, v uint16) {
	if entry := b.pt.lookupWrite(addr); entry != nil {
		off := offset(addr)
		if off+2 <= uint32(len(entry)) {
			binary.LittleEndian.PutUint16(entry[off:off+2], v)
			b.onRAMWrite(addr, 2)
			return
		}
	}
	b.slowWrite16(addr, v)
}

// Write32 stores the little-endian word v at addr. Writes to the cache
// control port (which is never LUT-backed) are intercepted here before
// the LUT lookup, matching real hardware where that register has no
// backing memory at all.
func (b *Bus) Write32(addr uint32, v uint32) {
	if isCacheControlPort(addr) {
		b.handleCacheControlWrite(v)
		return
	}
	if entry := b.pt.lookupWrite(addr); entry != nil {
		off := offset(addr)
		if off+4 <= uint32(len(entry)) {
			binary.LittleEndian.PutUint32(entry[off:off+4], v)
			b.onRAMWrite(addr, 4)
			return
		}
	}
	b.slowWrite32(addr, v)
}

// onRAMWrite notifies the invalidation hook, if any, of a successful
// LUT-backed write. BIOS and EXP1 are never write-LUT-backed (see
// SetLUTs), so every call here is in fact a RAM or scratchpad write.
func (b *Bus) onRAMWrite(addr, length uint32) {
	if b.invalidate != nil {
		b.invalidate(addr, length)
	}
}

func (b *Bus) slowRead8(addr uint32) uint8 {
	if isEXP1BootProbe(addr) && !b.cartridgeConnected() {
		return 0xFF
	}
	if dev, ok := b.deviceFor(addr); ok {
		return dev.Read8(addr)
	}
	if v, ok := b.cartridgeRead(addr); ok {
		return v
	}
	if v, handled := b.consultScript(addr, 1, false, 0); handled {
		return uint8(v)
	}
	return 0xFF
}

// slowRead16 is the 16-bit slow path: a registered DeviceBus gets a true
// native dispatch, while a PIO cartridge (an 8-bit bus) degrades to a
// single Read8 rather than being widened into two.
func (b *Bus) slowRead16(addr uint32) uint16 {
	if dev, ok := b.deviceFor(addr); ok {
		return dev.Read16(addr)
	}
	if v, ok := b.cartridgeRead(addr); ok {
		return uint16(v)
	}
	if v, handled := b.consultScript(addr, 2, false, 0); handled {
		return uint16(v)
	}
	return 0xFFFF
}

func (b *Bus) slowRead32(addr uint32, kind AccessKind) uint32 {
	if dev, ok := b.deviceFor(addr); ok {
		return dev.Read32(addr)
	}
	if v, ok := b.cartridgeRead(addr); ok {
		return uint32(v)
	}
	if v, handled := b.consultScript(addr, 4, false, 0); handled {
		return v
	}
	return 0xFFFFFFFF
}

func (b *Bus) slowWrite8(addr uint32, v uint8) {
	if dev, ok := b.deviceFor(addr); ok {
		dev.Write8(addr, v)
		return
	}
	if b.cartridgeWrite(addr, v) {
		return
	}
	b.consultScript(addr, 1, true, uint32(v))
}

// slowWrite16 mirrors slowRead16: native dispatch for a DeviceBus, a
// single Write8 for a PIO cartridge.
func (b *Bus) slowWrite16(addr uint32, v uint16) {
	if dev, ok := b.deviceFor(addr); ok {
		dev.Write16(addr, v)
		return
	}
	if b.cartridgeWrite(addr, uint8(v)) {
		return
	}
	b.consultScript(addr, 2, true, uint32(v))
}

func (b *Bus) slowWrite32(addr uint32, v uint32) {
	if dev, ok := b.deviceFor(addr); ok {
		dev.Write32(addr, v)
		return
	}
	if b.cartridgeWrite(addr, uint8(v)) {
		return
	}
	b.consultScript(addr, 4, true, v)
}

// cartridgeConnected reports whether a PIO cartridge is both configured
// and attached.
func (b *Bus) cartridgeConnected() bool {
	return b.cfg.PIOConnected && b.cartridge != nil
}

// cartridgeRead consults the attached PIO cartridge for an EXP1 address,
// if one is connected. The PIO bus is 8 bits wide, so every width
// degrades to a single Read8 rather than being assembled from several.
func (b *Bus) cartridgeRead(addr uint32) (uint8, bool) {
	if !b.cartridgeConnected() || !isEXP1Address(addr) {
		return 0, false
	}
	return b.cartridge.Read8(addr), true
}

// cartridgeWrite mirrors cartridgeRead for writes.
func (b *Bus) cartridgeWrite(addr uint32, v uint8) bool {
	if !b.cartridgeConnected() || !isEXP1Address(addr) {
		return false
	}
	b.cartridge.Write8(addr, v)
	return true
}

// consultScript calls the scripting hook for an access that missed both
// the LUT and the device bus, when scripting is enabled. The one-shot
// disarm on a script error is the hook's own (LuaScriptHook unbinds the
// failing global); the bus keeps consulting an attached hook.
func (b *Bus) consultScript(addr uint32, width int, isWrite bool, value uint32) (uint32, bool) {
	if !b.scriptArmed || b.script == nil {
		return 0, false
	}
	if isWrite {
		b.script.OnUnknownWrite(addr, width, value)
		return 0, true
	}
	v, handled := b.script.OnUnknownRead(addr, width)
	return v, handled
}

// PeekPointer returns a direct slice into the backing store for addr, or
// nil if addr is not LUT-backed. It exists for trusted, read-only
// tooling (a debugger's memory view) that wants to inspect a range
// without going through the logging/pause slow path; it never triggers
// the scripting hook or device bus.
func (b *Bus) PeekPointer(addr uint32, length uint32) []byte {
	entry := b.pt.lookupRead(addr)
	if entry == nil {
		return nil
	}
	off := offset(addr)
	if off+length > uint32(len(entry)) {
		return nil
	}
	return entry[off : off+length]
}

// PokePointer writes data directly into the backing store at addr,
// bypassing cache-isolation and the scripting hook. It reports whether
// addr was LUT-backed (on the read LUT: matching the original
// debugger's own direct-pointer writer, which also ignores write
// protection).
func (b *Bus) PokePointer(addr uint32, data []byte) bool {
	entry := b.pt.lookupRead(addr)
	if entry == nil {
		return false
	}
	off := offset(addr)
	if off+uint32(len(data)) > uint32(len(entry)) {
		return false
	}
	copy(entry[off:], data)
	return true
}
