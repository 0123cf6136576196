package psxbus

import "testing"

// TestRAMAliasing verifies the core page-table invariant: a write
// through one RAM alias (KUSEG) is immediately visible through its
// KSEG0 and KSEG1 mirrors, since all three point at the same backing
// bytes.
func TestRAMAliasing(t *testing.T) {
	b := NewBus(DefaultConfig())

	b.Write32(0x00001000, 0xDEADBEEF)

	if got := b.Read32(0x80001000, AccessData); got != 0xDEADBEEF {
		t.Fatalf("KSEG0 alias: got %08x, want DEADBEEF", got)
	}
	if got := b.Read32(0xA0001000, AccessData); got != 0xDEADBEEF {
		t.Fatalf("KSEG1 alias: got %08x, want DEADBEEF", got)
	}
}

// TestRAMMirrorWithoutExtendedRAM checks that with only 2 MiB fitted,
// the 8 MiB KUSEG window mirrors that 2 MiB four times.
func TestRAMMirrorWithoutExtendedRAM(t *testing.T) {
	b := NewBus(DefaultConfig())

	b.Write32(0x00001000, 0x12345678)

	for _, mirror := range []uint32{0x00201000, 0x00401000, 0x00601000} {
		if got := b.Read32(mirror, AccessData); got != 0x12345678 {
			t.Fatalf("mirror at %08x: got %08x, want 12345678", mirror, got)
		}
	}
}

// TestExtendedRAMNoMirror checks that with 8 MiB fitted and the guest
// RAM-size register set, the 8 MiB window holds eight megabytes of
// distinct storage rather than four mirrors of two.
func TestExtendedRAMNoMirror(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExtendedRAM = true
	b := NewBus(cfg)
	b.stores.Scratchpad[0x1061] = 1
	b.SetLUTs()

	b.Write32(0x00001000, 0xAAAAAAAA)
	b.Write32(0x00201000, 0xBBBBBBBB)

	if got := b.Read32(0x00001000, AccessData); got != 0xAAAAAAAA {
		t.Fatalf("got %08x, want AAAAAAAA", got)
	}
	if got := b.Read32(0x00201000, AccessData); got != 0xBBBBBBBB {
		t.Fatalf("got %08x, want BBBBBBBB (should not mirror 2MB block)", got)
	}
}

// TestCacheIsolationBlocksRAMWrites verifies that entering cache
// isolation (the 0x800 write to the cache control port) makes RAM
// read-only, and that leaving isolation (the 0x00 write) restores
// writability, without touching the read LUT in either direction.
func TestCacheIsolationBlocksRAMWrites(t *testing.T) {
	b := NewBus(DefaultConfig())
	b.Write32(0x00002000, 0x11111111)

	b.Write32(cacheControlPort, 0x800)
	b.Write32(0x00002000, 0x22222222)
	if got := b.Read32(0x00002000, AccessData); got != 0x11111111 {
		t.Fatalf("write during isolation should be dropped: got %08x", got)
	}

	b.Write32(cacheControlPort, 0x00)
	b.Write32(0x00002000, 0x33333333)
	if got := b.Read32(0x00002000, AccessData); got != 0x33333333 {
		t.Fatalf("write after leaving isolation should succeed: got %08x", got)
	}
}

// TestBIOSIsReadOnly verifies the BIOS store's write LUT entries are
// never installed: a guest write to a BIOS address is silently
// discarded rather than corrupting the ROM image.
func TestBIOSIsReadOnly(t *testing.T) {
	b := NewBus(DefaultConfig())
	before := b.Read32(0xBFC00000, AccessCode)
	b.Write32(0xBFC00000, 0xFFFFFFFF)
	if got := b.Read32(0xBFC00000, AccessCode); got != before {
		t.Fatalf("BIOS write should be discarded: got %08x, want %08x", got, before)
	}
}

// TestUnmappedReadSentinel verifies that an address with no LUT entry,
// no device, and no scripting hook returns the documented sentinel
// value rather than panicking.
func TestUnmappedReadSentinel(t *testing.T) {
	b := NewBus(DefaultConfig())
	if got := b.Read8(0x1F801500); got != 0xFF {
		t.Fatalf("got %02x, want FF", got)
	}
	if got := b.Read32(0x1F801500, AccessData); got != 0xFFFFFFFF {
		t.Fatalf("got %08x, want FFFFFFFF", got)
	}
}

// TestRead16DispatchesNativelyToDevice verifies a 16-bit read at an
// address with no natural-width LUT entry dispatches directly to the
// registered DeviceBus's own Read16, rather than being assembled from
// two Read8 calls.
func TestRead16DispatchesNativelyToDevice(t *testing.T) {
	b := NewBus(DefaultConfig())
	dev := &stubDevice{reads16: map[uint32]uint16{0x1F801100: 0x1234}}
	b.MapDevice(0x1F801100, 2, dev)
	if got := b.Read16(0x1F801100); got != 0x1234 {
		t.Fatalf("got %04x, want 1234", got)
	}

	b.Write16(0x1F801100, 0x5678)
	if dev.lastWrite16 != 0x5678 {
		t.Fatalf("device did not see native Write16: got %04x", dev.lastWrite16)
	}
}

// TestCartridgeConsultedOnlyWhenPIOConnected verifies a Cartridge is
// only wired into the EXP1 slow path when Config.PIOConnected is set,
// and that 8/16/32-bit EXP1 reads through a connected cartridge degrade
// to a single Read8 rather than being widened.
func TestCartridgeConsultedOnlyWhenPIOConnected(t *testing.T) {
	cart := &stubCartridge{reads8: map[uint32]uint8{0x1F000100: 0xAB}}

	cfg := DefaultConfig()
	b := NewBus(cfg)
	b.AttachCartridge(cart)
	if got := b.Read8(0x1F000100); got != 0xFF {
		t.Fatalf("cartridge should not be consulted without PIOConnected (floating EXP1 answers instead), got %02x", got)
	}

	cfg.PIOConnected = true
	b = NewBus(cfg)
	b.AttachCartridge(cart)

	if got := b.Read8(0x1F000100); got != 0xAB {
		t.Fatalf("got %02x, want AB", got)
	}
	if got := b.Read16(0x1F000100); got != 0x00AB {
		t.Fatalf("16-bit cartridge read should degrade to a single Read8, got %04x", got)
	}
	if got := b.Read32(0x1F000100, AccessData); got != 0x000000AB {
		t.Fatalf("32-bit cartridge read should degrade to a single Read8, got %08x", got)
	}

	b.Write8(0x1F000100, 0x11)
	if cart.lastWrite8 != 0x11 {
		t.Fatalf("cartridge did not see write: got %02x", cart.lastWrite8)
	}
}

// TestEXP1BootProbeShortCircuit verifies the two fixed boot-probe
// offsets always read 0xFF when PIOConnected is set but no cartridge
// has actually answered for them, bypassing the scripting hook
// entirely (the BIOS's probe must never be observed or altered by
// guest-supplied scripting). EXP1 is only unmapped from the LUT (and so
// only reaches this slow-path check at all) when PIOConnected is set.
func TestEXP1BootProbeShortCircuit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PIOConnected = true
	cfg.ScriptingEnabled = true
	b := NewBus(cfg)
	b.scriptArmed = true
	b.script = scriptStub{}

	for _, addr := range []uint32{0x1F000004, 0x1F000084} {
		if got := b.Read8(addr); got != 0xFF {
			t.Fatalf("boot probe at %08x: got %02x, want FF", addr, got)
		}
	}
}

type scriptStub struct{}

func (scriptStub) OnUnknownRead(addr uint32, width int) (uint32, bool)  { return 0x42, true }
func (scriptStub) OnUnknownWrite(addr uint32, width int, value uint32) {}

type stubCartridge struct {
	reads8     map[uint32]uint8
	lastWrite8 uint8
}

func (c *stubCartridge) Read8(addr uint32) uint8      { return c.reads8[addr] }
func (c *stubCartridge) Write8(addr uint32, v uint8) { c.lastWrite8 = v }

// TestDeviceBusDispatch verifies a registered DeviceBus is consulted on
// the slow path and that writes reach it.
func TestDeviceBusDispatch(t *testing.T) {
	b := NewBus(DefaultConfig())
	dev := &stubDevice{reads32: map[uint32]uint32{0x1F801810: 0x1}}
	b.MapDevice(0x1F801800, 0x100, dev)

	if got := b.Read32(0x1F801810, AccessData); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	b.Write32(0x1F801810, 42)
	if dev.lastWrite32 != 42 {
		t.Fatalf("device did not see write: got %d", dev.lastWrite32)
	}
}

// TestInvalidateHookFiresOnRAMWrite verifies the code-cache invalidation
// callback is invoked with the written address and width for every
// RAM/scratchpad write, and is not invoked for reads.
func TestInvalidateHookFiresOnRAMWrite(t *testing.T) {
	b := NewBus(DefaultConfig())
	var gotAddr, gotLen uint32
	calls := 0
	b.AttachInvalidateHook(func(addr, length uint32) {
		calls++
		gotAddr, gotLen = addr, length
	})

	b.Write32(0x00003000, 0x1)
	if calls != 1 || gotAddr != 0x00003000 || gotLen != 4 {
		t.Fatalf("got calls=%d addr=%08x len=%d", calls, gotAddr, gotLen)
	}

	b.Read32(0x00003000, AccessData)
	if calls != 1 {
		t.Fatalf("read should not invoke invalidate hook, calls=%d", calls)
	}
}

// TestPeekPokePointer verifies the direct-pointer debugger escape hatch
// bypasses cache isolation, and reports failure for unmapped addresses.
func TestPeekPokePointer(t *testing.T) {
	b := NewBus(DefaultConfig())
	b.Write32(cacheControlPort, 0x800) // enter isolation: write LUT gone

	if !b.PokePointer(0x00004000, []byte{1, 2, 3, 4}) {
		t.Fatalf("PokePointer should succeed via read LUT even while isolated")
	}
	got := b.PeekPointer(0x00004000, 4)
	if got == nil || got[0] != 1 || got[3] != 4 {
		t.Fatalf("got %v", got)
	}

	if b.PeekPointer(0x1F801500, 4) != nil {
		t.Fatalf("PeekPointer should return nil for an unmapped address")
	}
}

type stubDevice struct {
	reads8      map[uint32]uint8
	reads16     map[uint32]uint16
	reads32     map[uint32]uint32
	lastWrite16 uint16
	lastWrite32 uint32
}

func (d *stubDevice) Read8(addr uint32) uint8   { return d.reads8[addr] }
func (d *stubDevice) Read16(addr uint32) uint16 { return d.reads16[addr] }
func (d *stubDevice) Read32(addr uint32) uint32 { return d.reads32[addr] }
func (d *stubDevice) Write8(addr uint32, v uint8)      {}
func (d *stubDevice) Write16(addr uint32, v uint16)    { d.lastWrite16 = v }
func (d *stubDevice) Write32(addr uint32, v uint32)    { d.lastWrite32 = v }
func (d *stubDevice) Clear(addr uint32, length uint32) {}
