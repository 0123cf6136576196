// bus.go - top-level bus wiring

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2025 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
Buy me a coffee: https://ko-fi.com/intuition/tip

License: GPLv3 or later
*/

/*
bus.go - the PSX bus core

Bus binds the backing stores, the page table, and whatever optional
peripherals (MMIO device bus, PIO cartridge, scripting hook, kernel-call
tracer) a given embedding chooses to attach, into the single object the
rest of the emulator drives every cycle. It replaces the explicit
sync.RWMutex-guarded SystemBus this package started from: the guest's
hot path (one CPU goroutine, synchronous DMA) never needs a lock, per
the concurrency model this bus implements. The one real cross-thread
edge, the SPU wake flag, is carried by CPURegs as an atomic instead.
*/
package psxbus

// Bus is the PSX memory/interrupt core: backing stores, page table,
// exception/interrupt state, and the optional peripherals consulted on
// the slow path.
type Bus struct {
	stores *Stores
	pt     *PageTable
	regs   *CPURegs
	cfg    Config
	events eventBus

	writeEnabled bool // false while cache-isolation mode is active

	iStat uint32 // guest-visible I_STAT: bits set by fireSource, cleared by guest writes
	iMask uint32 // guest-visible I_MASK: gates which iStat bits can raise an interrupt

	devices   map[uint32]DeviceBus // keyed by the page the range starts on
	cartridge Cartridge
	script    ScriptHook
	tracer    KernelCallTracer

	scriptArmed bool // follows Config.ScriptingEnabled; the hook itself disarms on error

	// invalidate is called after every write that lands in RAM, letting
	// a code-cache-owning component (the opcode interpreter's dynarec,
	// out of scope for this package) drop any cached translation of the
	// overwritten range. It is nil by default: a bus with no dynarec
	// attached simply skips the call.
	invalidate func(addr, length uint32)
}

// AttachInvalidateHook wires the code-cache invalidation callback in.
func (b *Bus) AttachInvalidateHook(fn func(addr, length uint32)) {
	b.invalidate = fn
}

// NewBus constructs a Bus with fresh backing stores and an initial LUT
// layout. The BIOS store starts out holding the synthesized no-BIOS stub
// (bios.go); call LoadBIOS to replace it with a real dump.
func NewBus(cfg Config) *Bus {
	b := &Bus{
		stores:       NewStores(),
		pt:           &PageTable{},
		regs:         NewCPURegs(),
		cfg:          cfg,
		writeEnabled: true,
		devices:      make(map[uint32]DeviceBus),
		scriptArmed:  cfg.ScriptingEnabled,
	}
	b.synthesizeBIOSStub()
	b.SetLUTs()
	return b
}

// Regs returns the CPU register subset this bus owns.
func (b *Bus) Regs() *CPURegs { return b.regs }

// Config returns the configuration the bus was constructed with.
func (b *Bus) Config() Config { return b.cfg }

// OnLutsChanged registers a callback invoked after every LUT rebuild.
func (b *Bus) OnLutsChanged(fn LutsChangedFunc) { b.events.OnLutsChanged(fn) }

// MapDevice registers dev to handle every address in
// [base, base+length) on the slow path. length is rounded up to a whole
// number of 64 KiB pages, matching the page table's granularity.
func (b *Bus) MapDevice(base, length uint32, dev DeviceBus) {
	first := page(base)
	last := page(base + length - 1)
	for p := first; p <= last; p++ {
		b.devices[p] = dev
	}
}

// AttachCartridge wires a PIO/EXP1 cartridge implementation in. It only
// takes effect on the slow path when Config.PIOConnected is also set.
func (b *Bus) AttachCartridge(c Cartridge) { b.cartridge = c }

// AttachScriptHook wires a scripting hook in. It is consulted only when
// Config.ScriptingEnabled is set.
func (b *Bus) AttachScriptHook(h ScriptHook) {
	b.script = h
	b.scriptArmed = b.cfg.ScriptingEnabled
}

// AttachKernelCallTracer wires a kernel-call trace hook in.
func (b *Bus) AttachKernelCallTracer(t KernelCallTracer) { b.tracer = t }

// Reset restores RAM/scratchpad to zero, resynthesizes the no-BIOS stub
// if no BIOS has ever been loaded, re-enables writes, and rebuilds the
// LUTs.
func (b *Bus) Reset() {
	b.stores.Reset()
	if b.isStub() {
		b.synthesizeBIOSStub()
	}
	b.writeEnabled = true
	b.regs = NewCPURegs()
	b.SetLUTs()
}

func (b *Bus) deviceFor(addr uint32) (DeviceBus, bool) {
	d, ok := b.devices[page(addr)]
	return d, ok
}
