// decoder.go - address decoding and LUT construction

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

package psxbus

// Guest physical windows (KUSEG addresses; KSEG0/KSEG1 are byte-identical
// aliases at +0x80000000 and +0xA0000000 respectively).
const (
	ramBase  = 0x00000000
	ramWindow = 0x00800000 // 8 MiB KUSEG window, however much RAM is actually fitted

	exp1Base   = 0x1F000000
	exp1Window = 0x00800000

	scratchpadBase = 0x1F800000

	biosBase = 0x1FC00000

	kseg0Base = 0x80000000
	kseg1Base = 0xA0000000

	// cacheControlPort is the MIPS cache-control register. It is
	// write-only from the guest's point of view and is never LUT-backed;
	// every access to it goes through the slow path.
	cacheControlPort = 0xFFFE0130

	// physAddrMask strips the segment bits KSEG0/KSEG1 add to a KUSEG
	// address, recovering the underlying physical address (bits 0-28).
	physAddrMask = 0x1FFFFFFF

	// exp1BootProbeAddr1/2 are the two EXP1 offsets the BIOS reads while
	// probing for a PIO cartridge's expansion ROM header at boot.
	exp1BootProbeAddr1 = 0x1F000004
	exp1BootProbeAddr2 = 0x1F000084
)

// physAddr recovers the physical (segment-stripped) address for addr,
// whichever of KUSEG/KSEG0/KSEG1 it was expressed in.
func physAddr(addr uint32) uint32 {
	return addr & physAddrMask
}

// isEXP1Address reports whether addr (in any segment) falls in the EXP1
// window.
func isEXP1Address(addr uint32) bool {
	p := physAddr(addr)
	return p >= exp1Base && p < exp1Base+exp1Window
}

// isEXP1BootProbe reports whether addr is one of the two fixed offsets
// the BIOS reads at boot to decide whether a PIO cartridge is present.
func isEXP1BootProbe(addr uint32) bool {
	p := physAddr(addr)
	return p == exp1BootProbeAddr1 || p == exp1BootProbeAddr2
}

// ramStridePages returns how many 64 KiB pages of RAM are actually
// fitted: 32 (2 MiB) or 128 (8 MiB). Extended RAM requires both the host
// configuration flag and the guest RAM-size register (scratchpad byte
// 0x1061, bit 0) to agree; either alone leaves the console at 2 MiB,
// matching real hardware where the register reflects a jumper the BIOS
// probes at boot.
func (b *Bus) ramStridePages() uint32 {
	if !b.cfg.ExtendedRAM {
		return 32
	}
	if len(b.stores.Scratchpad) <= 0x1061 {
		return 32
	}
	if b.stores.Scratchpad[0x1061]&1 == 0 {
		return 32
	}
	return 128
}

// SetLUTs rebuilds the page table from scratch. It is called by NewBus
// and Reset, after LoadBIOS/LoadEXP1, and whenever cache-isolation mode
// toggles (which only touches the write LUT, but is simplest to
// implement as a full rebuild since RAM pages are a small fraction of
// the table). Nothing in this package calls it when the RAM-size
// register changes.
func (b *Bus) SetLUTs() {
	pt := b.pt

	pt.clearRange(ramBase, ramWindow)
	pt.clearRange(kseg0Base+ramBase, ramWindow)
	pt.clearRange(kseg1Base+ramBase, ramWindow)
	pt.clearRange(exp1Base, exp1Window)
	pt.clearRange(kseg0Base+exp1Base, exp1Window)
	pt.clearRange(kseg1Base+exp1Base, exp1Window)
	pt.clearRange(biosBase, biosSize)
	pt.clearRange(kseg0Base+biosBase, biosSize)
	pt.clearRange(kseg1Base+biosBase, biosSize)
	pt.clearRange(scratchpadBase, pageSize)
	pt.clearRange(kseg0Base+scratchpadBase, pageSize)

	// RAM: mirror the fitted backing store across the full 8 MiB KUSEG
	// window (and its KSEG0/KSEG1 aliases), wrapping modulo the number
	// of pages actually fitted.
	stride := b.ramStridePages()
	windowPages := uint32(ramWindow / pageSize)
	for i := uint32(0); i < windowPages; i++ {
		backing := b.stores.RAM[(i%stride)*pageSize : (i%stride)*pageSize+pageSize]
		writable := b.writeEnabled
		b.mapPage(ramBase+i*pageSize, backing, writable)
		b.mapPage(kseg0Base+ramBase+i*pageSize, backing, writable)
		b.mapPage(kseg1Base+ramBase+i*pageSize, backing, writable)
	}

	// BIOS: read-only, mirrored into KUSEG/KSEG0/KSEG1.
	biosPages := uint32(biosSize / pageSize)
	for i := uint32(0); i < biosPages; i++ {
		backing := b.stores.BIOS[i*pageSize : i*pageSize+pageSize]
		b.mapPage(biosBase+i*pageSize, backing, false)
		b.mapPage(kseg0Base+biosBase+i*pageSize, backing, false)
		b.mapPage(kseg1Base+biosBase+i*pageSize, backing, false)
	}

	// EXP1: read-only, mirrored into KUSEG/KSEG0/KSEG1, but only while no
	// dynamic PIO cartridge is configured. b.stores.EXP1 is a static image (the floating-high
	// default, or a flat dump loaded by LoadEXP1): fine to fast-LUT-map.
	// A Config.PIOConnected cartridge, by contrast, is an interface a
	// real implementation may compute per access (bank switching,
	// registers), so it cannot be folded into a LUT entry; with one
	// configured, EXP1 is left unmapped so every access goes through the
	// slow path's cartridge/script chain (and the boot-probe
	// short-circuit) instead.
	if !b.cfg.PIOConnected {
		exp1Pages := uint32(exp1Window / pageSize)
		for i := uint32(0); i < exp1Pages; i++ {
			backing := b.stores.EXP1[i*pageSize : i*pageSize+pageSize]
			b.mapPage(exp1Base+i*pageSize, backing, false)
			b.mapPage(kseg0Base+exp1Base+i*pageSize, backing, false)
			b.mapPage(kseg1Base+exp1Base+i*pageSize, backing, false)
		}
	}

	// Scratchpad: 1 KiB, KUSEG and KSEG0 only (it is not cacheable
	// memory proper and does not answer on KSEG1's uncached mirror on
	// real hardware).
	b.mapPage(scratchpadBase, b.stores.Scratchpad, true)
	b.mapPage(kseg0Base+scratchpadBase, b.stores.Scratchpad, true)

	b.events.emitLutsChanged()
}

// mapPage installs backing as the LUT entry for addr's page on the read
// LUT always, and on the write LUT only if writable.
func (b *Bus) mapPage(addr uint32, backing []byte, writable bool) {
	p := page(addr)
	b.pt.Read[p] = backing
	if writable {
		b.pt.Write[p] = backing
	} else {
		b.pt.Write[p] = nil
	}
}

// handleCacheControlWrite applies the enter/leave cache-isolation
// protocol used by the BIOS and a handful of games to flush the scalar
// cache. The specific values below are the ones real BIOS code writes;
// anything else leaves isolation state unchanged.
func (b *Bus) handleCacheControlWrite(value uint32) {
	switch value {
	case 0x800, 0x804:
		b.writeEnabled = false
	case 0x00, 0x1e988:
		b.writeEnabled = true
	default:
		return
	}
	b.SetLUTs()
}

// isCacheControlPort reports whether addr (the unmasked KSEG2 address)
// is the cache control register.
func isCacheControlPort(addr uint32) bool {
	return addr == cacheControlPort
}
