// regs.go - CPU register subset owned by the bus core

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

// regs.go holds the slice of the R3000A register file the bus core
// needs to drive exceptions and interrupts. The opcode interpreter that
// owns the rest of the CPU state lives elsewhere; this struct is the
// seam between the two.
package psxbus

import "sync/atomic"

// Cop0 status/cause bit layout (partial; only the bits the bus touches).
const (
	StatusIEc = 1 << 0 // current interrupt enable
	StatusKUc = 1 << 1 // current kernel/user mode
	StatusIEp = 1 << 2 // previous interrupt enable
	StatusKUp = 1 << 3 // previous kernel/user mode
	StatusIEo = 1 << 4 // old interrupt enable
	StatusKUo = 1 << 5 // old kernel/user mode
	StatusIm  = 0xFF00 // interrupt mask
	StatusBEV = 1 << 22 // boot exception vector
)

const (
	CauseExcMask = 0x7C
	CauseBD      = 1 << 31 // exception occurred in a branch delay slot
)

// CPURegs is the subset of R3000A state the bus's exception dispatcher
// and interrupt scheduler read and mutate. Ownership: the bus core reads
// PC/cycle to decide when to raise an interrupt and writes Cause/EPC/
// Status/PC when dispatching an exception; the opcode interpreter reads
// PC every fetch and writes Cycle every retired instruction.
type CPURegs struct {
	PC     uint32
	Cause  uint32
	EPC    uint32
	Status uint32
	Cycle  uint32

	// IntTargets holds the cycle at which each fixed interrupt source
	// (see scheduler.go's intSource enumeration) next becomes due.
	// A source with no pending event carries its own IntTargets value
	// unchanged; lowestTarget tracks the smallest still-pending value so
	// branchTest can skip the per-source scan on most calls.
	IntTargets   [numIntSources]uint32
	IntPending   [numIntSources]bool
	lowestTarget uint32

	// spuInterrupt is set by the SPU device (running on its own
	// goroutine) to wake the CPU thread on the next branch test. It is
	// the one piece of state in this struct touched from outside the
	// CPU thread, hence the atomic.
	spuInterrupt atomic.Bool

	// InISR is true while the guest is inside an exception handler.
	// RaiseException sets it; clearing it belongs to the opcode
	// interpreter's RFE (return-from-exception) sequence, out of this
	// package's scope.
	InISR bool
}

// NewCPURegs returns a CPURegs in its post-reset state: PC at the BIOS
// reset vector, Status with BEV set (boot exception vectors active) and
// interrupts masked, and every interrupt target cleared.
func NewCPURegs() *CPURegs {
	r := &CPURegs{
		PC:     0xBFC00000,
		Status: StatusBEV,
	}
	for i := range r.IntTargets {
		r.IntTargets[i] = 0
	}
	r.lowestTarget = 0
	return r
}

// SignalSPUInterrupt is called by the SPU device bus implementation,
// potentially from a different goroutine, to request that the next
// BranchTest call set the SPU bit in I_STAT.
func (r *CPURegs) SignalSPUInterrupt() {
	r.spuInterrupt.Store(true)
}
