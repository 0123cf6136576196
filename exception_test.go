package psxbus

import "testing"

// TestRaiseExceptionVectorSelection verifies BEV gates which vector the
// CPU jumps to: BEV=1 (post-reset default) selects the BIOS ROM vector,
// BEV=0 selects the RAM-resident vector.
func TestRaiseExceptionVectorSelection(t *testing.T) {
	b := NewBus(DefaultConfig())

	b.regs.Status |= StatusBEV
	b.RaiseException(ExcSyscall, false)
	if b.regs.PC != vectorBEV1 {
		t.Fatalf("BEV=1: got PC=%08x, want %08x", b.regs.PC, vectorBEV1)
	}

	b.regs.Status &^= StatusBEV
	b.RaiseException(ExcSyscall, false)
	if b.regs.PC != vectorBEV0 {
		t.Fatalf("BEV=0: got PC=%08x, want %08x", b.regs.PC, vectorBEV0)
	}
}

// TestRaiseExceptionBranchDelayRewind verifies that an exception raised
// from a branch-delay-slot instruction rewinds EPC by one instruction
// and sets Cause's branch-delay bit, so execution resumes at the branch
// itself rather than its target.
func TestRaiseExceptionBranchDelayRewind(t *testing.T) {
	b := NewBus(DefaultConfig())
	b.regs.PC = 0x80010004

	b.RaiseException(ExcReservedInstruction, true)

	if b.regs.EPC != 0x80010000 {
		t.Fatalf("got EPC=%08x, want %08x", b.regs.EPC, 0x80010000)
	}
	if b.regs.Cause&CauseBD == 0 {
		t.Fatalf("Cause branch-delay bit should be set")
	}
}

// TestRaiseExceptionStatusStackPush verifies the Status register's
// low six bits (KU/IE current/previous/old) shift left by two, placing
// the CPU in kernel mode with interrupts disabled.
func TestRaiseExceptionStatusStackPush(t *testing.T) {
	b := NewBus(DefaultConfig())
	b.regs.Status = StatusIEc | StatusKUc

	b.RaiseException(ExcSyscall, false)

	if b.regs.Status&StatusIEc != 0 || b.regs.Status&StatusKUc != 0 {
		t.Fatalf("current IE/KU should be cleared after exception entry")
	}
	if b.regs.Status&StatusIEp == 0 || b.regs.Status&StatusKUp == 0 {
		t.Fatalf("previous IE/KU should carry the old current bits")
	}
}

// TestRaiseExceptionCauseCode verifies code is stored into Cause as-is
// (already positioned in bits 2-6), not shifted a second time.
func TestRaiseExceptionCauseCode(t *testing.T) {
	b := NewBus(DefaultConfig())
	b.RaiseException(ExcOverflow, false)
	if got := b.regs.Cause & CauseExcMask; got != ExcOverflow {
		t.Fatalf("got cause %#x, want %#x", got, ExcOverflow)
	}
}

// TestRaiseExceptionPinnedScenario pins the documented example: raising
// a syscall exception (code 0x20) with BEV clear leaves Cause exactly
// 0x20, not 0x80 (which a double-shift would produce).
func TestRaiseExceptionPinnedScenario(t *testing.T) {
	b := NewBus(DefaultConfig())
	b.regs.Status &^= StatusBEV

	b.RaiseException(ExcSyscall, false)

	if b.regs.Cause != ExcSyscall {
		t.Fatalf("got Cause=%#x, want %#x", b.regs.Cause, ExcSyscall)
	}
}

// TestFirstChanceExceptionReporting verifies RaiseException reports a
// first-chance hit only for codes present in the configured mask. The
// mask is indexed by the raw 0-31 exccode, recovered from the
// already-shifted ExcXXX constant.
func TestFirstChanceExceptionReporting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FirstChanceExceptions = 1 << (ExcBreakpoint >> 2)
	b := NewBus(cfg)

	if fc := b.RaiseException(ExcBreakpoint, false); !fc {
		t.Fatalf("expected first-chance hit for ExcBreakpoint")
	}
	if fc := b.RaiseException(ExcSyscall, false); fc {
		t.Fatalf("did not expect first-chance hit for ExcSyscall")
	}
}

// TestRaiseExceptionSetsInISR verifies RaiseException marks the guest
// as inside an exception handler.
func TestRaiseExceptionSetsInISR(t *testing.T) {
	b := NewBus(DefaultConfig())
	if b.regs.InISR {
		t.Fatalf("InISR should start false")
	}
	b.RaiseException(ExcSyscall, false)
	if !b.regs.InISR {
		t.Fatalf("expected InISR to be set after RaiseException")
	}
}
