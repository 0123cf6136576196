package psxbus

import "testing"

// TestBranchTestSkipsScanBeforeLowestTarget verifies the lowestTarget
// cache lets BranchTest skip the per-source scan until the CPU's cycle
// counter actually reaches the nearest scheduled event.
func TestBranchTestSkipsScanBeforeLowestTarget(t *testing.T) {
	b := NewBus(DefaultConfig())
	b.regs.Status = 0x401 // IEc + external interrupt enabled
	b.SetIMask(irqDMA)

	b.ScheduleInterrupt(intGPUDMA, 1000)
	b.regs.Cycle = 10

	b.BranchTest()

	if b.IStat()&irqDMA != 0 {
		t.Fatalf("DMA IRQ should not have fired yet")
	}
}

// TestBranchTestFiresDueSource verifies a source whose target cycle has
// been reached sets its I_STAT bit and, when unmasked with interrupts
// enabled, raises the external interrupt exception.
func TestBranchTestFiresDueSource(t *testing.T) {
	b := NewBus(DefaultConfig())
	b.regs.Status = 0x401
	b.SetIMask(irqDMA)

	b.ScheduleInterrupt(intGPUDMA, 5)
	b.regs.Cycle = 10 // past the target

	b.regs.Status |= StatusBEV
	b.BranchTest()

	if b.IStat()&irqDMA == 0 {
		t.Fatalf("expected DMA IRQ bit set")
	}
	if b.regs.PC != vectorBEV1 {
		t.Fatalf("expected external interrupt exception to have been raised, PC=%08x", b.regs.PC)
	}
	if b.regs.Cause != ExcInterruptCause {
		t.Fatalf("got Cause=%#x, want %#x (exccode 0 with IP2 set)", b.regs.Cause, ExcInterruptCause)
	}
}

// TestBranchTestMaskedInterruptDoesNotRaise verifies a due source whose
// I_STAT bit is not present in I_MASK sets the status bit but does not
// raise an exception.
func TestBranchTestMaskedInterruptDoesNotRaise(t *testing.T) {
	b := NewBus(DefaultConfig())
	b.regs.Status = 0x401
	b.SetIMask(0) // nothing unmasked
	startPC := b.regs.PC

	b.ScheduleInterrupt(intCDR, 0)
	b.regs.Cycle = 0

	b.BranchTest()

	if b.IStat()&irqCDROM == 0 {
		t.Fatalf("expected CDROM IRQ bit set even though masked")
	}
	if b.regs.PC != startPC {
		t.Fatalf("masked interrupt should not change PC")
	}
}

// TestSPUInterruptFlagIsConsumedOnce verifies the cross-thread
// spuInterrupt flag is cleared after BranchTest observes it, so a
// single signal only raises the SPU IRQ bit once.
func TestSPUInterruptFlagIsConsumedOnce(t *testing.T) {
	b := NewBus(DefaultConfig())
	b.SetIMask(0)
	b.regs.SignalSPUInterrupt()

	b.BranchTest()
	if b.IStat()&irqSPU == 0 {
		t.Fatalf("expected SPU IRQ bit set after signal")
	}

	b.SetIStat(0)
	b.BranchTest()
	if b.IStat()&irqSPU != 0 {
		t.Fatalf("SPU IRQ bit should not re-fire without a fresh signal")
	}
}
