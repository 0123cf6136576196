package psxbus

import "testing"

// TestKernelCallIndexResolvesKnownEntries verifies a handful of the
// descriptor table's entries resolve to the expected name.
func TestKernelCallIndexResolvesKnownEntries(t *testing.T) {
	cases := []struct {
		table, function uint8
		name            string
	}{
		{0xA0, 0x00, "open"},
		{0xA0, 0x2F, "rand"},
		{0xB0, 0x3D, "putchar"},
		{0xC0, 0x00, "InitRCnt"},
	}
	for _, c := range cases {
		d, ok := kernelCallIndex[kernelCallKey(c.table, c.function)]
		if !ok {
			t.Fatalf("missing descriptor for %02x:%02x", c.table, c.function)
		}
		if d.name != c.name {
			t.Fatalf("got %q, want %q", d.name, c.name)
		}
	}
}

// TestTraceKernelCallRespectsConfigAndAttachment verifies TraceKernelCall
// is a no-op unless both TraceKernelCalls is enabled and a tracer is
// attached.
func TestTraceKernelCallRespectsConfigAndAttachment(t *testing.T) {
	b := NewBus(DefaultConfig())
	tracer := &countingTracer{}

	b.TraceKernelCall(0xA0, 0x00) // no tracer attached, no config flag
	if tracer.calls != 0 {
		t.Fatalf("unexpected call with no tracer attached")
	}

	b.AttachKernelCallTracer(tracer)
	b.TraceKernelCall(0xA0, 0x00) // tracer attached but flag still off
	if tracer.calls != 0 {
		t.Fatalf("unexpected call with TraceKernelCalls disabled")
	}

	b.cfg.TraceKernelCalls = true
	b.TraceKernelCall(0xA0, 0x00)
	if tracer.calls != 1 {
		t.Fatalf("got %d calls, want 1", tracer.calls)
	}
}

type countingTracer struct{ calls int }

func (c *countingTracer) TraceCall(table, function uint8, regs *CPURegs) { c.calls++ }
