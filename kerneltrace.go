// kerneltrace.go - kernel-call trace hook (C9)

package psxbus

import "fmt"

// kernelCallDesc describes one BIOS kernel function for tracing
// purposes: which vector table it lives on (A0/B0/C0), its function
// number within that table, a human name, and a short description of
// its argument registers. This table-of-descriptors replaces what would
// otherwise be a 100+ case switch statement per table, collapsing the
// three original dispatch switches into one data structure walked by a
// single TraceCall implementation.
type kernelCallDesc struct {
	table    uint8
	function uint8
	name     string
	args     string
}

// kernelCalls covers the commonly-traced subset of the BIOS call
// tables; an unlisted (table, function) pair is still traced, just
// without a friendly name or argument shape.
var kernelCalls = []kernelCallDesc{
	{0xA0, 0x00, "open", "filename, accessmode"},
	{0xA0, 0x01, "lseek", "fd, offset, whence"},
	{0xA0, 0x02, "read", "fd, dst, length"},
	{0xA0, 0x03, "write", "fd, src, length"},
	{0xA0, 0x04, "close", "fd"},
	{0xA0, 0x09, "ioctl", "fd, cmd, arg"},
	{0xA0, 0x0A, "exit", "exitcode"},
	{0xA0, 0x13, "getc", "fd"},
	{0xA0, 0x14, "putc", "char, fd"},
	{0xA0, 0x17, "format", "devicename"},
	{0xA0, 0x2F, "rand", ""},
	{0xA0, 0x30, "srand", "seed"},
	{0xA0, 0x33, "malloc", "size"},
	{0xA0, 0x34, "free", "ptr"},
	{0xA0, 0x39, "InitHeap", "addr, size"},
	{0xA0, 0x3C, "std_in_getchar", ""},
	{0xA0, 0x3D, "std_in_putchar", "char"},
	{0xA0, 0x44, "FlushCache", ""},
	{0xA0, 0x72, "CdSearchFile", "dst, filename"},
	{0xA0, 0x78, "CdAsyncSeekL", "src"},
	{0xA0, 0x7C, "CdAsyncReadSector", "count, dst, mode"},
	{0xB0, 0x00, "SysMalloc", "size"},
	{0xB0, 0x07, "DeliverEvent", "class, spec"},
	{0xB0, 0x08, "OpenEvent", "class, spec, mode, func"},
	{0xB0, 0x0B, "EnableEvent", "event"},
	{0xB0, 0x0C, "DisableEvent", "event"},
	{0xB0, 0x13, "ReturnFromException", ""},
	{0xB0, 0x17, "ReturnFromException", ""},
	{0xB0, 0x18, "SetDefaultExitFromException", ""},
	{0xB0, 0x32, "open", "filename, accessmode"},
	{0xB0, 0x35, "read", "fd, dst, length"},
	{0xB0, 0x37, "write", "fd, src, length"},
	{0xB0, 0x3D, "putchar", "char"},
	{0xB0, 0x56, "GetC0Table", ""},
	{0xB0, 0x57, "GetB0Table", ""},
	{0xC0, 0x00, "InitRCnt", ""},
	{0xC0, 0x07, "InstallExceptionHandlers", ""},
	{0xC0, 0x1C, "AdjustA0Table", ""},
}

var kernelCallIndex map[uint16]kernelCallDesc

func init() {
	kernelCallIndex = make(map[uint16]kernelCallDesc, len(kernelCalls))
	for _, d := range kernelCalls {
		kernelCallIndex[kernelCallKey(d.table, d.function)] = d
	}
}

func kernelCallKey(table, function uint8) uint16 {
	return uint16(table)<<8 | uint16(function)
}

// DefaultKernelCallTracer is a plain-print KernelCallTracer, consistent
// with this package's ambient logging choice (no structured logging
// library; see SPEC_FULL.md).
type DefaultKernelCallTracer struct{}

// TraceCall prints the resolved call name and argument shape if known,
// or the bare (table, function) pair otherwise.
func (DefaultKernelCallTracer) TraceCall(table uint8, function uint8, regs *CPURegs) {
	if d, ok := kernelCallIndex[kernelCallKey(table, function)]; ok {
		fmt.Printf("psxbus: kcall %02x:%02x %s(%s) pc=%08x\n", table, function, d.name, d.args, regs.PC)
		return
	}
	fmt.Printf("psxbus: kcall %02x:%02x (unknown) pc=%08x\n", table, function, regs.PC)
}

// TraceKernelCall is called by the exception dispatcher's caller (the
// opcode interpreter, which alone knows when PC is about to jump to
// 0xA0/0xB0/0xC0 with a function number in $t1) when Config.TraceKernelCalls
// is set and a tracer is attached.
func (b *Bus) TraceKernelCall(table uint8, function uint8) {
	if !b.cfg.TraceKernelCalls || b.tracer == nil {
		return
	}
	b.tracer.TraceCall(table, function, b.regs)
}
