// memstream.go - memory-as-stream view (C5)

package psxbus

import (
	"errors"
	"io"
)

// streamBlockSize is the chunk size ReadAt/WriteAt break large transfers
// into, matching the original's own block-at-a-time copy loop.
const streamBlockSize = 0x10000

// MemoryStream presents the guest address space as an io.ReadWriteSeeker
// for tools (memory card dumpers, savestate inspectors, a debugger's
// hex view) that want sequential or random access without performing
// individual Read32/Write32 calls.
//
// Both ReadAt and WriteAt resolve addresses through the read LUT, even
// for writes. This looks like a bug — a write ought to use the write
// LUT, which is what cache-isolation gates — but it is deliberate: the
// stream view is a tooling surface operating outside the guest's own
// instruction stream, so cache-isolation (which exists to let the BIOS
// self-modify code safely) does not apply to it. A tool using this view
// to patch RAM while isolation is active must still be able to.
type MemoryStream struct {
	bus *Bus
	pos uint32
}

// NewMemoryStream returns a stream view over bus's address space,
// positioned at 0.
func NewMemoryStream(bus *Bus) *MemoryStream {
	return &MemoryStream{bus: bus}
}

// Seek implements io.Seeker. Only io.SeekStart, io.SeekCurrent and
// io.SeekEnd are supported; the resulting offset is clamped to
// [0, 1<<32) rather than returning an error, since every guest address
// is nominally valid even if unmapped.
func (m *MemoryStream) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = int64(m.pos) + offset
	case io.SeekEnd:
		target = int64(uint32(0xFFFFFFFF)) + offset
	default:
		return 0, errors.New("psxbus: invalid whence")
	}
	if target < 0 {
		target = 0
	}
	if target > 0xFFFFFFFF {
		target = 0xFFFFFFFF
	}
	m.pos = uint32(target)
	return int64(m.pos), nil
}

// ReadAt fills p from the guest address space starting at off, chunked
// at streamBlockSize the way the original implementation reads a page
// table entry at a time rather than assuming one contiguous backing
// store spans the whole request. A page with no LUT entry yields zeroes
// for its span rather than aborting the transfer.
func (m *MemoryStream) ReadAt(p []byte, off int64) (int, error) {
	addr := uint32(off)
	n := 0
	for n < len(p) {
		chunk := m.bus.pt.lookupRead(addr)
		pageOff := offset(addr)
		if chunk == nil || pageOff >= uint32(len(chunk)) {
			want := pageSpan(addr, uint32(len(p)-n))
			for i := uint32(0); i < want; i++ {
				p[n+int(i)] = 0
			}
			n += int(want)
			addr += want
			continue
		}
		avail := uint32(len(chunk)) - pageOff
		want := uint32(len(p) - n)
		if want > streamBlockSize {
			want = streamBlockSize
		}
		if want > avail {
			want = avail
		}
		copy(p[n:], chunk[pageOff:pageOff+want])
		n += int(want)
		addr += want
	}
	return n, nil
}

// WriteAt writes p into the guest address space starting at off. Per
// the MemoryStream doc comment, this resolves through the read LUT,
// not the write LUT: it is the one place in this package where that
// choice is made on purpose. A page with no LUT entry silently drops
// its span of p rather than aborting the transfer.
func (m *MemoryStream) WriteAt(p []byte, off int64) (int, error) {
	addr := uint32(off)
	n := 0
	for n < len(p) {
		chunk := m.bus.pt.lookupRead(addr)
		pageOff := offset(addr)
		if chunk == nil || pageOff >= uint32(len(chunk)) {
			want := pageSpan(addr, uint32(len(p)-n))
			n += int(want)
			addr += want
			continue
		}
		avail := uint32(len(chunk)) - pageOff
		want := uint32(len(p) - n)
		if want > streamBlockSize {
			want = streamBlockSize
		}
		if want > avail {
			want = avail
		}
		copy(chunk[pageOff:pageOff+want], p[n:])
		n += int(want)
		addr += want
	}
	return n, nil
}

// pageSpan returns how many bytes of an unmapped page, starting at
// addr, to consume in one step: the lesser of what remains of the
// current page and what remains of the caller's request.
func pageSpan(addr, remaining uint32) uint32 {
	span := uint32(pageSize) - offset(addr)
	if span > remaining {
		span = remaining
	}
	return span
}

// Read implements io.Reader against the stream's current position.
func (m *MemoryStream) Read(p []byte) (int, error) {
	n, err := m.ReadAt(p, int64(m.pos))
	m.pos += uint32(n)
	return n, err
}

// Write implements io.Writer against the stream's current position.
func (m *MemoryStream) Write(p []byte) (int, error) {
	n, err := m.WriteAt(p, int64(m.pos))
	m.pos += uint32(n)
	return n, err
}
