// pagetable.go - the read/write LUT page table

package psxbus

// numPages is the number of 64 KiB pages spanning a 32-bit address
// space: addr>>16 selects a page, so there are 1<<16 of them.
const (
	pageShift = 16
	pageSize  = 1 << pageShift
	numPages  = 1 << (32 - pageShift)
)

// PageTable is the central performance decision of the whole bus: a
// flat, fixed-size array indexed by the high 16 bits of a guest address,
// each entry either a subslice of a backing store or nil. A hit is one
// indexed load plus one nil check; there is no virtual dispatch, no map
// lookup, and no bounds computation beyond what the entry's own slice
// header already carries.
//
// Read and Write are maintained as two independent LUTs (not one LUT
// with a read-only flag) because cache-isolation mode changes write
// validity without touching read validity: toggling it only ever
// rewrites Write, leaving Read untouched.
type PageTable struct {
	Read  [numPages][]byte
	Write [numPages][]byte
}

// page returns the LUT index for addr: its top 16 bits.
func page(addr uint32) uint32 {
	return addr >> pageShift
}

// offset returns addr's position within its 64 KiB page.
func offset(addr uint32) uint32 {
	return addr & (pageSize - 1)
}

// lookupRead returns the backing slice for addr's page on the read LUT,
// or nil if the page is unmapped (the caller must fall back to the slow
// path).
func (pt *PageTable) lookupRead(addr uint32) []byte {
	return pt.Read[page(addr)]
}

func (pt *PageTable) lookupWrite(addr uint32) []byte {
	return pt.Write[page(addr)]
}

// clearRange unmaps every page overlapping [base, base+length) in both
// LUTs. SetLUTs uses this to wipe stale mappings before laying fresh
// ones down, so a rebuild never leaves a page pointing at a backing
// store it no longer should.
func (pt *PageTable) clearRange(base, length uint32) {
	first := page(base)
	last := page(base + length - 1)
	for p := first; p <= last; p++ {
		pt.Read[p] = nil
		pt.Write[p] = nil
	}
}
