// stores.go - Backing stores for the PSX guest address space

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
stores.go - backing stores for the PSX guest address space

This module owns the flat byte slices the page table's LUT entries point
into: 8 MiB of RAM (of which only 2 MiB or 8 MiB is ever mirrored live,
depending on configuration and the guest RAM-size register), 512 KiB of
BIOS ROM, 1 KiB of scratchpad, and an 8 MiB EXP1 expansion window.

None of these stores know about addressing, mirroring, or the page
table; SetLUTs (decoder.go) is the only code that reads their sizes to
decide how to lay out the LUT. Keeping that logic out of this file is
deliberate: a store is just memory, the decoder is the policy.
*/

package psxbus

import (
	"fmt"
	"os"
)

const (
	ramSize        = 8 * 1024 * 1024 // largest configurable RAM size
	biosSize       = 512 * 1024
	scratchpadSize = 1024
	exp1Size       = 8 * 1024 * 1024
)

// Stores holds the four backing byte slices the bus LUTs alias into.
type Stores struct {
	RAM        []byte
	BIOS       []byte
	Scratchpad []byte
	EXP1       []byte

	// ramName is a host-debug label for the RAM region, folded from the
	// process id the way the original gave its WRAM mapping a
	// pid-qualified name external tooling could locate. This package
	// makes no shared-memory mapping itself (multi-guest isolation is
	// out of scope); the label exists purely so a debugger attached to
	// this process has something stable to print.
	ramName string
}

// NewStores allocates the four backing stores. EXP1 is pre-filled with
// 0xFF, matching an expansion bus floating high with nothing attached;
// LoadEXP1 (bios.go) overwrites the leading bytes with a cartridge image
// when one is configured.
func NewStores() *Stores {
	s := &Stores{
		RAM:        make([]byte, ramSize),
		BIOS:       make([]byte, biosSize),
		Scratchpad: make([]byte, scratchpadSize),
		EXP1:       make([]byte, exp1Size),
		ramName:    fmt.Sprintf("psxbus-wram-%d", os.Getpid()),
	}
	for i := range s.EXP1 {
		s.EXP1[i] = 0xFF
	}
	return s
}

// RAMName reports the debug label for this process's RAM region.
func (s *Stores) RAMName() string {
	return s.ramName
}

// Reset zeroes RAM and scratchpad. BIOS and EXP1 are untouched: they are
// reloaded explicitly via LoadBIOS/LoadEXP1, not synthesized by Reset.
func (s *Stores) Reset() {
	clear(s.RAM)
	clear(s.Scratchpad)
}
