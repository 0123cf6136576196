// bios.go - BIOS loader and no-BIOS stub (C6)

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

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"os"
)

// knownBIOSCRC maps the CRC-32 (IEEE/zlib polynomial) of a BIOS dump to
// a human-readable identification string. Values are taken from the
// identity table real PSX emulators carry for common retail and
// developer BIOS dumps.
var knownBIOSCRC = map[uint32]string{
	0x37157331: "SCPH-1001 - DTLH-3000 (US)",
	0x1f4df45a: "SCPH-5500 (Japan)",
	0x24fc7e17: "SCPH-5501 (US)",
	0x1e26792f: "SCPH-5502 (Europe)",
	0x8d8cb7e4: "SCPH-7000 (Japan)",
	0x418f5ba4: "SCPH-7001 (US)",
	0x0ff6faa3: "SCPH-7002 (Europe)",
	0xb9d8c72b: "SCPH-9000 (Japan)",
	0xa0b2c0b9: "SCPH-9001 (US)",
	0x6b2dc4fe: "SCPH-9002 (Europe)",
	0x2cb13edc: "SCPH-1000 (Japan)",
	0x6be6d4a1: "SCPH-1002 (Europe)",
	0xe18cb5ee: "SCPH-3000 (Japan)",
	0x9a5f5bf5: "SCPH-3500 (Japan, PAL-M)",
	0xa3c6e9e7: "SCPH-5000 (Japan)",
	0x84b8b217: "SCPH-5001 (US)",
	0xa7a07d45: "SCPH-5003 (Japan)",
	0x2f06be9b: "DTLH-3002 (US, devkit)",
	0x8c24b793: "DTLH-3006 (US, devkit)",
	0x6bf53abf: "SCPH-1001A (US)",
	0x976181be: "SCPH-5502A (Europe)",
	0x5699669d: "SCPH-7502 (Europe)",
	0x28b5e498: "SCPH-7003 (Europe)",
	0xd786f0b9: "SCPH-9003 (Europe)",
	0x4b538721: "SCPH-101 (US, late PSone)",
}

// openBIOSSignatureOffset is where a replacement OpenBIOS build stamps
// an identifying ASCII string, e.g. "OpenBIOS by Firmware Linux".
const openBIOSSignatureOffset = 0x78

var openBIOSSignature = []byte("OpenBIOS")

// BIOSInfo describes a loaded (or synthesized) BIOS image.
type BIOSInfo struct {
	CRC32     uint32
	KnownName string // empty if not in knownBIOSCRC
	IsOpenBIOS bool
	Synthesized bool // true if no real dump was loaded
}

// LoadBIOS reads path into the BIOS backing store and rebuilds the LUTs.
// A dump shorter than the store is zero-padded; one longer is truncated,
// matching real hardware where only the low 512 KiB of the ROM socket is
// ever decoded.
func (b *Bus) LoadBIOS(path string) (BIOSInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BIOSInfo{}, fmt.Errorf("psxbus: loading BIOS: %w", err)
	}
	clearBytes(b.stores.BIOS)
	copy(b.stores.BIOS, data)
	b.SetLUTs()
	return b.identifyBIOS(), nil
}

// LoadEXP1 reads path into the EXP1 backing store, padding the
// remainder with 0xFF (a floating expansion bus), and rebuilds the LUTs.
func (b *Bus) LoadEXP1(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("psxbus: loading EXP1 image: %w", err)
	}
	for i := range b.stores.EXP1 {
		b.stores.EXP1[i] = 0xFF
	}
	copy(b.stores.EXP1, data)
	b.SetLUTs()
	return nil
}

// synthesizeBIOSStub writes a minimal 6-instruction MIPS halt loop plus
// an ASCII diagnostic message into the BIOS store, used when no real
// dump has been configured. It lets a bus boot far enough to be useful
// for bus-level testing without requiring a copyrighted BIOS image.
func (b *Bus) synthesizeBIOSStub() {
	clearBytes(b.stores.BIOS)

	const msgOffset = 6 * 4
	msg := []byte("psxbus: no BIOS configured\x00")
	copy(b.stores.BIOS[msgOffset:], msg)

	msgAddr := biosBase + uint32(msgOffset)
	selfAddr := biosBase + 0x08 // address of the j instruction below

	words := [6]uint32{
		encodeLUI(4, uint16(msgAddr>>16)),         // lui $a0, hi(msgAddr)
		encodeORI(4, 4, uint16(msgAddr&0xFFFF)),   // ori $a0, $a0, lo(msgAddr)
		encodeJ(selfAddr),                         // j selfAddr
		0x00000000,                                // nop (branch delay slot)
		0x00000000,                                // nop
		0x00000000,                                // nop
	}
	for i, w := range words {
		putWordLE(b.stores.BIOS[i*4:i*4+4], w)
	}
}

func encodeLUI(rt int, imm uint16) uint32 {
	return (0xF << 26) | (uint32(rt) << 16) | uint32(imm)
}

func encodeORI(rt, rs int, imm uint16) uint32 {
	return (0xD << 26) | (uint32(rs) << 21) | (uint32(rt) << 16) | uint32(imm)
}

func encodeJ(target uint32) uint32 {
	return (0x2 << 26) | ((target >> 2) & 0x03FFFFFF)
}

func putWordLE(dst []byte, w uint32) {
	dst[0] = byte(w)
	dst[1] = byte(w >> 8)
	dst[2] = byte(w >> 16)
	dst[3] = byte(w >> 24)
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// identifyBIOS computes the CRC-32 of the current BIOS store and
// classifies it against the known-dump table and the OpenBIOS
// signature.
func (b *Bus) identifyBIOS() BIOSInfo {
	crc := crc32.ChecksumIEEE(b.stores.BIOS)
	info := BIOSInfo{CRC32: crc}
	if name, ok := knownBIOSCRC[crc]; ok {
		info.KnownName = name
	}
	if len(b.stores.BIOS) > openBIOSSignatureOffset+len(openBIOSSignature) {
		sig := b.stores.BIOS[openBIOSSignatureOffset : openBIOSSignatureOffset+len(openBIOSSignature)]
		info.IsOpenBIOS = bytes.Equal(sig, openBIOSSignature)
	}
	return info
}

// IdentifyBIOS re-runs BIOS identification against whatever is
// currently loaded (a real dump or the synthesized stub).
func (b *Bus) IdentifyBIOS() BIOSInfo {
	info := b.identifyBIOS()
	info.Synthesized = b.isStub()
	return info
}

// isStub reports whether the BIOS store currently holds the
// synthesized no-BIOS stub rather than a loaded dump, by checking for
// the stub's own diagnostic message.
func (b *Bus) isStub() bool {
	const msgOffset = 6 * 4
	want := []byte("psxbus: no BIOS configured")
	if len(b.stores.BIOS) < msgOffset+len(want) {
		return false
	}
	return bytes.Equal(b.stores.BIOS[msgOffset:msgOffset+len(want)], want)
}
