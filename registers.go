// registers.go - PSX guest memory map reference

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
registers.go - PSX guest memory map

This file documents the address ranges the page table and slow path
classify guest accesses against. It does not itself implement anything;
decoder.go and access.go are the code, this is the map.

    Address Range              | Size   | Region            | Backing
    ----------------------------------------------------------------------
    0x00000000 - 0x007FFFFF    | 8 MiB  | RAM (KUSEG)        | stores.go RAM
    0x1F000000 - 0x1F7FFFFF    | 8 MiB  | EXP1 (KUSEG)       | stores.go EXP1
    0x1F800000 - 0x1F8003FF    | 1 KiB  | Scratchpad         | stores.go Scratchpad
    0x1F801000 - 0x1F802FFF    | 8 KiB  | MMIO               | DeviceBus (slow path)
    0x1FC00000 - 0x1FC7FFFF    | 512 KiB| BIOS ROM (KUSEG)   | stores.go BIOS
    0x80000000 - 0x807FFFFF    | 8 MiB  | RAM (KSEG0)        | alias of KUSEG RAM
    0x9FC00000 - 0x9FC7FFFF    | 512 KiB| BIOS ROM (KSEG0)   | alias of KUSEG BIOS
    0xA0000000 - 0xA07FFFFF    | 8 MiB  | RAM (KSEG1)        | alias of KUSEG RAM
    0x9F000000, 0xBF000000     | 8 MiB  | EXP1 (KSEG0/KSEG1) | alias of KUSEG EXP1
    0xBFC00000 - 0xBFC7FFFF    | 512 KiB| BIOS ROM (KSEG1)   | alias of KUSEG BIOS
    0xFFFE0130                 | 4 bytes| Cache control port | decoder.go (never LUT-backed)

Interrupt controller registers (consulted by scheduler.go via the
device bus an embedder wires up to route them, not owned directly by a
backing store):

    0x1F801070  I_STAT  interrupt status, write-1-to-clear
    0x1F801074  I_MASK  interrupt mask
*/

package psxbus
