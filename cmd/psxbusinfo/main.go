// main.go - psxbusinfo: inspect a BIOS image and a bus's memory map

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

package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/intuitionamiga/psxbus"
)

func usage() {
	fmt.Fprintln(os.Stderr, "psxbusinfo - report BIOS identity and memory map for a psxbus.Bus")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  psxbusinfo [-bios path] [-8mb]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  psxbusinfo")
	fmt.Fprintln(os.Stderr, "  psxbusinfo -bios SCPH1001.BIN -8mb")
	flag.PrintDefaults()
}

func main() {
	biosPath := flag.String("bios", "", "path to a BIOS dump (omit to use the synthesized no-BIOS stub)")
	extended := flag.Bool("8mb", false, "request 8 MiB extended RAM")
	flag.Usage = usage
	flag.Parse()

	cfg := psxbus.DefaultConfig()
	cfg.ExtendedRAM = *extended

	bus := psxbus.NewBus(cfg)

	var info psxbus.BIOSInfo
	if *biosPath != "" {
		var err error
		info, err = bus.LoadBIOS(*biosPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "psxbusinfo: %v\n", err)
			os.Exit(1)
		}
	} else {
		info = bus.IdentifyBIOS()
	}

	wide := term.IsTerminal(int(os.Stdout.Fd()))
	printReport(bus, info, wide)
}

func printReport(bus *psxbus.Bus, info psxbus.BIOSInfo, wide bool) {
	if wide {
		fmt.Printf("%-20s %s\n", "BIOS CRC32:", fmt.Sprintf("0x%08x", info.CRC32))
		fmt.Printf("%-20s %s\n", "Known identity:", fallback(info.KnownName, "(unknown dump)"))
		fmt.Printf("%-20s %v\n", "OpenBIOS:", info.IsOpenBIOS)
		fmt.Printf("%-20s %v\n", "Synthesized stub:", info.Synthesized)
	} else {
		fmt.Printf("crc32=0x%08x known=%q openbios=%v synthesized=%v\n",
			info.CRC32, info.KnownName, info.IsOpenBIOS, info.Synthesized)
	}
	bus.PrintFeatures()
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
