// Package main provides the entry point for mipsdecode.
// mipsdecode breaks MIPS32 instruction words into fields and resolves
// their register and immediate operands.
//
// For the full CLI, use: go run ./cmd/mipsdecode
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("mipsdecode - MIPS32 instruction field decoder")
	fmt.Println("")
	fmt.Println("Usage: mipsdecode [-v] <command> [options] <args>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  decode     Decode instruction words given on the command line")
	fmt.Println("  scan       Decode every instruction word of a MIPS32 ELF executable")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/mipsdecode' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/mipsdecode' instead.")
	}
}
