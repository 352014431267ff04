// spvdis disassembles a SPIR-V binary module to its textual assembly form.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/spirvcore/asm"
	"github.com/gogpu/spirvcore/spirv"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: spvdis <file.spv>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "spvdis: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	m, err := spirv.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spvdis: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(asm.Disassemble(m))
}
