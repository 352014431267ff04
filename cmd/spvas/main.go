// spvas assembles SPIR-V textual assembly into a binary module.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/spirvcore/asm"
	"github.com/gogpu/spirvcore/spirv"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: spvas <input.spvasm> <output.spv>")
		os.Exit(1)
	}

	text, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "spvas: %v\n", err)
		os.Exit(1)
	}

	m, err := asm.Assemble(string(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "spvas: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "spvas: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := spirv.Encode(out, m); err != nil {
		fmt.Fprintf(os.Stderr, "spvas: %v\n", err)
		os.Exit(1)
	}
}
