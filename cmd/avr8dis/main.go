// Command avr8dis disassembles a flat AVR8 program image.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user-none/go-chip-avr8"
	"github.com/user-none/go-chip-avr8/internal/flatmem"
)

func main() {
	var largePC bool
	var from, to uint32

	rootCmd := &cobra.Command{
		Use:   "avr8dis <image.bin>",
		Short: "Disassemble a flat AVR8 program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			words := flatmem.BytesToWords(raw)

			mem := flatmem.New(len(words), 0)
			mem.LoadProgram(words)

			if to == 0 {
				to = uint32(len(words) - 1)
			}

			dis := avr8.NewDisassembler(mem, largePC)
			fmt.Print(dis.DisassembleMemory(from, to))
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&largePC, "large-pc", false, "use a 22-bit program counter")
	rootCmd.Flags().Uint32Var(&from, "from", 0, "first word address to disassemble")
	rootCmd.Flags().Uint32Var(&to, "to", 0, "last word address to disassemble (default: end of image)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
