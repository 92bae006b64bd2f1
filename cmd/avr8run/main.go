// Command avr8run loads a flat AVR8 program image and executes it against
// an in-memory MemorySpace.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user-none/go-chip-avr8"
	"github.com/user-none/go-chip-avr8/internal/flatmem"
)

func main() {
	var largePC bool
	var trace bool
	var cycles uint64
	var dataBytes int

	rootCmd := &cobra.Command{
		Use:   "avr8run <image.bin>",
		Short: "Run a flat AVR8 program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			words := flatmem.BytesToWords(raw)

			mem := flatmem.New(len(words), dataBytes)
			mem.LoadProgram(words)

			cpu := avr8.New(mem, largePC)
			if trace {
				cpu.SetTrace(os.Stdout)
			}

			if cycles == 0 {
				cycles = ^uint64(0)
			}
			total, runErr := cpu.Run(cycles)

			var brk *avr8.BreakInterrupt
			if errors.As(runErr, &brk) {
				fmt.Fprintf(os.Stderr, "BREAK at PC=$%05X after %d cycles\n", brk.PC, total)
				return nil
			}
			if runErr != nil {
				return fmt.Errorf("after %d cycles: %w", total, runErr)
			}

			fmt.Fprintf(os.Stderr, "ran %d cycles, final PC=$%05X\n", total, cpu.PC())
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&largePC, "large-pc", false, "use a 22-bit program counter")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "write a per-step trace to stdout")
	rootCmd.Flags().Uint64Var(&cycles, "cycles", 0, "cycle budget (0 = run until error or asleep)")
	rootCmd.Flags().IntVar(&dataBytes, "data-bytes", 1<<16, "size of the data-memory backing array")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
