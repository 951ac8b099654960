package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cdlkit/cdl"
	"github.com/joshuapare/cdlkit/pkg/cdlfile"
)

var (
	newROMSize  uint32
	newSRAMCode uint8
	newSGB      bool
	newSGBROM   uint32
	newSGBRAM   uint32
	newSGBWRAM  uint32
	newSGBHRAM  uint32
)

func init() {
	cmd := newNewCmd()
	cmd.Flags().Uint32Var(&newROMSize, "rom-size", 0, "Calculated cartridge ROM size in bytes (required)")
	cmd.Flags().Uint8Var(&newSRAMCode, "sram-code", 0, "Save RAM size code from the header (0 = none)")
	cmd.Flags().BoolVar(&newSGB, "sgb", false, "Include Super Game Boy blocks")
	cmd.Flags().Uint32Var(&newSGBROM, "sgb-rom", 0, "Super Game Boy cartridge ROM size")
	cmd.Flags().Uint32Var(&newSGBRAM, "sgb-ram", 0, "Super Game Boy cartridge RAM size")
	cmd.Flags().Uint32Var(&newSGBWRAM, "sgb-wram", 0x2000, "Super Game Boy work RAM size")
	cmd.Flags().Uint32Var(&newSGBHRAM, "sgb-hram", 0x80, "Super Game Boy high RAM size")
	_ = cmd.MarkFlagRequired("rom-size")
	rootCmd.AddCommand(cmd)
}

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <log>",
		Short: "Create an empty log for a memory layout",
		Long: `The new command writes an empty code/data log sized for the given
cartridge, ready to be merged into or loaded by an emulator.

Example:
  cdlctl new game.cdl --rom-size 0x100000 --sram-code 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args)
		},
	}
	return cmd
}

func runNew(args []string) error {
	layout := cdl.Layout{ROMSize: newROMSize, SRAMSizeCode: newSRAMCode}
	if newSGB {
		layout.SGB = &cdl.SGBLayout{
			CartROM: newSGBROM,
			CartRAM: newSGBRAM,
			WRAM:    newSGBWRAM,
			HRAM:    newSGBHRAM,
		}
	}
	if err := cdlfile.Create(args[0], layout, &cdl.SaveOptions{Atomic: true}); err != nil {
		return fmt.Errorf("failed to create log: %w", err)
	}
	printInfo("Created %s\n", args[0])
	return nil
}
