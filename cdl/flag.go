package cdl

import (
	"fmt"
	"strings"
)

// Flag is a bitmask of access classes observed at one address.
type Flag uint8

const (
	None        Flag = 0x00
	ExecFirst   Flag = 0x01 // first byte of an executed opcode
	ExecOperand Flag = 0x02 // operand byte of an executed instruction
	CPUData     Flag = 0x04 // read by the CPU as data
	DMAData     Flag = 0x08 // read by a DMA transfer

	// CPUXFlag and CPUMFlag record the register width flags at execution
	// time. External tools read these bit positions; do not renumber.
	CPUXFlag Flag = 0x10
	CPUMFlag Flag = 0x20

	BRR Flag = 0x80 // decoded as a BRR audio sample
)

// flagBitNames names each bit position; bit 6 is unassigned.
var flagBitNames = [8]string{
	"ExecFirst", "ExecOperand", "CPUData", "DMAData", "CPUXFlag", "CPUMFlag", "", "BRR",
}

// Has reports whether every bit of mask is set in f.
func (f Flag) Has(mask Flag) bool {
	return f&mask == mask
}

// String renders the set bits joined with '|', or "None".
func (f Flag) String() string {
	if f == None {
		return "None"
	}
	var parts []string
	for bit := 0; bit < 8; bit++ {
		if f&(1<<bit) == 0 {
			continue
		}
		name := flagBitNames[bit]
		if name == "" {
			name = fmt.Sprintf("0x%02x", 1<<bit)
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, "|")
}
