package cdl

const (
	// WRAMSize is the fixed size of the work RAM block.
	WRAMSize = 0x20000
	// APURAMSize is the fixed size of the audio RAM block.
	APURAMSize = 0x10000
)

// Layout is a read-only snapshot of the emulated memory configuration that
// decides block sizes. The log never mutates it.
type Layout struct {
	// ROMSize is the calculated cartridge ROM size in bytes.
	ROMSize uint32

	// SRAMSizeCode is the header save RAM code; 0 means no save RAM.
	SRAMSizeCode uint8

	// SGB describes the Super Game Boy memory; nil when it is absent.
	SGB *SGBLayout
}

// SGBLayout carries the co-processor region sizes in bytes. A zero size
// leaves the matching block empty.
type SGBLayout struct {
	CartROM uint32
	CartRAM uint32
	WRAM    uint32
	HRAM    uint32
}

// MaxSRAMSizeCode is the largest save RAM code a cartridge header can carry.
const MaxSRAMSizeCode = 0x0F

// SRAMSize returns the save RAM size for a header size code. Code 0 and codes
// above MaxSRAMSizeCode mean no save RAM.
func SRAMSize(code uint8) int {
	if code == 0 || code > MaxSRAMSizeCode {
		return 0
	}
	return 128 * (1 << (int(code) + 3))
}

// BlockSizes returns the byte length of every block for this layout.
func (l Layout) BlockSizes() [NumBlockKinds]int {
	var sizes [NumBlockKinds]int
	sizes[CartROM] = int(l.ROMSize)
	sizes[CartRAM] = SRAMSize(l.SRAMSizeCode)
	sizes[WRAM] = WRAMSize
	sizes[APURAM] = APURAMSize
	if l.SGB != nil {
		sizes[SGBCartROM] = int(l.SGB.CartROM)
		sizes[SGBCartRAM] = int(l.SGB.CartRAM)
		sizes[SGBWRAM] = int(l.SGB.WRAM)
		sizes[SGBHRAM] = int(l.SGB.HRAM)
	}
	return sizes
}
