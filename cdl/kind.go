package cdl

// BlockKind identifies one memory region tracked by a Log. The order is the
// in-memory index and the save order; it is not the load order.
type BlockKind uint8

const (
	CartROM BlockKind = iota
	CartRAM
	WRAM
	APURAM
	SGBCartROM
	SGBCartRAM
	SGBWRAM
	SGBHRAM

	// NumBlockKinds is the number of region kinds.
	NumBlockKinds = 8
)

// blockNames are the on-disk tags, indexed by BlockKind.
var blockNames = [NumBlockKinds]string{
	"CARTROM", "CARTRAM", "WRAM", "APURAM", "SGB_CARTROM", "SGB_CARTRAM", "SGB_WRAM", "SGB_HRAM",
}

// String returns the file-format name of k.
func (k BlockKind) String() string {
	if !k.Valid() {
		return "UNKNOWN"
	}
	return blockNames[k]
}

// Valid reports whether k is one of the defined kinds.
func (k BlockKind) Valid() bool {
	return k < NumBlockKinds
}

// ParseBlockKind maps an on-disk block name to its kind. Matching is exact.
func ParseBlockKind(name string) (BlockKind, bool) {
	for i, n := range blockNames {
		if n == name {
			return BlockKind(i), true
		}
	}
	return 0, false
}

// parseBlockKindBytes is ParseBlockKind without the string conversion.
func parseBlockKindBytes(name []byte) (BlockKind, bool) {
	for i, n := range blockNames {
		if n == string(name) {
			return BlockKind(i), true
		}
	}
	return 0, false
}

// BlockKinds returns every kind in index order.
func BlockKinds() []BlockKind {
	kinds := make([]BlockKind, NumBlockKinds)
	for i := range kinds {
		kinds[i] = BlockKind(i)
	}
	return kinds
}
