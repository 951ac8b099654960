package cdlfile

import (
	"github.com/joshuapare/cdlkit/cdl"
)

// BlockDiff counts per-address differences in one block.
type BlockDiff struct {
	Name string `json:"name"`

	OldLength int `json:"old_length"`
	NewLength int `json:"new_length"`

	// Changed counts addresses whose flag bytes differ.
	Changed int `json:"changed"`
	// Added counts addresses covered only in the new log.
	Added int `json:"added"`
	// Removed counts addresses covered only in the old log.
	Removed int `json:"removed"`
	// FirstChanged is the first differing address, or -1.
	FirstChanged int `json:"first_changed"`
}

// Diff is the comparison of two logs.
type Diff struct {
	OldPath string      `json:"old_path"`
	NewPath string      `json:"new_path"`
	Blocks  []BlockDiff `json:"blocks"`
}

// Equal reports whether the two logs had identical blocks.
func (d *Diff) Equal() bool {
	for _, b := range d.Blocks {
		if b.Changed != 0 || b.OldLength != b.NewLength {
			return false
		}
	}
	return true
}

// DiffFiles compares the logs at oldPath and newPath.
func DiffFiles(oldPath, newPath string) (*Diff, error) {
	oldLog, err := Read(oldPath)
	if err != nil {
		return nil, err
	}
	newLog, err := Read(newPath)
	if err != nil {
		return nil, err
	}
	d := DiffLogs(oldLog, newLog)
	d.OldPath, d.NewPath = oldPath, newPath
	return d, nil
}

// DiffLogs compares two in-memory logs block by block. Blocks empty in both
// are omitted. When lengths differ only the common prefix is compared
// address by address.
func DiffLogs(oldLog, newLog *cdl.Log) *Diff {
	d := &Diff{}
	for _, k := range cdl.BlockKinds() {
		a, b := oldLog.Block(k), newLog.Block(k)
		if len(a) == 0 && len(b) == 0 {
			continue
		}
		bd := BlockDiff{
			Name:         k.String(),
			OldLength:    len(a),
			NewLength:    len(b),
			FirstChanged: -1,
		}
		n := min(len(a), len(b))
		for i := 0; i < n; i++ {
			if a[i] == b[i] {
				continue
			}
			bd.Changed++
			if bd.FirstChanged < 0 {
				bd.FirstChanged = i
			}
			switch {
			case a[i] == 0:
				bd.Added++
			case b[i] == 0:
				bd.Removed++
			}
		}
		d.Blocks = append(d.Blocks, bd)
	}
	return d
}
