package cdl

// BlockStats summarizes one block.
type BlockStats struct {
	Kind BlockKind `json:"-"`
	Name string    `json:"name"`

	// TotalBytes is the block length.
	TotalBytes int `json:"total_bytes"`
	// TouchedBytes counts addresses with at least one flag.
	TouchedBytes int `json:"touched_bytes"`
	// BytesOfFlag[i] counts addresses with bit i set.
	BytesOfFlag [8]int `json:"bytes_of_flag"`
}

// Statistics summarizes a whole log. Blocks lists non-empty blocks only.
type Statistics struct {
	TotalBytes   int          `json:"total_bytes"`
	TouchedBytes int          `json:"touched_bytes"`
	BytesOfFlag  [8]int       `json:"bytes_of_flag"`
	Blocks       []BlockStats `json:"blocks"`
}

// Statistics counts covered addresses per block and per flag bit.
func (l *Log) Statistics() Statistics {
	var s Statistics
	for i, b := range l.blocks {
		if len(b) == 0 {
			continue
		}
		bs := BlockStats{Kind: BlockKind(i), Name: blockNames[i], TotalBytes: len(b)}
		for _, v := range b {
			if v == 0 {
				continue
			}
			bs.TouchedBytes++
			for bit := 0; bit < 8; bit++ {
				if v&(1<<bit) != 0 {
					bs.BytesOfFlag[bit]++
				}
			}
		}
		s.TotalBytes += bs.TotalBytes
		s.TouchedBytes += bs.TouchedBytes
		for bit := range bs.BytesOfFlag {
			s.BytesOfFlag[bit] += bs.BytesOfFlag[bit]
		}
		s.Blocks = append(s.Blocks, bs)
	}
	return s
}

// Coverage returns the fraction of addresses with any flag, or 0 for an
// empty log.
func (s Statistics) Coverage() float64 {
	if s.TotalBytes == 0 {
		return 0
	}
	return float64(s.TouchedBytes) / float64(s.TotalBytes)
}
