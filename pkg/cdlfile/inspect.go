package cdlfile

import (
	"fmt"
	"os"

	"github.com/joshuapare/cdlkit/cdl"
	"github.com/joshuapare/cdlkit/internal/format"
	"github.com/joshuapare/cdlkit/internal/mmfile"
)

// BlockInfo describes one block as stored in a file.
type BlockInfo struct {
	Name   string `json:"name"`
	Known  bool   `json:"known"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// FileInfo describes a log file without interpreting its blocks.
type FileInfo struct {
	Path     string      `json:"path"`
	Size     int64       `json:"size"`
	Magic    string      `json:"magic"`
	Platform string      `json:"platform"`
	Blocks   []BlockInfo `json:"blocks"`
}

// Unknown returns the number of blocks with names this package does not track.
func (fi *FileInfo) Unknown() int {
	n := 0
	for _, b := range fi.Blocks {
		if !b.Known {
			n++
		}
	}
	return n
}

// Inspect validates the header of the log at path and lists every block in
// file order, including blocks with unknown names.
func Inspect(path string) (*FileInfo, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w: %w", path, cdl.ErrIO, err)
	}
	defer func() { _ = cleanup() }()

	info := &FileInfo{
		Path:     path,
		Size:     int64(len(data)),
		Magic:    format.Magic,
		Platform: format.Platform,
	}
	err = cdl.ScanBlocks(data, func(b cdl.RawBlock) error {
		info.Blocks = append(info.Blocks, BlockInfo{
			Name:   format.DecodeName(b.Name),
			Known:  b.Known,
			Offset: b.Offset,
			Length: len(b.Data),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", path, err)
	}
	return info, nil
}

// Read loads the log at path as-is into a new cdl.Log.
func Read(path string) (*cdl.Log, error) {
	l := cdl.New()
	if err := l.LoadAsIs(path); err != nil {
		return nil, err
	}
	return l, nil
}

// Stats returns coverage statistics for the log at path.
func Stats(path string) (cdl.Statistics, error) {
	l, err := Read(path)
	if err != nil {
		return cdl.Statistics{}, err
	}
	return l.Statistics(), nil
}

// Create writes an empty log sized for layout to path.
func Create(path string, layout cdl.Layout, opts *cdl.SaveOptions) error {
	l := cdl.New()
	l.Init(layout)
	return l.Save(path, opts)
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
