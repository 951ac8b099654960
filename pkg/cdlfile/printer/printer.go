// Package printer renders code/data log inspection results as text or JSON.
package printer

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/cdlkit/cdl"
	"github.com/joshuapare/cdlkit/pkg/cdlfile"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// Language selects digit grouping for numbers in text output.
	// Default: language.English
	Language language.Tag

	// ShowFlags includes the per-flag breakdown in statistics.
	// Default: true
	ShowFlags bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:    FormatText,
		Language:  language.English,
		ShowFlags: true,
	}
}

// Printer writes reports to an io.Writer.
type Printer struct {
	w    io.Writer
	p    *message.Printer
	opts Options
}

// New returns a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.Language == language.Und {
		opts.Language = language.English
	}
	return &Printer{w: w, p: message.NewPrinter(opts.Language), opts: opts}
}

// Info prints the layout of a log file.
func (pr *Printer) Info(info *cdlfile.FileInfo) error {
	switch pr.opts.Format {
	case FormatJSON:
		return pr.json(info)
	case FormatText:
		return pr.infoText(info)
	default:
		return fmt.Errorf("printer: unsupported format %q", pr.opts.Format)
	}
}

// Stats prints coverage statistics.
func (pr *Printer) Stats(path string, s cdl.Statistics) error {
	switch pr.opts.Format {
	case FormatJSON:
		return pr.json(struct {
			Path string `json:"path"`
			cdl.Statistics
		}{path, s})
	case FormatText:
		return pr.statsText(path, s)
	default:
		return fmt.Errorf("printer: unsupported format %q", pr.opts.Format)
	}
}

// Diff prints a comparison of two logs.
func (pr *Printer) Diff(d *cdlfile.Diff) error {
	switch pr.opts.Format {
	case FormatJSON:
		return pr.json(d)
	case FormatText:
		return pr.diffText(d)
	default:
		return fmt.Errorf("printer: unsupported format %q", pr.opts.Format)
	}
}
