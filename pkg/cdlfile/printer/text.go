package printer

import (
	"github.com/joshuapare/cdlkit/cdl"
	"github.com/joshuapare/cdlkit/pkg/cdlfile"
)

func (pr *Printer) infoText(info *cdlfile.FileInfo) error {
	pr.p.Fprintf(pr.w, "File: %s\n", info.Path)
	pr.p.Fprintf(pr.w, "  Size: %d bytes\n", info.Size)
	pr.p.Fprintf(pr.w, "  Format: %s\n", info.Magic)
	pr.p.Fprintf(pr.w, "  Platform: %q\n", info.Platform)
	pr.p.Fprintf(pr.w, "  Blocks: %d (%d unknown)\n", len(info.Blocks), info.Unknown())
	for _, b := range info.Blocks {
		marker := ""
		if !b.Known {
			marker = " (unknown, skipped on load)"
		}
		pr.p.Fprintf(pr.w, "    %-12s %10d bytes at 0x%08x%s\n", b.Name, b.Length, b.Offset, marker)
	}
	return nil
}

func (pr *Printer) statsText(path string, s cdl.Statistics) error {
	pr.p.Fprintf(pr.w, "Coverage: %s\n", path)
	pr.p.Fprintf(pr.w, "  Total: %d of %d bytes touched (%.2f%%)\n",
		s.TouchedBytes, s.TotalBytes, 100*s.Coverage())
	for _, b := range s.Blocks {
		pct := 0.0
		if b.TotalBytes != 0 {
			pct = 100 * float64(b.TouchedBytes) / float64(b.TotalBytes)
		}
		pr.p.Fprintf(pr.w, "  %-12s %10d / %10d (%6.2f%%)\n", b.Name, b.TouchedBytes, b.TotalBytes, pct)
		if !pr.opts.ShowFlags {
			continue
		}
		for bit, n := range b.BytesOfFlag {
			if n == 0 {
				continue
			}
			pr.p.Fprintf(pr.w, "      %-12s %10d\n", cdl.Flag(1<<bit).String(), n)
		}
	}
	return nil
}

func (pr *Printer) diffText(d *cdlfile.Diff) error {
	pr.p.Fprintf(pr.w, "--- %s\n+++ %s\n", d.OldPath, d.NewPath)
	if d.Equal() {
		pr.p.Fprintf(pr.w, "logs are identical\n")
		return nil
	}
	for _, b := range d.Blocks {
		if b.OldLength != b.NewLength {
			pr.p.Fprintf(pr.w, "  %-12s length %d -> %d\n", b.Name, b.OldLength, b.NewLength)
		}
		if b.Changed == 0 {
			continue
		}
		pr.p.Fprintf(pr.w, "  %-12s %d changed, %d added, %d removed, first at 0x%06x\n",
			b.Name, b.Changed, b.Added, b.Removed, b.FirstChanged)
	}
	return nil
}
