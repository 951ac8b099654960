package cdlfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/cdlkit/cdl"
	"github.com/joshuapare/cdlkit/internal/writer"
)

// Merge ORs every source log into dst and writes the result to dst. When
// dst does not exist yet, the first source supplies the layout. Every log
// must share one schema; a mismatch aborts without touching dst.
func Merge(dst string, srcs []string, opts *MergeOptions) error {
	if len(srcs) == 0 {
		return errors.New("merge: no source logs")
	}
	if opts == nil {
		opts = DefaultMergeOptions()
	}

	ok, err := exists(dst)
	if err != nil {
		return fmt.Errorf("merge: %w: %w", cdl.ErrIO, err)
	}

	var base *cdl.Log
	rest := srcs
	if ok {
		base, err = Read(dst)
	} else {
		base, err = Read(srcs[0])
		rest = srcs[1:]
	}
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	total := len(srcs)
	done := total - len(rest)
	if done > 0 && opts.OnProgress != nil {
		opts.OnProgress(done, total)
	}
	for _, src := range rest {
		if err := base.Load(src); err != nil {
			return fmt.Errorf("merge %s: %w", src, err)
		}
		done++
		if opts.OnProgress != nil {
			opts.OnProgress(done, total)
		}
	}

	if opts.DryRun {
		var w writer.MemWriter
		if err := w.WriteLog(base); err != nil {
			return fmt.Errorf("merge: encode: %w", err)
		}
		return nil
	}

	if ok && opts.CreateBackup {
		if err := copyFile(dst, dst+".bak"); err != nil {
			return fmt.Errorf("merge: backup: %w", err)
		}
	}
	return base.Save(dst, opts.saveOptions())
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
