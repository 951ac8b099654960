package cdl

import (
	"io"
	"log/slog"
)

// Log is the in-memory code/data log: one flag byte per address for each
// block kind, and a gate that decides whether Set records anything.
//
// Invariant: every block is either empty or exactly as long as its region.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Log struct {
	blocks [NumBlockKinds][]byte
	active bool
	logger *slog.Logger
}

// Option configures a Log at construction.
type Option func(*Log)

// WithLogger routes load/save diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithActive sets the initial state of the recording gate.
func WithActive(active bool) Option {
	return func(l *Log) {
		l.active = active
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// log returns the diagnostics logger. A zero Log discards.
func (l *Log) log() *slog.Logger {
	if l.logger == nil {
		return discardLogger
	}
	return l.logger
}

// New returns an empty, active log. Call Init to size its blocks.
func New(opts ...Option) *Log {
	l := &Log{
		active: true,
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Init sizes every block for layout and fills it with None. It replaces any
// previous sizing and content.
func (l *Log) Init(layout Layout) {
	sizes := layout.BlockSizes()
	for i, size := range sizes {
		b := l.blocks[i]
		if cap(b) >= size {
			b = b[:size]
		} else {
			b = make([]byte, size)
		}
		clear(b)
		l.blocks[i] = b
	}
}

// Reset empties every block, discarding all recorded coverage.
func (l *Log) Reset() {
	for i := range l.blocks {
		l.blocks[i] = nil
	}
}

// Set ORs flags into the byte for addr in the given block. It does nothing
// when the log is inactive, kind is unknown, or addr is outside the block,
// and never allocates.
func (l *Log) Set(kind BlockKind, flags Flag, addr uint32) {
	if !l.active || kind >= NumBlockKinds {
		return
	}
	b := l.blocks[kind]
	if uint(addr) >= uint(len(b)) {
		return
	}
	b[addr] |= byte(flags)
}

// Get returns the flags recorded for addr, or None when out of range.
func (l *Log) Get(kind BlockKind, addr uint32) Flag {
	if kind >= NumBlockKinds {
		return None
	}
	b := l.blocks[kind]
	if uint(addr) >= uint(len(b)) {
		return None
	}
	return Flag(b[addr])
}

// SetActive opens or closes the recording gate without touching the data.
func (l *Log) SetActive(active bool) {
	l.active = active
}

// Active reports whether Set currently records accesses.
func (l *Log) Active() bool {
	return l.active
}

// CountActiveBlocks returns how many blocks are non-empty.
func (l *Log) CountActiveBlocks() int {
	count := 0
	for _, b := range l.blocks {
		if len(b) != 0 {
			count++
		}
	}
	return count
}

// Block returns the flag bytes of one block. The slice aliases the log and
// must be treated as read-only.
func (l *Log) Block(kind BlockKind) []byte {
	if kind >= NumBlockKinds {
		return nil
	}
	return l.blocks[kind]
}

// BlockSizes returns the current length of every block.
func (l *Log) BlockSizes() [NumBlockKinds]int {
	var sizes [NumBlockKinds]int
	for i, b := range l.blocks {
		sizes[i] = len(b)
	}
	return sizes
}

// Clone returns a deep copy of l.
func (l *Log) Clone() *Log {
	c := &Log{
		active: l.active,
		logger: l.logger,
	}
	for i, b := range l.blocks {
		if len(b) != 0 {
			c.blocks[i] = append([]byte(nil), b...)
		}
	}
	return c
}
