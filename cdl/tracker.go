package cdl

import "log/slog"

// Tracker is the surface an emulation core drives. *Log implements it, and
// Disabled implements it as a no-op for builds without code/data logging.
type Tracker interface {
	Init(layout Layout)
	Reset()
	Set(kind BlockKind, flags Flag, addr uint32)
	SetActive(active bool)
	Active() bool
	CountActiveBlocks() int
	Load(path string) error
	Save(path string, opts *SaveOptions) error
}

var (
	_ Tracker = (*Log)(nil)
	_ Tracker = Disabled{}
)

// Config selects whether a tracker is built and how it starts.
type Config struct {
	// Enabled constructs a real Log; false yields Disabled.
	Enabled bool
	// Active is the initial state of the recording gate.
	Active bool
	// Logger receives load/save diagnostics; nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns an enabled, active configuration.
func DefaultConfig() Config {
	return Config{Enabled: true, Active: true}
}

// NewTracker returns a Log configured by cfg, or Disabled when logging is
// compiled out or turned off.
func NewTracker(cfg Config) Tracker {
	if !Compiled || !cfg.Enabled {
		return Disabled{}
	}
	return New(WithLogger(cfg.Logger), WithActive(cfg.Active))
}

// Disabled is a Tracker that records nothing.
type Disabled struct{}

func (Disabled) Init(Layout) {}
func (Disabled) Reset() {}
func (Disabled) Set(BlockKind, Flag, uint32) {}
func (Disabled) SetActive(bool) {}
func (Disabled) Active() bool { return false }
func (Disabled) CountActiveBlocks() int { return 0 }

func (Disabled) Load(string) error {
	return ErrDisabled
}

func (Disabled) Save(string, *SaveOptions) error {
	return ErrDisabled
}
