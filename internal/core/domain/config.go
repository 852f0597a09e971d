package domain

import "time"

// Log formats accepted by the logger.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// DefaultLockWait is the default bound for waiting on another fixture builder.
const DefaultLockWait = 30 * time.Second

// Config is the resolved harness configuration.
type Config struct {
	// CacheDir holds datasets and reference histograms.
	CacheDir string `validate:"required"`
	// Solution is the command invoked as <solution...> <input> <N> <B>.
	Solution []string
	// Timeout bounds the solution call. Zero disables the bound.
	Timeout time.Duration `validate:"gte=0"`
	// LockWait bounds how long a run waits for another process building the same fixture.
	LockWait time.Duration `validate:"gte=0"`
	// LogFormat selects pretty or JSON logs.
	LogFormat string `validate:"oneof=pretty json"`
	// Jobs bounds concurrent fixture builds in warm. Zero means one per CPU.
	Jobs int `validate:"gte=0"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		CacheDir:  DefaultCacheDir(),
		LockWait:  DefaultLockWait,
		LogFormat: LogFormatPretty,
	}
}

// Overrides carries command-line values that take precedence over file and environment settings.
// Zero values and nil pointers leave the loaded value untouched.
type Overrides struct {
	CacheDir  string
	Solution  []string
	Timeout   *time.Duration
	LockWait  *time.Duration
	LogFormat string
	Jobs      *int
}

// Apply copies every set override onto cfg.
func (o Overrides) Apply(cfg *Config) {
	if o.CacheDir != "" {
		cfg.CacheDir = o.CacheDir
	}
	if len(o.Solution) > 0 {
		cfg.Solution = o.Solution
	}
	if o.Timeout != nil {
		cfg.Timeout = *o.Timeout
	}
	if o.LockWait != nil {
		cfg.LockWait = *o.LockWait
	}
	if o.LogFormat != "" {
		cfg.LogFormat = o.LogFormat
	}
	if o.Jobs != nil {
		cfg.Jobs = *o.Jobs
	}
}
