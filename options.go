package staticgraph

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/staticgraph/fs"
	"github.com/hupe1980/staticgraph/internal/mmap"
)

// AccessPattern is a kernel hint for how mapped graph files will be read.
type AccessPattern = mmap.AccessPattern

const (
	AccessDefault    = mmap.AccessDefault
	AccessSequential = mmap.AccessSequential
	AccessRandom     = mmap.AccessRandom
	AccessWillNeed   = mmap.AccessWillNeed
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	accessPattern    AccessPattern
	validation       ValidationLevel
	workers          int
	fileSystem       fs.FileSystem
}

// Option configures Open and WriteFiles.
type Option func(*options)

// WithLogger configures structured logging for open, validate, write and close.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := staticgraph.NewJSONLogger(slog.LevelInfo)
//	g, _ := staticgraph.Open[uint32](ctx, "web", staticgraph.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
//
// Example:
//
//	metrics := &staticgraph.BasicMetricsCollector{}
//	g, _ := staticgraph.Open[uint32](ctx, "web", staticgraph.WithMetricsCollector(metrics))
//	fmt.Println(metrics.GetStats().OpenBytes)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithAccessPattern sets the madvise hint applied to both mapped files.
func WithAccessPattern(pattern AccessPattern) Option {
	return func(o *options) {
		o.accessPattern = pattern
	}
}

// WithValidation sets how thoroughly Open checks the mapped files.
// The default is ValidateOffsets.
func WithValidation(level ValidationLevel) Option {
	return func(o *options) {
		o.validation = level
	}
}

// WithValidationWorkers bounds the goroutines used by ValidateFull.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithValidationWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithFileSystem sets the file system WriteFiles publishes through.
// The default is fs.Default; tests pass an fs.FaultyFS to inject I/O errors.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fileSystem = fsys
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		accessPattern:    AccessDefault,
		validation:       ValidateOffsets,
		fileSystem:       fs.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.fileSystem == nil {
		o.fileSystem = fs.Default
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}
