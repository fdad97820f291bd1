package learning

import (
	"github.com/sirupsen/logrus"
	"github.com/zpam/year-classifier/pkg/profiler"
)

// DefaultLabels is the label set in evaluation order. A tie predicts the later label.
var DefaultLabels = []string{"2016", "2020"}

// Option configures vocabulary building, loading and training
type Option func(*options)

type options struct {
	logger            logrus.FieldLogger
	labels            []string
	extensions        []string
	workers           int
	newCounter        CounterFactory
	requireVocabulary bool
	profiler          *profiler.Profiler
}

func buildOptions(opts []Option) *options {
	o := &options{
		logger:     defaultLogger(),
		labels:     DefaultLabels,
		workers:    1,
		newCounter: MemoryCounterFactory,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func defaultLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

// WithLogger sets the logger used for diagnostics such as skipped corpus files
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLabels sets the label set in evaluation order
func WithLabels(labels ...string) Option {
	return func(o *options) {
		if len(labels) > 0 {
			o.labels = append([]string(nil), labels...)
		}
	}
}

// WithExtensions restricts corpus documents to the given file extensions
func WithExtensions(extensions ...string) Option {
	return func(o *options) {
		o.extensions = append([]string(nil), extensions...)
	}
}

// WithWorkers scans the corpus with n workers. Counts are merged by addition,
// so the vocabulary does not depend on n.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithCounter sets the token counter backend used by the vocabulary scan
func WithCounter(factory CounterFactory) Option {
	return func(o *options) {
		if factory != nil {
			o.newCounter = factory
		}
	}
}

// RequireVocabulary makes Train fail with ErrEmptyVocabulary instead of
// falling back to out-of-vocabulary-only modeling
func RequireVocabulary(required bool) Option {
	return func(o *options) {
		o.requireVocabulary = required
	}
}

// WithProfiler records stage timings
func WithProfiler(p *profiler.Profiler) Option {
	return func(o *options) {
		o.profiler = p
	}
}

// stage starts a profiler timer; the returned func stops it
func (o *options) stage(name string) func() {
	if o.profiler == nil {
		return func() {}
	}
	timer := o.profiler.Start(name)
	return func() { timer.Stop() }
}
