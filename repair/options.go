package repair

import "log"

// Option configures RepairAlmostDegenerateFaces. The zero value of
// Options is never exposed directly - only the exported With*
// constructors can produce an Option, so a malformed value surfaces as
// ErrPreconditionViolated rather than a silently-accepted bad field.
type Option func(*Options)

// Options holds the tunable parameters of the fixed-point driver plus
// the ambient knobs (logging) every call site gets for free.
type Options struct {
	Thresholds Thresholds
	Logger     *log.Logger

	err error
}

// DefaultOptions returns the §3 default thresholds and a nil Logger
// (logging disabled).
func DefaultOptions() Options {
	return Options{Thresholds: DefaultThresholds()}
}

// WithNeedleRatio overrides ρ, the needle ratio threshold.
func WithNeedleRatio(ratio float64) Option {
	return func(o *Options) {
		if ratio <= 0 {
			o.err = wrapPrecondition("needle ratio must be positive")
			return
		}
		o.Thresholds.NeedleRatio = ratio
	}
}

// WithCapAngleCosine overrides γ, the cap angle cosine threshold.
func WithCapAngleCosine(cosine float64) Option {
	return func(o *Options) {
		if cosine < -1 || cosine > 1 {
			o.err = wrapPrecondition("cap angle cosine must be in [-1, 1]")
			return
		}
		o.Thresholds.CapAngleCosine = cosine
	}
}

// WithCollapseLengthMax overrides L, the collapse length cap.
func WithCollapseLengthMax(length float64) Option {
	return func(o *Options) {
		if length <= 0 {
			o.err = wrapPrecondition("collapse length max must be positive")
			return
		}
		o.Thresholds.CollapseLengthMax = length
	}
}

// WithLogger enables debug logging of link-condition failures,
// unflippable configurations, and stalled iterations (§7).
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// resolveOptions applies opts over DefaultOptions, returning the first
// error recorded by any With* constructor.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if err := o.Thresholds.validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// logf emits a debug message if a Logger is configured.
func (o Options) logf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}
