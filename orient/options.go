package orient

import (
	"log"
	"math"

	"github.com/wkoehler/geomrepair/spatial"
)

// Stats reports confidence statistics from a completed
// OrientNormalsViaMST call - a supplemented feature (SPEC_FULL.md §5.9)
// not named by spec.md but derivable from data the propagator already
// computes, useful to a caller deciding whether to re-run with a
// larger k or a looser angle.
type Stats struct {
	NumOriented  int
	NumTotal     int
	TreeDiameter int
}

// Option configures OrientNormalsViaMST. As with repair.Option, only
// the exported With* constructors can produce one, so a malformed
// value is recorded and surfaced as ErrPreconditionViolated rather
// than silently accepted.
type Option func(*Options)

// Options holds the tunable parameters of Core B plus the ambient
// knobs (logging, spatial index backend) every call site gets.
type Options struct {
	MaxPropagationAngle float64
	Logger              *log.Logger
	Index               spatial.Index
	Stats               *Stats

	err error
}

// DefaultOptions returns θ_max = π/2 and no logger; the octree
// backend is selected lazily by OrientNormalsViaMST when Index is nil
// (it needs the point set to build one).
func DefaultOptions() Options {
	return Options{MaxPropagationAngle: math.Pi / 2}
}

// WithMaxPropagationAngle overrides θ_max, the confidence threshold
// angle. Must be in (0, π/2].
func WithMaxPropagationAngle(theta float64) Option {
	return func(o *Options) {
		if theta <= 0 || theta > math.Pi/2 {
			o.err = wrapPrecondition("max propagation angle must be in (0, pi/2]")
			return
		}
		o.MaxPropagationAngle = theta
	}
}

// WithLogger enables debug logging of seed selection and low-confidence
// propagation steps.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithSpatialIndex overrides the kNN backend used to build the
// Riemannian graph (§4.5's "3D spatial index" collaborator). Defaults
// to spatial.NewOctreeIndex when unset.
func WithSpatialIndex(index spatial.Index) Option {
	return func(o *Options) {
		o.Index = index
	}
}

// WithStats fills out (non-nil) after a successful call with the
// confidence statistics described in Stats.
func WithStats(stats *Stats) Option {
	return func(o *Options) {
		o.Stats = stats
	}
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

func (o Options) logf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}
