package tracks

import (
	"cmp"
	"log/slog"
	"time"

	"github.com/arqui-vision/trackfusion/registry"
	"github.com/arqui-vision/trackfusion/trackmetrics"
	"github.com/arqui-vision/trackfusion/unionfind"
)

// Option configures a Builder at construction time.
type Option[I cmp.Ordered] func(*Builder[I])

// WithLogger attaches a structured logger. Build and the filter passes emit
// Debug-level summaries (nodes registered, classes erased) through it. If
// omitted, Builder uses slog.Default().
func WithLogger[I cmp.Ordered](logger *slog.Logger) Option[I] {
	return func(b *Builder[I]) { b.logger = logger }
}

// WithMetrics attaches a Prometheus recorder. A nil Recorder (the zero
// value of this option) is equivalent to omitting it.
func WithMetrics[I cmp.Ordered](rec *trackmetrics.Recorder) Option[I] {
	return func(b *Builder[I]) { b.metrics = rec }
}

// Builder drives the node registry and union-find to fuse pairwise matches
// into tracks. Its zero value is not usable; construct one with NewBuilder.
type Builder[I cmp.Ordered] struct {
	reg   *registry.Registry[I]
	uf    *unionfind.UnionFind
	built bool

	minTrackLength     int
	minPairOccurrences int

	logger  *slog.Logger
	metrics *trackmetrics.Recorder
}

// NewBuilder returns an empty Builder ready for Build.
func NewBuilder[I cmp.Ordered](opts ...Option[I]) *Builder[I] {
	b := &Builder[I]{logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build ingests pairs, interning every referenced node and uniting the two
// endpoints of every match. It follows the mandatory two-pass discipline of
// §4.C: the registry is fully materialized (phase one) before any NodeId is
// used as a union-find reference (phase two), so ids remain valid for the
// rest of the Builder's lifetime. Duplicate matches produce redundant
// unites, which are safe and idempotent.
//
// Build may only be called once per Builder; a second call returns
// ErrAlreadyBuilt without mutating state.
func (b *Builder[I]) Build(pairs []ImagePair[I]) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	start := time.Now()

	regBuilder := registry.NewBuilder[I]()
	for _, pair := range pairs {
		for _, m := range pair.Matches {
			regBuilder.Intern(registry.NodeKey[I]{Image: pair.First, Feat: m.TrainIdx})
			regBuilder.Intern(registry.NodeKey[I]{Image: pair.Second, Feat: m.QueryIdx})
		}
	}
	reg := regBuilder.Freeze()

	uf := unionfind.New(reg.Size())
	for _, pair := range pairs {
		for _, m := range pair.Matches {
			trainId, ok := reg.Lookup(registry.NodeKey[I]{Image: pair.First, Feat: m.TrainIdx})
			if !ok {
				// Every key interned in the first pass is present after
				// Freeze; reaching here means the registry is broken.
				return registry.ErrUnknownNode
			}
			queryId, ok := reg.Lookup(registry.NodeKey[I]{Image: pair.Second, Feat: m.QueryIdx})
			if !ok {
				return registry.ErrUnknownNode
			}
			uf.Unite(int(trainId), int(queryId))
		}
	}

	b.reg = reg
	b.uf = uf
	b.built = true

	elapsed := time.Since(start)
	b.metrics.ObserveBuild(elapsed, reg.Size())
	b.logger.Debug("tracks: build complete",
		"pairs", len(pairs),
		"nodes", reg.Size(),
		"classes", uf.NbClasses(),
		"duration", elapsed,
	)

	return nil
}

// NbTracks returns the number of currently live classes. It is
// non-increasing across successive Filter / FilterPairWiseMinimumMatches
// calls, and zero before Build.
func (b *Builder[I]) NbTracks() int {
	if !b.built {
		return 0
	}
	return b.uf.NbClasses()
}

// exportOrder returns the current live class representatives in the fixed
// iteration order both exporters use to assign TrackIds/class indices, so
// the two exporters agree on numbering when run back to back.
func (b *Builder[I]) exportOrder() []int {
	reprs := make([]int, 0, b.uf.NbClasses())
	for repr := range b.uf.Classes() {
		reprs = append(reprs, repr)
	}
	return reprs
}
