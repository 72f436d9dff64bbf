package sdrfeatures

import (
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

// Detector evaluates the requirement graph. It owns the probe cache and
// the registry of detection strategies; the catalog itself is static.
//
// A Detector is safe for concurrent use. Probes may block the caller for
// the duration of the kill protocol, so latency-sensitive paths should
// call it from a worker goroutine.
type Detector struct {
	features    map[string][]string
	registry    map[string]Requirement
	cache       *Cache
	runner      *Runner
	log         *log.Logger
	codecServer string
	group       singleflight.Group
}

// Option configures a Detector.
type Option func(*Detector)

// WithTempDir sets the scratch directory probed commands run in, so probes
// that create files do so out of the way.
func WithTempDir(dir string) Option {
	return func(d *Detector) {
		d.runner.Dir = dir
	}
}

// WithCodecServer sets the address of the codecserver instance consulted
// by the AMBE check. An address containing a path separator is treated as
// a unix socket.
func WithCodecServer(addr string) Option {
	return func(d *Detector) {
		d.codecServer = addr
	}
}

// WithProbeTimeout overrides the wait window of the probe kill protocol.
func WithProbeTimeout(timeout time.Duration) Option {
	return func(d *Detector) {
		d.runner.Timeout = timeout
	}
}

// WithLogger routes the Detector's diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(d *Detector) {
		d.log = logger
		d.runner.Log = logger
	}
}

// WithCache substitutes the probe result cache, e.g. one with a custom TTL
// or, in tests, a fake clock.
func WithCache(cache *Cache) Option {
	return func(d *Detector) {
		d.cache = cache
	}
}

// New constructs a Detector. The registry of detection strategies is
// resolved here, once, so an unregistered requirement is a detectable
// configuration state instead of a runtime lookup surprise.
func New(opts ...Option) *Detector {
	d := &Detector{
		features: features,
		cache:    NewCache(),
		runner:   &Runner{},
		log:      log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.registry = builtinRequirements(d)
	return d
}

// Requirements returns the requirement names gating feature, in catalog
// order. The only possible error is *UnknownFeatureError.
func (d *Detector) Requirements(feature string) ([]string, error) {
	reqs, ok := d.features[feature]
	if !ok {
		return nil, &UnknownFeatureError{Name: feature}
	}
	return reqs, nil
}

// IsAvailable reports whether every requirement of feature is satisfied on
// this host. Requirements are evaluated in catalog order without
// short-circuiting, so one call leaves the full set cached for
// diagnostics. The only possible error is *UnknownFeatureError.
func (d *Detector) IsAvailable(feature string) (bool, error) {
	reqs, err := d.Requirements(feature)
	if err != nil {
		return false, err
	}
	available := true
	for _, name := range reqs {
		if !d.HasRequirement(name) {
			available = false
		}
	}
	return available, nil
}

// FailedRequirements returns the subset of feature's requirements that are
// currently unsatisfied, in catalog order, using the same cached probes as
// IsAvailable.
func (d *Detector) FailedRequirements(feature string) ([]string, error) {
	reqs, err := d.Requirements(feature)
	if err != nil {
		return nil, err
	}
	failed := []string{}
	for _, name := range reqs {
		if !d.HasRequirement(name) {
			failed = append(failed, name)
		}
	}
	return failed, nil
}

// HasRequirement reports whether a single requirement is satisfied,
// consulting the cache first. A requirement with no registered strategy is
// a defect in the catalog: it is logged and reported unavailable, never a
// panic. Concurrent callers probing the same requirement share one
// execution.
func (d *Detector) HasRequirement(name string) bool {
	if d.cache.Has(name) {
		return d.cache.Get(name)
	}

	result, _, _ := d.group.Do(name, func() (any, error) {
		// Re-check under singleflight: a concurrent caller may have
		// finished the probe while we queued.
		if d.cache.Has(name) {
			return d.cache.Get(name), nil
		}

		value := false
		if req, ok := d.registry[name]; ok {
			value = req.Detect()
		} else {
			d.log.Error("no detection strategy registered, please fix in code",
				"requirement", name)
		}
		d.cache.Set(name, value)
		return value, nil
	})
	return result.(bool)
}

// Availability returns the availability of every catalog feature.
func (d *Detector) Availability() map[string]bool {
	result := make(map[string]bool, len(d.features))
	for name := range d.features {
		available, _ := d.IsAvailable(name)
		result[name] = available
	}
	return result
}

// Report returns the full diagnostic snapshot: per-feature availability
// plus the state and description of every requirement. It has no side
// effects beyond the caching the underlying calls already perform.
func (d *Detector) Report() Report {
	report := make(Report, len(d.features))
	for name, reqs := range d.features {
		status := FeatureStatus{
			Available:    true,
			Requirements: make(map[string]RequirementStatus, len(reqs)),
		}
		for _, req := range reqs {
			available := d.HasRequirement(req)
			if !available {
				status.Available = false
			}
			status.Requirements[req] = RequirementStatus{
				Available: available,
				// Features are enabled as soon as they are available.
				// This may change in the future.
				Enabled:     available,
				Description: d.describeRequirement(req),
			}
		}
		report[name] = status
	}
	return report
}

func (d *Detector) describeRequirement(name string) string {
	return d.registry[name].Description
}
