package layout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvegen/internal/telemetry"
)

var (
	// ErrNotReady is returned by Lookup before the index has been built.
	// Template loading happens during the asset-load phase; callers must
	// wait on Ready before resolving layouts.
	ErrNotReady = errors.New("layout: template index not built yet")

	// ErrAlreadyBuilt is returned when Build is called a second time.
	ErrAlreadyBuilt = errors.New("layout: template index already built")
)

// Matcher indexes the template pool by door configuration. Build runs
// once during asset loading; after that the index is immutable and Lookup
// is safe from any number of goroutines.
type Matcher struct {
	buildOnce sync.Once
	ready     atomic.Bool
	readyCh   chan struct{}

	templates []*Template
	byMask    map[DoorMask][]int // template indices grouped by exact mask
	fallback  *Template
}

// NewMatcher creates an empty, not-yet-ready matcher.
func NewMatcher() *Matcher {
	return &Matcher{readyCh: make(chan struct{})}
}

// Build indexes the template pool and publishes readiness. It must be
// called exactly once; a pool without the canonical all-doors fallback
// template is a fatal asset-integrity error.
func (m *Matcher) Build(ctx context.Context, templates []*Template) error {
	err := ErrAlreadyBuilt
	m.buildOnce.Do(func() {
		err = m.build(ctx, templates)
	})
	return err
}

func (m *Matcher) build(ctx context.Context, templates []*Template) error {
	tracer := telemetry.Tracer("layout")
	_, span := tracer.Start(ctx, "matcher.build")
	defer span.End()

	byMask := make(map[DoorMask][]int)
	var fallback *Template
	for i, tmpl := range templates {
		mask := tmpl.Mask()
		byMask[mask] = append(byMask[mask], i)
		if tmpl.Fallback {
			if mask != DoorMaskAll {
				return fmt.Errorf("layout: fallback template %q exposes doors %s, want all four", tmpl.ID, mask)
			}
			fallback = tmpl
		}
	}
	if fallback == nil {
		return errors.New("layout: template pool has no all-doors fallback template")
	}

	m.templates = templates
	m.byMask = byMask
	m.fallback = fallback

	span.SetAttributes(
		attribute.Int("matcher.template_count", len(templates)),
		attribute.Int("matcher.mask_groups", len(byMask)),
	)

	m.ready.Store(true)
	close(m.readyCh)
	return nil
}

// Ready returns a channel that is closed once the index has been built.
func (m *Matcher) Ready() <-chan struct{} {
	return m.readyCh
}

// Lookup returns a template compatible with the required door set:
// an exact match when one exists, otherwise any template whose doors are
// a superset of the requirement, otherwise the canonical fallback. Ties
// are broken uniformly at random with the caller-owned rand source.
func (m *Matcher) Lookup(required DoorMask, rng *rand.Rand) (*Template, error) {
	if !m.ready.Load() {
		return nil, ErrNotReady
	}

	if group := m.byMask[required]; len(group) > 0 {
		return m.templates[group[rng.Intn(len(group))]], nil
	}

	// Superset scan: extra doors are tolerated, missing ones are not.
	// Linear over the pool, fine for a few dozen templates.
	var candidates []*Template
	for _, tmpl := range m.templates {
		if tmpl.Mask().Contains(required) {
			candidates = append(candidates, tmpl)
		}
	}
	if len(candidates) > 0 {
		return candidates[rng.Intn(len(candidates))], nil
	}

	return m.fallback, nil
}

// LookupDoors is a convenience wrapper over Lookup for explicit door
// requirements.
func (m *Matcher) LookupDoors(north, south, east, west bool, rng *rand.Rand) (*Template, error) {
	return m.Lookup(MaskFor(north, south, east, west), rng)
}

// TemplateCount returns the size of the indexed pool, 0 before Build.
func (m *Matcher) TemplateCount() int {
	if !m.ready.Load() {
		return 0
	}
	return len(m.templates)
}
