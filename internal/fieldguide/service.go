// Package fieldguide ties generation and rendering together: every trigger
// (CLI run, HTTP request, key press, click) asks the Service for a fresh
// specimen and draws it onto a surface.
package fieldguide

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/fieldguide/internal/config"
	"github.com/alexisbeaulieu97/fieldguide/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/fieldguide/internal/ports"
	"github.com/alexisbeaulieu97/fieldguide/internal/random"
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
	"github.com/alexisbeaulieu97/fieldguide/internal/tree"
	fgerrors "github.com/alexisbeaulieu97/fieldguide/pkg/errors"
)

// seedStream decorrelates the master sequence from the per-tree PCG streams.
const seedStream = 0x9e3779b97f4a7c15

// Specimen is one generated tree and the seed that reproduces it.
type Specimen struct {
	*tree.FractalTree
	Seed uint64
}

// Service generates specimens from a master seed sequence. It is safe for
// concurrent use; each generation gets its own random source.
type Service struct {
	cfg    config.Config
	params tree.Params
	logger ports.Logger
	events ports.EventPublisher

	mu     sync.Mutex
	master *rand.Rand
}

// Option customises a Service.
type Option func(*Service)

// WithPublisher routes lifecycle events to publisher.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) {
		s.events = publisher
	}
}

// NewService builds a Service. A nil config seed seeds the master sequence
// from the clock.
func NewService(cfg config.Config, logger ports.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = ports.NopLogger{}
	}

	seed := uint64(time.Now().UnixNano())
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	s := &Service{
		cfg:    cfg,
		params: cfg.Params(),
		logger: logger.With("component", "service"),
		master: rand.New(rand.NewPCG(seed, seed^seedStream)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the configuration the service was built with.
func (s *Service) Config() config.Config {
	return s.cfg
}

// Events returns the publisher lifecycle events are sent to, or nil.
func (s *Service) Events() ports.EventPublisher {
	return s.events
}

// NextSeed advances the master sequence.
func (s *Service) NextSeed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.master.Uint64()
}

// Generate produces a specimen from the next seed in the master sequence.
func (s *Service) Generate(ctx context.Context) (*Specimen, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.GenerateSeeded(ctx, s.NextSeed())
}

// GenerateSeeded produces the specimen for seed. The same seed and
// parameters always give the same tree.
func (s *Service) GenerateSeeded(ctx context.Context, seed uint64) (*Specimen, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.params.Validate(); err != nil {
		err = fgerrors.NewGenerationError("params", err)
		s.fail(ctx, seed, err)
		return nil, err
	}

	started := time.Now()
	width, height := float64(s.cfg.Canvas.Width), float64(s.cfg.Canvas.Height)
	t := tree.New(width, height, random.NewSeeded(seed), s.params)
	if err := t.Generate(); err != nil {
		s.fail(ctx, seed, err)
		return nil, err
	}

	specimen := &Specimen{FractalTree: t, Seed: seed}
	s.logger.Debug(ctx, "tree generated", append(specimen.Entry().LogFields(), "duration_ms", time.Since(started).Milliseconds())...)
	s.publish(ctx, ports.EventTreeGenerated, specimen.Entry())
	return specimen, nil
}

// Render generates a specimen and presents it on surface.
func (s *Service) Render(ctx context.Context, surface render.Surface) (*Specimen, error) {
	specimen, err := s.Generate(ctx)
	if err != nil {
		return nil, err
	}
	return specimen, s.Draw(ctx, specimen, surface)
}

// RenderSeeded is Render for a fixed seed.
func (s *Service) RenderSeeded(ctx context.Context, seed uint64, surface render.Surface) (*Specimen, error) {
	specimen, err := s.GenerateSeeded(ctx, seed)
	if err != nil {
		return nil, err
	}
	return specimen, s.Draw(ctx, specimen, surface)
}

// Draw clears surface and draws specimen onto it.
func (s *Service) Draw(ctx context.Context, specimen *Specimen, surface render.Surface) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	render.NewRenderer(surface).Present(specimen.FractalTree)
	s.publish(ctx, ports.EventTreeRendered, specimen.Entry())
	return nil
}

// Saved records that an entry was written to path.
func (s *Service) Saved(ctx context.Context, specimen *Specimen, path string) {
	s.logger.Info(ctx, "entry saved", "path", path, "name", specimen.Name, "seed", specimen.Seed)
	s.publish(ctx, ports.EventEntrySaved, map[string]interface{}{
		"path": path,
		"name": specimen.Name,
		"seed": specimen.Seed,
	})
}

func (s *Service) fail(ctx context.Context, seed uint64, err error) {
	s.logger.Error(ctx, "tree generation failed", "seed", seed, "error", err)
	s.publish(ctx, ports.EventGenerationFailed, map[string]interface{}{
		"seed":  seed,
		"error": err.Error(),
	})
}

func (s *Service) publish(ctx context.Context, eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, events.New(eventType, payload)); err != nil {
		s.logger.Warn(ctx, "failed to publish domain event", "event_type", eventType, "error", err)
	}
}
