// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the docdata processing steps in a fixed order.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/docdata/internal/index"
	"github.com/pdiddy/docdata/internal/links"
	"github.com/pdiddy/docdata/internal/publish"
	"github.com/pdiddy/docdata/internal/rename"
	"github.com/pdiddy/docdata/internal/searchindex"
	"github.com/pdiddy/docdata/pkg/types"
)

// Step identifies one processing step.
type Step string

const (
	StepRename  Step = "rename"
	StepLinks   Step = "links"
	StepIndex   Step = "index"
	StepPublish Step = "publish"
)

// AllSteps is the full run, in order.
var AllSteps = []Step{StepRename, StepLinks, StepIndex, StepPublish}

// LocalSteps is the run used for local builds: everything but publishing.
var LocalSteps = []Step{StepRename, StepLinks, StepIndex}

// ParseStep converts a step name into a Step.
func ParseStep(name string) (Step, error) {
	for _, s := range AllSteps {
		if string(s) == name {
			return s, nil
		}
	}
	names := make([]string, len(AllSteps))
	for i, s := range AllSteps {
		names[i] = string(s)
	}
	return "", fmt.Errorf("unknown step %q: use one of %s", name, strings.Join(names, ", "))
}

// needsSearchIndex reports whether the step reads the combined search index.
func (s Step) needsSearchIndex() bool {
	return s == StepIndex || s == StepPublish
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSaverFactory overrides how the publish step connects to the search service.
func WithSaverFactory(f publish.SaverFactory) Option {
	return func(p *Pipeline) { p.newSaver = f }
}

// WithSearchIndex supplies an already-loaded combined search index.
func WithSearchIndex(idx *searchindex.Index) Option {
	return func(p *Pipeline) { p.index = idx }
}

// Pipeline holds the configuration and inputs shared by the steps.
type Pipeline struct {
	cfg      types.Config
	log      zerolog.Logger
	steps    []Step
	index    *searchindex.Index
	newSaver publish.SaverFactory
}

// New prepares a pipeline for steps. When any step needs the combined search
// index it is loaded here, before any step touches the content tree.
func New(cfg types.Config, log zerolog.Logger, steps []Step, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		cfg:      cfg,
		log:      log,
		steps:    steps,
		newSaver: publish.NewAlgoliaSaver,
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, s := range steps {
		if _, err := ParseStep(string(s)); err != nil {
			return nil, err
		}
		if s.needsSearchIndex() && p.index == nil {
			idx, err := searchindex.Load(cfg.SearchIndexPath())
			if err != nil {
				return nil, err
			}
			p.index = idx
		}
	}
	return p, nil
}

// Run executes the steps one after another, stopping at the first error.
func (p *Pipeline) Run(ctx context.Context) error {
	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		log := p.log.With().Str("step", string(s)).Logger()
		log.Debug().Msg("starting")
		if err := p.run(ctx, s, log); err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
	}
	return nil
}

func (p *Pipeline) run(ctx context.Context, s Step, log zerolog.Logger) error {
	switch s {
	case StepRename:
		_, err := rename.Rename(p.cfg, log)
		return err
	case StepLinks:
		_, err := links.Rewrite(p.cfg, log)
		return err
	case StepIndex:
		_, err := index.Build(p.cfg, p.index, log)
		return err
	case StepPublish:
		_, err := publish.Publish(ctx, p.cfg, p.index, p.newSaver, log)
		return err
	default:
		return fmt.Errorf("unknown step %q", s)
	}
}
