package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/chorus-search/chorus/internal/answer"
	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/model"
)

// DefaultMaxWait bounds how long a query waits for engines when the caller
// does not supply a limit.
const DefaultMaxWait = 8 * time.Second

// Options tunes one orchestrated search.
type Options struct {
	// Engines, when non-empty, restricts the category's candidates to the
	// named engines.
	Engines []string
	// MaxWait is the collection-wide deadline. Zero means DefaultMaxWait.
	MaxWait time.Duration
}

// Orchestrator is the public entry point of the aggregation core. It
// selects the engines serving a query's category, dispatches the executor
// for each concurrently, and aggregates whatever reported back before the
// collection deadline. Instant answerers run locally alongside the engine
// fan-out; their answers precede engine-extracted ones.
type Orchestrator struct {
	registry  *engine.Registry
	executor  *Executor
	answerers *answer.Registry
	logger    *slog.Logger
}

// NewOrchestrator creates an orchestrator over the given registry and
// executor. answerers may be nil to disable instant answers.
func NewOrchestrator(reg *engine.Registry, exec *Executor, answerers *answer.Registry, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{registry: reg, executor: exec, answerers: answerers, logger: logger}
}

// Search fans query out to every non-disabled engine serving category and
// returns the merged result. Engines still outstanding when the deadline
// fires are counted as failed and their eventual completion is never
// consulted; their transport calls are cancelled when Search returns.
func (o *Orchestrator) Search(ctx context.Context, query, category string, p model.Params, opts Options) model.Aggregated {
	candidates := o.registry.ByCategory(category)
	if len(opts.Engines) > 0 {
		allowed := make(map[string]bool, len(opts.Engines))
		for _, name := range opts.Engines {
			allowed[name] = true
		}
		kept := make([]engine.Engine, 0, len(candidates))
		for _, e := range candidates {
			if allowed[e.Descriptor().Name] {
				kept = append(kept, e)
			}
		}
		candidates = kept
	}

	searchesTotal.WithLabelValues(category).Inc()

	instant := o.ask(query)

	// No candidates: short-circuit with an explicit empty result, no waiting.
	// Instant answers still apply; they never depend on engines.
	if len(candidates) == 0 {
		return model.Aggregated{
			Results:       []model.Result{},
			Suggestions:   []string{},
			Corrections:   []string{},
			Answers:       instant,
			Infoboxes:     []model.Infobox{},
			FailedEngines: []string{},
		}
	}

	maxWait := opts.MaxWait
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}

	// Engine contexts descend from runCtx, which is cancelled once
	// collection ends, so abandoned transport calls are torn down rather
	// than leaked.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered to len(candidates) so stragglers finishing after the
	// deadline never block on a channel nobody reads.
	outcomes := make(chan model.Outcome, len(candidates))
	for _, e := range candidates {
		go func(e engine.Engine) {
			outcomes <- o.executor.Execute(runCtx, e, query, p)
		}(e)
	}

	timer := time.NewTimer(maxWait)
	defer timer.Stop()

	reported := make(map[string]model.Outcome, len(candidates))
collect:
	for len(reported) < len(candidates) {
		select {
		case out := <-outcomes:
			reported[out.Engine] = out
		case <-timer.C:
			break collect
		}
	}
	cancel()

	var failed []string
	var successful int
	var successes []model.Outcome
	for _, e := range candidates {
		name := e.Descriptor().Name
		out, ok := reported[name]
		if !ok {
			// Never reported before the deadline: abandoned, bookkept as failed.
			o.logger.Warn("engine abandoned at collection deadline",
				"engine", name, "max_wait", maxWait)
			failed = append(failed, name)
			continue
		}
		if out.OK() {
			successful++
			successes = append(successes, out)
		} else {
			failed = append(failed, name)
		}
	}
	if failed == nil {
		failed = []string{}
	}

	agg := Aggregate(successes)
	agg.Answers = append(instant, agg.Answers...)
	agg.TotalEngines = len(candidates)
	agg.SuccessfulEngines = successful
	agg.FailedEngines = failed
	return agg
}

// ask runs the instant answerers. Always returns a non-nil slice so the
// response encodes [] rather than null.
func (o *Orchestrator) ask(query string) []model.Answer {
	if o.answerers == nil {
		return []model.Answer{}
	}
	answers := o.answerers.Ask(query)
	if answers == nil {
		return []model.Answer{}
	}
	return answers
}
