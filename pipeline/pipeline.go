package pipeline

import (
	"chat-gate/errors"
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// StageFunc decides on a single request. It must not have side effects
// other than its own bookkeeping (the rate limiter ledger).
type StageFunc func(ctx context.Context, req Request) Outcome

type Stage struct {
	Name string
	Eval StageFunc
}

// Pipeline runs its stages in order and stops at the first rejection.
type Pipeline struct {
	log     *slog.Logger
	stages  []Stage
	timeout time.Duration
}

func New(log *slog.Logger, stages ...Stage) *Pipeline {
	return &Pipeline{log: log, stages: stages}
}

// WithTimeout bounds every request going through Do. Zero disables it.
func (p *Pipeline) WithTimeout(timeout time.Duration) *Pipeline {
	p.timeout = timeout
	return p
}

// Stages returns the stage names in evaluation order.
func (p *Pipeline) Stages() []string {
	return lo.Map(p.stages, func(s Stage, _ int) string { return s.Name })
}

// Run evaluates the stages. The request deadline is checked before each
// stage so a stalled request is answered with a timeout instead of hanging.
func (p *Pipeline) Run(ctx context.Context, req Request) Outcome {
	for _, stage := range p.stages {
		if ctx.Err() != nil {
			return Outcome{Stage: stage.Name, Cause: errors.Timeout(stage.Name)}
		}
		outcome := stage.Eval(ctx, req)
		if !outcome.Admitted {
			outcome.Stage = stage.Name
			p.log.Debug("Request rejected",
				"stage", stage.Name,
				"method", req.Method.String(),
				"resource", req.Resource.String(),
				"client_key", req.ClientKey,
				"cause", outcome.Cause)
			return outcome
		}
	}
	return Admit()
}

// Do runs the pipeline and, only if the request is admitted and still
// within its deadline, the operation itself.
func (p *Pipeline) Do(ctx context.Context, req Request, operation func(ctx context.Context) error) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.Run(ctx, req).Err(); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return errors.Timeout("service")
	}
	return operation(ctx)
}
