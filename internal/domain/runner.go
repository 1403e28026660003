package domain

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/docstream/internal/adapter"
	m "github.com/mouse-blink/docstream/internal/model"
)

// Runner drains a message source into a Router.
type Runner interface {
	// Run delivers messages until the source ends or ctx is cancelled, then
	// closes every session still open and returns their summaries.
	Run(ctx context.Context, source adapter.MessageSource) ([]m.SessionSummary, error)
}

// delivery is one decoded message, or the reason a stream line was skipped.
type delivery struct {
	msg m.Message
	err error
}

type runner struct {
	router      Router
	diagnostics adapter.Diagnostics
}

// NewRunner creates a Runner.
func NewRunner(router Router, diagnostics adapter.Diagnostics) Runner {
	return &runner{router: router, diagnostics: diagnostics}
}

func (r *runner) Run(ctx context.Context, source adapter.MessageSource) ([]m.SessionSummary, error) {
	g, gctx := errgroup.WithContext(ctx)
	deliveries := make(chan delivery)

	g.Go(func() error {
		defer close(deliveries)

		for {
			msg, err := source.Next(gctx)
			if errors.Is(err, io.EOF) {
				return nil
			}

			if err != nil && !errors.Is(err, adapter.ErrMalformedMessage) {
				return err
			}

			select {
			case deliveries <- delivery{msg: msg, err: err}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	// Only this goroutine touches the router and diagnostics.
	g.Go(func() error {
		for d := range deliveries {
			if d.err != nil {
				r.diagnostics.Report(m.LevelWarning, d.err.Error())
				continue
			}

			r.router.Deliver(d.msg)
		}

		return nil
	})

	err := g.Wait()

	summaries := r.closeAll()
	if err != nil {
		return summaries, fmt.Errorf("stream aborted: %w", err)
	}

	return summaries, nil
}

func (r *runner) closeAll() []m.SessionSummary {
	topics := r.router.Topics()
	summaries := make([]m.SessionSummary, 0, len(topics))

	for _, topic := range topics {
		summary, err := r.router.Close(topic)
		if err != nil {
			continue
		}

		summaries = append(summaries, summary)
	}

	return summaries
}
