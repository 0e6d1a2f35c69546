package navigation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/localestate"
	"github.com/alquimiadental/site/core/logger"
	"github.com/alquimiadental/site/core/metrics"
	"github.com/alquimiadental/site/core/preference"
)

// Result describes a committed navigation.
type Result struct {
	URL    string
	Locale locale.Code
	Hops   int
}

// Navigator runs navigation attempts through the locale guards and commits the
// final URL to history. Attempts are serialized.
type Navigator struct {
	mu sync.Mutex

	resolver *locale.Resolver
	store    preference.Store
	history  History
	hint     HintSource
	state    *localestate.Publisher
	logger   *slog.Logger
	metrics  metrics.Recorder
	maxHops  int

	custom []Guard
	guards []Guard
}

// New creates a Navigator. Panics if resolver is nil.
func New(resolver *locale.Resolver, opts ...Option) *Navigator {
	if resolver == nil {
		panic("navigation: resolver is required")
	}

	n := &Navigator{
		resolver: resolver,
		store:    preference.NewMemory(""),
		history:  NewMemoryHistory(""),
		hint:     StaticHint(""),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:  metrics.Nop{},
		maxHops:  defaultMaxHops,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.state == nil {
		n.state = localestate.New(resolver.Catalog().Default())
	}

	n.guards = append(n.guards, n.custom...)
	n.guards = append(n.guards,
		NewEntryGuard(resolver, n.store, n.hint, n.logger),
		NewNormalizerGuard(resolver, n.store, n.hint, n.logger),
	)
	return n
}

// State returns the read side of the current-locale publisher.
func (n *Navigator) State() localestate.Reader {
	return n.state
}

// History returns the session history the navigator commits to.
func (n *Navigator) History() History {
	return n.history
}

// Navigate runs rawURL through the guards, following redirects, and pushes the
// final URL onto history. The locale is published after the attempt has been
// committed and released, so subscribers may start a new navigation.
func (n *Navigator) Navigate(ctx context.Context, rawURL string) (Result, error) {
	n.mu.Lock()
	res, err := n.run(ctx, rawURL, false)
	n.mu.Unlock()
	if err != nil {
		return res, err
	}

	n.state.Set(res.Locale)
	return res, nil
}

// run follows guard redirects until a guard allows. Redirect targets replace the
// attempted URL, so only the final URL reaches history. Callers hold n.mu and
// publish the resulting locale after releasing it.
func (n *Navigator) run(ctx context.Context, rawURL string, replace bool) (Result, error) {
	current := rawURL
	for hop := 0; ; hop++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if hop > n.maxHops {
			return Result{URL: current, Hops: hop - 1}, fmt.Errorf("%w: %s after %d hops", ErrTooManyRedirects, rawURL, n.maxHops)
		}

		t, err := parseTarget(current)
		if err != nil {
			return Result{}, err
		}
		attempt := Attempt{
			ID:       uuid.NewString(),
			URL:      current,
			Segments: t.segments,
			Hop:      hop,
			target:   t,
		}

		decision := n.guardFor(attempt.Segments).Check(ctx, attempt)
		if !decision.Allowed() {
			n.logger.DebugContext(ctx, "navigation redirected",
				logger.Component("navigation"),
				logger.AttemptID(attempt.ID),
				logger.Path(current),
				logger.Target(decision.Redirect),
				logger.Reason(string(decision.Reason)),
			)
			n.metrics.ObserveRedirect(metrics.OriginClient, string(decision.Reason))
			current = decision.Redirect
			continue
		}

		if replace {
			n.history.Replace(current)
		} else {
			n.history.Push(current)
		}
		n.metrics.ObserveResolution(metrics.OriginClient, string(decision.Locale))

		n.logger.DebugContext(ctx, "navigation allowed",
			logger.Component("navigation"),
			logger.AttemptID(attempt.ID),
			logger.Path(current),
			logger.Locale(string(decision.Locale)),
			logger.Count("hops", hop),
		)
		return Result{URL: current, Locale: decision.Locale, Hops: hop}, nil
	}
}

func (n *Navigator) guardFor(segments []string) Guard {
	for _, g := range n.guards {
		if g.Matches(segments) {
			return g
		}
	}
	// Entry and normalizer guards together match every path.
	return n.guards[len(n.guards)-1]
}
