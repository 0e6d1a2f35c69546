package navigation

import (
	"log/slog"

	"github.com/alquimiadental/site/core/localestate"
	"github.com/alquimiadental/site/core/metrics"
	"github.com/alquimiadental/site/core/preference"
)

const defaultMaxHops = 3

// Option configures a Navigator.
type Option func(*Navigator)

// WithStore sets where the preferred locale is persisted. Defaults to an empty memory store.
func WithStore(s preference.Store) Option {
	return func(n *Navigator) {
		if s != nil {
			n.store = s
		}
	}
}

// WithHistory sets the session history. Defaults to an empty MemoryHistory.
func WithHistory(h History) Option {
	return func(n *Navigator) {
		if h != nil {
			n.history = h
		}
	}
}

// WithHint sets the runtime language source consulted when a path has no locale.
func WithHint(h HintSource) Option {
	return func(n *Navigator) {
		if h != nil {
			n.hint = h
		}
	}
}

// WithPublisher sets the publisher notified on every allowed navigation.
// Defaults to a publisher initialised with the catalog default.
func WithPublisher(p *localestate.Publisher) Option {
	return func(n *Navigator) {
		if p != nil {
			n.state = p
		}
	}
}

// WithLogger sets the logger. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(n *Navigator) {
		if r != nil {
			n.metrics = r
		}
	}
}

// WithMaxHops caps the redirects followed by a single navigation.
func WithMaxHops(hops int) Option {
	return func(n *Navigator) {
		if hops > 0 {
			n.maxHops = hops
		}
	}
}

// WithGuards prepends custom guards. They are consulted before the built-in ones.
func WithGuards(guards ...Guard) Option {
	return func(n *Navigator) {
		n.custom = append(n.custom, guards...)
	}
}
