package navigation

import (
	"context"
	"log/slog"

	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/logger"
	"github.com/alquimiadental/site/core/preference"
)

// HintSource returns the runtime language setting, e.g. "en-US".
type HintSource func() string

// StaticHint returns a HintSource that always yields hint.
func StaticHint(hint string) HintSource {
	return func() string { return hint }
}

// Attempt is one navigation attempt as seen by a guard.
type Attempt struct {
	ID       string
	URL      string
	Segments []string
	Hop      int

	target target
}

// WithPath returns p followed by the attempt's query and fragment.
func (a Attempt) WithPath(p string) string {
	return a.target.with(p)
}

// Decision is a guard's verdict. An empty Redirect allows the navigation.
type Decision struct {
	Redirect string
	Locale   locale.Code
	Reason   locale.Reason
	Source   locale.Source
}

// Allowed reports whether the navigation may proceed.
func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

// Guard inspects an attempt before it is committed to history.
type Guard interface {
	Matches(segments []string) bool
	Check(ctx context.Context, a Attempt) Decision
}

// EntryGuard handles the root route. It always redirects to /{locale}, taking
// the stored preference before the runtime hint. It never persists anything.
type EntryGuard struct {
	resolver *locale.Resolver
	store    preference.Store
	hint     HintSource
	logger   *slog.Logger
}

// NewEntryGuard creates an EntryGuard.
func NewEntryGuard(r *locale.Resolver, store preference.Store, hint HintSource, log *slog.Logger) *EntryGuard {
	return &EntryGuard{resolver: r, store: store, hint: hint, logger: log}
}

// Matches implements Guard.
func (g *EntryGuard) Matches(segments []string) bool {
	return len(segments) == 0
}

// Check implements Guard.
func (g *EntryGuard) Check(ctx context.Context, a Attempt) Decision {
	stored := loadStored(ctx, g.store, g.logger)
	code, src := g.resolver.Fallback(stored, g.hint())
	return Decision{
		Redirect: a.WithPath(locale.JoinPath(code, nil)),
		Locale:   code,
		Reason:   locale.ReasonMissingPrefix,
		Source:   src,
	}
}

// NormalizerGuard handles every non-root route. It resolves the full path and
// redirects to the canonical form, keeping query and fragment.
type NormalizerGuard struct {
	resolver *locale.Resolver
	store    preference.Store
	hint     HintSource
	logger   *slog.Logger
}

// NewNormalizerGuard creates a NormalizerGuard.
func NewNormalizerGuard(r *locale.Resolver, store preference.Store, hint HintSource, log *slog.Logger) *NormalizerGuard {
	return &NormalizerGuard{resolver: r, store: store, hint: hint, logger: log}
}

// Matches implements Guard.
func (g *NormalizerGuard) Matches(segments []string) bool {
	return len(segments) > 0
}

// Check implements Guard.
func (g *NormalizerGuard) Check(ctx context.Context, a Attempt) Decision {
	var stored, hint string
	if _, ok := g.resolver.Catalog().Lookup(a.Segments[0]); !ok {
		stored = loadStored(ctx, g.store, g.logger)
		hint = g.hint()
	}

	res := g.resolver.ResolvePath(a.target.path, stored, hint)
	catalog := g.resolver.Catalog()
	if !catalog.IsSupported(string(res.Locale)) {
		res.Locale = catalog.Default()
		res.RedirectNeeded = true
	}

	d := Decision{Locale: res.Locale, Reason: res.Reason, Source: res.Source}
	if res.RedirectNeeded {
		d.Redirect = a.WithPath(res.Path())
	}
	return d
}

func loadStored(ctx context.Context, store preference.Store, log *slog.Logger) string {
	if store == nil {
		return ""
	}
	code, err := store.Load(ctx)
	if err != nil {
		log.WarnContext(ctx, "stored preference unavailable",
			logger.Component("navigation"),
			logger.Error(err),
		)
		return ""
	}
	return code
}
