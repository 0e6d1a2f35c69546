package navigation

import (
	"context"

	"github.com/alquimiadental/site/core/logger"
	"github.com/alquimiadental/site/core/metrics"
)

// SwitchTo changes the active locale. It reports false without side effects
// when target is unsupported or already active. Otherwise the preference is
// saved first, then the current URL is rewritten under target and navigated
// to, replacing the history entry.
//
// A failed save is logged and the switch still happens.
func (n *Navigator) SwitchTo(ctx context.Context, target string) (Result, bool, error) {
	n.mu.Lock()
	res, switched, err := n.switchTo(ctx, target)
	n.mu.Unlock()
	if err != nil || !switched {
		return res, switched, err
	}

	n.state.Set(res.Locale)
	return res, true, nil
}

func (n *Navigator) switchTo(ctx context.Context, target string) (Result, bool, error) {
	code, ok := n.resolver.Catalog().Lookup(target)
	if !ok {
		n.logger.DebugContext(ctx, "locale switch ignored: unsupported locale",
			logger.Component("navigation"),
			logger.Locale(target),
		)
		return Result{}, false, nil
	}
	if code == n.state.Current() {
		return Result{URL: n.history.Current(), Locale: code}, false, nil
	}

	if err := n.store.Save(ctx, string(code)); err != nil {
		n.logger.WarnContext(ctx, "failed to persist preferred locale",
			logger.Component("navigation"),
			logger.Locale(string(code)),
			logger.Error(err),
		)
	}

	next, err := SwitchURL(n.resolver, n.history.Current(), code)
	if err != nil {
		return Result{}, false, err
	}
	n.metrics.ObserveRedirect(metrics.OriginSwitch, "switch")

	res, err := n.run(ctx, next, true)
	if err != nil {
		return res, false, err
	}
	return res, true, nil
}
