package navigation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alquimiadental/site/core/locale"
)

// target is a parsed navigation URL. Segments stay escaped so rebuilding the
// path never changes the encoding of the remainder.
type target struct {
	path     string
	segments []string
	query    string
	fragment string
	hasQuery bool
	hasFrag  bool
}

func parseTarget(raw string) (target, error) {
	if raw == "" {
		raw = "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return target{}, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	return target{
		path:     u.EscapedPath(),
		segments: locale.SplitPath(u.EscapedPath()),
		query:    u.RawQuery,
		fragment: u.EscapedFragment(),
		hasQuery: u.ForceQuery || u.RawQuery != "",
		hasFrag:  strings.Contains(raw, "#"),
	}, nil
}

// with renders path followed by the target's query and fragment.
func (t target) with(path string) string {
	var b strings.Builder
	b.WriteString(path)
	if t.hasQuery {
		b.WriteByte('?')
		b.WriteString(t.query)
	}
	if t.hasFrag {
		b.WriteByte('#')
		b.WriteString(t.fragment)
	}
	return b.String()
}

// SwitchURL computes the URL a locale switch navigates to: every leading
// locale segment of current is replaced by target, query and fragment are kept.
func SwitchURL(r *locale.Resolver, current string, code locale.Code) (string, error) {
	t, err := parseTarget(current)
	if err != nil {
		return "", err
	}
	_, _, remainder := r.Strip(t.segments)
	return t.with(locale.JoinPath(code, remainder)), nil
}
