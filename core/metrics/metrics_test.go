package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alquimiadental/site/core/metrics"
)

func TestPrometheusCounters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPrometheus(reg, "site")
	require.NoError(t, err)

	rec.ObserveRedirect(metrics.OriginServer, "missing_prefix")
	rec.ObserveRedirect(metrics.OriginServer, "missing_prefix")
	rec.ObserveRedirect(metrics.OriginClient, "stacked_prefix")
	rec.ObserveResolution(metrics.OriginServer, "es")

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{"site_locale_redirects_total", "site_locale_resolutions_total"}, names)

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "site_locale_redirects_total"))

	expected := `
# HELP site_locale_redirects_total Locale normalization redirects by origin and reason
# TYPE site_locale_redirects_total counter
site_locale_redirects_total{origin="client",reason="stacked_prefix"} 1
site_locale_redirects_total{origin="server",reason="missing_prefix"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "site_locale_redirects_total"))
}

func TestPrometheusDuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := metrics.NewPrometheus(reg, "site")
	require.NoError(t, err)

	_, err = metrics.NewPrometheus(reg, "site")
	assert.Error(t, err)
}

func TestNopRecorder(t *testing.T) {
	t.Parallel()

	var rec metrics.Recorder = metrics.Nop{}
	assert.NotPanics(t, func() {
		rec.ObserveRedirect(metrics.OriginSwitch, "switch")
		rec.ObserveResolution(metrics.OriginSwitch, "en")
	})
}
