package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Origins label where a locale decision was taken.
const (
	OriginServer = "server"
	OriginClient = "client"
	OriginSwitch = "switch"
)

// Recorder receives locale routing observations.
type Recorder interface {
	ObserveRedirect(origin, reason string)
	ObserveResolution(origin, locale string)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveRedirect(string, string)   {}
func (Nop) ObserveResolution(string, string) {}

// Prometheus exports observations as counters.
type Prometheus struct {
	redirects   *prometheus.CounterVec
	resolutions *prometheus.CounterVec
}

// NewPrometheus creates the counters and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p := &Prometheus{
		redirects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "locale_redirects_total",
				Help:      "Locale normalization redirects by origin and reason",
			},
			[]string{"origin", "reason"},
		),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "locale_resolutions_total",
				Help:      "Navigations allowed per resolved locale",
			},
			[]string{"origin", "locale"},
		),
	}

	for _, c := range []prometheus.Collector{p.redirects, p.resolutions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ObserveRedirect implements Recorder.
func (p *Prometheus) ObserveRedirect(origin, reason string) {
	p.redirects.WithLabelValues(origin, reason).Inc()
}

// ObserveResolution implements Recorder.
func (p *Prometheus) ObserveResolution(origin, locale string) {
	p.resolutions.WithLabelValues(origin, locale).Inc()
}
