package observability

import (
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "paramlink"

// Metrics holds the collectors fed by control hooks.
type Metrics struct {
	Selections *prometheus.CounterVec
	Bindings   prometheus.Counter
	Unbindings prometheus.Counter
	Bound      *prometheus.GaugeVec
	Widgets    prometheus.Gauge
	Errors     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_total",
			Help:      "Committed selection changes per level.",
		}, []string{"level"}),
		Bindings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bindings_total",
			Help:      "Times a control bound to a remote parameter.",
		}),
		Unbindings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unbindings_total",
			Help:      "Times a control dropped its remote parameter.",
		}),
		Bound: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bound",
			Help:      "1 while the control is bound, 0 otherwise.",
		}, []string{"control"}),
		Widgets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "widgets_active",
			Help:      "Live slider widgets.",
		}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failures contained at control boundaries.",
		}, []string{"component", "op"}),
	}
	if reg != nil {
		reg.MustRegister(m.Selections, m.Bindings, m.Unbindings, m.Bound, m.Widgets, m.Errors)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSelect: func(e *domain.SelectionEvent) {
			m.Selections.WithLabelValues(e.Level.String()).Inc()
		},
		OnBind: func(e *domain.BindingEvent) {
			m.Bindings.Inc()
			m.Bound.WithLabelValues(e.ControlID).Set(1)
		},
		OnUnbind: func(e *domain.BindingEvent) {
			m.Unbindings.Inc()
			m.Bound.WithLabelValues(e.ControlID).Set(0)
		},
		OnAcquire: func(*domain.WidgetEvent) { m.Widgets.Inc() },
		OnRelease: func(*domain.WidgetEvent) { m.Widgets.Dec() },
		OnError: func(e *domain.ErrorEvent) {
			m.Errors.WithLabelValues(e.Component, e.Op).Inc()
		},
	}
}

// Chain returns hooks that call each of hooks in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSelect: func(e *domain.SelectionEvent) {
			for _, h := range hooks {
				if h.OnSelect != nil {
					h.OnSelect(e)
				}
			}
		},
		OnBind: func(e *domain.BindingEvent) {
			for _, h := range hooks {
				if h.OnBind != nil {
					h.OnBind(e)
				}
			}
		},
		OnUnbind: func(e *domain.BindingEvent) {
			for _, h := range hooks {
				if h.OnUnbind != nil {
					h.OnUnbind(e)
				}
			}
		},
		OnAcquire: func(e *domain.WidgetEvent) {
			for _, h := range hooks {
				if h.OnAcquire != nil {
					h.OnAcquire(e)
				}
			}
		},
		OnRelease: func(e *domain.WidgetEvent) {
			for _, h := range hooks {
				if h.OnRelease != nil {
					h.OnRelease(e)
				}
			}
		},
		OnError: func(e *domain.ErrorEvent) {
			for _, h := range hooks {
				if h.OnError != nil {
					h.OnError(e)
				}
			}
		},
	}
}
