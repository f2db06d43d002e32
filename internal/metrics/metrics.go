package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the application counters. A fresh Registry per test keeps
// counts isolated from the default registerer.
type Registry struct {
	reg *prometheus.Registry

	Logins            *prometheus.CounterVec
	AssistantReplies  *prometheus.CounterVec
	AssistantFallback *prometheus.CounterVec
	Uploads           *prometheus.CounterVec
}

func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edutech_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		AssistantReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edutech_assistant_replies_total",
			Help: "Assistant replies by source (generator or fallback).",
		}, []string{"source"}),
		AssistantFallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edutech_assistant_fallbacks_total",
			Help: "Generator failures that fell back to the keyword responder.",
		}, []string{"reason"}),
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edutech_uploads_total",
			Help: "Accepted uploads by kind.",
		}, []string{"kind"}),
	}
	r.reg.MustRegister(
		r.Logins,
		r.AssistantReplies,
		r.AssistantFallback,
		r.Uploads,
		collectors.NewGoCollector(),
	)
	return r
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
