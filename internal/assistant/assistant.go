package assistant

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vaishnav/edutech_backend_v1/internal/metrics"
)

type Source string

const (
	SourceGenerator Source = "generator"
	SourceFallback  Source = "fallback"
)

type Reply struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

// Assistant prefers the generator and falls back to Respond on any failure.
type Assistant struct {
	Generator Generator // nil disables the generator
	Timeout   time.Duration
	Log       *zap.Logger
	Metrics   *metrics.Registry
}

func New(gen Generator, timeout time.Duration, log *zap.Logger, m *metrics.Registry) *Assistant {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assistant{Generator: gen, Timeout: timeout, Log: log, Metrics: m}
}

// Reply never fails: generator errors are logged and replaced by the keyword answer.
// A cancelled parent context still yields the fallback text.
func (a *Assistant) Reply(ctx context.Context, query string, data Context) Reply {
	if a.Generator == nil {
		return a.fallback(query, data, "disabled", nil)
	}

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	gctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := a.Generator.Generate(gctx, BuildPrompt(query, data))
	if err != nil {
		return a.fallback(query, data, reason(gctx, err), err)
	}
	a.count(SourceGenerator, "")
	return Reply{Text: text, Source: SourceGenerator}
}

func (a *Assistant) fallback(query string, data Context, why string, err error) Reply {
	if err != nil {
		a.Log.Warn("assistant generator failed, using fallback", zap.String("reason", why), zap.Error(err))
	}
	a.count(SourceFallback, why)
	return Reply{Text: Respond(query, data), Source: SourceFallback}
}

func (a *Assistant) count(src Source, why string) {
	if a.Metrics == nil {
		return
	}
	a.Metrics.AssistantReplies.WithLabelValues(string(src)).Inc()
	if why != "" {
		a.Metrics.AssistantFallback.WithLabelValues(why).Inc()
	}
}

func reason(ctx context.Context, err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, ErrUpstreamStatus):
		return "status"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	}
	return "network"
}
