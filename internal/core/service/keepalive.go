package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/pkg/metrics"
)

// DefaultKeepAliveInterval is how often the backend is pinged.
const DefaultKeepAliveInterval = 5 * time.Minute

// pingFailed is what a failed ping is reported as.
var pingFailed = domain.Heartbeat{Status: "error", Message: "Ping failed"}

// KeepAlive pings the backend on a fixed interval so it is not put to sleep
// by its host. Nothing else depends on the result.
type KeepAlive struct {
	api      ports.KeepAliveAPI
	interval time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	running *KeepAliveHandle
}

func NewKeepAlive(api ports.KeepAliveAPI, interval time.Duration, log zerolog.Logger) *KeepAlive {
	if interval <= 0 {
		interval = DefaultKeepAliveInterval
	}
	return &KeepAlive{api: api, interval: interval, log: log}
}

// KeepAliveHandle stops a running keep-alive loop.
type KeepAliveHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the loop and waits for it to exit. Safe to call more than once.
func (h *KeepAliveHandle) Stop() {
	h.cancel()
	<-h.done
}

// Done is closed once the loop has exited.
func (h *KeepAliveHandle) Done() <-chan struct{} { return h.done }

// Start pings once immediately, then every interval until the handle is
// stopped or ctx is cancelled. Starting an already running loop returns
// the existing handle.
func (k *KeepAlive) Start(ctx context.Context) *KeepAliveHandle {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.running != nil {
		select {
		case <-k.running.done:
		default:
			return k.running
		}
	}

	loopCtx, cancel := context.WithCancel(ctx)
	h := &KeepAliveHandle{cancel: cancel, done: make(chan struct{})}
	k.running = h

	go k.loop(loopCtx, h.done)
	k.log.Info().Dur("interval", k.interval).Msg("keep-alive started")
	return h
}

func (k *KeepAlive) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	k.Ping(ctx)

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			k.log.Info().Msg("keep-alive stopped")
			return
		case <-ticker.C:
			k.Ping(ctx)
		}
	}
}

// Ping performs a single keep-alive request. Failures are logged and
// returned as an error heartbeat, never as an error.
func (k *KeepAlive) Ping(ctx context.Context) domain.Heartbeat {
	hb, err := k.api.Ping(ctx)
	if err != nil {
		if ctx.Err() == nil {
			k.log.Warn().Err(err).Msg("keep-alive ping failed")
		}
		metrics.KeepAlivePingsTotal.WithLabelValues("error").Inc()
		return pingFailed
	}
	if hb == nil || !hb.Alive() {
		k.log.Warn().Interface("heartbeat", hb).Msg("keep-alive returned unexpected status")
		metrics.KeepAlivePingsTotal.WithLabelValues("unexpected").Inc()
		if hb == nil {
			return pingFailed
		}
		return *hb
	}
	k.log.Debug().Str("message", hb.Message).Msg("backend alive")
	metrics.KeepAlivePingsTotal.WithLabelValues("alive").Inc()
	return *hb
}
