package cmd

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/keshon/trigger-bot/pkg/logger"
)

// Middleware wraps a handler (e.g. logging, permission check, rate limit).
type Middleware func(Handler) Handler

// Apply applies middlewares in order; the first in the list is the outermost.
func Apply(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// WithAuthorization runs IsAllowed for c before the handler. A denial is
// returned as a Text reply and the handler is not called.
func WithAuthorization(c *Command, cfg Config) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, msg Message, args []string) (Reply, error) {
			if ok, reason := IsAllowed(msg, c, cfg); !ok {
				return Text(reason), nil
			}
			return next(ctx, msg, args)
		}
	}
}

// WithLogging logs every invocation of the named command under a fresh id.
// A nil log discards everything.
func WithLogging(log logger.Logger, name string) Middleware {
	if log == nil {
		log = logger.Noop()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, msg Message, args []string) (Reply, error) {
			l := log.With(
				zap.String("command", name),
				zap.String("invocation", uuid.NewString()),
				zap.String("guild", msg.GuildID()),
				zap.String("channel", msg.ChannelID()),
			)
			if a := msg.Author(); a != nil {
				l = l.With(zap.String("user", a.ID()))
			}

			start := time.Now()
			l.Debug("command started", zap.Strings("args", args))
			reply, err := next(ctx, msg, args)
			if err != nil {
				l.Error("command failed", zap.Error(err), zap.Duration("took", time.Since(start)))
				return reply, err
			}
			l.Info("command finished", zap.Duration("took", time.Since(start)))
			return reply, nil
		}
	}
}

// CooldownReply is sent to authors who exceed their rate limit.
const CooldownReply = "Slow down, you're using this command too often."

// WithRateLimit allows each author one call per every, with bursts of up to
// burst calls. Messages without an author are not limited. Limiters of
// authors idle long enough to be full again are dropped.
func WithRateLimit(every time.Duration, burst int) Middleware {
	limits := newLimiterSet(every, burst, time.Now)
	return func(next Handler) Handler {
		return func(ctx context.Context, msg Message, args []string) (Reply, error) {
			a := msg.Author()
			if a == nil || every <= 0 {
				return next(ctx, msg, args)
			}
			if !limits.allow(a.ID()) {
				return Text(CooldownReply), nil
			}
			return next(ctx, msg, args)
		}
	}
}

type limiterEntry struct {
	lim  *rate.Limiter
	last time.Time
}

// limiterSet keeps one token bucket per author. An entry unused for idle
// (every*burst) has refilled completely, so forgetting it changes nothing.
type limiterSet struct {
	mu        sync.Mutex
	every     time.Duration
	burst     int
	idle      time.Duration
	now       func() time.Time
	lastSweep time.Time
	entries   map[string]*limiterEntry
}

func newLimiterSet(every time.Duration, burst int, now func() time.Time) *limiterSet {
	if burst < 1 {
		burst = 1
	}
	return &limiterSet{
		every:     every,
		burst:     burst,
		idle:      every * time.Duration(burst),
		now:       now,
		lastSweep: now(),
		entries:   make(map[string]*limiterEntry),
	}
}

func (s *limiterSet) allow(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.idle {
		s.sweep(now)
	}

	e, ok := s.entries[id]
	if !ok {
		e = &limiterEntry{lim: rate.NewLimiter(rate.Every(s.every), s.burst)}
		s.entries[id] = e
	}
	e.last = now
	return e.lim.AllowN(now, 1)
}

// sweep runs at most once per idle period, so its cost is spread over calls.
func (s *limiterSet) sweep(now time.Time) {
	for id, e := range s.entries {
		if now.Sub(e.last) >= s.idle {
			delete(s.entries, id)
		}
	}
	s.lastSweep = now
}

func (s *limiterSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Handler returns c.Run wrapped with logging, rate limiting and authorization,
// in that order from the outside in.
func (c *Command) Handler(cfg Config, log logger.Logger) Handler {
	return Apply(c.Run,
		WithLogging(log, c.Name),
		WithRateLimit(cfg.RateEvery, cfg.RateBurst),
		WithAuthorization(c, cfg),
	)
}
