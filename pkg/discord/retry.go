package discord

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/trigger-bot/pkg/cmd"
)

// RetryConfig configures SendWithRetry.
type RetryConfig struct {
	MaxAttempts  int           // attempts per message, at least 1
	InitialDelay time.Duration // delay before the second attempt
	MaxDelay     time.Duration
	Multiplier   float64 // backoff growth between attempts
	Jitter       bool
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  4,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
		Jitter:       true,
	}
}

// SendWithRetry is Send with exponential backoff on rate limits and server
// errors. Other failures and a cancelled ctx stop it immediately. Messages
// already delivered are not sent again.
func SendWithRetry(ctx context.Context, s Sender, channelID string, r cmd.Reply, cfg RetryConfig) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	for i, data := range Render(r) {
		err := retry(ctx, cfg, func() error {
			_, err := s.ChannelMessageSendComplex(channelID, data)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to send reply %d to channel %s: %w", i, channelID, err)
		}
	}
	return nil
}

func retry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	delay := cfg.InitialDelay
	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if !retryable(err) || attempt == cfg.MaxAttempts {
			return err
		}

		wait := delay
		if cfg.Jitter && wait > 0 {
			wait += time.Duration(rand.Int63n(int64(wait)/2 + 1))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return err
}

// retryable is true for 429 and 5xx REST responses.
func retryable(err error) bool {
	var rest *discordgo.RESTError
	if !errors.As(err, &rest) || rest.Response == nil {
		return false
	}
	code := rest.Response.StatusCode
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
