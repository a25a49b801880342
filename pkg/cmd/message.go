package cmd

import "time"

// Member is whoever sent a message, or the bot itself, inside one channel.
type Member interface {
	ID() string
	HasPermission(p Permission) bool
}

// Message is the part of an incoming chat message the helpers need.
// Adapters (Discord, tests) supply the implementation.
type Message interface {
	Content() string
	Author() Member
	// Bot is the bot's own member in the message's guild.
	Bot() Member
	ChannelID() string
	GuildID() string
}

// Config is passed to the helpers explicitly: the fallback prefix, the
// developer ids that bypass every check. RateEvery and RateBurst feed
// WithRateLimit; a zero RateEvery turns limiting off.
type Config struct {
	Prefix     string
	Developers []string
	RateEvery  time.Duration
	RateBurst  int
}

// IsDeveloper reports whether id is listed in Developers.
func (c Config) IsDeveloper(id string) bool {
	if id == "" {
		return false
	}
	for _, d := range c.Developers {
		if d == id {
			return true
		}
	}
	return false
}
