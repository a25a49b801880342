package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/trigger-bot/pkg/cmd"
)

// PermissionSource resolves a user's effective permissions in a channel.
// *discordgo.Session satisfies it.
type PermissionSource interface {
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
}

// Message adapts a MessageCreate event to cmd.Message.
type Message struct {
	event  *discordgo.MessageCreate
	author *member
	bot    *member
}

// NewMessage wraps m, resolving permissions through the session and taking
// the bot identity from the session state.
func NewMessage(s *discordgo.Session, m *discordgo.MessageCreate) *Message {
	botID := ""
	if s.State != nil && s.State.User != nil {
		botID = s.State.User.ID
	}
	return NewMessageFrom(s, m, botID)
}

// NewMessageFrom wraps m with an explicit permission source and bot id.
func NewMessageFrom(src PermissionSource, m *discordgo.MessageCreate, botID string) *Message {
	msg := &Message{event: m}
	if m.Author != nil {
		msg.author = &member{id: m.Author.ID, channelID: m.ChannelID, src: src}
	}
	if botID != "" {
		msg.bot = &member{id: botID, channelID: m.ChannelID, src: src}
	}
	return msg
}

func (m *Message) Content() string   { return m.event.Content }
func (m *Message) ChannelID() string { return m.event.ChannelID }
func (m *Message) GuildID() string   { return m.event.GuildID }

func (m *Message) Author() cmd.Member {
	if m.author == nil {
		return nil
	}
	return m.author
}

func (m *Message) Bot() cmd.Member {
	if m.bot == nil {
		return nil
	}
	return m.bot
}

// Addressed reports whether the message is meant for the bot, either through
// a leading mention or the configured prefix, and returns the prefix to strip.
func (m *Message) Addressed(prefix string) (string, bool) {
	botID := ""
	if m.bot != nil {
		botID = m.bot.id
	}
	if mention := cmd.MentionPrefix(m.Content(), botID); mention != "" {
		return mention, cmd.IsUsingPrefix(m.Content(), mention, true)
	}
	return prefix, cmd.IsUsingPrefix(m.Content(), prefix, false)
}

// member resolves channel permissions once and keeps the result.
type member struct {
	id        string
	channelID string
	src       PermissionSource

	once  sync.Once
	perms int64
	err   error
}

func (m *member) ID() string { return m.id }

func (m *member) HasPermission(p cmd.Permission) bool {
	bit, ok := Bit(p)
	if !ok {
		return false
	}
	m.once.Do(func() {
		m.perms, m.err = m.src.UserChannelPermissions(m.id, m.channelID)
	})
	if m.err != nil {
		return false
	}
	return m.perms&bit == bit
}
