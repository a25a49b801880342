package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/trigger-bot/pkg/cmd"
	"github.com/keshon/trigger-bot/pkg/discord"
)

// consoleSender prints what the bot would post instead of posting it.
type consoleSender struct {
	w io.Writer
}

func (c consoleSender) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if data.Content != "" {
		if _, err := fmt.Fprintf(c.w, "[%s] %s\n", channelID, data.Content); err != nil {
			return nil, err
		}
	}
	for _, e := range data.Embeds {
		if _, err := fmt.Fprintf(c.w, "[%s] embed: %s\n", channelID, e.Description); err != nil {
			return nil, err
		}
		for _, f := range e.Fields {
			if _, err := fmt.Fprintf(c.w, "    %s: %s\n", f.Name, f.Value); err != nil {
				return nil, err
			}
		}
	}
	return &discordgo.Message{ChannelID: channelID, Content: data.Content}, nil
}

// consoleMember holds the permissions given on the command line.
type consoleMember struct {
	id      string
	granted int64
}

func (m *consoleMember) ID() string { return m.id }

func (m *consoleMember) HasPermission(p cmd.Permission) bool {
	return len(discord.Missing(m.granted, []cmd.Permission{p})) == 0
}

type consoleMessage struct {
	content string
	author  *consoleMember
	bot     *consoleMember
}

func (m *consoleMessage) Content() string    { return m.content }
func (m *consoleMessage) Author() cmd.Member { return m.author }
func (m *consoleMessage) Bot() cmd.Member    { return m.bot }
func (m *consoleMessage) ChannelID() string  { return "console" }
func (m *consoleMessage) GuildID() string    { return "console" }

// parsePermissions turns "BAN_MEMBERS,KICK_MEMBERS" into tokens.
func parsePermissions(s string) []cmd.Permission {
	var out []cmd.Permission
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
			out = append(out, cmd.Permission(part))
		}
	}
	return out
}

// grantBits ORs the bits of perms together, rejecting unknown tokens.
func grantBits(perms []cmd.Permission) (int64, error) {
	var bits int64
	for _, p := range perms {
		bit, ok := discord.Bit(p)
		if !ok {
			return 0, fmt.Errorf("unknown permission token %q", p)
		}
		bits |= bit
	}
	return bits, nil
}
