package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/trigger-bot/pkg/cmd"
)

// EmbedColor is the accent colour of every embed the bot builds.
const EmbedColor = 0xb01e66

// Sender posts messages to a channel. *discordgo.Session satisfies it.
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Render turns a reply into the messages to post, in order.
func Render(r cmd.Reply) []*discordgo.MessageSend {
	var out []*discordgo.MessageSend
	for _, item := range cmd.Flatten(r) {
		switch v := item.(type) {
		case cmd.Text:
			out = append(out, &discordgo.MessageSend{Content: string(v)})
		case cmd.Embed:
			out = append(out, &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{ToMessageEmbed(v)}})
		}
	}
	return out
}

// Send posts every message of r to channelID and stops at the first failure.
func Send(s Sender, channelID string, r cmd.Reply) error {
	for i, data := range Render(r) {
		if _, err := s.ChannelMessageSendComplex(channelID, data); err != nil {
			return fmt.Errorf("failed to send reply %d to channel %s: %w", i, channelID, err)
		}
	}
	return nil
}

// ToMessageEmbed converts a structured reply to Discord's embed type.
// A zero colour becomes EmbedColor.
func ToMessageEmbed(e cmd.Embed) *discordgo.MessageEmbed {
	me := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Color:       e.Color,
	}
	if me.Color == 0 {
		me.Color = EmbedColor
	}
	for _, f := range e.Fields {
		me.Fields = append(me.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	if e.Footer != "" {
		me.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer}
	}
	return me
}

// NewEmbed builds a structured reply in the bot's colour.
func NewEmbed(title, description string) cmd.Embed {
	return cmd.Embed{Title: title, Description: description, Color: EmbedColor}
}

// DenialEmbed presents an IsAllowed reason as an embed, with permission
// tokens on their own lines spelled out by name.
func DenialEmbed(reason string) cmd.Embed {
	lines := strings.Split(strings.TrimRight(reason, "\n"), "\n")
	e := NewEmbed("", lines[0])
	for _, line := range lines[1:] {
		p := cmd.Permission(strings.TrimSpace(line))
		if p == "" {
			continue
		}
		e.Fields = append(e.Fields, cmd.EmbedField{
			Name:  Describe(p),
			Value: "`" + string(p) + "`",
		})
	}
	return e
}
