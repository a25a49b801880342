package cmd

import "strings"

// IsUsingPrefix reports whether content is addressed to the bot: either the
// bot was mentioned or content starts with usedPrefix. Case and surrounding
// whitespace are ignored on both sides.
func IsUsingPrefix(content, usedPrefix string, mentioningBot bool) bool {
	if mentioningBot {
		return true
	}
	content = strings.ToLower(strings.TrimSpace(content))
	usedPrefix = strings.ToLower(strings.TrimSpace(usedPrefix))
	return strings.HasPrefix(content, usedPrefix)
}

// MentionPrefix returns the mention of botID that content starts with
// ("<@id>" or "<@!id>"), or "" if content does not start with one.
func MentionPrefix(content, botID string) string {
	if botID == "" {
		return ""
	}
	content = strings.TrimSpace(content)
	for _, m := range []string{"<@" + botID + ">", "<@!" + botID + ">"} {
		if strings.HasPrefix(content, m) {
			return m
		}
	}
	return ""
}

// MentionsBot reports whether content starts with a mention of botID.
func MentionsBot(content, botID string) bool {
	return MentionPrefix(content, botID) != ""
}
