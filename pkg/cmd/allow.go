package cmd

import "strings"

// Denial reasons returned by IsAllowed. DeniedPermission and DeniedBot are
// followed by the missing tokens, one per line.
const (
	// DeniedDevOnly stops non-developers from running developer-only commands.
	DeniedDevOnly = "This command is for developers only."
	// DeniedPermission means the author lacks a required permission.
	DeniedPermission = "I don't think you have permission to do this."
	// DeniedBot means the bot itself lacks a required permission.
	DeniedBot = "I think I'm missing some permissions. Please make sure I have the following permissions in this server:"
)

// IsAllowed decides whether the author of msg may run c. It returns true and
// an empty reason, or false and a message meant for the user.
//
// Rules, first match wins: developers always pass; developer-only commands
// stop everyone else; the author must hold every permission in c.Permissions;
// the bot must hold every permission in c.BotPermissions.
func IsAllowed(msg Message, c *Command, cfg Config) (bool, string) {
	author := msg.Author()

	if author != nil && cfg.IsDeveloper(author.ID()) {
		return true, ""
	}
	if c.DevOnly {
		return false, DeniedDevOnly
	}

	if missing := missingPermissions(author, c.Permissions); len(missing) > 0 {
		return false, DeniedPermission + "\n" + joinLines(missing)
	}

	if missing := missingPermissions(msg.Bot(), c.BotPermissions); len(missing) > 0 {
		return false, DeniedBot + "\n" + joinLines(missing)
	}

	return true, ""
}

// A nil member holds nothing.
func missingPermissions(m Member, required []Permission) []Permission {
	var missing []Permission
	for _, p := range required {
		if m == nil || !m.HasPermission(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

func joinLines(perms []Permission) string {
	var b strings.Builder
	for _, p := range perms {
		b.WriteString(string(p))
		b.WriteByte('\n')
	}
	return b.String()
}
