package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/trigger-bot/pkg/cmd"
)

type permission struct {
	bit  int64
	name string
}

// permissions maps the tokens commands declare to Discord permission bits.
var permissions = map[cmd.Permission]permission{
	"CREATE_INSTANT_INVITE":               {discordgo.PermissionCreateInstantInvite, "Create Instant Invite"},
	"KICK_MEMBERS":                        {discordgo.PermissionKickMembers, "Kick Members"},
	"BAN_MEMBERS":                         {discordgo.PermissionBanMembers, "Ban Members"},
	"ADMINISTRATOR":                       {discordgo.PermissionAdministrator, "Administrator"},
	"MANAGE_CHANNELS":                     {discordgo.PermissionManageChannels, "Manage Channels"},
	"MANAGE_GUILD":                        {discordgo.PermissionManageGuild, "Manage Server"},
	"ADD_REACTIONS":                       {discordgo.PermissionAddReactions, "Add Reactions"},
	"VIEW_AUDIT_LOG":                      {discordgo.PermissionViewAuditLogs, "View Audit Logs"},
	"PRIORITY_SPEAKER":                    {discordgo.PermissionVoicePrioritySpeaker, "Priority Speaker"},
	"STREAM":                              {discordgo.PermissionVoiceStreamVideo, "Stream Video"},
	"VIEW_CHANNEL":                        {discordgo.PermissionViewChannel, "View Channel"},
	"SEND_MESSAGES":                       {discordgo.PermissionSendMessages, "Send Messages"},
	"SEND_TTS_MESSAGES":                   {discordgo.PermissionSendTTSMessages, "Send TTS Messages"},
	"MANAGE_MESSAGES":                     {discordgo.PermissionManageMessages, "Manage Messages"},
	"EMBED_LINKS":                         {discordgo.PermissionEmbedLinks, "Embed Links"},
	"ATTACH_FILES":                        {discordgo.PermissionAttachFiles, "Attach Files"},
	"READ_MESSAGE_HISTORY":                {discordgo.PermissionReadMessageHistory, "Read Message History"},
	"MENTION_EVERYONE":                    {discordgo.PermissionMentionEveryone, "Mention Everyone"},
	"USE_EXTERNAL_EMOJIS":                 {discordgo.PermissionUseExternalEmojis, "Use External Emojis"},
	"VIEW_GUILD_INSIGHTS":                 {discordgo.PermissionViewGuildInsights, "View Guild Insights"},
	"CONNECT":                             {discordgo.PermissionVoiceConnect, "Connect to Voice Channel"},
	"SPEAK":                               {discordgo.PermissionVoiceSpeak, "Speak"},
	"MUTE_MEMBERS":                        {discordgo.PermissionVoiceMuteMembers, "Mute Members"},
	"DEAFEN_MEMBERS":                      {discordgo.PermissionVoiceDeafenMembers, "Deafen Members"},
	"MOVE_MEMBERS":                        {discordgo.PermissionVoiceMoveMembers, "Move Members"},
	"USE_VAD":                             {discordgo.PermissionVoiceUseVAD, "Use Voice Activity Detection"},
	"CHANGE_NICKNAME":                     {discordgo.PermissionChangeNickname, "Change Nickname"},
	"MANAGE_NICKNAMES":                    {discordgo.PermissionManageNicknames, "Manage Nicknames"},
	"MANAGE_ROLES":                        {discordgo.PermissionManageRoles, "Manage Roles"},
	"MANAGE_WEBHOOKS":                     {discordgo.PermissionManageWebhooks, "Manage Webhooks"},
	"MANAGE_EMOJIS":                       {discordgo.PermissionManageGuildExpressions, "Manage Expressions (Emojis, Stickers, Sounds)"},
	"USE_APPLICATION_COMMANDS":            {discordgo.PermissionUseApplicationCommands, "Use Application Commands"},
	"MANAGE_THREADS":                      {discordgo.PermissionManageThreads, "Manage Threads"},
	"MANAGE_EVENTS":                       {discordgo.PermissionManageEvents, "Manage Events"},
	"MODERATE_MEMBERS":                    {discordgo.PermissionModerateMembers, "Moderate Members"},
	"CREATE_PUBLIC_THREADS":               {discordgo.PermissionCreatePublicThreads, "Create Public Threads"},
	"CREATE_PRIVATE_THREADS":              {discordgo.PermissionCreatePrivateThreads, "Create Private Threads"},
	"USE_EXTERNAL_STICKERS":               {discordgo.PermissionUseExternalStickers, "Use External Stickers"},
	"SEND_MESSAGES_IN_THREADS":            {discordgo.PermissionSendMessagesInThreads, "Send Messages in Threads"},
	"USE_EMBEDDED_ACTIVITIES":             {discordgo.PermissionUseEmbeddedActivities, "Use Embedded Activities"},
	"REQUEST_TO_SPEAK":                    {discordgo.PermissionVoiceRequestToSpeak, "Request to Speak"},
	"VIEW_CREATOR_MONETIZATION_ANALYTICS": {discordgo.PermissionViewCreatorMonetizationAnalytics, "View Creator Monetization Analytics"},
	"USE_SOUNDBOARD":                      {discordgo.PermissionUseSoundboard, "Use Soundboard"},
	"CREATE_GUILD_EXPRESSIONS":            {discordgo.PermissionCreateGuildExpressions, "Create Expressions (Emojis, Stickers, Sounds)"},
	"CREATE_EVENTS":                       {discordgo.PermissionCreateEvents, "Create Events"},
	"USE_EXTERNAL_SOUNDS":                 {discordgo.PermissionUseExternalSounds, "Use External Sounds"},
	"SEND_VOICE_MESSAGES":                 {discordgo.PermissionSendVoiceMessages, "Send Voice Messages"},
	"SEND_POLLS":                          {permissionSendPolls, "Send Polls"},
	"USE_EXTERNAL_APPS":                   {permissionUseExternalApps, "Use External Apps"},
}

// Bits Discord added after the pinned discordgo release.
const (
	permissionSendPolls       int64 = 1 << 49
	permissionUseExternalApps int64 = 1 << 50
)

// Bit returns the Discord permission bit for token p.
func Bit(p cmd.Permission) (int64, bool) {
	perm, ok := permissions[p]
	return perm.bit, ok
}

// Describe returns a human-readable name for p, or the token itself if unknown.
func Describe(p cmd.Permission) string {
	if perm, ok := permissions[p]; ok {
		return perm.name
	}
	return string(p)
}

// Missing lists the tokens in required whose bits are absent from granted.
// Unknown tokens are always missing.
func Missing(granted int64, required []cmd.Permission) []cmd.Permission {
	var out []cmd.Permission
	for _, p := range required {
		bit, ok := Bit(p)
		if !ok || granted&bit == 0 {
			out = append(out, p)
		}
	}
	return out
}

func unknownPermission(p cmd.Permission) error {
	return fmt.Errorf("unknown permission token %q", p)
}

// Validate checks that every token c declares is known, so typos surface at
// startup instead of as permanent denials.
func Validate(c *cmd.Command) error {
	var errs []error
	for _, list := range [][]cmd.Permission{c.Permissions, c.BotPermissions} {
		for _, p := range list {
			if _, ok := Bit(p); !ok {
				errs = append(errs, unknownPermission(p))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("command %s: %w", c.Name, err)
	}
	return nil
}
