package cmd

import (
	"strings"
	"testing"
)

var testConfig = Config{Prefix: "!", Developers: []string{"dev-1", "dev-2"}}

func TestIsAllowed_DeveloperAlwaysPasses(t *testing.T) {
	c := New(Options{
		Name:           "nuke",
		DevOnly:        true,
		Permissions:    []Permission{"ADMINISTRATOR"},
		BotPermissions: []Permission{"MANAGE_MESSAGES"},
	}, nil)
	msg := &fakeMessage{author: newMember("dev-2"), bot: newMember("bot")}

	ok, reason := IsAllowed(msg, c, testConfig)
	if !ok || reason != "" {
		t.Errorf("IsAllowed = (%v, %q), want (true, \"\")", ok, reason)
	}
}

func TestIsAllowed_DevOnly(t *testing.T) {
	c := New(Options{Name: "eval", DevOnly: true}, nil)
	msg := &fakeMessage{author: newMember("user-1", "ADMINISTRATOR"), bot: newMember("bot")}

	ok, reason := IsAllowed(msg, c, testConfig)
	if ok {
		t.Fatal("non-developer allowed to run developer-only command")
	}
	if reason != DeniedDevOnly {
		t.Errorf("reason = %q, want %q", reason, DeniedDevOnly)
	}
}

func TestIsAllowed_OpenCommand(t *testing.T) {
	c := New(Options{Name: "ping"}, nil)
	msg := &fakeMessage{author: newMember("user-1"), bot: newMember("bot")}

	if ok, reason := IsAllowed(msg, c, testConfig); !ok {
		t.Errorf("open command denied: %q", reason)
	}
}

// Missing even one required permission denies.
func TestIsAllowed_UserPermissions(t *testing.T) {
	c := New(Options{Name: "ban", Permissions: []Permission{"BAN_MEMBERS", "KICK_MEMBERS"}}, nil)

	tests := []struct {
		name    string
		author  *fakeMember
		allowed bool
		missing []string
	}{
		{"holds all", newMember("u", "BAN_MEMBERS", "KICK_MEMBERS"), true, nil},
		{"holds one", newMember("u", "KICK_MEMBERS"), false, []string{"BAN_MEMBERS"}},
		{"holds none", newMember("u"), false, []string{"BAN_MEMBERS", "KICK_MEMBERS"}},
		{"no author", nil, false, []string{"BAN_MEMBERS", "KICK_MEMBERS"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &fakeMessage{author: tt.author, bot: newMember("bot")}
			ok, reason := IsAllowed(msg, c, testConfig)
			if ok != tt.allowed {
				t.Fatalf("allowed = %v, want %v (reason %q)", ok, tt.allowed, reason)
			}
			if ok {
				return
			}
			if !strings.HasPrefix(reason, DeniedPermission) {
				t.Errorf("reason = %q, want prefix %q", reason, DeniedPermission)
			}
			for _, p := range tt.missing {
				if !strings.Contains(reason, p) {
					t.Errorf("reason %q does not mention %s", reason, p)
				}
			}
		})
	}
}

func TestIsAllowed_BotPermissions(t *testing.T) {
	c := New(Options{Name: "ban", BotPermissions: []Permission{"BAN_MEMBERS", "SEND_MESSAGES"}}, nil)
	msg := &fakeMessage{author: newMember("user-1"), bot: newMember("bot", "SEND_MESSAGES")}

	ok, reason := IsAllowed(msg, c, testConfig)
	if ok {
		t.Fatal("allowed although the bot lacks BAN_MEMBERS")
	}
	if !strings.HasPrefix(reason, DeniedBot) {
		t.Errorf("reason = %q, want prefix %q", reason, DeniedBot)
	}
	if !strings.Contains(reason, "BAN_MEMBERS\n") {
		t.Errorf("reason %q does not list BAN_MEMBERS on its own line", reason)
	}
	if strings.Contains(reason, "SEND_MESSAGES") {
		t.Errorf("reason %q lists a permission the bot holds", reason)
	}
}

func TestIsAllowed_UserCheckedBeforeBot(t *testing.T) {
	c := New(Options{
		Name:           "ban",
		Permissions:    []Permission{"BAN_MEMBERS"},
		BotPermissions: []Permission{"BAN_MEMBERS"},
	}, nil)
	msg := &fakeMessage{author: newMember("user-1"), bot: newMember("bot")}

	_, reason := IsAllowed(msg, c, testConfig)
	if !strings.HasPrefix(reason, DeniedPermission) {
		t.Errorf("reason = %q, want the user denial first", reason)
	}
}

func TestConfig_IsDeveloper(t *testing.T) {
	if !testConfig.IsDeveloper("dev-1") {
		t.Error("dev-1 not recognised")
	}
	if testConfig.IsDeveloper("user-1") {
		t.Error("user-1 treated as developer")
	}
	if (Config{Developers: []string{""}}).IsDeveloper("") {
		t.Error("empty id treated as developer")
	}
}
