package cmd

type fakeMember struct {
	id    string
	perms map[Permission]bool
}

func (m *fakeMember) ID() string                      { return m.id }
func (m *fakeMember) HasPermission(p Permission) bool { return m.perms[p] }

func newMember(id string, perms ...Permission) *fakeMember {
	m := &fakeMember{id: id, perms: map[Permission]bool{}}
	for _, p := range perms {
		m.perms[p] = true
	}
	return m
}

type fakeMessage struct {
	content string
	author  *fakeMember
	bot     *fakeMember
}

func (m *fakeMessage) Content() string   { return m.content }
func (m *fakeMessage) ChannelID() string { return "channel-1" }
func (m *fakeMessage) GuildID() string   { return "guild-1" }

func (m *fakeMessage) Author() Member {
	if m.author == nil {
		return nil
	}
	return m.author
}

func (m *fakeMessage) Bot() Member {
	if m.bot == nil {
		return nil
	}
	return m.bot
}
