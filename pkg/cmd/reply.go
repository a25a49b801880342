package cmd

// Reply is what a handler answers with: Text, Embed or Replies.
type Reply interface {
	reply()
}

// Text is a plain text reply.
type Text string

// Embed is a structured reply. Adapters map it to their rich message format.
type Embed struct {
	Title       string
	Description string
	URL         string
	Color       int
	Fields      []EmbedField
	Footer      string
}

// EmbedField is one name/value row of an Embed.
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Replies is an ordered batch of replies sent one after another.
type Replies []Reply

func (Text) reply()    {}
func (Embed) reply()   {}
func (Replies) reply() {}

// IsZero reports whether e carries nothing to show.
func (e Embed) IsZero() bool {
	return e.Title == "" && e.Description == "" && e.URL == "" && len(e.Fields) == 0 && e.Footer == ""
}

// Flatten expands nested Replies into a flat list of Text and Embed values.
// Nil entries, empty texts and empty embeds are dropped.
func Flatten(r Reply) []Reply {
	var out []Reply
	var walk func(Reply)
	walk = func(r Reply) {
		switch v := r.(type) {
		case nil:
		case Replies:
			for _, item := range v {
				walk(item)
			}
		case Text:
			if v != "" {
				out = append(out, v)
			}
		case Embed:
			if !v.IsZero() {
				out = append(out, v)
			}
		}
	}
	walk(r)
	return out
}
