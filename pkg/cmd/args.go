package cmd

import (
	"strings"
	"unicode/utf8"
)

// Args is a message split into the lower-cased command word and its arguments.
type Args struct {
	Args    []string
	Command string
}

// Empty reports whether nothing followed the prefix.
func (a Args) Empty() bool {
	return a.Command == "" && len(a.Args) == 0
}

// GetArgs strips the prefix from content and splits the rest on whitespace.
// The prefix length comes from usedPrefix, then cfg.Prefix, then 1.
func GetArgs(content, usedPrefix string, cfg Config) Args {
	n := prefixLength(usedPrefix, cfg.Prefix)

	rest := content
	for i := 0; i < n && rest != ""; i++ {
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Args{Args: []string{}}
	}
	return Args{
		Args:    fields[1:],
		Command: strings.ToLower(fields[0]),
	}
}

// ParseMessage is GetArgs over msg.Content().
func ParseMessage(msg Message, usedPrefix string, cfg Config) Args {
	return GetArgs(msg.Content(), usedPrefix, cfg)
}

func prefixLength(usedPrefix, fallback string) int {
	if n := utf8.RuneCountInString(usedPrefix); n > 0 {
		return n
	}
	if n := utf8.RuneCountInString(fallback); n > 0 {
		return n
	}
	return 1
}
