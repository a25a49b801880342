// Package cmd provides a transport-agnostic command core: a command is a record
// with a name, trigger words, access requirements and a handler. Parsing,
// prefix detection and authorization are plain functions over a Message; how
// messages arrive and which command gets picked is left to adapters.
package cmd

import (
	"context"
	"strings"
)

// IncompleteReply is what a command without a handler answers with.
const IncompleteReply = "command.incomplete"

// Permission is an opaque capability token understood by the chat platform,
// e.g. "BAN_MEMBERS". Adapters translate tokens to platform checks.
type Permission string

// Handler runs a command for one message. It may block; callers decide whether
// to run it on its own goroutine and what deadline ctx carries.
type Handler func(ctx context.Context, msg Message, args []string) (Reply, error)

// Options describes a command at definition time. Only Name is required.
type Options struct {
	Name           string
	Triggers       []string
	DevOnly        bool
	Permissions    []Permission
	BotPermissions []Permission
}

// Command is one invocable bot command. It is built once at startup and only
// read afterwards.
type Command struct {
	Name           string
	Triggers       []string
	DevOnly        bool
	Permissions    []Permission
	BotPermissions []Permission
	Run            Handler
}

// New builds a Command from opts. Triggers always start with the name, the
// permission lists are never nil and a nil run falls back to a stub that
// answers IncompleteReply.
func New(opts Options, run Handler) *Command {
	triggers := make([]string, 0, len(opts.Triggers)+1)
	triggers = append(triggers, opts.Name)
	if opts.Triggers != nil {
		triggers = append(triggers, opts.Triggers...)
	}

	if run == nil {
		run = incomplete
	}

	return &Command{
		Name:           opts.Name,
		Triggers:       triggers,
		DevOnly:        opts.DevOnly,
		Permissions:    clonePermissions(opts.Permissions),
		BotPermissions: clonePermissions(opts.BotPermissions),
		Run:            run,
	}
}

// HasTrigger reports whether word is one of the command's triggers, ignoring case.
func (c *Command) HasTrigger(word string) bool {
	for _, t := range c.Triggers {
		if strings.EqualFold(t, word) {
			return true
		}
	}
	return false
}

func incomplete(context.Context, Message, []string) (Reply, error) {
	return Text(IncompleteReply), nil
}

func clonePermissions(perms []Permission) []Permission {
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}
