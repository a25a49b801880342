// cmd/cli/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/keshon/trigger-bot/internal/config"
	"github.com/keshon/trigger-bot/pkg/cmd"
	"github.com/keshon/trigger-bot/pkg/discord"
	"github.com/keshon/trigger-bot/pkg/logger"
)

type checkFlags struct {
	user       string
	devOnly    bool
	require    string
	botRequire string
	have       string
	botHave    string
}

// Reads message lines from stdin and shows how the bot would read them.
// With -check it evaluates one permission setup instead.
func main() {
	prefix := flag.String("prefix", "", "prefix in use (defaults to PREFIX)")
	mention := flag.Bool("mention", false, "treat every line as mentioning the bot")
	check := flag.Bool("check", false, "check whether -user may run a command needing -require/-bot-require")
	var cf checkFlags
	flag.StringVar(&cf.user, "user", "console-user", "author id for -check")
	flag.BoolVar(&cf.devOnly, "dev-only", false, "command is developer-only (-check)")
	flag.StringVar(&cf.require, "require", "", "comma-separated permissions the author needs (-check)")
	flag.StringVar(&cf.botRequire, "bot-require", "", "comma-separated permissions the bot needs (-check)")
	flag.StringVar(&cf.have, "have", "", "comma-separated permissions the author holds (-check)")
	flag.StringVar(&cf.botHave, "bot-have", "", "comma-separated permissions the bot holds (-check)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := consoleSender{w: os.Stdout}
	cc := cfg.Command()

	if *check {
		reply, err := runCheck(cf, cc)
		if err != nil {
			lg.Error("invalid check", zap.Error(err))
			os.Exit(2)
		}
		if err := discord.SendWithRetry(ctx, out, "console", reply, discord.DefaultRetryConfig()); err != nil {
			lg.Error("failed to print reply", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	used := *prefix
	if used == "" {
		used = cc.Prefix
	}
	lg.Info("inspecting messages", zap.String("prefix", used), zap.Bool("mention", *mention))

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if err := discord.SendWithRetry(ctx, out, "console", inspect(sc.Text(), used, *mention, cc), discord.DefaultRetryConfig()); err != nil {
			lg.Error("failed to print reply", zap.Error(err))
			os.Exit(1)
		}
	}
	if err := sc.Err(); err != nil {
		lg.Error("failed to read stdin", zap.Error(err))
		os.Exit(1)
	}
}

// inspect describes how one message line would be parsed.
func inspect(line, prefix string, mention bool, cc cmd.Config) cmd.Reply {
	if !cmd.IsUsingPrefix(line, prefix, mention) {
		return cmd.Text(fmt.Sprintf("%q: not addressed to the bot", line))
	}
	a := cmd.GetArgs(line, prefix, cc)
	if a.Empty() {
		return cmd.Text(fmt.Sprintf("%q: prefix only, no command", line))
	}
	return cmd.Text(fmt.Sprintf("%q: command=%q args=[%s]", line, a.Command, strings.Join(a.Args, ", ")))
}

// runCheck builds a command from the flags, validates its tokens and runs
// IsAllowed for a console author.
func runCheck(cf checkFlags, cc cmd.Config) (cmd.Reply, error) {
	c := cmd.New(cmd.Options{
		Name:           "check",
		DevOnly:        cf.devOnly,
		Permissions:    parsePermissions(cf.require),
		BotPermissions: parsePermissions(cf.botRequire),
	}, nil)
	if err := discord.Validate(c); err != nil {
		return nil, err
	}

	have, err := grantBits(parsePermissions(cf.have))
	if err != nil {
		return nil, fmt.Errorf("-have: %w", err)
	}
	botHave, err := grantBits(parsePermissions(cf.botHave))
	if err != nil {
		return nil, fmt.Errorf("-bot-have: %w", err)
	}

	msg := &consoleMessage{
		author: &consoleMember{id: cf.user, granted: have},
		bot:    &consoleMember{id: "console-bot", granted: botHave},
	}
	if ok, reason := cmd.IsAllowed(msg, c, cc); !ok {
		return discord.DenialEmbed(reason), nil
	}
	return cmd.Text("allowed"), nil
}
