// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/mesto-api/internal/adapter"
	"github.com/MKhiriev/mesto-api/models"
)

var (
	errUnknownCommand  = errors.New("unknown command")
	errMissingArgument = errors.New("missing argument")
)

// command runs one subcommand with the arguments that follow its name.
type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type cli struct {
	adapter   adapter.ServerAdapter
	out       io.Writer
	buildInfo models.AppBuildInfo
	commands  map[string]command
}

func newCLI(a adapter.ServerAdapter, out io.Writer, buildInfo models.AppBuildInfo) *cli {
	c := &cli{adapter: a, out: out, buildInfo: buildInfo}
	c.commands = map[string]command{
		"signup":         {"signup -email E -password P [-name N -about A -avatar URL]", c.signup},
		"signin":         {"signin -email E -password P", c.signin},
		"me":             {"me", c.me},
		"users":          {"users", c.users},
		"user":           {"user ID", c.user},
		"update-profile": {"update-profile -name N -about A", c.updateProfile},
		"update-avatar":  {"update-avatar -avatar URL", c.updateAvatar},
		"cards":          {"cards", c.cards},
		"add-card":       {"add-card -name N -link URL", c.addCard},
		"delete-card":    {"delete-card ID", c.cardAction(a.DeleteCard)},
		"like":           {"like ID", c.cardAction(a.Like)},
		"dislike":        {"dislike ID", c.cardAction(a.Dislike)},
		"version":        {"version", c.version},
	}
	return c
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		c.printUsage()
		return nil
	}

	cmd, ok := c.commands[args[0]]
	if !ok {
		c.printUsage()
		return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}

	return cmd.run(ctx, args[1:])
}

func (c *cli) printUsage() {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprint(c.out, c.buildInfo)
	fmt.Fprintln(c.out, "usage: mesto-client [-api URL] [-token T] <command>")
	for _, name := range names {
		fmt.Fprintln(c.out, "  "+c.commands[name].usage)
	}
}

func (c *cli) print(v any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (c *cli) signup(ctx context.Context, args []string) error {
	var req models.SignupRequest
	fs := newFlagSet("signup")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.Name, "name", "", "name")
	fs.StringVar(&req.About, "about", "", "about")
	fs.StringVar(&req.Avatar, "avatar", "", "avatar link")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := c.adapter.Signup(ctx, req)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) signin(ctx context.Context, args []string) error {
	fs := newFlagSet("signin")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := c.adapter.Signin(ctx, *email, *password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, token)
	return err
}

func (c *cli) me(ctx context.Context, _ []string) error {
	user, err := c.adapter.Me(ctx)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) users(ctx context.Context, _ []string) error {
	users, err := c.adapter.Users(ctx)
	if err != nil {
		return err
	}
	return c.print(users)
}

func (c *cli) user(ctx context.Context, args []string) error {
	id, err := firstArg(args, "user ID")
	if err != nil {
		return err
	}

	user, err := c.adapter.User(ctx, id)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) updateProfile(ctx context.Context, args []string) error {
	fs := newFlagSet("update-profile")
	name := fs.String("name", "", "name")
	about := fs.String("about", "", "about")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := c.adapter.UpdateProfile(ctx, *name, *about)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) updateAvatar(ctx context.Context, args []string) error {
	fs := newFlagSet("update-avatar")
	avatar := fs.String("avatar", "", "avatar link")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := c.adapter.UpdateAvatar(ctx, *avatar)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) cards(ctx context.Context, _ []string) error {
	cards, err := c.adapter.Cards(ctx)
	if err != nil {
		return err
	}
	return c.print(cards)
}

func (c *cli) addCard(ctx context.Context, args []string) error {
	fs := newFlagSet("add-card")
	name := fs.String("name", "", "card name")
	link := fs.String("link", "", "picture link")
	if err := fs.Parse(args); err != nil {
		return err
	}

	card, err := c.adapter.AddCard(ctx, *name, *link)
	if err != nil {
		return err
	}
	return c.print(card)
}

// cardAction builds a command that applies action to the card named by the
// first argument.
func (c *cli) cardAction(action func(ctx context.Context, cardID string) (models.Card, error)) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		id, err := firstArg(args, "card ID")
		if err != nil {
			return err
		}

		card, err := action(ctx, id)
		if err != nil {
			return err
		}
		return c.print(card)
	}
}

func (c *cli) version(ctx context.Context, _ []string) error {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, version)
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func firstArg(args []string, what string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("%w: %s", errMissingArgument, what)
	}
	return args[0], nil
}
