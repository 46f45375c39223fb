package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and persist the session token" }
func (*loginCmd) Usage() string {
	return `login -email <email> -password <password>

  Exchanges credentials for a bearer token and persists it. Subsequent
  commands run authenticated until logout.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "account email (required)")
	f.StringVar(&c.password, "password", "", "account password (required)")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -email and -password are required.")
		return subcommands.ExitUsageError
	}

	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	if err := a.Session.LoginWithCredentials(ctx, c.email, c.password); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	identity := a.Session.Identity()
	fmt.Printf("Logged in as %s\n", identity.DisplayName)
	return subcommands.ExitSuccess
}

type registerCmd struct {
	name     string
	email    string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `register -name <name> -email <email> -password <password>

  Creates a backend account. Run login afterwards to start a session.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "display name (required)")
	f.StringVar(&c.email, "email", "", "account email (required)")
	f.StringVar(&c.password, "password", "", "account password (required)")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -email and -password are required.")
		return subcommands.ExitUsageError
	}

	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	message, err := a.Session.Register(ctx, c.name, c.email, c.password)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	if message == "" {
		message = "Account created."
	}
	fmt.Println(message)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "end the session and clear the persisted token" }
func (*logoutCmd) Usage() string {
	return `logout

  Best-effort notifies the backend, then clears the persisted token.
  Always succeeds locally, even offline.
`
}
func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	a.Session.Logout(ctx)
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the current session identity" }
func (*whoamiCmd) Usage() string {
	return `whoami

  Prints the identity decoded from the persisted token.
`
}
func (*whoamiCmd) SetFlags(*flag.FlagSet) {}

func (c *whoamiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	if !requireAuth(a) {
		return subcommands.ExitFailure
	}

	identity := a.Session.Identity()
	fmt.Printf("%s (%s)\n", identity.DisplayName, identity.ID)
	return subcommands.ExitSuccess
}
