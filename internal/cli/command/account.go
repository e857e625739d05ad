package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teeline-go/internal/cli/output"
	"github.com/yndnr/teeline-go/internal/core/domain"
	"github.com/yndnr/teeline-go/internal/core/service"
)

// LoginCommand signs in and keeps the session for the rest of the run.
func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:      "login",
		Usage:     "Sign in (the password is read from stdin when omitted)",
		ArgsUsage: "USERNAME [PASSWORD]",
		Action:    login,
	}
}

func login(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("usage: login USERNAME [PASSWORD]", 2)
	}
	rt, p, ctx, cancel, err := setup(c)
	if err != nil {
		return err
	}
	defer cancel()

	password := c.Args().Get(1)
	if c.NArg() < 2 {
		if password, err = readSecret(c, "Password: "); err != nil {
			return err
		}
	}

	account, err := rt.Accounts.Login(ctx, c.Args().First(), password)
	if err != nil {
		return err
	}
	if p.Format() != output.FormatTable {
		return p.Print(account)
	}
	return p.Message("Logged in as %s (level %d)", account.Username, account.Level)
}

// readSecret reads one line from the app's reader.
func readSecret(c *cli.Context, prompt string) (string, error) {
	var r io.Reader = os.Stdin
	if c.App.Reader != nil {
		r = c.App.Reader
	}
	fmt.Fprint(c.App.ErrWriter, prompt)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// RegisterCommand creates an account.
func RegisterCommand() *cli.Command {
	return &cli.Command{
		Name:      "register",
		Usage:     "Create an account",
		ArgsUsage: "USERNAME PASSWORD EMAIL",
		Action:    register,
	}
}

func register(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: register USERNAME PASSWORD EMAIL", 2)
	}
	rt, p, ctx, cancel, err := setup(c)
	if err != nil {
		return err
	}
	defer cancel()

	args := c.Args()
	msg, err := rt.Accounts.Register(ctx, args.Get(0), args.Get(1), args.Get(2))
	if err != nil {
		return err
	}
	return p.Message("%s", msg)
}

// LogoutCommand forgets the session.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Sign out",
		Action: func(c *cli.Context) error {
			rt, p, _, cancel, err := setup(c)
			if err != nil {
				return err
			}
			defer cancel()

			rt.Accounts.Logout()
			return p.Message("Logged out")
		},
	}
}

// ensureSession signs in with --username and --password when the store
// has no session yet.
func ensureSession(ctx context.Context, c *cli.Context, rt *Runtime) error {
	if _, ok := rt.Store.Session(); ok {
		return nil
	}
	if c.String("username") == "" {
		return domain.ErrNoSession
	}
	_, err := rt.Accounts.Login(ctx, c.String("username"), c.String("password"))
	return err
}

// currentAccount returns the stored account, fetching it only when the
// store has none. The reload flag means the local copy changed and needs
// rendering, not that the service holds a newer one.
func currentAccount(ctx context.Context, c *cli.Context, rt *Runtime) (domain.Account, error) {
	if err := ensureSession(ctx, c, rt); err != nil {
		return domain.Account{}, err
	}
	if account, ok := rt.Store.Account(); ok {
		rt.Store.MarkReloaded()
		return account, nil
	}

	account, err := rt.Accounts.RefreshAccount(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	rt.Store.MarkReloaded()
	return account, nil
}

// WhoamiCommand shows the signed-in account.
func WhoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed-in account",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "refresh", Usage: "Fetch the account even if it is cached"},
		},
		Action: func(c *cli.Context) error {
			rt, p, ctx, cancel, err := setup(c)
			if err != nil {
				return err
			}
			defer cancel()

			if c.Bool("refresh") {
				rt.Store.SetAccount(nil)
			}
			account, err := currentAccount(ctx, c, rt)
			if err != nil {
				return err
			}
			return p.Print(account)
		},
	}
}

// AvatarCommand prints the Gravatar URL of the signed-in account.
func AvatarCommand() *cli.Command {
	return &cli.Command{
		Name:  "avatar",
		Usage: "Show the Gravatar URL of the signed-in account",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: 120, Usage: "Image size in pixels"},
		},
		Action: func(c *cli.Context) error {
			rt, p, ctx, cancel, err := setup(c)
			if err != nil {
				return err
			}
			defer cancel()

			if _, err := currentAccount(ctx, c, rt); err != nil {
				return err
			}
			url, err := rt.Accounts.AvatarURL(c.Int("size"))
			if err != nil {
				return err
			}
			if p.Format() != output.FormatTable {
				return p.Print(map[string]string{"avatar_url": url})
			}
			return p.Message("%s", url)
		},
	}
}

// UpdateCommand changes credentials. The session ends on success.
func UpdateCommand() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Change username, password or email (signs out on success)",
		Subcommands: []*cli.Command{
			{
				Name:      "username",
				ArgsUsage: "NEW_USERNAME",
				Action: func(c *cli.Context) error {
					return update(c, 1, func(ctx context.Context, s *service.AccountService, args cli.Args) (string, error) {
						return s.UpdateUsername(ctx, args.Get(0))
					})
				},
			},
			{
				Name:      "password",
				ArgsUsage: "NEW_PASSWORD CONFIRM",
				Action: func(c *cli.Context) error {
					return update(c, 2, func(ctx context.Context, s *service.AccountService, args cli.Args) (string, error) {
						return s.UpdatePassword(ctx, args.Get(0), args.Get(1))
					})
				},
			},
			{
				Name:      "email",
				ArgsUsage: "NEW_EMAIL",
				Action: func(c *cli.Context) error {
					return update(c, 1, func(ctx context.Context, s *service.AccountService, args cli.Args) (string, error) {
						return s.UpdateEmail(ctx, args.Get(0))
					})
				},
			},
		},
	}
}

type updateFunc func(ctx context.Context, s *service.AccountService, args cli.Args) (string, error)

func update(c *cli.Context, nargs int, fn updateFunc) error {
	if c.NArg() != nargs {
		return cli.Exit(fmt.Sprintf("usage: update %s %s", c.Command.Name, c.Command.ArgsUsage), 2)
	}
	rt, p, ctx, cancel, err := setup(c)
	if err != nil {
		return err
	}
	defer cancel()

	if err := ensureSession(ctx, c, rt); err != nil {
		return err
	}
	msg, err := fn(ctx, rt.Accounts, c.Args())
	if err != nil {
		return err
	}
	return p.Message("%s. Please log in again.", strings.TrimSuffix(msg, "."))
}

// PointsCommand groups points operations.
func PointsCommand() *cli.Command {
	return &cli.Command{
		Name:  "points",
		Usage: "Award points to the signed-in account",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				ArgsUsage: "AMOUNT",
				Action:    addPoints,
			},
		},
	}
}

func addPoints(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: points add AMOUNT", 2)
	}
	amount, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid amount %q", c.Args().First()), 2)
	}

	rt, p, ctx, cancel, err := setup(c)
	if err != nil {
		return err
	}
	defer cancel()

	if _, err := currentAccount(ctx, c, rt); err != nil {
		return err
	}
	leveledUp, err := rt.Accounts.AddPoints(ctx, amount)
	if err != nil {
		return err
	}

	account, _ := rt.Store.Account()
	if p.Format() != output.FormatTable {
		return p.Print(struct {
			domain.Account
			LeveledUp bool `json:"leveled_up"`
		}{account, leveledUp})
	}
	if leveledUp {
		if err := p.Message("%s", service.LevelUpNotice(account.Level)); err != nil {
			return err
		}
	}
	return p.Message("Level %d, %d/%d points", account.Level, account.Points, domain.PointsPerLevel)
}
