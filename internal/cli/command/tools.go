package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teeline-go/internal/cli/output"
	"github.com/yndnr/teeline-go/internal/core/validation"
)

func fieldNames() string {
	names := make([]string, 0, len(validation.Fields()))
	for _, f := range validation.Fields() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// ValidationResult is the output of the validate command.
type ValidationResult struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}

// ValidateCommand runs a validation rule locally.
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check text against a validation rule (" + fieldNames() + ")",
		ArgsUsage: "FIELD TEXT",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: validate FIELD TEXT", 2)
			}
			rt, err := runtimeFrom(c)
			if err != nil {
				return err
			}
			p, err := printer(c, rt)
			if err != nil {
				return err
			}

			field := validation.Field(strings.ToLower(c.Args().Get(0)))
			reason, err := validation.Validate(field, c.Args().Get(1))
			if err != nil {
				return cli.Exit(fmt.Sprintf("%v (want one of %s)", err, fieldNames()), 2)
			}

			res := ValidationResult{Field: string(field), Valid: !reason.Failed(), Reason: reason.String()}
			if reason.Failed() {
				res.Message = validation.Message(field, reason)
			}
			return p.Print(res)
		},
	}
}

// SanitizeCommand applies a sanitize rule locally.
func SanitizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "sanitize",
		Usage:     "Strip characters a field does not allow (username, password, email)",
		ArgsUsage: "FIELD TEXT",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: sanitize FIELD TEXT", 2)
			}
			rt, err := runtimeFrom(c)
			if err != nil {
				return err
			}
			p, err := printer(c, rt)
			if err != nil {
				return err
			}

			field := validation.Field(strings.ToLower(c.Args().Get(0)))
			switch field {
			case validation.FieldUsername, validation.FieldPassword, validation.FieldEmail:
			default:
				return cli.Exit(fmt.Sprintf("no sanitize rule for %q", field), 2)
			}
			out := validation.Sanitize(field, c.Args().Get(1))
			if p.Format() == output.FormatTable {
				_, err := fmt.Fprintln(p.Writer(), out)
				return err
			}
			return p.Print(map[string]string{"field": string(field), "sanitized": out})
		},
	}
}
