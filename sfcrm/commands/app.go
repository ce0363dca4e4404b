package commands

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/natserract/sfcrm/pkg/config"
	"github.com/natserract/sfcrm/pkg/fieldmap"
	"github.com/natserract/sfcrm/pkg/records"
)

const (
	ExitOK     = 0
	ExitRemote = 1
	ExitUsage  = 2
)

// NewApp builds the sfcrm command tree. Errors are returned from Run rather
// than handled inside it; the caller maps them to an exit status with
// ExitCode.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "sfcrm",
		Usage: "create, update and inspect Salesforce CRM records from the command line",
		Commands: []*cli.Command{
			leadCommand(),
			opportunityCommand(),
			taskCommand(),
			queryCommand(),
			describeCommand(),
			tokenCommand(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return &records.UsageError{Msg: fmt.Sprintf("unknown command %q", c.Args().First())}
			}
			return cli.ShowAppHelp(c)
		},
		OnUsageError:              onUsageError,
		ExitErrHandler:            func(*cli.Context, error) {},
		DisableSliceFlagSeparator: true,
	}
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return &records.UsageError{Msg: err.Error()}
}

// ExitCode maps an error returned by the app to the process exit status:
// 2 for bad input caught before any call, 1 for failed calls.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		usage      *records.UsageError
		validation *records.ValidationError
		missing    *config.MissingError
		parse      *fieldmap.ParseError
		exitCoder  cli.ExitCoder
	)
	switch {
	case errors.As(err, &usage), errors.As(err, &validation), errors.As(err, &missing), errors.As(err, &parse):
		return ExitUsage
	case errors.As(err, &exitCoder):
		return exitCoder.ExitCode()
	}
	return ExitRemote
}
