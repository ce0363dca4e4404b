package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/natserract/sfcrm/pkg/records"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:         "query",
		Usage:        "run a SOQL query and print the raw response",
		ArgsUsage:    `"<SOQL>"`,
		Flags:        []cli.Flag{verboseFlag()},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return &records.UsageError{Msg: "expected exactly one SOQL query argument"}
			}

			logger, err := newLogger(c.Bool("verbose"))
			if err != nil {
				return err
			}
			defer logger.Sync()

			client, err := newClient(logger)
			if err != nil {
				return err
			}

			res, err := client.Query(c.Context, c.Args().First())
			if err != nil {
				logger.Error("Query failed", zap.Error(err))
				return err
			}
			return writeRaw(c, res.Raw)
		},
	}
}

// writeRaw prints a response body as indented JSON.
func writeRaw(c *cli.Context, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err := fmt.Fprintln(c.App.Writer, buf.String())
	return err
}
