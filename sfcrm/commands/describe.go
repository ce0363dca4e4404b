package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/natserract/sfcrm/pkg/fieldmap"
	"github.com/natserract/sfcrm/pkg/records"
	"github.com/natserract/sfcrm/pkg/schema"
)

func describeCommand() *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Usage:     "summarise object metadata: required fields, picklists, references",
		ArgsUsage: "Object [Object...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the schema as JSON instead of a summary"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "also write the JSON schema to `FILE`"},
			verboseFlag(),
		},
		OnUsageError: onUsageError,
		Action:       describeAction,
	}
}

func describeAction(c *cli.Context) error {
	objects := c.Args().Slice()
	if len(objects) == 0 {
		return &records.UsageError{Msg: "at least one object name is required"}
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

	// Keyed in request order.
	schemas := fieldmap.NewPayload()
	var failed []string
	for _, object := range objects {
		desc, err := client.Describe(c.Context, object)
		if err != nil {
			logger.Error("Describe failed", zap.String("object", object), zap.Error(err))
			fmt.Fprintf(c.App.ErrWriter, "Error describing %s: %v\n", object, err)
			failed = append(failed, object)
			continue
		}

		schemas.Set(object, schema.Summarize(desc))
		if !c.Bool("json") {
			if err := schema.WriteSummary(c.App.Writer, desc); err != nil {
				return err
			}
		}
	}

	if c.Bool("json") {
		if err := writeJSON(c.App.Writer, schemas); err != nil {
			return err
		}
	}

	if path := c.String("output"); path != "" {
		b, err := json.MarshalIndent(schemas, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		// stdout stays a single JSON document when --json is combined with --output.
		fmt.Fprintf(c.App.ErrWriter, "Schema saved to %s\n", path)
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to describe %d of %d objects: %v", len(failed), len(objects), failed)
	}
	return nil
}
