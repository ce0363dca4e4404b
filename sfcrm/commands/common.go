package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/natserract/sfcrm/pkg/config"
	"github.com/natserract/sfcrm/pkg/fieldmap"
	"github.com/natserract/sfcrm/pkg/records"
	sfcrm "github.com/natserract/sfcrm/pkg/salesforce/crm"
)

const defaultConfigDir = "./config"

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log request details to stderr",
	}
}

// writeFlags are shared by the record-writing commands.
func writeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "set",
			Usage: "additional field as logical_name=value, resolved through field_map.yaml (repeatable)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "directory holding field_map.yaml, stages.yaml and required_fields.yaml",
			Value: defaultConfigDir,
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "validate and print the payload without calling Salesforce",
		},
		verboseFlag(),
	}
}

// newLogger builds the invocation's logger. Logs go to stderr so that stdout
// carries only command output.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("run_id", uuid.NewString())), nil
}

// newClient loads and validates the environment, then builds the REST client.
func newClient(logger *zap.Logger) (*sfcrm.Salesforce, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		return nil, err
	}
	return sfcrm.NewSalesforceWithLogger(cfg, logger), nil
}

// runPlan is the shared flow of the lead, opportunity and task commands:
// load the mapping, build and validate the plan, then preview or execute it.
func runPlan(c *cli.Context, build func(*fieldmap.Config) (*records.Plan, error)) error {
	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	mapping, err := fieldmap.Load(c.String("config"))
	if err != nil {
		logger.Error("Failed to load field mapping", zap.Error(err))
		return err
	}

	plan, err := build(mapping)
	if err != nil {
		return err
	}

	if c.Bool("dry-run") {
		return plan.WriteDryRun(c.App.Writer)
	}

	client, err := newClient(logger)
	if err != nil {
		return err
	}

	res, err := records.NewService(client, logger).Execute(c.Context, plan)
	if err != nil {
		logger.Error("Failed to write record", zap.String("object", plan.Object), zap.Error(err))
		return err
	}
	return writeJSON(c.App.Writer, res)
}

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// optionalInt returns nil unless the flag was given.
func optionalInt(c *cli.Context, name string) *int {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Int(name)
	return &v
}

func optionalFloat(c *cli.Context, name string) *float64 {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Float64(name)
	return &v
}

func optionalString(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	v := c.String(name)
	return &v
}
