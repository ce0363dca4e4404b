package commands

import (
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/natserract/sfcrm/pkg/config"
	sfcrm "github.com/natserract/sfcrm/pkg/salesforce/crm"
)

// tokenCommand fetches an access token with the client-credentials flow.
// Flags override the corresponding environment variables.
func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "request an OAuth access token with the client-credentials flow",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "base-url", Usage: "instance URL (overrides SF_BASE_URL)"},
			&cli.StringFlag{Name: "client-id", Usage: "connected app client ID (overrides SF_CLIENT_ID)"},
			&cli.StringFlag{Name: "client-secret", Usage: "connected app client secret (overrides SF_CLIENT_SECRET)"},
			&cli.StringFlag{Name: "token-endpoint", Usage: "full token URL (overrides SF_TOKEN_ENDPOINT)"},
			verboseFlag(),
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			logger, err := newLogger(c.Bool("verbose"))
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg := config.FromEnv()
			if c.IsSet("base-url") {
				cfg.BaseURL = strings.TrimRight(c.String("base-url"), "/")
			}
			if c.IsSet("client-id") {
				cfg.ClientID = c.String("client-id")
			}
			if c.IsSet("client-secret") {
				cfg.ClientSecret = c.String("client-secret")
			}
			if c.IsSet("token-endpoint") {
				cfg.TokenEndpoint = c.String("token-endpoint")
			}
			if err := cfg.ValidateOAuth(); err != nil {
				return err
			}

			res, err := sfcrm.NewSalesforceWithLogger(cfg, logger).Authenticate(c.Context)
			if err != nil {
				logger.Error("Token request failed", zap.Error(err))
				return err
			}
			return writeRaw(c, res.Raw)
		},
	}
}
