package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/natserract/sfcrm/pkg/fieldmap"
	"github.com/natserract/sfcrm/pkg/records"
)

func leadCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "email", Usage: "lead email, used to find an existing lead"},
		&cli.StringFlag{Name: "first", Usage: "first name"},
		&cli.StringFlag{Name: "last", Usage: "last name (required)"},
		&cli.StringFlag{Name: "company", Usage: "company name (required)"},
		&cli.StringFlag{Name: "title", Usage: "job title"},
		&cli.StringFlag{Name: "website", Usage: "company website"},
		&cli.StringFlag{Name: "status", Usage: "lead status", Value: records.DefaultLeadStatus},
		&cli.StringFlag{Name: "source", Usage: "lead source"},
		&cli.StringFlag{Name: "description", Usage: "description"},
		&cli.StringFlag{Name: "thesis-tag", Usage: "investment thesis tag"},
		&cli.IntFlag{Name: "signal-score", Usage: "signal score"},
		&cli.StringFlag{Name: "must-be-true", Usage: "what must be true"},
		&cli.StringFlag{Name: "pass-reason", Usage: "reason for passing"},
		&cli.StringFlag{Name: "recheck-date", Usage: "recheck date (YYYY-MM-DD)"},
		&cli.StringFlag{Name: "external-id", Usage: "external ID field name (e.g. External_ID__c)"},
		&cli.StringFlag{Name: "external-id-value", Usage: "external ID value"},
	}

	return &cli.Command{
		Name:         "lead",
		Usage:        "create or update a Lead, matching by external ID or email",
		Flags:        append(flags, writeFlags()...),
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			return runPlan(c, func(cfg *fieldmap.Config) (*records.Plan, error) {
				return records.BuildLead(cfg, records.LeadInput{
					Email:           c.String("email"),
					FirstName:       c.String("first"),
					LastName:        c.String("last"),
					Company:         c.String("company"),
					Title:           c.String("title"),
					Website:         c.String("website"),
					Status:          c.String("status"),
					Source:          c.String("source"),
					Description:     c.String("description"),
					ThesisTag:       c.String("thesis-tag"),
					SignalScore:     optionalInt(c, "signal-score"),
					MustBeTrue:      c.String("must-be-true"),
					PassReason:      c.String("pass-reason"),
					RecheckDate:     c.String("recheck-date"),
					ExternalIDField: c.String("external-id"),
					ExternalIDValue: c.String("external-id-value"),
					Extra:           c.StringSlice("set"),
				})
			})
		},
	}
}
