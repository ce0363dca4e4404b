package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/natserract/sfcrm/pkg/fieldmap"
	"github.com/natserract/sfcrm/pkg/records"
)

func opportunityCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "id", Usage: "opportunity ID; updates instead of creating"},
		&cli.StringFlag{Name: "name", Usage: "opportunity name (required for create)"},
		&cli.StringFlag{Name: "stage", Usage: "stage name (required for create)"},
		&cli.StringFlag{Name: "close-date", Usage: "close date, YYYY-MM-DD (required for create)"},
		&cli.StringFlag{Name: "account-id", Usage: "account ID"},
		&cli.Float64Flag{Name: "amount", Usage: "amount"},
		&cli.IntFlag{Name: "probability", Usage: "probability percentage"},
		&cli.StringFlag{Name: "next-step", Usage: "next step"},
		&cli.StringFlag{Name: "description", Usage: "description"},
		&cli.StringFlag{Name: "thesis-tag", Usage: "investment thesis tag"},
		&cli.StringFlag{Name: "pass-reason", Usage: "reason for passing; an empty value clears it"},
		&cli.StringFlag{Name: "what-would-change", Usage: "what would change the decision; an empty value clears it"},
		&cli.StringFlag{Name: "recheck-date", Usage: "recheck date (YYYY-MM-DD)"},
	}

	return &cli.Command{
		Name:         "opportunity",
		Usage:        "create an Opportunity, or update one with --id",
		Flags:        append(flags, writeFlags()...),
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			return runPlan(c, func(cfg *fieldmap.Config) (*records.Plan, error) {
				return records.BuildOpportunity(cfg, records.OpportunityInput{
					ID:              c.String("id"),
					Name:            c.String("name"),
					Stage:           c.String("stage"),
					CloseDate:       c.String("close-date"),
					AccountID:       c.String("account-id"),
					Amount:          optionalFloat(c, "amount"),
					Probability:     optionalInt(c, "probability"),
					NextStep:        c.String("next-step"),
					Description:     c.String("description"),
					ThesisTag:       c.String("thesis-tag"),
					PassReason:      optionalString(c, "pass-reason"),
					WhatWouldChange: optionalString(c, "what-would-change"),
					RecheckDate:     c.String("recheck-date"),
					Extra:           c.StringSlice("set"),
				})
			})
		},
	}
}
