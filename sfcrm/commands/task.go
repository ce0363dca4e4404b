package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/natserract/sfcrm/pkg/fieldmap"
	"github.com/natserract/sfcrm/pkg/records"
)

func taskCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "subject", Usage: "task subject (required)"},
		&cli.StringFlag{Name: "due", Usage: "due date, YYYY-MM-DD (required)"},
		&cli.StringFlag{Name: "status", Usage: "task status", Value: records.DefaultTaskStatus},
		&cli.StringFlag{Name: "priority", Usage: "task priority", Value: records.DefaultTaskPriority},
		&cli.StringFlag{Name: "what-id", Usage: "related record ID (Opportunity, Account)"},
		&cli.StringFlag{Name: "who-id", Usage: "related person ID (Lead, Contact)"},
		&cli.StringFlag{Name: "description", Usage: "description"},
	}

	return &cli.Command{
		Name:         "task",
		Usage:        "create a Task",
		Flags:        append(flags, writeFlags()...),
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			return runPlan(c, func(cfg *fieldmap.Config) (*records.Plan, error) {
				return records.BuildTask(cfg, records.TaskInput{
					Subject:     c.String("subject"),
					Due:         c.String("due"),
					Status:      c.String("status"),
					Priority:    c.String("priority"),
					WhatID:      c.String("what-id"),
					WhoID:       c.String("who-id"),
					Description: c.String("description"),
					Extra:       c.StringSlice("set"),
				})
			})
		},
	}
}
