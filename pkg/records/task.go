package records

import "github.com/natserract/sfcrm/pkg/fieldmap"

const (
	DefaultTaskStatus   = "Not Started"
	DefaultTaskPriority = "Normal"
)

type TaskInput struct {
	Subject     string
	Due         string
	Status      string
	Priority    string
	WhatID      string
	WhoID       string
	Description string

	Extra []string
}

// BuildTask assembles and validates a create plan for a Task.
func BuildTask(cfg *fieldmap.Config, in TaskInput) (*Plan, error) {
	if in.Subject == "" {
		return nil, usagef("--subject is required")
	}
	if in.Due == "" {
		return nil, usagef("--due is required")
	}
	if err := ValidateDate("due", in.Due); err != nil {
		return nil, err
	}

	const obj = fieldmap.ObjectTask
	fields := fieldmap.NewPayload()
	fields.Set(cfg.Field(obj, "subject"), in.Subject)
	fields.Set(cfg.Field(obj, "due_date"), in.Due)
	fields.Set(cfg.Field(obj, "status"), cfg.Value(fieldmap.CategoryTaskStatuses, in.Status))
	fields.Set(cfg.Field(obj, "priority"), cfg.Value(fieldmap.CategoryTaskPriorities, in.Priority))

	if in.WhatID != "" {
		fields.Set(cfg.Field(obj, "what_id"), in.WhatID)
	}
	if in.WhoID != "" {
		fields.Set(cfg.Field(obj, "who_id"), in.WhoID)
	}
	if in.Description != "" {
		fields.Set(cfg.Field(obj, "description"), in.Description)
	}

	if err := setExtra(cfg, obj, fields, in.Extra); err != nil {
		return nil, err
	}
	if err := validate(cfg, obj, fields, false); err != nil {
		return nil, err
	}

	return &Plan{Object: "Task", Mode: ModeCreate, Fields: fields}, nil
}
