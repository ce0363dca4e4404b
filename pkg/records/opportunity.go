package records

import "github.com/natserract/sfcrm/pkg/fieldmap"

type OpportunityInput struct {
	// ID selects update mode when set.
	ID string

	Name        string
	Stage       string
	CloseDate   string
	AccountID   string
	Amount      *float64
	Probability *int
	NextStep    string
	Description string

	ThesisTag string
	// PassReason and WhatWouldChange are sent even when empty, which clears
	// them on update.
	PassReason      *string
	WhatWouldChange *string
	RecheckDate     string

	Extra []string
}

// BuildOpportunity assembles and validates a create or update plan for an
// Opportunity.
func BuildOpportunity(cfg *fieldmap.Config, in OpportunityInput) (*Plan, error) {
	isUpdate := in.ID != ""

	if !isUpdate {
		if in.Name == "" {
			return nil, usagef("--name is required for create")
		}
		if in.Stage == "" {
			return nil, usagef("--stage is required for create")
		}
		if in.CloseDate == "" {
			return nil, usagef("--close-date is required for create")
		}
	}
	if in.CloseDate != "" {
		if err := ValidateDate("close-date", in.CloseDate); err != nil {
			return nil, err
		}
	}
	if in.RecheckDate != "" {
		if err := ValidateDate("recheck-date", in.RecheckDate); err != nil {
			return nil, err
		}
	}

	const obj = fieldmap.ObjectOpportunity
	fields := fieldmap.NewPayload()

	if in.Name != "" {
		fields.Set(cfg.Field(obj, "name"), in.Name)
	}
	if in.Stage != "" {
		fields.Set(cfg.Field(obj, "stage"), cfg.Value(fieldmap.CategoryOpportunityStages, in.Stage))
	}
	if in.CloseDate != "" {
		fields.Set(cfg.Field(obj, "close_date"), in.CloseDate)
	}
	if in.AccountID != "" {
		fields.Set(cfg.Field(obj, "account_id"), in.AccountID)
	}
	if in.Amount != nil {
		fields.Set(cfg.Field(obj, "amount"), *in.Amount)
	}
	if in.Probability != nil {
		fields.Set(cfg.Field(obj, "probability"), *in.Probability)
	}
	if in.NextStep != "" {
		fields.Set(cfg.Field(obj, "next_step"), in.NextStep)
	}
	if in.Description != "" {
		fields.Set(cfg.Field(obj, "description"), in.Description)
	}

	if in.ThesisTag != "" {
		fields.Set(cfg.Field(obj, "thesis_tag"), in.ThesisTag)
	}
	if in.PassReason != nil {
		fields.Set(cfg.Field(obj, "pass_reason"), *in.PassReason)
	}
	if in.WhatWouldChange != nil {
		fields.Set(cfg.Field(obj, "what_would_change"), *in.WhatWouldChange)
	}
	if in.RecheckDate != "" {
		fields.Set(cfg.Field(obj, "recheck_date"), in.RecheckDate)
	}

	if err := setExtra(cfg, obj, fields, in.Extra); err != nil {
		return nil, err
	}
	if err := validate(cfg, obj, fields, isUpdate); err != nil {
		return nil, err
	}

	plan := &Plan{Object: "Opportunity", Mode: ModeCreate, Fields: fields}
	if isUpdate {
		plan.Mode = ModeUpdate
		plan.RecordID = in.ID
	}
	return plan, nil
}
