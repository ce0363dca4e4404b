package records

import "github.com/natserract/sfcrm/pkg/fieldmap"

// DefaultLeadStatus is used when no --status is given.
const DefaultLeadStatus = "Open - Not Contacted"

type LeadInput struct {
	Email       string
	FirstName   string
	LastName    string
	Company     string
	Title       string
	Website     string
	Status      string
	Source      string
	Description string

	ThesisTag   string
	SignalScore *int
	MustBeTrue  string
	PassReason  string
	RecheckDate string

	ExternalIDField string
	ExternalIDValue string

	// Extra holds logical_name=value assignments.
	Extra []string
}

// BuildLead assembles and validates an upsert plan for a Lead.
func BuildLead(cfg *fieldmap.Config, in LeadInput) (*Plan, error) {
	if in.LastName == "" {
		return nil, usagef("--last is required")
	}
	if in.Company == "" {
		return nil, usagef("--company is required")
	}
	if (in.ExternalIDField == "") != (in.ExternalIDValue == "") {
		return nil, usagef("--external-id and --external-id-value must be given together")
	}
	if in.RecheckDate != "" {
		if err := ValidateDate("recheck-date", in.RecheckDate); err != nil {
			return nil, err
		}
	}

	const obj = fieldmap.ObjectLead
	fields := fieldmap.NewPayload()

	if in.FirstName != "" {
		fields.Set(cfg.Field(obj, "first_name"), in.FirstName)
	}
	fields.Set(cfg.Field(obj, "last_name"), in.LastName)
	fields.Set(cfg.Field(obj, "company"), in.Company)
	fields.Set(cfg.Field(obj, "status"), cfg.Value(fieldmap.CategoryLeadStatuses, in.Status))

	optional := []struct{ logical, value string }{
		{"email", in.Email},
		{"title", in.Title},
		{"website", in.Website},
		{"source", in.Source},
		{"description", in.Description},
		{"thesis_tag", in.ThesisTag},
	}
	for _, f := range optional {
		if f.value != "" {
			fields.Set(cfg.Field(obj, f.logical), f.value)
		}
	}
	if in.SignalScore != nil {
		fields.Set(cfg.Field(obj, "signal_score"), *in.SignalScore)
	}
	if in.MustBeTrue != "" {
		fields.Set(cfg.Field(obj, "must_be_true"), in.MustBeTrue)
	}
	if in.PassReason != "" {
		fields.Set(cfg.Field(obj, "pass_reason"), in.PassReason)
	}
	if in.RecheckDate != "" {
		fields.Set(cfg.Field(obj, "recheck_date"), in.RecheckDate)
	}

	if err := setExtra(cfg, obj, fields, in.Extra); err != nil {
		return nil, err
	}
	if err := validate(cfg, obj, fields, false); err != nil {
		return nil, err
	}

	return &Plan{
		Object:          "Lead",
		Mode:            ModeUpsert,
		Fields:          fields,
		ExternalIDField: in.ExternalIDField,
		ExternalIDValue: in.ExternalIDValue,
		EmailField:      cfg.Field(obj, "email"),
		Email:           in.Email,
	}, nil
}
