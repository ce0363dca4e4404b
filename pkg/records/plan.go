// Package records turns command-line intents into validated write plans for
// Leads, Opportunities and Tasks, and executes those plans against Salesforce.
//
// Building a plan performs every check the live path depends on, so a plan
// that builds cleanly can be previewed with WriteDryRun or run with
// Service.Execute and will only fail on the remote side.
package records

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/natserract/sfcrm/pkg/fieldmap"
)

// Mode is the kind of write a plan performs.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
	// ModeUpsert lets the upsert resolver pick between external-id upsert,
	// email lookup and plain create.
	ModeUpsert Mode = "upsert"
)

// Strategy is the branch the upsert resolver takes for a plan.
type Strategy int

const (
	StrategyCreate Strategy = iota
	StrategyExternalID
	StrategyEmail
)

func (s Strategy) String() string {
	switch s {
	case StrategyExternalID:
		return "external_id"
	case StrategyEmail:
		return "email"
	default:
		return "create"
	}
}

// Plan is a fully assembled and validated write against one sobject.
type Plan struct {
	// Object is the sobject API name, e.g. "Lead".
	Object   string
	Mode     Mode
	RecordID string
	Fields   *fieldmap.Payload

	ExternalIDField string
	ExternalIDValue string

	// EmailField is the API field the email lookup filters on.
	EmailField string
	Email      string
}

// Strategy reports how an upsert plan will be resolved. The order is fixed:
// an external id beats an email, and an email beats a plain create.
func (p *Plan) Strategy() Strategy {
	switch {
	case p.ExternalIDField != "" && p.ExternalIDValue != "":
		return StrategyExternalID
	case p.Email != "":
		return StrategyEmail
	default:
		return StrategyCreate
	}
}

// WriteDryRun prints what the plan would send without sending it.
func (p *Plan) WriteDryRun(w io.Writer) error {
	body, err := json.MarshalIndent(p.Fields, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	var b strings.Builder
	b.WriteString("=== DRY RUN MODE ===\n")
	switch p.Mode {
	case ModeUpdate:
		fmt.Fprintf(&b, "Would UPDATE %s %s with fields:\n", p.Object, p.RecordID)
	case ModeUpsert:
		fmt.Fprintf(&b, "Would upsert %s with fields:\n", p.Object)
	default:
		fmt.Fprintf(&b, "Would CREATE %s with fields:\n", p.Object)
	}
	b.Write(body)
	b.WriteString("\n")

	if p.Mode == ModeUpsert {
		switch p.Strategy() {
		case StrategyExternalID:
			fmt.Fprintf(&b, "\nUsing external ID: %s = %s\n", p.ExternalIDField, p.ExternalIDValue)
		case StrategyEmail:
			fmt.Fprintf(&b, "\nWould query for existing %s by email: %s\n", p.Object, p.Email)
		}
	}
	b.WriteString("\nValidation: PASSED\n")

	_, err = io.WriteString(w, b.String())
	return err
}

// validate runs the required-field check for the plan's object.
func validate(cfg *fieldmap.Config, object string, payload *fieldmap.Payload, isUpdate bool) error {
	if missing := cfg.MissingFields(object, payload, isUpdate); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// setExtra resolves "logical=value" assignments through the field map.
func setExtra(cfg *fieldmap.Config, object string, payload *fieldmap.Payload, assignments []string) error {
	for _, a := range assignments {
		logical, value, ok := strings.Cut(a, "=")
		logical = strings.TrimSpace(logical)
		if !ok || logical == "" {
			return usagef("--set expects logical_name=value, got %q", a)
		}
		payload.Set(cfg.Field(object, logical), value)
	}
	return nil
}
