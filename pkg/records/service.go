package records

import (
	"context"
	"fmt"

	sfcrm "github.com/natserract/sfcrm/pkg/salesforce/crm"
	"go.uber.org/zap"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// Result is printed as JSON after a live write.
type Result struct {
	Action string `json:"action"`
	ID     string `json:"id"`
}

// Writer is the part of the Salesforce client that plans are executed with.
type Writer interface {
	Create(ctx context.Context, object string, fields interface{}) (string, error)
	Update(ctx context.Context, object, id string, fields interface{}) error
	UpsertByExternalID(ctx context.Context, object, field, value string, fields interface{}) (*sfcrm.UpsertResult, error)
	Query(ctx context.Context, soql string) (*sfcrm.QueryResult, error)
}

// Service executes plans. Each plan results in at most one write.
type Service struct {
	client Writer
	logger *zap.Logger
}

// NewService creates a new record service
func NewService(client Writer, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Execute performs the write described by plan.
func (s *Service) Execute(ctx context.Context, plan *Plan) (*Result, error) {
	switch plan.Mode {
	case ModeCreate:
		return s.create(ctx, plan)
	case ModeUpdate:
		if err := s.client.Update(ctx, plan.Object, plan.RecordID, plan.Fields); err != nil {
			return nil, err
		}
		return &Result{Action: ActionUpdated, ID: plan.RecordID}, nil
	case ModeUpsert:
		return s.upsert(ctx, plan)
	}
	return nil, fmt.Errorf("unknown plan mode %q", plan.Mode)
}

func (s *Service) create(ctx context.Context, plan *Plan) (*Result, error) {
	id, err := s.client.Create(ctx, plan.Object, plan.Fields)
	if err != nil {
		return nil, err
	}
	return &Result{Action: ActionCreated, ID: id}, nil
}

// upsert resolves create-vs-update for a plan. With an email and no external
// id, the first record whose email matches exactly is updated; other records
// sharing that email are left untouched.
func (s *Service) upsert(ctx context.Context, plan *Plan) (*Result, error) {
	strategy := plan.Strategy()
	s.logger.Info("Resolving upsert",
		zap.String("object", plan.Object),
		zap.Stringer("strategy", strategy))

	switch strategy {
	case StrategyExternalID:
		res, err := s.client.UpsertByExternalID(ctx, plan.Object, plan.ExternalIDField, plan.ExternalIDValue, plan.Fields)
		if err != nil {
			return nil, err
		}
		if res.Created {
			return &Result{Action: ActionCreated, ID: res.ID}, nil
		}
		return &Result{Action: ActionUpdated, ID: res.ID}, nil

	case StrategyEmail:
		soql := fmt.Sprintf("SELECT Id FROM %s WHERE %s='%s' LIMIT 1", plan.Object, plan.EmailField, sfcrm.EscapeSOQL(plan.Email))
		found, err := s.client.Query(ctx, soql)
		if err != nil {
			return nil, err
		}

		id := found.FirstID()
		if id == "" {
			s.logger.Info("No existing record for email, creating", zap.String("object", plan.Object))
			return s.create(ctx, plan)
		}

		s.logger.Info("Found existing record for email, updating", zap.String("object", plan.Object), zap.String("id", id))
		if err := s.client.Update(ctx, plan.Object, id, plan.Fields); err != nil {
			return nil, err
		}
		return &Result{Action: ActionUpdated, ID: id}, nil
	}

	return s.create(ctx, plan)
}
