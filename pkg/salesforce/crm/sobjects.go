package sfcrm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Create inserts a record of object and returns its id.
func (s *Salesforce) Create(ctx context.Context, object string, fields interface{}) (string, error) {
	s.logger.Info("Creating record", zap.String("object", object))
	headers, err := s.authHeaders(ctx)
	if err != nil {
		return "", err
	}

	endpoint := s.sobjectURL(object) + "/"

	s.logger.Debug("Making POST request", zap.String("endpoint", endpoint))
	resp, err := s.httpClient.Post(ctx, endpoint, headers, fields)
	if err != nil {
		s.logger.Error("Create record request failed", zap.Error(err), zap.String("object", object))
		return "", fmt.Errorf("create %s failed: %w", object, err)
	}

	id := gjson.GetBytes(resp.Body, "id").String()
	s.logger.Info("Successfully created record", zap.String("object", object), zap.String("id", id))
	return id, nil
}

// Update applies a partial update to the record id of object.
func (s *Salesforce) Update(ctx context.Context, object, id string, fields interface{}) error {
	s.logger.Info("Updating record", zap.String("object", object), zap.String("id", id))
	headers, err := s.authHeaders(ctx)
	if err != nil {
		return err
	}

	endpoint := s.sobjectURL(object, id)

	s.logger.Debug("Making PATCH request", zap.String("endpoint", endpoint))
	if _, err := s.httpClient.Patch(ctx, endpoint, headers, fields); err != nil {
		s.logger.Error("Update record request failed", zap.Error(err), zap.String("object", object), zap.String("id", id))
		return fmt.Errorf("update %s failed: %w", object, err)
	}

	s.logger.Info("Successfully updated record", zap.String("object", object), zap.String("id", id))
	return nil
}

// UpsertByExternalID writes a record addressed by an external id field. The
// response status is the only signal of what happened: 201 means a record was
// created (its id is in the body), any other success status means the record
// identified by value was updated.
func (s *Salesforce) UpsertByExternalID(ctx context.Context, object, field, value string, fields interface{}) (*UpsertResult, error) {
	s.logger.Info("Upserting record by external id",
		zap.String("object", object),
		zap.String("external_id_field", field),
		zap.String("external_id_value", value))
	headers, err := s.authHeaders(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := s.sobjectURL(object, field, value)

	s.logger.Debug("Making PATCH request", zap.String("endpoint", endpoint))
	resp, err := s.httpClient.Patch(ctx, endpoint, headers, fields)
	if err != nil {
		s.logger.Error("Upsert record request failed", zap.Error(err), zap.String("object", object))
		return nil, fmt.Errorf("upsert %s failed: %w", object, err)
	}

	if resp.StatusCode == http.StatusCreated {
		id := gjson.GetBytes(resp.Body, "id").String()
		s.logger.Info("Upsert created record", zap.String("object", object), zap.String("id", id))
		return &UpsertResult{Created: true, ID: id}, nil
	}

	s.logger.Info("Upsert updated record", zap.String("object", object), zap.String("external_id_value", value))
	return &UpsertResult{Created: false, ID: value}, nil
}
