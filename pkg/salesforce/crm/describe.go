package sfcrm

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Describe retrieves the field metadata of object.
func (s *Salesforce) Describe(ctx context.Context, object string) (*SObjectDescribe, error) {
	s.logger.Info("Describing object", zap.String("object", object))
	headers, err := s.authHeaders(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := s.sobjectURL(object, "describe")

	s.logger.Debug("Making GET request", zap.String("endpoint", endpoint))
	resp, err := s.httpClient.Get(ctx, endpoint, headers)
	if err != nil {
		s.logger.Error("Describe request failed", zap.Error(err), zap.String("object", object))
		return nil, fmt.Errorf("describe %s failed: %w", object, err)
	}

	var desc SObjectDescribe
	if err := json.Unmarshal(resp.Body, &desc); err != nil {
		s.logger.Error("Failed to parse describe response", zap.Error(err))
		return nil, fmt.Errorf("failed to parse describe response: %w", err)
	}

	s.logger.Info("Successfully described object",
		zap.String("object", desc.Name),
		zap.Int("fields_count", len(desc.Fields)))

	return &desc, nil
}
