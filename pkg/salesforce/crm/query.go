package sfcrm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	httpclient "github.com/natserract/sfcrm/pkg/http"
	"go.uber.org/zap"
)

// Query runs a SOQL statement and returns the first page of results.
func (s *Salesforce) Query(ctx context.Context, soql string) (*QueryResult, error) {
	s.logger.Info("Running SOQL query")
	headers, err := s.authHeaders(ctx)
	if err != nil {
		return nil, err
	}

	endpoint, err := httpclient.BuildURL(s.config.BaseURL, fmt.Sprintf("/services/data/%s/query/", s.config.APIVersion), map[string]string{
		"q": soql,
	})
	if err != nil {
		s.logger.Error("Failed to build URL", zap.Error(err))
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	s.logger.Debug("Making GET request", zap.String("endpoint", endpoint), zap.String("soql", soql))
	resp, err := s.httpClient.Get(ctx, endpoint, headers)
	if err != nil {
		s.logger.Error("Query request failed", zap.Error(err))
		return nil, fmt.Errorf("SOQL query failed: %w", err)
	}

	var result QueryResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		s.logger.Error("Failed to parse query response", zap.Error(err))
		return nil, fmt.Errorf("failed to parse query response: %w", err)
	}
	result.Raw = json.RawMessage(resp.Body)

	s.logger.Info("Successfully ran query",
		zap.Int("total_size", result.TotalSize),
		zap.Int("records_count", len(result.Records)))

	return &result, nil
}

// EscapeSOQL escapes a value for use inside a single-quoted SOQL string
// literal.
func EscapeSOQL(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return r.Replace(value)
}
