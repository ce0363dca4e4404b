// Package sfcrm provides a client for the Salesforce core platform REST API
// (the "data" API serving Leads, Opportunities, Tasks and other sobjects).
//
// The client performs one request per call and never retries. Authentication
// uses the configured access token, or the OAuth client-credentials flow when
// only a client id and secret are available.
package sfcrm

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/natserract/sfcrm/pkg/config"
	httpclient "github.com/natserract/sfcrm/pkg/http"
	"go.uber.org/zap"
)

// Salesforce is the main client for interacting with the Salesforce REST API
type Salesforce struct {
	config     *config.Config
	httpClient *httpclient.Client
	tokenCache *tokenCache
	logger     *zap.Logger
}

// tokenCache holds the bearer token for the lifetime of one client.
type tokenCache struct {
	mu          sync.Mutex
	accessToken string
}

// NewSalesforceWithLogger creates a new Salesforce client with a custom logger
func NewSalesforceWithLogger(cfg *config.Config, logger *zap.Logger) *Salesforce {
	return &Salesforce{
		config:     cfg,
		httpClient: httpclient.NewClientWithLogger(logger),
		tokenCache: &tokenCache{accessToken: cfg.AccessToken},
		logger:     logger,
	}
}

// dataURL returns <base>/services/data/<version><path>.
func (s *Salesforce) dataURL(path string) string {
	return fmt.Sprintf("%s/services/data/%s%s", s.config.BaseURL, s.config.APIVersion, path)
}

func (s *Salesforce) sobjectURL(object string, segments ...string) string {
	path := "/sobjects/" + url.PathEscape(object)
	for _, seg := range segments {
		path += "/" + url.PathEscape(seg)
	}
	return s.dataURL(path)
}

func (s *Salesforce) authHeaders(ctx context.Context) (map[string]string, error) {
	token, err := s.getAccessToken(ctx)
	if err != nil {
		s.logger.Error("Failed to get access token", zap.Error(err))
		return nil, err
	}
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}, nil
}
