package sfcrm

import "context"

// SalesforceClient defines the interface for Salesforce API operations
type SalesforceClient interface {
	// Authenticate retrieves an OAuth access token
	Authenticate(ctx context.Context) (*AuthResponse, error)

	// Create inserts a record and returns its id
	Create(ctx context.Context, object string, fields interface{}) (string, error)

	// Update applies a partial update to an existing record
	Update(ctx context.Context, object, id string, fields interface{}) error

	// UpsertByExternalID creates or updates a record addressed by an external id
	UpsertByExternalID(ctx context.Context, object, field, value string, fields interface{}) (*UpsertResult, error)

	// Query runs a SOQL statement
	Query(ctx context.Context, soql string) (*QueryResult, error)

	// Describe retrieves object metadata
	Describe(ctx context.Context, object string) (*SObjectDescribe, error)
}

var _ SalesforceClient = (*Salesforce)(nil)
