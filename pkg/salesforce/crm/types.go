package sfcrm

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// AuthResponse represents the OAuth token response
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	Signature   string `json:"signature"`
	Scope       string `json:"scope"`
	InstanceURL string `json:"instance_url,omitempty"`
	ID          string `json:"id"`
	TokenType   string `json:"token_type"`
	IssuedAt    string `json:"issued_at"`

	// Raw is the token endpoint's response body as received.
	Raw json.RawMessage `json:"-"`
}

// UpsertResult is the outcome of an external-id upsert.
type UpsertResult struct {
	Created bool
	ID      string
}

// QueryResult is a page of SOQL results.
type QueryResult struct {
	TotalSize      int                      `json:"totalSize"`
	Done           bool                     `json:"done"`
	NextRecordsURL string                   `json:"nextRecordsUrl,omitempty"`
	Records        []map[string]interface{} `json:"records"`

	Raw json.RawMessage `json:"-"`
}

// FirstID returns the Id of the first returned record, or "" when the page
// is empty.
func (r *QueryResult) FirstID() string {
	return gjson.GetBytes(r.Raw, "records.0.Id").String()
}

// SObjectDescribe is the subset of /sobjects/<Object>/describe used here.
type SObjectDescribe struct {
	Name   string          `json:"name"`
	Label  string          `json:"label"`
	Fields []FieldDescribe `json:"fields"`
}

type FieldDescribe struct {
	Name              string          `json:"name"`
	Label             string          `json:"label"`
	Type              string          `json:"type"`
	Nillable          bool            `json:"nillable"`
	DefaultedOnCreate bool            `json:"defaultedOnCreate"`
	Createable        bool            `json:"createable"`
	Updateable        bool            `json:"updateable"`
	PicklistValues    []PicklistValue `json:"picklistValues"`
	ReferenceTo       []string        `json:"referenceTo"`
}

// Required reports whether a value must be supplied on create.
func (f FieldDescribe) Required() bool {
	return !f.Nillable && !f.DefaultedOnCreate
}

type PicklistValue struct {
	Value        string `json:"value"`
	Label        string `json:"label"`
	Active       bool   `json:"active"`
	DefaultValue bool   `json:"defaultValue"`
}
