package records_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/natserract/sfcrm/pkg/config"
	"github.com/natserract/sfcrm/pkg/fieldmap"
	httpclient "github.com/natserract/sfcrm/pkg/http"
	"github.com/natserract/sfcrm/pkg/records"
	sfcrm "github.com/natserract/sfcrm/pkg/salesforce/crm"
)

type call struct {
	method string
	object string
	arg    string
}

type fakeWriter struct {
	calls      []call
	queryBody  string
	upsertResp *sfcrm.UpsertResult
	err        error
}

func (f *fakeWriter) Create(_ context.Context, object string, _ interface{}) (string, error) {
	f.calls = append(f.calls, call{"create", object, ""})
	return "new-id", f.err
}

func (f *fakeWriter) Update(_ context.Context, object, id string, _ interface{}) error {
	f.calls = append(f.calls, call{"update", object, id})
	return f.err
}

func (f *fakeWriter) UpsertByExternalID(_ context.Context, object, field, value string, _ interface{}) (*sfcrm.UpsertResult, error) {
	f.calls = append(f.calls, call{"upsert", object, field + "/" + value})
	return f.upsertResp, f.err
}

func (f *fakeWriter) Query(_ context.Context, soql string) (*sfcrm.QueryResult, error) {
	f.calls = append(f.calls, call{"query", "", soql})
	var res sfcrm.QueryResult
	if err := json.Unmarshal([]byte(f.queryBody), &res); err != nil {
		return nil, err
	}
	res.Raw = json.RawMessage(f.queryBody)
	return &res, nil
}

func leadPlan(t *testing.T, in records.LeadInput) *records.Plan {
	t.Helper()
	in.LastName = "Lovelace"
	in.Company = "ExampleAI"
	in.Status = records.DefaultLeadStatus
	plan, err := records.BuildLead(fieldmap.Empty(), in)
	require.NoError(t, err)
	return plan
}

func TestExecute_LeadUpsert(t *testing.T) {
	testcases := []struct {
		name      string
		in        records.LeadInput
		queryBody string
		upsert    *sfcrm.UpsertResult
		expected  *records.Result
		calls     []call
	}{
		{
			name:     "external id created",
			in:       records.LeadInput{ExternalIDField: "External_ID__c", ExternalIDValue: "abc123", Email: "a@b.co"},
			upsert:   &sfcrm.UpsertResult{Created: true, ID: "00Q9"},
			expected: &records.Result{Action: records.ActionCreated, ID: "00Q9"},
			calls:    []call{{"upsert", "Lead", "External_ID__c/abc123"}},
		},
		{
			name:     "external id updated",
			in:       records.LeadInput{ExternalIDField: "External_ID__c", ExternalIDValue: "abc123"},
			upsert:   &sfcrm.UpsertResult{Created: false, ID: "abc123"},
			expected: &records.Result{Action: records.ActionUpdated, ID: "abc123"},
			calls:    []call{{"upsert", "Lead", "External_ID__c/abc123"}},
		},
		{
			name:      "email with no match creates",
			in:        records.LeadInput{Email: "a@b.co"},
			queryBody: `{"totalSize":0,"done":true,"records":[]}`,
			expected:  &records.Result{Action: records.ActionCreated, ID: "new-id"},
			calls: []call{
				{"query", "", "SELECT Id FROM Lead WHERE Email='a@b.co' LIMIT 1"},
				{"create", "Lead", ""},
			},
		},
		{
			name:      "email with a match updates the first record",
			in:        records.LeadInput{Email: "a@b.co"},
			queryBody: `{"totalSize":2,"done":true,"records":[{"Id":"00Q1"},{"Id":"00Q2"}]}`,
			expected:  &records.Result{Action: records.ActionUpdated, ID: "00Q1"},
			calls: []call{
				{"query", "", "SELECT Id FROM Lead WHERE Email='a@b.co' LIMIT 1"},
				{"update", "Lead", "00Q1"},
			},
		},
		{
			name:     "no identifier creates",
			expected: &records.Result{Action: records.ActionCreated, ID: "new-id"},
			calls:    []call{{"create", "Lead", ""}},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			writer := &fakeWriter{queryBody: tc.queryBody, upsertResp: tc.upsert}
			svc := records.NewService(writer, zaptest.NewLogger(t))

			res, err := svc.Execute(context.Background(), leadPlan(t, tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.expected, res)
			require.Equal(t, tc.calls, writer.calls)
		})
	}
}

func TestExecute_EmailIsEscaped(t *testing.T) {
	writer := &fakeWriter{queryBody: `{"totalSize":0,"done":true,"records":[]}`}
	svc := records.NewService(writer, zaptest.NewLogger(t))

	_, err := svc.Execute(context.Background(), leadPlan(t, records.LeadInput{Email: "o'brien@example.com"}))
	require.NoError(t, err)
	require.Equal(t, `SELECT Id FROM Lead WHERE Email='o\'brien@example.com' LIMIT 1`, writer.calls[0].arg)
}

func TestExecute_OpportunityUpdate(t *testing.T) {
	writer := &fakeWriter{}
	svc := records.NewService(writer, zaptest.NewLogger(t))

	plan, err := records.BuildOpportunity(fieldmap.Empty(), records.OpportunityInput{ID: "006XXXX", Stage: "Passed"})
	require.NoError(t, err)

	res, err := svc.Execute(context.Background(), plan)
	require.NoError(t, err)
	require.Equal(t, &records.Result{Action: records.ActionUpdated, ID: "006XXXX"}, res)
	require.Equal(t, []call{{"update", "Opportunity", "006XXXX"}}, writer.calls)
}

func TestExecute_PropagatesError(t *testing.T) {
	remote := &httpclient.RemoteError{StatusCode: 400, Body: "bad"}
	writer := &fakeWriter{err: remote}
	svc := records.NewService(writer, zaptest.NewLogger(t))

	plan, err := records.BuildTask(fieldmap.Empty(), records.TaskInput{Subject: "x", Due: "2026-02-05", Status: "Not Started", Priority: "Normal"})
	require.NoError(t, err)

	_, err = svc.Execute(context.Background(), plan)
	require.True(t, errors.Is(err, remote))
}

// TestExecute_AgainstServer checks the resolver end to end through the REST
// client: the request path shows which branch was taken.
func TestExecute_AgainstServer(t *testing.T) {
	var paths []string
	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodPatch && r.URL.Path == "/services/data/v59.0/sobjects/Lead/External_ID__c/abc123":
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.JSONEq(t, `{"LastName":"Lovelace","Company":"ExampleAI","Status":"Open - Not Contacted","Email":"a@b.co"}`, string(body))
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer svc.Close()

	client := sfcrm.NewSalesforceWithLogger(&config.Config{BaseURL: svc.URL, APIVersion: "v59.0", AccessToken: "tok"}, zaptest.NewLogger(t))
	service := records.NewService(client, zaptest.NewLogger(t))

	res, err := service.Execute(context.Background(), leadPlan(t, records.LeadInput{
		Email:           "a@b.co",
		ExternalIDField: "External_ID__c",
		ExternalIDValue: "abc123",
	}))
	require.NoError(t, err)
	require.Equal(t, &records.Result{Action: records.ActionUpdated, ID: "abc123"}, res)
	require.Equal(t, []string{"PATCH /services/data/v59.0/sobjects/Lead/External_ID__c/abc123"}, paths)
}
