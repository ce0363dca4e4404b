package sfcrm_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/natserract/sfcrm/pkg/config"
	httpclient "github.com/natserract/sfcrm/pkg/http"
	sfcrm "github.com/natserract/sfcrm/pkg/salesforce/crm"
)

func newClient(t *testing.T, svc *httptest.Server) *sfcrm.Salesforce {
	t.Helper()
	return sfcrm.NewSalesforceWithLogger(&config.Config{
		BaseURL:     svc.URL,
		APIVersion:  config.DefaultAPIVersion,
		AccessToken: "tok",
	}, zaptest.NewLogger(t))
}

func TestCreate(t *testing.T) {
	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/services/data/v59.0/sobjects/Lead/", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"LastName":"Lovelace","Company":"ExampleAI"}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"00Q000000000001","success":true,"errors":[]}`))
	}))
	defer svc.Close()

	id, err := newClient(t, svc).Create(context.Background(), "Lead", map[string]string{"LastName": "Lovelace", "Company": "ExampleAI"})
	require.NoError(t, err)
	require.Equal(t, "00Q000000000001", id)
}

func TestCreate_RemoteError(t *testing.T) {
	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[{"message":"Required fields are missing: [Company]","errorCode":"REQUIRED_FIELD_MISSING"}]`))
	}))
	defer svc.Close()

	_, err := newClient(t, svc).Create(context.Background(), "Lead", map[string]string{"LastName": "Lovelace"})
	require.Error(t, err)

	var remoteErr *httpclient.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	require.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	require.Contains(t, remoteErr.Body, "REQUIRED_FIELD_MISSING")
	require.Contains(t, err.Error(), "create Lead failed")
}

func TestUpdate(t *testing.T) {
	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/services/data/v59.0/sobjects/Opportunity/006000000000001", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer svc.Close()

	err := newClient(t, svc).Update(context.Background(), "Opportunity", "006000000000001", map[string]string{"StageName": "Passed"})
	require.NoError(t, err)
}

func TestUpsertByExternalID(t *testing.T) {
	testcases := []struct {
		name         string
		responseCode int
		responseBody string
		expected     *sfcrm.UpsertResult
	}{
		{
			name:         "201 means created",
			responseCode: http.StatusCreated,
			responseBody: `{"id":"00Q000000000009","success":true,"created":true}`,
			expected:     &sfcrm.UpsertResult{Created: true, ID: "00Q000000000009"},
		},
		{
			name:         "204 means updated",
			responseCode: http.StatusNoContent,
			expected:     &sfcrm.UpsertResult{Created: false, ID: "abc123"},
		},
		{
			name:         "200 means updated",
			responseCode: http.StatusOK,
			responseBody: `{"id":"00Q000000000009","success":true,"created":false}`,
			expected:     &sfcrm.UpsertResult{Created: false, ID: "abc123"},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPatch, r.Method)
				require.Equal(t, "/services/data/v59.0/sobjects/Lead/External_ID__c/abc123", r.URL.Path)
				w.WriteHeader(tc.responseCode)
				_, _ = w.Write([]byte(tc.responseBody))
			}))
			defer svc.Close()

			res, err := newClient(t, svc).UpsertByExternalID(context.Background(), "Lead", "External_ID__c", "abc123", map[string]string{"LastName": "Lovelace"})
			require.NoError(t, err)
			require.Equal(t, tc.expected, res)
		})
	}
}

func TestQuery(t *testing.T) {
	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/services/data/v59.0/query/", r.URL.Path)
		require.Equal(t, "SELECT Id FROM Lead WHERE Email='o\\'brien@example.com' LIMIT 1", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"totalSize":1,"done":true,"records":[{"attributes":{"type":"Lead"},"Id":"00Q000000000002"}]}`))
	}))
	defer svc.Close()

	soql := "SELECT Id FROM Lead WHERE Email='" + sfcrm.EscapeSOQL("o'brien@example.com") + "' LIMIT 1"
	res, err := newClient(t, svc).Query(context.Background(), soql)
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalSize)
	require.True(t, res.Done)
	require.Len(t, res.Records, 1)
	require.Equal(t, "00Q000000000002", res.FirstID())
}

func TestQuery_Empty(t *testing.T) {
	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalSize":0,"done":true,"records":[]}`))
	}))
	defer svc.Close()

	res, err := newClient(t, svc).Query(context.Background(), "SELECT Id FROM Lead")
	require.NoError(t, err)
	require.Equal(t, "", res.FirstID())
}

func TestDescribe(t *testing.T) {
	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/services/data/v59.0/sobjects/Lead/describe", r.URL.Path)
		_, _ = w.Write([]byte(`{"name":"Lead","label":"Lead","fields":[
			{"name":"LastName","label":"Last Name","type":"string","nillable":false,"defaultedOnCreate":false,"createable":true,"updateable":true},
			{"name":"Status","label":"Lead Status","type":"picklist","nillable":false,"defaultedOnCreate":true,"createable":true,"updateable":true,
			 "picklistValues":[{"value":"Open","label":"Open","active":true},{"value":"Old","label":"Old","active":false}]}
		]}`))
	}))
	defer svc.Close()

	desc, err := newClient(t, svc).Describe(context.Background(), "Lead")
	require.NoError(t, err)
	require.Equal(t, "Lead", desc.Name)
	require.Len(t, desc.Fields, 2)
	require.True(t, desc.Fields[0].Required())
	require.False(t, desc.Fields[1].Required())
	require.Len(t, desc.Fields[1].PicklistValues, 2)
}

func TestClientCredentialsFallback(t *testing.T) {
	tokenCalls := 0
	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/services/oauth2/token":
			tokenCalls++
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			require.NoError(t, r.ParseForm())
			require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			require.Equal(t, "id", r.PostForm.Get("client_id"))
			require.Equal(t, "secret", r.PostForm.Get("client_secret"))
			_, _ = w.Write([]byte(`{"access_token":"minted","instance_url":"https://x","token_type":"Bearer"}`))
		default:
			require.Equal(t, "Bearer minted", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"name":"Lead","label":"Lead","fields":[]}`))
		}
	}))
	defer svc.Close()

	client := sfcrm.NewSalesforceWithLogger(&config.Config{
		BaseURL:      svc.URL,
		APIVersion:   config.DefaultAPIVersion,
		ClientID:     "id",
		ClientSecret: "secret",
	}, zaptest.NewLogger(t))

	for _, obj := range []string{"Lead", "Account"} {
		_, err := client.Describe(context.Background(), obj)
		require.NoError(t, err)
	}
	require.Equal(t, 1, tokenCalls)
}

func TestMissingToken(t *testing.T) {
	client := sfcrm.NewSalesforceWithLogger(&config.Config{BaseURL: "http://127.0.0.1:1", APIVersion: "v59.0"}, zaptest.NewLogger(t))

	_, err := client.Query(context.Background(), "SELECT Id FROM Lead")

	var missing *config.MissingError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, "SF_ACCESS_TOKEN", missing.Name)
}

func TestAuthenticate_Rejected(t *testing.T) {
	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer svc.Close()

	client := sfcrm.NewSalesforceWithLogger(&config.Config{BaseURL: svc.URL, ClientID: "id", ClientSecret: "bad"}, zaptest.NewLogger(t))
	_, err := client.Authenticate(context.Background())

	var remoteErr *httpclient.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	require.Equal(t, `{"error":"invalid_client"}`, remoteErr.Body)
}
