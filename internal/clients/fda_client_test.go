package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medbot/pkg/logger"
	"medbot/pkg/metrics"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*FDAConfig)) FDAClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := FDAConfig{
		BaseURL:   srv.URL,
		UserAgent: "MedBot/1.0",
		Timeout:   2 * time.Second,
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	return NewFDAClient(cfg, logger.Nop(), metrics.New("test", nil))
}

const labelBody = `{
  "meta": {"results": {"total": 4}},
  "results": [
    {
      "openfda": {
        "brand_name": ["Aspirin", "Bayer Aspirin"],
        "generic_name": ["ACETYLSALICYLIC ACID"],
        "manufacturer_name": ["Bayer HealthCare LLC", "Other"]
      },
      "indications_and_usage": ["Pain reliever and fever reducer.", "second"]
    },
    {"openfda": {}, "indications_and_usage": ["no names at all"]},
    {"openfda": "not-an-object"},
    {
      "openfda": {"generic_name": ["aspirin"]}
    }
  ]
}`

func TestLookupDrug_ParsesPrimaryValues(t *testing.T) {
	var gotQuery, gotAgent, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("search")
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(labelBody))
	})

	drugs, err := client.LookupDrug(context.Background(), "aspirin")
	require.NoError(t, err)

	assert.Equal(t, "/drug/label.json", gotPath)
	assert.Equal(t, `(openfda.brand_name:"aspirin" OR openfda.generic_name:"aspirin")`, gotQuery)
	assert.Equal(t, "MedBot/1.0", gotAgent)

	// nameless and malformed entries are dropped individually
	require.Len(t, drugs, 2)
	assert.Equal(t, "Aspirin", drugs[0].BrandName)
	assert.Equal(t, "ACETYLSALICYLIC ACID", drugs[0].GenericName)
	assert.Equal(t, "Bayer HealthCare LLC", drugs[0].Manufacturer)
	assert.Equal(t, "Pain reliever and fever reducer.", drugs[0].Indications)
	assert.False(t, drugs[0].FetchedAt.IsZero())
	assert.Empty(t, drugs[0].ID)
	assert.NotEmpty(t, drugs[0].Raw)

	assert.Equal(t, "", drugs[1].BrandName)
	assert.Equal(t, "aspirin", drugs[1].GenericName)
}

func TestLookupDrug_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"No matches found!"}}`))
	})

	drugs, err := client.LookupDrug(context.Background(), "zzzz")
	assert.Nil(t, drugs)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, errors.Is(err, ErrUpstream))
}

func TestLookupDrug_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.LookupDrug(context.Background(), "aspirin")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusInternalServerError, upErr.StatusCode)
}

func TestLookupDrug_MalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	})

	_, err := client.LookupDrug(context.Background(), "aspirin")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestLookupDrug_TimeoutBecomesUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}, func(cfg *FDAConfig) {
		cfg.Timeout = 50 * time.Millisecond
	})

	start := time.Now()
	_, err := client.LookupDrug(context.Background(), "aspirin")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLookupDrug_SendsAPIKeyAndStripsQuotes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
		assert.Equal(t, `(openfda.brand_name:"tylenol" OR openfda.generic_name:"tylenol")`, r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`{"results": []}`))
	}, func(cfg *FDAConfig) {
		cfg.APIKey = "secret"
	})

	drugs, err := client.LookupDrug(context.Background(), ` "tylenol" `)
	require.NoError(t, err)
	assert.Empty(t, drugs)
}

func TestLookupRecalls_NotFoundIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drug/enforcement.json", r.URL.Path)
		assert.Equal(t, `product_description:"aspirin"`, r.URL.Query().Get("search"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.WriteHeader(http.StatusNotFound)
	})

	recalls, err := client.LookupRecalls(context.Background(), "aspirin")
	require.NoError(t, err)
	assert.NotNil(t, recalls)
	assert.Empty(t, recalls)
}

func TestLookupRecalls_SkipsMalformedItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [
			{"recall_number": "D-0001-2024", "product_description": "Aspirin 81mg", "reason_for_recall": "cGMP deviations", "classification": "Class II", "report_date": "20240103"},
			{"recall_number": 42},
			{"product_description": "Aspirin 325mg"}
		]}`))
	})

	recalls, err := client.LookupRecalls(context.Background(), "aspirin")
	require.NoError(t, err)
	require.Len(t, recalls, 2)
	assert.Equal(t, "D-0001-2024", recalls[0].RecallID)
	assert.Equal(t, "Class II", recalls[0].Classification)
	assert.Equal(t, "20240103", recalls[0].RecallDate)
	assert.Equal(t, "Aspirin 325mg", recalls[1].ProductDescription)
}

func TestLookupRecentRecalls(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "report_date:desc", r.URL.Query().Get("sort"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`{"results": [{"recall_number": "D-1"}, {"recall_number": "D-2"}]}`))
	})

	recalls, err := client.LookupRecentRecalls(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, recalls, 2)
}

func TestLookupRecentRecalls_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.LookupRecentRecalls(context.Background(), 10)
	assert.ErrorIs(t, err, ErrUpstream)
}
