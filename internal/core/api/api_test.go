package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/core/auth"
	"github.com/libertypr/converge/internal/core/db"
	"github.com/libertypr/converge/internal/core/store"
	"github.com/libertypr/converge/internal/radar"
	"github.com/libertypr/converge/internal/segment"
)

const apiToken = "fedcba9876543210fedcba9876543210"

func newTestRouter(t *testing.T, tokens []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "converge-api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.MigrateUp(database))

	queries, err := db.LoadQueries(database)
	require.NoError(t, err)

	cat := catalog.Default()
	clock := func() time.Time { return time.Date(2025, time.August, 21, 15, 30, 0, 0, time.UTC) }
	engine := segment.NewWithClock(cat, clock)
	st := store.NewWithClock(queries, engine, zerolog.Nop(), clock)

	svc := NewService(engine, radar.New(cat), st, auth.NewAuthenticator(tokens), zerolog.Nop(), 1<<20)
	return svc.Router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func postpaidPayload() map[string]any {
	return map[string]any{
		"rules": map[string]any{
			"id":         "root",
			"combinator": "AND",
			"children": []any{
				map[string]any{
					"id":         "c1",
					"attribute":  "planType",
					"comparator": "equals",
					"value":      "postpaid",
				},
			},
		},
	}
}

func TestSegmentMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/v1/segments/metrics", "", postpaidPayload())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Metrics struct {
			Size      int    `json:"size"`
			Freshness string `json:"freshness"`
		} `json:"metrics"`
		Lint []any `json:"lint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 11088, resp.Metrics.Size)
	assert.Equal(t, "2025-08-21T15:30:00Z", resp.Metrics.Freshness)
	assert.Empty(t, resp.Lint)
}

func TestSegmentMetricsEndpoint_Invalid(t *testing.T) {
	r := newTestRouter(t, nil)

	payload := postpaidPayload()
	payload["rules"].(map[string]any)["children"].([]any)[0].(map[string]any)["attribute"] = "creditScore"

	w := doJSON(t, r, http.MethodPost, "/v1/segments/metrics", "", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown segment attribute")
}

func TestSegmentMetricsEndpoint_MalformedJSON(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/segments/metrics", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSegmentProfilesEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/v1/segments/profiles", "", postpaidPayload())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Profiles []struct {
			ID string `json:"id"`
		} `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Profiles, 3)
	assert.Equal(t, "profile-marisol", resp.Profiles[0].ID)
	assert.Equal(t, "profile-luis", resp.Profiles[1].ID)
	assert.Equal(t, "profile-derek", resp.Profiles[2].ID)
}

func TestSegmentLifecycle(t *testing.T) {
	r := newTestRouter(t, []string{apiToken})

	create := postpaidPayload()
	create["name"] = "Postpaid base"

	// Mutations need the token once one is configured.
	w := doJSON(t, r, http.MethodPost, "/v1/segments", "", create)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/segments", apiToken, create)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Segment struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"segment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Segment.ID)
	id := created.Segment.ID

	// Reads stay open.
	w = doJSON(t, r, http.MethodGet, "/v1/segments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)

	w = doJSON(t, r, http.MethodGet, "/v1/segments/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	update := postpaidPayload()
	update["name"] = "Postpaid bundle eligible"
	update["rules"].(map[string]any)["children"] = append(
		update["rules"].(map[string]any)["children"].([]any),
		map[string]any{
			"id":         "c2",
			"attribute":  "bundleEligible",
			"comparator": "equals",
			"value":      true,
		},
	)

	w = doJSON(t, r, http.MethodPut, "/v1/segments/"+id, apiToken, update)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Added 1 rule(s)")

	w = doJSON(t, r, http.MethodGet, "/v1/segments/"+id+"/versions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Versions []struct {
			Summary string `json:"summary"`
		} `json:"versions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Versions, 2)
	assert.Equal(t, "Added 1 rule(s)", history.Versions[0].Summary)
	assert.Equal(t, "Initial configuration", history.Versions[1].Summary)

	w = doJSON(t, r, http.MethodGet, "/v1/segments/"+id+"/versions/latest", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var latest struct {
		Version struct {
			Summary string `json:"summary"`
		} `json:"version"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &latest))
	assert.Equal(t, "Added 1 rule(s)", latest.Version.Summary)

	w = doJSON(t, r, http.MethodDelete, "/v1/segments/"+id, apiToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Archived segments leave listings but stay addressable.
	w = doJSON(t, r, http.MethodGet, "/v1/segments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), id)

	w = doJSON(t, r, http.MethodGet, "/v1/segments/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSegmentEndpoint_Errors(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/segments/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/segments/0198c6a2-0000-7000-8000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/segments", "", map[string]any{"rules": nil})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")
}

func TestListOpportunities(t *testing.T) {
	r := newTestRouter(t, nil)

	var resp struct {
		Opportunities []struct {
			ID string `json:"id"`
		} `json:"opportunities"`
	}

	w := doJSON(t, r, http.MethodGet, "/v1/opportunities", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Opportunities, 6)

	w = doJSON(t, r, http.MethodGet, "/v1/opportunities?zone=Ponce", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp.Opportunities = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Opportunities, 1)
	assert.Equal(t, "opp-storm-ponce", resp.Opportunities[0].ID)

	w = doJSON(t, r, http.MethodGet, "/v1/opportunities?segment=seed-prepaid-value", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp.Opportunities = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Opportunities, 1)
	assert.Equal(t, "opp-prepaid-arecibo", resp.Opportunities[0].ID)

	w = doJSON(t, r, http.MethodGet, "/v1/opportunities?from=not-a-time", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOpportunity(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/opportunities/opp-prepaid-arecibo", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Opportunity struct {
			ID string `json:"id"`
		} `json:"opportunity"`
		RelatedSegments []struct {
			ID string `json:"id"`
		} `json:"relatedSegments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "opp-prepaid-arecibo", resp.Opportunity.ID)
	require.Len(t, resp.RelatedSegments, 1)
	assert.Equal(t, "seed-prepaid-value", resp.RelatedSegments[0].ID)

	w = doJSON(t, r, http.MethodGet, "/v1/opportunities/opp-unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInterpretContext(t *testing.T) {
	r := newTestRouter(t, nil)

	ctx := map[string]any{
		"objective": "retain",
		"geography": []string{"Ponce"},
		"product":   "Mobile",
		"planType":  "prepaid",
		"language":  "es",
		"signals":   []string{"storm recovery"},
	}

	w := doJSON(t, r, http.MethodPost, "/v1/context/interpret", "", ctx)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Interpretation struct {
			RankedOpportunityIDs []string `json:"rankedOpportunityIds"`
			ClarifyingPrompts    []any    `json:"clarifyingPrompts"`
		} `json:"interpretation"`
		SeedName       string `json:"seedName"`
		ImpliedSegment struct {
			Combinator string `json:"combinator"`
		} `json:"impliedSegment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Interpretation.RankedOpportunityIDs)
	assert.Equal(t, "opp-storm-ponce", resp.Interpretation.RankedOpportunityIDs[0])
	assert.Len(t, resp.Interpretation.ClarifyingPrompts, 3)
	assert.Equal(t, "Stabilise Mobile – Ponce", resp.SeedName)
	assert.Equal(t, "AND", resp.ImpliedSegment.Combinator)
}

func TestAdjustContext(t *testing.T) {
	r := newTestRouter(t, nil)

	payload := map[string]any{
		"context": map[string]any{
			"objective": "grow",
			"product":   "Mobile",
		},
		"update": map[string]any{
			"planType":       "bundle",
			"bundleEligible": true,
		},
	}

	w := doJSON(t, r, http.MethodPost, "/v1/context/adjust", "", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Context struct {
			PlanType       string `json:"planType"`
			BundleEligible bool   `json:"bundleEligible"`
		} `json:"context"`
		Interpretation struct {
			RankedOpportunityIDs []string `json:"rankedOpportunityIds"`
		} `json:"interpretation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bundle", resp.Context.PlanType)
	assert.True(t, resp.Context.BundleEligible)
	require.NotEmpty(t, resp.Interpretation.RankedOpportunityIDs)
	assert.Equal(t, "opp-loop-sjm", resp.Interpretation.RankedOpportunityIDs[0])
}
