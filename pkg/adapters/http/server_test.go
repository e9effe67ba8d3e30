package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/sbmlexport"
	httpAdapter "github.com/aretw0/sbmlexport/pkg/adapters/http"
	"github.com/aretw0/sbmlexport/pkg/adapters/memory"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/dsl"
	"github.com/aretw0/sbmlexport/pkg/observability"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handler(t *testing.T) http.Handler {
	t.Helper()
	b := dsl.New().DBVersion(59)
	b.Species(48887, "Homo sapiens")
	b.Compartment(70101, "cytosol", "0005829")
	b.Simple(113592, "ATP").In(70101)
	b.Reaction(5672965, "ATP hydrolysis").Input(113592).InSpecies(48887)
	b.Pathway(109581, "Apoptosis").StID("R-HSA-109581").Events(5672965).InSpecies(48887)

	reg := prometheus.NewRegistry()
	exp, err := sbmlexport.New("",
		sbmlexport.WithSource(memory.NewSource(b.MustBuild())),
		sbmlexport.WithMetrics(observability.NewMetrics(reg)),
		sbmlexport.WithTestMode(true),
	)
	require.NoError(t, err)
	return httpAdapter.NewHandler(exp, httpAdapter.WithGatherer(reg), httpAdapter.WithVersion("1.2.3"))
}

func do(h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGetPathway(t *testing.T) {
	h := handler(t)

	w := do(h, "GET", "/pathways/109581", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/sbml+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `id="pathway_109581"`)
	assert.NotEmpty(t, w.Header().Get(httpAdapter.RequestIDHeader))

	w = do(h, "GET", "/pathways/109581?format=biopax3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/rdf+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `rdf:ID="r0"`)
}

func TestGetPathway_Errors(t *testing.T) {
	h := handler(t)
	tests := []struct {
		target string
		status int
	}{
		{"/pathways/abc", http.StatusBadRequest},
		{"/pathways/-4", http.StatusBadRequest},
		{"/pathways/404", http.StatusNotFound},
		{"/pathways/5672965", http.StatusUnprocessableEntity},
		{"/pathways/109581?format=json", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.status, do(h, "GET", tt.target, nil).Code)
		})
	}
}

func TestPostEvents(t *testing.T) {
	h := handler(t)

	w := do(h, "POST", "/events", httpAdapter.EventsRequest{Events: []domain.DBID{5672965}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "no_parent_pathway", w.Header().Get(httpAdapter.ModelIDHeader))

	w = do(h, "POST", "/events", httpAdapter.EventsRequest{Events: []domain.DBID{5672965, 1}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(h, "POST", "/events", httpAdapter.EventsRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest("POST", "/events", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostParent(t *testing.T) {
	h := handler(t)
	w := do(h, "POST", "/events/parent", httpAdapter.EventsRequest{Events: []domain.DBID{5672965}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp httpAdapter.ParentResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.Parent)
	assert.Equal(t, domain.DBID(109581), resp.Parent.DbId)
	require.NotNil(t, resp.Parent.StId)
	assert.Equal(t, "R-HSA-109581", *resp.Parent.StId)
}

func TestPostParent_NoParent(t *testing.T) {
	b := dsl.New().DBVersion(59)
	b.Species(48887, "Homo sapiens")
	b.Reaction(1, "orphan").InSpecies(48887)
	exp, err := sbmlexport.New("", sbmlexport.WithSource(memory.NewSource(b.MustBuild())), sbmlexport.WithTestMode(true))
	require.NoError(t, err)

	w := do(httpAdapter.NewHandler(exp), "POST", "/events/parent", httpAdapter.EventsRequest{Events: []domain.DBID{1}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"parent":null}`, w.Body.String())
}

func TestGetSpeciesPathways(t *testing.T) {
	h := handler(t)
	w := do(h, "GET", "/species/48887/pathways", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"species":48887,"pathways":[109581]}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(h, "GET", "/species/1/pathways", nil).Code)
}

func TestInfoHealthMetrics(t *testing.T) {
	h := handler(t)

	w := do(h, "GET", "/health", nil)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(h, "GET", "/info", nil)
	assert.JSONEq(t, `{"app":"sbmlexport-http","version":"1.2.3","formats":["biopax3","sbml"]}`, w.Body.String())

	do(h, "GET", "/pathways/109581", nil)
	w = do(h, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sbmlexport_exports_total{format="sbml",result="ok"} 1`)
}

func TestRequestID_Propagated(t *testing.T) {
	h := handler(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	req := httptest.NewRequest("GET", "/health", nil).WithContext(ctx)
	req.Header.Set(httpAdapter.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(httpAdapter.RequestIDHeader))
}

func TestOpenAPIDocument(t *testing.T) {
	h := handler(t)

	w := do(h, "GET", "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/yaml", w.Header().Get("Content-Type"))

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(w.Body.Bytes())
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))
	assert.NotNil(t, doc.Paths.Find("/pathways/{id}"))
	assert.NotNil(t, doc.Paths.Find("/events/parent"))

	w = do(h, "GET", "/swagger", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/openapi.yaml")
}

func TestRequestValidation(t *testing.T) {
	h := handler(t)
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"Id below minimum", "GET", "/species/0/pathways", ""},
		{"Events missing", "POST", "/events", `{"format":"sbml"}`},
		{"Events empty", "POST", "/events/parent", `{"events":[]}`},
		{"Event id not a number", "POST", "/events", `{"events":["x"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestCORS(t *testing.T) {
	w := do(handler(t), "OPTIONS", "/pathways/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
