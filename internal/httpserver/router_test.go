package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/aumai/openjudge/internal/analyze"
	"github.com/aumai/openjudge/internal/model"
	"github.com/aumai/openjudge/internal/statute"
)

func testHandler(t *testing.T, cfg *model.Config) http.Handler {
	t.Helper()
	store, err := statute.New()
	if err != nil {
		t.Fatalf("statute.New: %v", err)
	}
	return New(cfg, store, analyze.NewAnalyzerWithStore(store))
}

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.RateLimiting.Enabled = false
	return cfg
}

func TestHealth(t *testing.T) {
	handler := testHandler(t, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status %q, want healthy", body["status"])
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	handler := testHandler(t, testConfig())

	body := strings.NewReader(`{"case_description": "The accused committed theft and robbery."}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var analysis model.Analysis
	if err := json.Unmarshal(rec.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(analysis.RelevantSections) == 0 {
		t.Error("expected matched sections")
	}
	if len(analysis.IPCToBNSMapping) == 0 {
		t.Error("expected IPC->BNS mappings")
	}
	if analysis.Disclaimer == "" {
		t.Error("disclaimer must be populated")
	}
	if id := rec.Header().Get("X-Request-ID"); id == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestAnalyzeEndpoint_CacheHit(t *testing.T) {
	handler := testHandler(t, testConfig())

	post := func() *httptest.ResponseRecorder {
		body := strings.NewReader(`{"case_description": "Theft occurred at the shop."}`)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", body))
		return rec
	}

	first := post()
	if first.Header().Get("X-Cache") == "hit" {
		t.Error("first request should not hit the cache")
	}

	second := post()
	if second.Header().Get("X-Cache") != "hit" {
		t.Error("second identical request should hit the cache")
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached response body should be identical")
	}
}

func TestAnalyzeEndpoint_CacheKeyedByExactText(t *testing.T) {
	handler := testHandler(t, testConfig())

	post := func(desc string) *httptest.ResponseRecorder {
		body := strings.NewReader(`{"case_description": "` + desc + `"}`)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", body))
		return rec
	}

	post("theft occurred at the shop.")
	second := post("THEFT OCCURRED AT THE SHOP.")

	// descriptions differing only in case must not share a cached body:
	// the response echoes the input verbatim
	if second.Header().Get("X-Cache") == "hit" {
		t.Error("differently-cased description should not hit the cache")
	}

	var analysis model.Analysis
	if err := json.Unmarshal(second.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if analysis.CaseDescription != "THEFT OCCURRED AT THE SHOP." {
		t.Errorf("case_description %q, want the exact input text", analysis.CaseDescription)
	}
}

func TestAnalyzeEndpoint_NoMatchEmptyArrays(t *testing.T) {
	handler := testHandler(t, testConfig())

	body := strings.NewReader(`{"case_description": "An unrelated contractual matter."}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"relevant_sections":[]`) {
		t.Errorf("relevant_sections should serialize as []: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"ipc_to_bns_mapping":[]`) {
		t.Errorf("ipc_to_bns_mapping should serialize as []: %s", rec.Body.String())
	}
}

func TestAnalyzeEndpoint_BadBody(t *testing.T) {
	handler := testHandler(t, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("not json")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestSectionsEndpoint(t *testing.T) {
	handler := testHandler(t, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sections/IPC", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var sections []model.Section
	if err := json.Unmarshal(rec.Body.Bytes(), &sections); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(sections) < 20 {
		t.Errorf("expected at least 20 IPC sections, got %d", len(sections))
	}
}

func TestSectionsEndpoint_UnknownFamily(t *testing.T) {
	handler := testHandler(t, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sections/FOO", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestSectionEndpoint(t *testing.T) {
	handler := testHandler(t, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sections/IPC/302", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var section model.Section
	if err := json.Unmarshal(rec.Body.Bytes(), &section); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if section.Number != "302" || section.Title != "Murder" {
		t.Errorf("unexpected section %+v", section)
	}
}

func TestSectionEndpoint_NotFound(t *testing.T) {
	handler := testHandler(t, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sections/IPC/9999", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rec.Code)
	}
}

func TestMappingEndpoint(t *testing.T) {
	handler := testHandler(t, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/mappings/302", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var mapping model.Mapping
	if err := json.Unmarshal(rec.Body.Bytes(), &mapping); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if mapping.NewSection != "103" || mapping.Status != model.StatusReplaced {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestMappingEndpoint_NotFound(t *testing.T) {
	handler := testHandler(t, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/mappings/9999", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.RateLimiting.Enabled = true
	cfg.RateLimiting.RequestsPerSecond = 0 // no refill: only the burst is usable
	cfg.RateLimiting.BurstSize = 1
	handler := testHandler(t, cfg)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request: status %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request: status %d, want 429", second.Code)
	}
}

func TestClientLimiter_PerClient(t *testing.T) {
	limiter := NewClientLimiter(0, 1)

	if !limiter.Allow("10.0.0.1") {
		t.Error("first request for client A should pass")
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("second request for client A should be rejected")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Error("client B has its own bucket")
	}
}

func TestClientLimiter_EvictsIdleClients(t *testing.T) {
	limiter := &ClientLimiter{
		clients:      gocache.New(10*time.Millisecond, time.Minute),
		defaultRate:  0,
		defaultBurst: 1,
	}

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("first request should pass")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("burst exhausted, second request should be rejected")
	}

	time.Sleep(20 * time.Millisecond)

	// the idle entry expired, so the client gets a fresh bucket
	if !limiter.Allow("10.0.0.1") {
		t.Error("expected a fresh bucket after the idle entry expired")
	}
}
