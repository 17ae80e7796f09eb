package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	handler "github.com/usvmap/usvmap/internal/adapters/http"
	"github.com/usvmap/usvmap/internal/adapters/gazetteer"
	"github.com/usvmap/usvmap/internal/adapters/memory"
	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/core/layout"
	"github.com/usvmap/usvmap/internal/core/usecases"
)

// ---- Mock record source ----

type mockSource struct {
	statFn func(path string) (domain.FileIdentity, error)
	loadFn func(ctx context.Context, path string) (*domain.RecordSet, error)
}

func (m *mockSource) Stat(path string) (domain.FileIdentity, error) {
	if m.statFn != nil {
		return m.statFn(path)
	}
	return domain.FileIdentity{Path: path, Size: 1, ModTime: time.Unix(1700000000, 0)}, nil
}

func (m *mockSource) Load(ctx context.Context, path string) (*domain.RecordSet, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx, path)
	}
	return &domain.RecordSet{Encoding: "utf-8"}, nil
}

func sourceOf(records ...domain.VesselRecord) *mockSource {
	return &mockSource{
		loadFn: func(ctx context.Context, path string) (*domain.RecordSet, error) {
			return &domain.RecordSet{Records: records, Encoding: "utf-8"}, nil
		},
	}
}

func vessel(row int, name, manufacturer, country string) domain.VesselRecord {
	return domain.VesselRecord{Row: row, Name: name, Manufacturer: manufacturer, RawCountry: country}
}

// fleet is a small mixed dataset: two French vessels, one British vessel
// spelled with an alias, one vessel whose country cannot be resolved.
func fleet() *mockSource {
	return sourceOf(
		vessel(2, "DriX", "Exail", "France"),
		vessel(3, "Inspector 125", "Exail", "France"),
		vessel(4, "C-Worker 7", "L3Harris", "UK"),
		vessel(5, "Phantom", "Nobody", "Atlantis"),
	)
}

// ---- Test helpers ----

func setupApp(deps *handler.Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler.SetupRoutes(app, deps)
	return app
}

func makeDeps(t *testing.T, source *mockSource, opts ...func(*handler.Dependencies)) *handler.Dependencies {
	t.Helper()
	resolver := usecases.NewResolverService(gazetteer.New(), nil, nil, 0)
	datasets, err := usecases.NewDatasetService(source, resolver, nil, "usv.csv", 0.5)
	if err != nil {
		t.Fatalf("dataset service: %v", err)
	}
	views, err := usecases.NewViewService(datasets, memory.NewSessionStore(64, time.Hour), layout.DefaultViewportConfig())
	if err != nil {
		t.Fatalf("view service: %v", err)
	}
	d := &handler.Dependencies{
		Datasets:   datasets,
		Views:      views,
		SessionTTL: time.Hour,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func readBody(t *testing.T, body io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return b
}

// sessionClient replays the session cookie across view requests.
type sessionClient struct {
	t      *testing.T
	app    *fiber.App
	cookie *http.Cookie
}

func (s *sessionClient) do(method, path, body string) (*http.Response, domain.View) {
	s.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	resp, err := s.app.Test(req, -1)
	if err != nil {
		s.t.Fatal(err)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "usv_session" {
			s.cookie = c
		}
	}
	var view domain.View
	if resp.StatusCode == fiber.StatusOK {
		if err := json.Unmarshal(readBody(s.t, resp.Body), &view); err != nil {
			s.t.Fatalf("decode view: %v", err)
		}
	}
	return resp, view
}

// ---- Vessel list tests ----

func TestListVessels_All(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/vessels", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data       []domain.PlacedVessel `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Pagination.Total != 3 {
		t.Errorf("expected 3 placed vessels (Atlantis dropped), got %d", result.Pagination.Total)
	}
	for _, v := range result.Data {
		if v.Country == "Atlantis" {
			t.Errorf("unresolvable vessel %q should not be placed", v.Name)
		}
	}
}

func TestListVessels_CountryAlias(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/vessels?country=uk", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data []domain.PlacedVessel `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if len(result.Data) != 1 {
		t.Fatalf("expected 1 vessel, got %d", len(result.Data))
	}
	if result.Data[0].Country != "United Kingdom" {
		t.Errorf("expected United Kingdom, got %q", result.Data[0].Country)
	}
	if got := result.Data[0].RawCountry; got != "UK" {
		t.Errorf("expected raw country to be kept as UK, got %q", got)
	}
}

func TestListVessels_UnknownCountry(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/vessels?country=Atlantis", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var apiErr handler.APIError
	json.NewDecoder(resp.Body).Decode(&apiErr)
	if apiErr.Code != "not_found" {
		t.Errorf("expected not_found, got %s", apiErr.Code)
	}
}

func TestListVessels_Pagination(t *testing.T) {
	records := make([]domain.VesselRecord, 7)
	for i := range records {
		records[i] = vessel(i+2, fmt.Sprintf("USV %d", i), "Acme", "Norway")
	}
	app := setupApp(makeDeps(t, sourceOf(records...)))

	req := httptest.NewRequest("GET", "/v1/vessels?country=Norway&offset=2&limit=3", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data       []domain.PlacedVessel `json:"data"`
		Pagination struct {
			Offset int `json:"offset"`
			Limit  int `json:"limit"`
			Total  int `json:"total"`
		} `json:"pagination"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if result.Pagination.Total != 7 {
		t.Errorf("expected total 7, got %d", result.Pagination.Total)
	}
	if len(result.Data) != 3 {
		t.Errorf("expected 3 vessels in page, got %d", len(result.Data))
	}
	if result.Pagination.Offset != 2 {
		t.Errorf("expected offset 2, got %d", result.Pagination.Offset)
	}

	link := resp.Header.Get("Link")
	for _, rel := range []string{`rel="first"`, `rel="prev"`, `rel="next"`, `rel="last"`} {
		if !strings.Contains(link, rel) {
			t.Errorf("expected %s in Link header, got %s", rel, link)
		}
	}
	if !strings.Contains(link, "country=Norway") {
		t.Errorf("expected country filter carried into links, got %s", link)
	}
}

func TestListVessels_DatasetUnavailable(t *testing.T) {
	src := &mockSource{
		statFn: func(string) (domain.FileIdentity, error) { return domain.FileIdentity{}, errors.New("no such file") },
	}
	app := setupApp(makeDeps(t, src))

	req := httptest.NewRequest("GET", "/v1/vessels", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 503 {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

// ---- Countries, anchors, dataset ----

func TestListCountries(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/countries", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Countries []string `json:"countries"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	want := []string{domain.ShowAll, "France", "United Kingdom"}
	if strings.Join(result.Countries, "|") != strings.Join(want, "|") {
		t.Errorf("expected %v, got %v", want, result.Countries)
	}
}

func TestListAnchors(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/anchors", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Anchors []domain.GeoAnchor `json:"anchors"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if len(result.Anchors) != 2 {
		t.Fatalf("expected 2 anchors, got %d", len(result.Anchors))
	}
	uk := result.Anchors[1]
	if uk.Country != "United Kingdom" || uk.Source != domain.AnchorStatic {
		t.Errorf("unexpected anchor %+v", uk)
	}
	if uk.Point.Lat != 55.378051 || uk.Point.Lon != -3.435973 {
		t.Errorf("unexpected UK anchor point %+v", uk.Point)
	}
}

func TestDatasetSummary(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/dataset", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var s domain.DatasetSummary
	json.NewDecoder(resp.Body).Decode(&s)
	if s.Placed != 3 || s.Dropped != 1 || s.Countries != 2 {
		t.Errorf("unexpected summary %+v", s)
	}
}

// ---- Viewport session tests ----

func TestView_InitialRender(t *testing.T) {
	client := &sessionClient{t: t, app: setupApp(makeDeps(t, fleet()))}

	resp, view := client.do("GET", "/v1/view", "")
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if client.cookie == nil {
		t.Fatal("expected session cookie")
	}
	if view.State.Mode != domain.ModeAll || view.State.Zoom != 1.2 {
		t.Errorf("expected ALL at zoom 1.2, got %+v", view.State)
	}
	if len(view.Vessels) != 3 {
		t.Errorf("expected 3 vessels, got %d", len(view.Vessels))
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "private, no-store" {
		t.Errorf("expected private, no-store, got %q", cc)
	}
}

func TestView_SelectThenClear(t *testing.T) {
	client := &sessionClient{t: t, app: setupApp(makeDeps(t, fleet()))}

	resp, view := client.do("POST", "/v1/view/select", `{"country":"France"}`)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if view.State.Mode != domain.ModeFiltered || view.State.Country != "France" {
		t.Fatalf("expected France filter, got %+v", view.State)
	}
	if view.State.Zoom != 3.5 {
		t.Errorf("expected close zoom 3.5, got %v", view.State.Zoom)
	}
	if math.Abs(view.State.Center.Lat-46.227638) > 0.5 || math.Abs(view.State.Center.Lon-2.213749) > 0.5 {
		t.Errorf("expected center near the French anchor, got %+v", view.State.Center)
	}
	if len(view.Vessels) != 2 {
		t.Errorf("expected 2 French vessels, got %d", len(view.Vessels))
	}

	// The filter survives a plain render.
	_, view = client.do("GET", "/v1/view", "")
	if view.State.Country != "France" {
		t.Errorf("expected filter to persist, got %+v", view.State)
	}

	_, view = client.do("POST", "/v1/view/clear", "")
	if view.State.Mode != domain.ModeAll || view.State.Country != domain.ShowAll || view.State.Zoom != 1.2 {
		t.Errorf("expected ALL after clear, got %+v", view.State)
	}
	if view.State.ZoomReset {
		t.Error("zoom reset flag must be consumed")
	}
}

func TestView_ZoomAllKeepsFilterOnce(t *testing.T) {
	client := &sessionClient{t: t, app: setupApp(makeDeps(t, fleet()))}

	client.do("POST", "/v1/view/select", `{"country":"uk"}`)

	_, view := client.do("POST", "/v1/view/zoom-all", "")
	if view.State.Zoom != 1.2 || view.State.Mode != domain.ModeAll {
		t.Errorf("expected wide zoom after zoom-all, got %+v", view.State)
	}
	if view.State.Country != "United Kingdom" {
		t.Errorf("expected filter kept, got %q", view.State.Country)
	}

	_, view = client.do("GET", "/v1/view", "")
	if view.State.Zoom != 3.5 || view.State.Mode != domain.ModeFiltered {
		t.Errorf("expected the next render to zoom back in, got %+v", view.State)
	}
}

func TestView_ZoomAllKeepsSelectorOnCountry(t *testing.T) {
	client := &sessionClient{t: t, app: setupApp(makeDeps(t, fleet()))}

	client.do("POST", "/v1/view/select", `{"country":"France"}`)
	_, view := client.do("POST", "/v1/view/zoom-all", "")

	if view.State.Country != "France" {
		t.Fatalf("expected country France after zoom-all, got %q", view.State.Country)
	}
	if len(view.Vessels) != 2 {
		t.Fatalf("expected the 2 French vessels, got %d", len(view.Vessels))
	}
	for _, v := range view.Vessels {
		if v.Country != view.State.Country {
			t.Errorf("row %s (%s) does not match the selected country", v.Name, v.Country)
		}
	}
	found := false
	for _, c := range view.Countries {
		found = found || c == view.State.Country
	}
	if !found {
		t.Errorf("selector options %v do not contain %q", view.Countries, view.State.Country)
	}
}

func TestView_SelectIgnoresCase(t *testing.T) {
	client := &sessionClient{t: t, app: setupApp(makeDeps(t, fleet()))}

	_, view := client.do("POST", "/v1/view/select", `{"country":"france"}`)
	if view.State.Country != "France" || view.State.Mode != domain.ModeFiltered {
		t.Fatalf("expected filtered France, got %+v", view.State)
	}
	if len(view.Vessels) != 2 {
		t.Errorf("expected 2 vessels, got %d", len(view.Vessels))
	}
}

func TestView_SelectShowAll(t *testing.T) {
	client := &sessionClient{t: t, app: setupApp(makeDeps(t, fleet()))}

	client.do("POST", "/v1/view/select", `{"country":"France"}`)
	_, view := client.do("POST", "/v1/view/select", `{"country":"Show All"}`)
	if view.State.Mode != domain.ModeAll || len(view.Vessels) != 3 {
		t.Errorf("expected ALL with 3 vessels, got %+v (%d vessels)", view.State, len(view.Vessels))
	}
}

func TestView_SelectMissingBody(t *testing.T) {
	client := &sessionClient{t: t, app: setupApp(makeDeps(t, fleet()))}

	resp, _ := client.do("POST", "/v1/view/select", `{}`)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestView_SessionsAreIndependent(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))
	a := &sessionClient{t: t, app: app}
	b := &sessionClient{t: t, app: app}

	a.do("POST", "/v1/view/select", `{"country":"France"}`)
	_, view := b.do("GET", "/v1/view", "")
	if view.State.Mode != domain.ModeAll {
		t.Errorf("second session should start at ALL, got %+v", view.State)
	}
	if a.cookie.Value == b.cookie.Value {
		t.Error("sessions should get distinct cookies")
	}
}

// ---- GraphQL ----

func TestGraphQL_Vessels(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	body := `{"query":"{ vessels(country: \"France\") { name country position { lat lon } } countries }"}`
	req := httptest.NewRequest("POST", "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data struct {
			Vessels []struct {
				Name    string `json:"name"`
				Country string `json:"country"`
			} `json:"vessels"`
			Countries []string `json:"countries"`
		} `json:"data"`
		Errors []interface{} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Data.Vessels) != 2 {
		t.Errorf("expected 2 French vessels, got %d", len(result.Data.Vessels))
	}
	if len(result.Data.Countries) != 3 || result.Data.Countries[0] != domain.ShowAll {
		t.Errorf("unexpected countries %v", result.Data.Countries)
	}
}

// ---- Health, headers, middleware ----

func TestHealth_Returns200(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/health", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&body)
	if body["status"] != "healthy" {
		t.Errorf("expected healthy, got %v", body["status"])
	}
}

func TestReady_DatasetOnly(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/ready", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 without optional backends, got %d", resp.StatusCode)
	}
}

func TestReady_DatasetMissing(t *testing.T) {
	src := &mockSource{
		statFn: func(string) (domain.FileIdentity, error) { return domain.FileIdentity{}, errors.New("gone") },
	}
	app := setupApp(makeDeps(t, src))

	req := httptest.NewRequest("GET", "/v1/ready", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 503 {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestAPIVersionHeader(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/health", nil)
	resp, _ := app.Test(req, -1)
	if v := resp.Header.Get("X-API-Version"); v != "1.0.0" {
		t.Errorf("expected X-API-Version 1.0.0, got %q", v)
	}
}

func TestVessels_CacheControlHeader(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/vessels", nil)
	resp, _ := app.Test(req, -1)
	if cc := resp.Header.Get("Cache-Control"); !strings.Contains(cc, "max-age=30") {
		t.Errorf("expected max-age=30, got %q", cc)
	}
}

func TestETag_NotModified(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/v1/countries", nil)
	resp, _ := app.Test(req, -1)
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag header")
	}

	for _, header := range []string{etag, `"other", ` + etag, "*"} {
		req = httptest.NewRequest("GET", "/v1/countries", nil)
		req.Header.Set("If-None-Match", header)
		resp, _ = app.Test(req, -1)
		if resp.StatusCode != 304 {
			t.Errorf("If-None-Match %q: expected 304, got %d", header, resp.StatusCode)
		}
	}
}

func TestMapPage(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := string(readBody(t, resp.Body))
	if !strings.Contains(body, "/v1/view/select") {
		t.Error("map page should drive the view endpoints")
	}
	if !strings.Contains(body, "select.value = st.country;") {
		t.Error("country selector should follow the session filter")
	}
}

func TestWebSocket_RequiresUpgrade(t *testing.T) {
	app := setupApp(makeDeps(t, fleet()))

	req := httptest.NewRequest("GET", "/ws", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Fatalf("expected 426, got %d", resp.StatusCode)
	}
}

// TestAccessLogMiddleware verifies structured access logging does not alter responses.
func TestAccessLogMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(handler.AccessLogMiddleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp.Body); !strings.Contains(string(body), "ok") {
		t.Errorf("expected response body to contain 'ok', got %s", string(body))
	}
}
