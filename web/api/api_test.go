package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"plume/config"
	"plume/models"
	"plume/web"
)

// testServer drives a running server instance for integration testing.
// This approach exercises the full HTTP stack including middleware.
type testServer struct {
	baseURL string
	client  *http.Client
}

// newTestServer starts a server with a fresh in-memory database. The
// client never follows redirects so tests can assert on them directly.
func newTestServer(t *testing.T, addr string) *testServer {
	t.Helper()

	if err := models.InitDB(""); err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}

	os.Setenv("PLUME_JWT_SECRET", "test-secret-key-for-sessions-32chars")
	if err := models.InitJWT(); err != nil {
		t.Fatalf("failed to initialize JWT: %v", err)
	}
	if err := models.EnsureAdmin("curator", "gallery-keys-2024"); err != nil {
		t.Fatalf("failed to seed admin account: %v", err)
	}

	cfg := &config.Config{Address: addr, Scheme: "light", Title: "Plume UI"}
	srv := web.NewServer(cfg)

	go func() {
		srv.Run()
	}()

	// Wait for server to be ready
	time.Sleep(100 * time.Millisecond)

	return &testServer{
		baseURL: "http://localhost" + addr,
		client: &http.Client{
			Timeout: 5 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// cleanup releases the database between test functions
func (ts *testServer) cleanup() {
	models.CloseDB()
}

// request makes a JSON request and returns status code and parsed body
func (ts *testServer) request(method, path string, body interface{}) (int, map[string]interface{}) {
	return ts.requestWith(method, path, body, nil)
}

func (ts *testServer) requestWith(method, path string, body interface{}, headers map[string]string) (int, map[string]interface{}) {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, ts.baseURL+path, reqBody)
	if err != nil {
		return 0, nil
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ts.client.Do(req)
	if err != nil {
		return 0, nil
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	return resp.StatusCode, result
}

// getPage fetches an HTML route and returns status code and body text
func (ts *testServer) getPage(path string, cookie *http.Cookie) (int, string) {
	req, err := http.NewRequest("GET", ts.baseURL+path, nil)
	if err != nil {
		return 0, ""
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := ts.client.Do(req)
	if err != nil {
		return 0, ""
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// postForm submits a urlencoded form and returns the raw response
func (ts *testServer) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()

	req, err := http.NewRequest("POST", ts.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("failed to build form request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := ts.client.Do(req)
	if err != nil {
		t.Fatalf("failed to post form: %v", err)
	}
	return resp
}

func TestShowcaseAPI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ts := newTestServer(t, ":8123")
	defer ts.cleanup()

	t.Run("Health", func(t *testing.T) {
		status, resp := ts.request("GET", "/api/v1/health", nil)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		data, ok := resp["data"].(map[string]interface{})
		if !ok || data["status"] != "ok" {
			t.Errorf("expected status ok, got %v", resp["data"])
		}
	})

	t.Run("ListRatingsEmpty", func(t *testing.T) {
		status, resp := ts.request("GET", "/api/v1/ratings", nil)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		data := resp["data"].(map[string]interface{})
		if data["count"].(float64) != 0 {
			t.Errorf("expected 0 rated components, got %v", data["count"])
		}
	})

	t.Run("SubmitRating", func(t *testing.T) {
		status, resp := ts.request("POST", "/api/v1/ratings/button", map[string]int{"score": 4})

		if status != http.StatusCreated {
			t.Errorf("expected status %d, got %d", http.StatusCreated, status)
		}
		data := resp["data"].(map[string]interface{})
		if data["component"] != "button" {
			t.Errorf("expected component 'button', got %v", data["component"])
		}
		if data["score"].(float64) != 4 {
			t.Errorf("expected score 4, got %v", data["score"])
		}
	})

	t.Run("RatingSummaryAverages", func(t *testing.T) {
		status, _ := ts.request("POST", "/api/v1/ratings/button", map[string]int{"score": 5})
		if status != http.StatusCreated {
			t.Fatalf("expected status %d, got %d", http.StatusCreated, status)
		}

		status, resp := ts.request("GET", "/api/v1/ratings/button", nil)
		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		data := resp["data"].(map[string]interface{})
		if data["average"].(float64) != 4.5 {
			t.Errorf("expected average 4.5, got %v", data["average"])
		}
		if data["count"].(float64) != 2 {
			t.Errorf("expected count 2, got %v", data["count"])
		}
	})

	t.Run("RejectOutOfRangeScore", func(t *testing.T) {
		status, resp := ts.request("POST", "/api/v1/ratings/button", map[string]int{"score": 9})

		if status != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, status)
		}
		if resp["success"] != false {
			t.Errorf("expected success=false, got %v", resp["success"])
		}
	})

	t.Run("RejectBadJSON", func(t *testing.T) {
		resp, err := http.Post(ts.baseURL+"/api/v1/ratings/button", "application/json", strings.NewReader("{not json"))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
		}
	})

	t.Run("UnratedComponentHasZeroSummary", func(t *testing.T) {
		status, resp := ts.request("GET", "/api/v1/ratings/tooltip", nil)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		data := resp["data"].(map[string]interface{})
		if data["count"].(float64) != 0 {
			t.Errorf("expected count 0 for unrated component, got %v", data["count"])
		}
	})

	var snapGUID string
	t.Run("CreateSnapshot", func(t *testing.T) {
		input := map[string]interface{}{
			"name":      "Indigo outline",
			"component": "button",
			"attrs":     map[string]string{"variant": "outline", "color": "primary"},
		}

		status, resp := ts.request("POST", "/api/v1/snapshots", input)

		if status != http.StatusCreated {
			t.Fatalf("expected status %d, got %d", http.StatusCreated, status)
		}
		data := resp["data"].(map[string]interface{})
		if data["name"] != "Indigo outline" {
			t.Errorf("expected name 'Indigo outline', got %v", data["name"])
		}
		attrs := data["attrs"].(map[string]interface{})
		if attrs["variant"] != "outline" {
			t.Errorf("expected attrs.variant 'outline', got %v", attrs["variant"])
		}
		snapGUID = data["guid"].(string)
		if snapGUID == "" {
			t.Error("expected a generated guid")
		}
	})

	t.Run("GetSnapshot", func(t *testing.T) {
		status, resp := ts.request("GET", "/api/v1/snapshots/"+snapGUID, nil)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		data := resp["data"].(map[string]interface{})
		if data["guid"] != snapGUID {
			t.Errorf("expected guid %s, got %v", snapGUID, data["guid"])
		}
	})

	t.Run("ListSnapshots", func(t *testing.T) {
		status, resp := ts.request("GET", "/api/v1/snapshots", nil)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		data := resp["data"].(map[string]interface{})
		if data["count"].(float64) != 1 {
			t.Errorf("expected 1 snapshot, got %v", data["count"])
		}
	})

	t.Run("UpdateSnapshot", func(t *testing.T) {
		input := map[string]interface{}{
			"name":      "Danger outline",
			"component": "button",
			"attrs":     map[string]string{"variant": "outline", "color": "danger"},
		}

		status, resp := ts.request("PUT", "/api/v1/snapshots/"+snapGUID, input)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		data := resp["data"].(map[string]interface{})
		if data["name"] != "Danger outline" {
			t.Errorf("expected updated name, got %v", data["name"])
		}
		attrs := data["attrs"].(map[string]interface{})
		if attrs["color"] != "danger" {
			t.Errorf("expected attrs.color 'danger', got %v", attrs["color"])
		}
	})

	t.Run("DuplicateGUIDConflicts", func(t *testing.T) {
		input := map[string]interface{}{
			"guid":      snapGUID,
			"name":      "Duplicate",
			"component": "badge",
		}

		status, resp := ts.request("POST", "/api/v1/snapshots", input)

		if status != http.StatusConflict {
			t.Errorf("expected status %d, got %d", http.StatusConflict, status)
		}
		if resp["success"] != false {
			t.Errorf("expected success=false, got %v", resp["success"])
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		status, _ := ts.request("POST", "/api/v1/snapshots", map[string]string{"component": "badge"})

		if status != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, status)
		}
	})

	t.Run("MissingComponent", func(t *testing.T) {
		status, _ := ts.request("POST", "/api/v1/snapshots", map[string]string{"name": "No component"})

		if status != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, status)
		}
	})

	t.Run("PackedAttrsRoundTrip", func(t *testing.T) {
		packed, err := models.PackAttrs(map[string]string{"variant": "gradient", "color": "misc"})
		if err != nil {
			t.Fatalf("failed to pack attrs: %v", err)
		}

		input := map[string]interface{}{
			"name":         "Packed config",
			"component":    "badge",
			"attrs_packed": packed,
		}
		status, resp := ts.request("POST", "/api/v1/snapshots", input)
		if status != http.StatusCreated {
			t.Fatalf("expected status %d, got %d", http.StatusCreated, status)
		}
		data := resp["data"].(map[string]interface{})
		attrs := data["attrs"].(map[string]interface{})
		if attrs["variant"] != "gradient" {
			t.Errorf("expected packed attrs to decode server-side, got %v", attrs)
		}
		guid := data["guid"].(string)

		status, resp = ts.requestWith("GET", "/api/v1/snapshots/"+guid, nil,
			map[string]string{"X-Attrs-Encoding": "msgpack"})
		if status != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, status)
		}
		data = resp["data"].(map[string]interface{})
		if _, present := data["attrs"]; present {
			t.Error("packed responses should omit the plain attrs map")
		}
		encoded, ok := data["attrs_packed"].(string)
		if !ok || encoded == "" {
			t.Fatalf("expected attrs_packed in response, got %v", data)
		}
		decoded, err := models.UnpackAttrs(encoded)
		if err != nil {
			t.Fatalf("failed to unpack response attrs: %v", err)
		}
		if decoded["variant"] != "gradient" || decoded["color"] != "misc" {
			t.Errorf("expected original attrs back, got %v", decoded)
		}
	})

	t.Run("BadPackedEncoding", func(t *testing.T) {
		input := map[string]interface{}{
			"name":         "Broken",
			"component":    "badge",
			"attrs_packed": "!!!not-base64!!!",
		}

		status, _ := ts.request("POST", "/api/v1/snapshots", input)

		if status != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, status)
		}
	})

	t.Run("DeleteSnapshot", func(t *testing.T) {
		status, resp := ts.request("DELETE", "/api/v1/snapshots/"+snapGUID, nil)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		data := resp["data"].(map[string]interface{})
		if data["guid"] != snapGUID {
			t.Errorf("expected deleted guid %s, got %v", snapGUID, data["guid"])
		}

		status, _ = ts.request("GET", "/api/v1/snapshots/"+snapGUID, nil)
		if status != http.StatusNotFound {
			t.Errorf("expected status %d after delete, got %d", http.StatusNotFound, status)
		}
	})

	t.Run("UpdateNonExistent", func(t *testing.T) {
		input := map[string]interface{}{"name": "Ghost", "component": "badge"}

		status, _ := ts.request("PUT", "/api/v1/snapshots/no-such-guid", input)

		if status != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, status)
		}
	})

	t.Run("DeleteNonExistent", func(t *testing.T) {
		status, _ := ts.request("DELETE", "/api/v1/snapshots/no-such-guid", nil)

		if status != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, status)
		}
	})
}

func TestPagesAndAdmin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ts := newTestServer(t, ":8124")
	defer ts.cleanup()

	t.Run("CatalogPage", func(t *testing.T) {
		status, body := ts.getPage("/", nil)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		if !strings.Contains(body, "/components/accordion") {
			t.Error("catalog should link to the accordion page")
		}
	})

	t.Run("ComponentPage", func(t *testing.T) {
		status, body := ts.getPage("/components/button", nil)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		if !strings.Contains(body, "Rate this component") {
			t.Error("component page should include the rating section")
		}
	})

	t.Run("UnknownComponentIs404", func(t *testing.T) {
		status, body := ts.getPage("/components/carousel", nil)

		if status != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, status)
		}
		if !strings.Contains(body, "Page not found") {
			t.Error("unknown component should render the not-found page")
		}
	})

	t.Run("RateViaForm", func(t *testing.T) {
		resp := ts.postForm(t, "/components/button/rate", url.Values{"score": {"5"}}, nil)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), `id="rate-button"`) {
			t.Error("rate endpoint should return the refreshed widget")
		}
		if !strings.Contains(string(body), "5.0 from 1 ratings") {
			t.Error("refreshed widget should show the new average")
		}
	})

	t.Run("RateWithoutScore", func(t *testing.T) {
		resp := ts.postForm(t, "/components/button/rate", url.Values{}, nil)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "Pick a star first") {
			t.Error("missing score should return the widget with an error message")
		}
	})

	t.Run("ComparePage", func(t *testing.T) {
		status, body := ts.getPage("/compare?component=badge&lv=gradient&lc=danger", nil)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		if !strings.Contains(body, "Markup diff") {
			t.Error("compare page should include the diff section")
		}
		if !strings.Contains(body, "gradient / danger") {
			t.Error("compare page should label the chosen pairing")
		}
	})

	t.Run("PlaygroundSaveFlow", func(t *testing.T) {
		form := url.Values{
			"name":      {"Test snap"},
			"component": {"badge"},
			"variant":   {"outline"},
			"color":     {"danger"},
			"size":      {"small"},
		}
		resp := ts.postForm(t, "/playground/save", form, nil)
		resp.Body.Close()

		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, resp.StatusCode)
		}
		loc := resp.Header.Get("Location")
		if !strings.HasPrefix(loc, "/playground?snapshot=") {
			t.Fatalf("expected redirect to the saved snapshot, got %s", loc)
		}

		status, body := ts.getPage(loc, nil)
		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		if !strings.Contains(body, "Snapshot saved") {
			t.Error("playground should confirm the save")
		}
		if !strings.Contains(body, "pg-sample-badge") {
			t.Error("playground should preview the snapshot's component")
		}
	})

	t.Run("AdminRequiresLogin", func(t *testing.T) {
		status, _ := ts.getPage("/admin", nil)

		if status != http.StatusFound {
			t.Errorf("expected status %d, got %d", http.StatusFound, status)
		}
	})

	t.Run("LoginWrongPassword", func(t *testing.T) {
		form := url.Values{"username": {"curator"}, "password": {"wrong-password"}}
		resp := ts.postForm(t, "/admin/login", form, nil)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "Sign in failed") {
			t.Error("failed login should re-render the form with the alert")
		}
	})

	t.Run("LoginAndDashboard", func(t *testing.T) {
		form := url.Values{"username": {"curator"}, "password": {"gallery-keys-2024"}}
		resp := ts.postForm(t, "/admin/login", form, nil)
		resp.Body.Close()

		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, resp.StatusCode)
		}

		var session *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == "plume_session" {
				session = c
			}
		}
		if session == nil || session.Value == "" {
			t.Fatal("login should set the session cookie")
		}

		status, body := ts.getPage("/admin", session)
		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		if !strings.Contains(body, "Signed in as curator.") {
			t.Error("dashboard should greet the signed-in admin")
		}
	})

	t.Run("StaticAssets", func(t *testing.T) {
		status, body := ts.getPage("/static/js/behavior.js", nil)

		if status != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, status)
		}
		if !strings.Contains(body, "data-initial-open") {
			t.Error("behavior script should be served from the embedded FS")
		}
	})
}
