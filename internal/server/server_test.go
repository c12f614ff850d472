package server

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"keyscout/internal/config"
	"keyscout/internal/keywords"
	"keyscout/internal/source"
)

func newTestServer(t *testing.T, rateLimit int) *Server {
	t.Helper()
	cfg := &config.Config{
		Env:           "test",
		BaseURL:       "http://localhost:3000",
		RateLimitMax:  rateLimit,
		KeywordSource: source.Primary,
		SiteTitle:     "Keyscout",
	}

	src, err := source.Build(source.Deps{Config: cfg})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	s := New(cfg, "../../views", "../../static")
	s.RegisterRoutes(keywords.NewService(src, keywords.Options{}), nil)
	return s
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestIndexRendersForm(t *testing.T) {
	s := newTestServer(t, 100)

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	for _, want := range []string{`name="keyword"`, `value="KR"`, `value="de"`, "Keyscout", "Data source: primary"} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %q", want)
		}
	}
	if strings.Contains(body, "Search engine") {
		t.Error("index page must not name a fixed search engine")
	}
}

func TestAnalyzeRendersResults(t *testing.T) {
	s := newTestServer(t, 100)

	form := url.Values{"keyword": {"무선충전"}, "country": {"KR"}, "lang": {"ko"}}
	req, _ := http.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	for _, want := range []string{"무선충전 추천", "4,400", "₩ 720", "황금", "<b>82</b>"} {
		if !strings.Contains(body, want) {
			t.Errorf("results missing %q", want)
		}
	}
	if strings.Contains(body, "<html") {
		t.Error("results partial must render without the layout")
	}
}

func TestAnalyzeValidationError(t *testing.T) {
	s := newTestServer(t, 100)

	form := url.Values{"keyword": {" a "}}
	req, _ := http.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "at least 2 characters") {
		t.Errorf("body = %q, want validation message", body)
	}
}

func TestProbes(t *testing.T) {
	s := newTestServer(t, 100)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		resp, err := s.App.Test(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestReadinessNamesSource(t *testing.T) {
	s := newTestServer(t, 100)

	req, _ := http.NewRequest(http.MethodGet, "/readyz", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"source":"primary"`) {
		t.Errorf("readyz = %d %s, want 200 naming primary", resp.StatusCode, body)
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, 2)

	var last int
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/api/keyword-ideas?keyword=tv", nil)
		resp, err := s.App.Test(req)
		if err != nil {
			t.Fatalf("request %d failed: %v", i, err)
		}
		last = resp.StatusCode
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last)
	}

	// Probes bypass the limiter.
	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", resp.StatusCode)
	}
}
