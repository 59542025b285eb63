package httpserver_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	httpserver "boost_site/internal/adapters/http_server"
)

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSPAServesExistingFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "index.html", "<html>app</html>")
	writeFixture(t, dir, "assets/app.js", "console.log('hi')")

	spa := httpserver.NewSPA(dir)
	req := httptest.NewRequest("GET", "/assets/app.js", nil)
	rr := httptest.NewRecorder()
	spa.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	if !strings.Contains(string(body), "console.log") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestSPAFallsBackToIndexForClientRoutes(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "index.html", "<html>app</html>")

	spa := httpserver.NewSPA(dir)
	for _, path := range []string{"/", "/reviews", "/some/deep/link"} {
		req := httptest.NewRequest("GET", path, nil)
		rr := httptest.NewRecorder()
		spa.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rr.Code)
		}
		body, _ := io.ReadAll(rr.Body)
		if !strings.Contains(string(body), "<html>app</html>") {
			t.Fatalf("%s: expected index document, got %s", path, body)
		}
	}
}

func TestSPAMissingBuildIs404PlainText(t *testing.T) {
	spa := httpserver.NewSPA(t.TempDir()) // no index.html
	req := httptest.NewRequest("GET", "/reviews", nil)
	rr := httptest.NewRecorder()
	spa.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected plain text 404, got %q", ct)
	}
	body, _ := io.ReadAll(rr.Body)
	if !strings.Contains(string(body), "build not found") {
		t.Fatalf("unexpected 404 body: %s", body)
	}
}

func TestSPADoesNotEscapeRoot(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "index.html", "<html>app</html>")

	spa := httpserver.NewSPA(dir)
	req := httptest.NewRequest("GET", "/../../etc/passwd", nil)
	req.URL.Path = "/../../etc/passwd"
	rr := httptest.NewRecorder()
	spa.ServeHTTP(rr, req)

	body, _ := io.ReadAll(rr.Body)
	if strings.Contains(string(body), "root:") {
		t.Fatalf("path traversal escaped the asset root")
	}
}
