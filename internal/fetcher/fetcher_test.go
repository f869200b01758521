package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchPage(t *testing.T) {
	const page = "<html><body><h1>Anfängerkurse</h1></body></html>"

	t.Run("returns page body on 200", func(t *testing.T) {
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Write([]byte(page))
		}))
		defer srv.Close()

		f := New(srv.URL)
		html, err := f.FetchPage(context.Background())
		if err != nil {
			t.Fatalf("FetchPage failed: %v", err)
		}
		if html != page {
			t.Errorf("unexpected body: %q", html)
		}
		if !strings.Contains(gotUA, "Mozilla") {
			t.Errorf("expected browser user agent, got %q", gotUA)
		}
	})

	t.Run("fails on non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		f := New(srv.URL)
		if _, err := f.FetchPage(context.Background()); err == nil {
			t.Fatal("expected error for 503 response")
		}
	})

	t.Run("fails on unreachable host", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused

		f := New(srv.URL)
		if _, err := f.FetchPage(context.Background()); err == nil {
			t.Fatal("expected error for unreachable host")
		}
	})
}

func TestNewDefaultsURL(t *testing.T) {
	f := New("")
	if f.URL() != DefaultURL {
		t.Errorf("expected default URL, got %s", f.URL())
	}
}

func TestVisibleText(t *testing.T) {
	html := `<html><head><style>.x{color:red}</style></head>
<body>
  <script>var tracking = true;</script>
  <h1>Anfängerkurse</h1>

  <p>KINDERKURS KSK01-26   Mo 16:00</p>
  <noscript>enable javascript</noscript>
</body></html>`

	text, err := VisibleText(html)
	if err != nil {
		t.Fatalf("VisibleText failed: %v", err)
	}

	if !strings.Contains(text, "Anfängerkurse") {
		t.Error("expected heading text to survive")
	}
	if !strings.Contains(text, "KINDERKURS KSK01-26") {
		t.Error("expected course line to survive")
	}
	if strings.Contains(text, "tracking") {
		t.Error("script content should be stripped")
	}
	if strings.Contains(text, "color:red") {
		t.Error("style content should be stripped")
	}
	if strings.Contains(text, "enable javascript") {
		t.Error("noscript content should be stripped")
	}
	if strings.Contains(text, "\n\n") {
		t.Error("blank lines should be collapsed")
	}
}
