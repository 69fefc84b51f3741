package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formstate/pkg/schemafile"
)

const sample = "fields:\n  - key: name\n    label: Name\n"

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := New(schemafile.LoaderOptions{}).Load(context.Background(), schemafile.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sample || doc.Location() != path {
		t.Fatalf("unexpected document %q from %q", doc.Raw(), doc.Location())
	}
}

func TestLoad_FS(t *testing.T) {
	files := fstest.MapFS{"forms/contact.yaml": {Data: []byte(sample)}}
	l := New(schemafile.NewLoaderOptions(schemafile.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), schemafile.SourceFromFS("forms/contact.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sample {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}

	if _, err := New(schemafile.LoaderOptions{}).Load(context.Background(), schemafile.SourceFromFS("x.yaml")); err == nil {
		t.Fatalf("expected error without filesystem")
	}
}

func TestLoad_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(sample))
	}))
	defer server.Close()

	src, err := schemafile.SourceFromURL(server.URL + "/form.yaml")
	if err != nil {
		t.Fatalf("source: %v", err)
	}

	if _, err := New(schemafile.LoaderOptions{}).Load(context.Background(), src); err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected http disabled error, got %v", err)
	}

	l := New(schemafile.NewLoaderOptions(schemafile.WithHTTPClient(server.Client())))
	doc, err := l.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sample {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}

	missing, _ := schemafile.SourceFromURL(server.URL + "/missing")
	if _, err := l.Load(context.Background(), missing); err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(schemafile.LoaderOptions{}).Load(ctx, schemafile.SourceFromFile("form.yaml")); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestLoad_NilSource(t *testing.T) {
	if _, err := New(schemafile.LoaderOptions{}).Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestLoad_RejectsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "forms"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := New(schemafile.LoaderOptions{}).Load(context.Background(), schemafile.SourceFromFile(filepath.Join(dir, "forms")))
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("expected directory error, got %v", err)
	}

	files := fstest.MapFS{"forms/contact.yaml": {Data: []byte(sample)}}
	l := New(schemafile.NewLoaderOptions(schemafile.WithFileSystem(files)))
	if _, err := l.Load(context.Background(), schemafile.SourceFromFS("forms")); err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("expected fs directory error, got %v", err)
	}
}

func TestLoad_RejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.bin")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := New(schemafile.LoaderOptions{}).Load(context.Background(), schemafile.SourceFromFile(path))
	if err == nil || !strings.Contains(err.Error(), "unsupported document extension") {
		t.Fatalf("expected extension error, got %v", err)
	}
}

func TestLoad_EnforcesMaxDocumentSize(t *testing.T) {
	limit := schemafile.WithMaxDocumentSize(int64(len(sample) - 1))

	dir := t.TempDir()
	path := filepath.Join(dir, "form.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := New(schemafile.NewLoaderOptions(limit)).Load(context.Background(), schemafile.SourceFromFile(path)); err == nil || !strings.Contains(err.Error(), "limit") {
		t.Fatalf("expected file size error, got %v", err)
	}

	files := fstest.MapFS{"form.yaml": {Data: []byte(sample)}}
	fsLoader := New(schemafile.NewLoaderOptions(schemafile.WithFileSystem(files), limit))
	if _, err := fsLoader.Load(context.Background(), schemafile.SourceFromFS("form.yaml")); err == nil || !strings.Contains(err.Error(), "limit") {
		t.Fatalf("expected fs size error, got %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Chunked responses carry no Content-Length.
		w.(http.Flusher).Flush()
		_, _ = w.Write([]byte(sample))
	}))
	defer server.Close()

	src, err := schemafile.SourceFromURL(server.URL + "/form.yaml")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	httpLoader := New(schemafile.NewLoaderOptions(schemafile.WithHTTPClient(server.Client()), limit))
	if _, err := httpLoader.Load(context.Background(), src); err == nil || !strings.Contains(err.Error(), "limit") {
		t.Fatalf("expected http size error, got %v", err)
	}

	exact := New(schemafile.NewLoaderOptions(schemafile.WithFileSystem(files), schemafile.WithMaxDocumentSize(int64(len(sample)))))
	if _, err := exact.Load(context.Background(), schemafile.SourceFromFS("form.yaml")); err != nil {
		t.Fatalf("document at the limit should load: %v", err)
	}
}
