package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"folio/internal/content"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestServer_Index(t *testing.T) {
	s := NewServer(content.Default(), Options{})
	w := get(t, s.Handler(), "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	for _, id := range []string{`id="about"`, `id="academic"`, `id="projects"`, `id="skills"`, `id="contact"`} {
		assert.Contains(t, body, id)
	}
	assert.Contains(t, body, "data-nav-toggle")
	assert.Contains(t, body, `hx-post="/contact"`)
	assert.NotContains(t, body, `<template id="modal-`, "served pages fetch fragments instead")
	for _, p := range content.Default().Projects {
		assert.Contains(t, body, FragmentPath(p.Slug))
	}
}

func TestServer_ProjectFragment(t *testing.T) {
	site := content.Default()
	s := NewServer(site, Options{})
	p := site.Projects[0]

	for _, path := range []string{"/projects/" + p.Slug, "/" + FragmentPath(p.Slug)} {
		w := get(t, s.Handler(), path)
		require.Equal(t, http.StatusOK, w.Code, path)
		body := w.Body.String()
		assert.Contains(t, body, "data-backdrop")
		assert.Contains(t, body, "data-panel")
		assert.Contains(t, body, "data-close")
		assert.NotContains(t, body, "<html", "fragment only")
	}
}

func TestServer_UnknownProjectIs404(t *testing.T) {
	s := NewServer(content.Default(), Options{})
	w := get(t, s.Handler(), "/projects/does-not-exist.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Healthz(t *testing.T) {
	s := NewServer(content.Default(), Options{})
	w := get(t, s.Handler(), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServer_Static(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv.pdf"), []byte("%PDF"), 0o644))
	s := NewServer(content.Default(), Options{StaticDir: dir})

	w := get(t, s.Handler(), "/static/cv.pdf")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF", w.Body.String())

	missing := NewServer(content.Default(), Options{StaticDir: filepath.Join(dir, "nope")})
	assert.Equal(t, http.StatusNotFound, get(t, missing.Handler(), "/static/cv.pdf").Code)
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_ContactValidation(t *testing.T) {
	s := NewServer(content.Default(), Options{})

	w := postForm(t, s.Handler(), url.Values{"name": {"Ada"}, "email": {"nope"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "email: not a valid email address")
	assert.Contains(t, w.Body.String(), "message: required")

	w = postForm(t, s.Handler(), url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="mailto:`+content.Default().Contact.Email)
}

func TestServer_SetSiteSwapsContent(t *testing.T) {
	s := NewServer(content.Default(), Options{})
	next := content.Default()
	next.Projects = []content.Project{{Slug: "only", Title: "Only One"}}
	s.SetSite(next)

	assert.Same(t, next, s.Site())
	assert.Equal(t, http.StatusOK, get(t, s.Handler(), "/projects/only.html").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/"+FragmentPath(content.Default().Projects[0].Slug)).Code)
}

func TestServer_RequestSpans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	defer tp.Shutdown(context.Background())

	s := NewServer(content.Default(), Options{Tracer: tp.Tracer("test")})
	get(t, s.Handler(), "/projects/missing.html")

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /projects/:slug", spans[0].Name)
	var status int64
	for _, kv := range spans[0].Attributes {
		if kv.Key == "http.status_code" {
			status = kv.Value.AsInt64()
		}
	}
	assert.Equal(t, int64(http.StatusNotFound), status)
}

func TestServer_StartStop(t *testing.T) {
	s := NewServer(content.Default(), Options{})
	require.NoError(t, s.Start("127.0.0.1:0"))
	defer s.Stop(context.Background())

	resp, err := http.Get("http://" + s.Addr() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Stop(context.Background()))
}
