package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/middleware"
)

// NewRequestWithURLParams builds a request whose chi route context already
// carries params, so handlers can be called without a router.
//
//	req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/users/2/profile", map[string]string{"id": "2"})
func NewRequestWithURLParams(method, path string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range params {
		req = WithURLParam(req, key, value)
	}
	return req
}

// NewRequestWithQueryParams builds a request with query appended to path.
func NewRequestWithQueryParams(method, path string, query map[string]string) *http.Request {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	if len(values) > 0 {
		path += "?" + values.Encode()
	}
	return httptest.NewRequest(method, path, nil)
}

// NewJSONRequest creates a request whose body is body encoded as JSON.
func NewJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode request body: %v", err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithUser returns req acting as userID, as the identity middleware would set it.
func WithUser(req *http.Request, userID int64) *http.Request {
	req.Header.Set(middleware.UserIDHeader, strconv.FormatInt(userID, 10))
	return req.WithContext(middleware.ContextWithUserID(req.Context(), userID))
}

// WithURLParam adds a chi URL parameter to req, keeping any existing ones.
func WithURLParam(req *http.Request, key, value string) *http.Request {
	rctx, ok := req.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// DecodeJSON decodes a response body into generic JSON values for JSONPath.
func DecodeJSON(t *testing.T, body io.Reader) any {
	t.Helper()
	return DecodeAs[any](t, body)
}

// DecodeAs decodes a response body into T.
//
//	info := testutil.DecodeAs[model.VersionInfo](t, w.Body)
func DecodeAs[T any](t *testing.T, body io.Reader) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

// JSONPath evaluates a JSONPath expression against a decoded document.
//
//	doc := testutil.DecodeJSON(t, w.Body)
//	got := testutil.JSONPath(t, doc, "$[0].reactions[0].type")
func JSONPath(t *testing.T, doc any, path string) any {
	t.Helper()

	v, err := jsonpath.Get(path, doc)
	if err != nil {
		t.Fatalf("JSONPath %q failed: %v", path, err)
	}
	return v
}
