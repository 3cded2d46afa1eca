package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Host != "dummyjson.com" {
		t.Fatalf("host = %q, want dummyjson.com", u.Host)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotListQuery url.Values
	var gotSearchQuery url.Values
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/products":
			gotListQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(ProductListResponse{Products: []Product{
				{ID: 1, Title: "Essence Mascara", Category: "beauty"},
				{ID: 2, Title: "Wrench Set", Category: "tools"},
			}})
		case "/products/7":
			_ = json.NewEncoder(w).Encode(Product{ID: 7, Title: "Rose Serum"})
		case "/products/search":
			gotSearchQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(ProductListResponse{Products: []Product{{ID: 3, Title: "Lip Tint"}}})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	products, err := c.FetchProducts(ctx)
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if len(products) != 1 || products[0].ID != 1 {
		t.Fatalf("FetchProducts = %#v, want only the beauty product", products)
	}
	if gotListQuery.Get("limit") != "0" {
		t.Fatalf("list query = %v, want limit=0", gotListQuery)
	}

	product, err := c.FetchProduct(ctx, 7)
	if err != nil {
		t.Fatalf("FetchProduct returned error: %v", err)
	}
	if product.ID != 7 || product.Title != "Rose Serum" {
		t.Fatalf("FetchProduct = %#v, want id=7", product)
	}

	results, err := c.SearchProducts(ctx, "lip tint")
	if err != nil {
		t.Fatalf("SearchProducts returned error: %v", err)
	}
	if len(results) != 1 || results[0].ID != 3 {
		t.Fatalf("SearchProducts = %#v, want 1 result id=3", results)
	}
	if gotSearchQuery.Get("q") != "lip tint" {
		t.Fatalf("search query = %v, want q encoded", gotSearchQuery)
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "blush/") {
		t.Fatalf("User-Agent = %q, want blush/*", gotUserAgent)
	}
}

func TestClient_FetchProductRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err = c.FetchProduct(context.Background(), 0); err == nil {
		t.Fatalf("FetchProduct returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/products/search":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchProducts(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchProducts error = %v, want decode response error", err)
	}

	_, err = c.SearchProducts(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("SearchProducts error = %v, want status 500 error", err)
	}
}
