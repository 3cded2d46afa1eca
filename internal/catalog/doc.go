// Package catalog models the remote product catalog and provides an HTTP
// client for it.
//
// The catalog API is a general storefront dataset; FetchProducts narrows the
// result to beauty-adjacent products by category and keyword before handing
// it to callers. The client issues no writes: the catalog is read-only and
// replaced wholesale in application state on every successful fetch.
//
// The Fetcher interface exists so the UI can be exercised against a fake
// catalog in tests.
package catalog
