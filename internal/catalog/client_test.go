package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{"id": 1, "title": "iPhone 9", "category": "smartphones", "brand": "Apple", "price": 549, "rating": 4.69},
				{"id": 2, "title": "iPhone X", "category": "smartphones", "brand": "Apple", "price": 899, "rating": 4.44}
			],
			"total": 100, "skip": 0, "limit": 2
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL)
	require.NoError(t, err)

	products, err := client.ListProducts(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "iPhone 9", products[0].Title)
	assert.Equal(t, "smartphones", products[0].Category)
	assert.InDelta(t, 4.69, products[0].Rating, 1e-9)
}

func TestListProducts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL)
	require.NoError(t, err)

	_, err = client.ListProducts(context.Background(), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnexpectedStatusCode)
}

func TestListProducts_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client, err := NewClient(nil, srv.URL)
	require.NoError(t, err)

	_, err = client.ListProducts(context.Background(), 10)
	assert.Error(t, err)
}

func TestGetProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		w.Write([]byte(`{"id": 7, "title": "Desk Lamp", "category": "home", "brand": "Luma", "price": 30, "rating": 4.1}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL)
	require.NoError(t, err)

	p, err := client.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "Desk Lamp", p.Title)
}

func TestSearchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/search", r.URL.Path)
		assert.Equal(t, "phone", r.URL.Query().Get("q"))
		w.Write([]byte(`{"products": [{"id": 1, "title": "iPhone 9"}], "total": 1}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL)
	require.NoError(t, err)

	products, err := client.SearchProducts(context.Background(), "phone", 30)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "iPhone 9", products[0].Title)
}
