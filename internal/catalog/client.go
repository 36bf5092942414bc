// Package catalog talks to the external product catalog service and builds
// the id-keyed metadata mapping used for enrichment. The pipeline treats
// every failure here as "no catalog data", never as a fatal fault.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

var errUnexpectedStatusCode = errors.New("unexpected http status code")
var errBaseURLFormatting = errors.New("error formatting catalog base url")

// Product is one catalog item as returned by the service.
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// productListResponse is the envelope around listing and search results.
type productListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// Client calls the product catalog endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// NewClient creates a catalog client. A nil httpClient falls back to a
// default client with no timeout; callers normally pass one with their
// configured timeout.
func NewClient(httpClient *http.Client, baseURL string) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errBaseURLFormatting, baseURL)
	}

	return &Client{httpClient: httpClient, baseURL: u}, nil
}

// ListProducts fetches up to limit products from the catalog listing.
func (c *Client) ListProducts(ctx context.Context, limit int) ([]Product, error) {
	endpoint := c.baseURL.JoinPath("products")
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	endpoint.RawQuery = q.Encode()

	var result productListResponse
	if err := c.getJSON(ctx, endpoint.String(), &result); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return result.Products, nil
}

// GetProduct fetches a single product by its catalog id.
func (c *Client) GetProduct(ctx context.Context, id int) (*Product, error) {
	endpoint := c.baseURL.JoinPath("products", strconv.Itoa(id))

	var result Product
	if err := c.getJSON(ctx, endpoint.String(), &result); err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &result, nil
}

// SearchProducts searches the catalog by keyword.
func (c *Client) SearchProducts(ctx context.Context, query string, limit int) ([]Product, error) {
	endpoint := c.baseURL.JoinPath("products", "search")
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	endpoint.RawQuery = q.Encode()

	var result productListResponse
	if err := c.getJSON(ctx, endpoint.String(), &result); err != nil {
		return nil, fmt.Errorf("search products %q: %w", query, err)
	}
	return result.Products, nil
}

// getJSON performs a GET request and unmarshals a JSON body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", errUnexpectedStatusCode, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error unmarshaling response body: %w", err)
	}
	return nil
}
