// Package fakestore imports the public Fake Store API catalog
// (https://fakestoreapi.com) into the product store.
package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/shreyat81/e-com-mart/internal/domain"
)

const (
	DefaultBaseURL = "https://fakestoreapi.com"

	// IDOffset keeps imported product ids clear of the seeded catalog.
	IDOffset = 100

	// usdToINR is the rough conversion applied to Fake Store prices.
	usdToINR = 83
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type fakeStoreProduct struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

// Products fetches the Fake Store catalog transformed into this store's
// product shape: offset ids, INR prices, capitalized categories.
func (c *Client) Products(ctx context.Context) ([]*domain.Product, error) {
	var raw []fakeStoreProduct
	if err := c.getJSON(ctx, "/products", &raw); err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(raw))
	for i, p := range raw {
		products[i] = &domain.Product{
			ID:          IDOffset + p.ID,
			Name:        p.Title,
			Price:       math.Round(p.Price * usdToINR),
			Image:       p.Image,
			Description: p.Description,
			Category:    capitalize(p.Category),
			Rating:      p.Rating.Rate,
			Reviews:     p.Rating.Count,
			InStock:     true,
		}
	}

	return products, nil
}

// Categories fetches the Fake Store category list, capitalized.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var raw []string
	if err := c.getJSON(ctx, "/products/categories", &raw); err != nil {
		return nil, err
	}

	out := make([]string, len(raw))
	for i, cat := range raw {
		out[i] = capitalize(cat)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from Fake Store API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fake store API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode Fake Store response: %w", err)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
