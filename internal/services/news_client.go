package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fitness_club_backend/internal/models"
)

// NewsFetchParams is a fully resolved news query handed to the upstream provider.
type NewsFetchParams struct {
	Topic string
	Max   int
	From  *time.Time
	To    *time.Time
}

// NewsClient fetches articles from an upstream news provider.
type NewsClient interface {
	TopHeadlines(ctx context.Context, params NewsFetchParams) ([]models.Article, error)
}

// GNewsClient talks to the GNews v4 REST API.
type GNewsClient struct {
	baseURL    string
	apiKey     string
	lang       string
	httpClient *http.Client
}

type gnewsResponse struct {
	TotalArticles int              `json:"totalArticles"`
	Articles      []models.Article `json:"articles"`
}

func NewGNewsClient(baseURL, apiKey, lang string, timeout time.Duration) *GNewsClient {
	return &GNewsClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		lang:       lang,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *GNewsClient) TopHeadlines(ctx context.Context, params NewsFetchParams) ([]models.Article, error) {
	query := url.Values{}
	query.Set("topic", params.Topic)
	query.Set("max", strconv.Itoa(params.Max))
	query.Set("apikey", c.apiKey)
	if c.lang != "" {
		query.Set("lang", c.lang)
	}
	if params.From != nil {
		query.Set("from", params.From.UTC().Format(time.RFC3339))
	}
	if params.To != nil {
		query.Set("to", params.To.UTC().Format(time.RFC3339))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/top-headlines?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNewsUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("%w: status %d: %s", ErrNewsUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrNewsUnavailable, err)
	}
	if payload.Articles == nil {
		payload.Articles = []models.Article{}
	}
	return payload.Articles, nil
}
