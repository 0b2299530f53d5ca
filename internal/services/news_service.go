package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/pkg/utils"
)

const (
	DefaultNewsTopic = "health"
	DefaultNewsMax   = 3
	// MaxNewsArticles is the largest page the upstream provider serves.
	MaxNewsArticles = 100
)

var allowedNewsTopics = map[string]bool{
	"health": true,
	"sports": true,
}

// NewsQuery holds the raw query; nil and empty values fall back to defaults.
type NewsQuery struct {
	Topic string
	Max   *int
	From  *time.Time
	To    *time.Time
}

// --- NewsService Interface ---
type NewsService interface {
	GetNews(ctx context.Context, query NewsQuery) ([]models.Article, error)
}

type newsService struct {
	client NewsClient
}

// NewNewsService creates a new instance of NewsService.
func NewNewsService(client NewsClient) NewsService {
	return &newsService{client: client}
}

// resolve applies defaults and rejects queries the provider cannot serve.
func (q NewsQuery) resolve() (NewsFetchParams, error) {
	params := NewsFetchParams{Topic: DefaultNewsTopic, Max: DefaultNewsMax, From: q.From, To: q.To}

	if topic := strings.ToLower(strings.TrimSpace(q.Topic)); topic != "" {
		if !allowedNewsTopics[topic] {
			return params, fmt.Errorf("%w: topic must be one of 'health', 'sports'", ErrInvalidNewsQuery)
		}
		params.Topic = topic
	}
	if q.Max != nil {
		if *q.Max <= 0 {
			return params, fmt.Errorf("%w: max must be a positive integer", ErrInvalidNewsQuery)
		}
		params.Max = *q.Max
		if params.Max > MaxNewsArticles {
			params.Max = MaxNewsArticles
		}
	}
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return params, fmt.Errorf("%w: from must not be after to", ErrInvalidNewsQuery)
	}
	return params, nil
}

func (s *newsService) GetNews(ctx context.Context, query NewsQuery) ([]models.Article, error) {
	params, err := query.resolve()
	if err != nil {
		return nil, err
	}

	articles, err := s.client.TopHeadlines(ctx, params)
	if err != nil {
		utils.LogError(err, "Failed to fetch news")
		return nil, err
	}
	if len(articles) > params.Max {
		articles = articles[:params.Max]
	}
	utils.LogDebug("News fetched", map[string]interface{}{"topic": params.Topic, "count": len(articles)})
	return articles, nil
}
