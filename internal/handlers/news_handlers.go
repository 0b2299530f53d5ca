package handlers

import (
	"net/http"
	"strconv"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NewsHandler serves health and sports headlines from the news provider.
type NewsHandler struct {
	newsService services.NewsService
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(ns services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: ns}
}

// GetNews godoc
// @Summary      Health and sports headlines
// @Tags         news
// @Produce      json
// @Param        topic  query     string  false  "health or sports"  default(health)
// @Param        max    query     int     false  "Number of articles"  default(3)
// @Param        from   query     string  false  "Earliest publication time, RFC3339"
// @Param        to     query     string  false  "Latest publication time, RFC3339"
// @Success      200    {array}   models.Article
// @Failure      400    {object}  utils.APIError
// @Failure      500    {object}  utils.APIError "News provider failed"
// @Router       /news [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	query := services.NewsQuery{Topic: c.Query("topic")}

	if raw := c.Query("max"); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondFieldInvalid(c, "max", "max must be a positive integer")
			return
		}
		query.Max = &max
	}

	var ok bool
	if query.From, ok = parseTimeQuery(c, "from"); !ok {
		return
	}
	if query.To, ok = parseTimeQuery(c, "to"); !ok {
		return
	}

	articles, err := h.newsService.GetNews(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err, "fetch news")
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}
	c.JSON(http.StatusOK, articles)
}

func parseTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		utils.RespondFieldInvalid(c, name, name+" must be an RFC3339 timestamp")
		return nil, false
	}
	t = t.UTC()
	return &t, true
}
