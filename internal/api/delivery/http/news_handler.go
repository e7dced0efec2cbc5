package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"golang-news-curator/internal/api/service"
)

// NewsHandler handles HTTP requests for enriched news.
type NewsHandler struct {
	newsService service.NewsService
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// GetEnrichedNews godoc
// @Summary Get enriched news for a symbol
// @Description Fetches recent news for a stock symbol through the source fallback chain, scored and filtered by relevance and sentiment.
// @Tags news
// @Produce json
// @Param symbol query string true "Stock ticker symbol"
// @Param company query string false "Company name used to widen the search"
// @Param limit query int false "Maximum number of items to return"
// @Success 200 {object} dto.EnrichedNewsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /news/enriched [get]
func (h *NewsHandler) GetEnrichedNews(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	company := c.QueryParam("company")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid limit parameter"})
		}
		limit = parsed
	}

	resp, err := h.newsService.GetEnrichedNews(c.Request().Context(), symbol, company, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers the news routes with the given echo group.
func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/enriched", h.GetEnrichedNews)
}
