package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"golang-news-curator/internal/api/dto"
	"golang-news-curator/internal/api/service"
)

// PassHandler handles HTTP requests for quality passes.
type PassHandler struct {
	passService service.PassService
}

// NewPassHandler creates a new PassHandler.
func NewPassHandler(passService service.PassService) *PassHandler {
	return &PassHandler{passService: passService}
}

// TriggerPass godoc
// @Summary Trigger a quality pass
// @Description Enqueues a data quality pass over the requested table. With wait set the request blocks until the pass finishes or the wait window closes; a pass that is still running is answered with 202.
// @Tags quality
// @Accept json
// @Produce json
// @Param pass body dto.TriggerPassRequest true "Pass parameters"
// @Success 200 {object} dto.PassHistoryResponse
// @Success 202 {object} dto.PassHistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quality/passes [post]
func (h *PassHandler) TriggerPass(c echo.Context) error {
	var req dto.TriggerPassRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, finished, err := h.passService.TriggerPass(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	if req.Wait && finished {
		return c.JSON(http.StatusOK, resp)
	}
	return c.JSON(http.StatusAccepted, resp)
}

// GetPass godoc
// @Summary Get a quality pass by ID
// @Description Retrieves a single quality pass history record.
// @Tags quality
// @Produce json
// @Param id path int true "Pass history ID"
// @Success 200 {object} dto.PassHistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quality/passes/{id} [get]
func (h *PassHandler) GetPass(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid pass ID"})
	}

	resp, err := h.passService.GetPassByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetAllPasses godoc
// @Summary List quality passes
// @Description Retrieves all quality pass history records, most recent first.
// @Tags quality
// @Produce json
// @Success 200 {array} dto.PassHistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quality/passes [get]
func (h *PassHandler) GetAllPasses(c echo.Context) error {
	resp, err := h.passService.GetAllPasses(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers the quality pass routes with the given echo group.
func (h *PassHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.TriggerPass)
	g.GET("", h.GetAllPasses)
	g.GET("/:id", h.GetPass)
}
