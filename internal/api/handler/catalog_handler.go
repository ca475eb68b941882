package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shuvo-art/Sheba-Task/internal/core/ports"
)

// CatalogHandler handles HTTP requests for the service catalog.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /api/services with page/limit query parameters.
//
// @Summary      List catalog services
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  successResponse
// @Router       /api/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.catalog.ListServices(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: result})
}

// Create handles POST /api/services (admin only).
//
// @Summary      Create a catalog service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	service, err := h.catalog.CreateService(c.Request().Context(), ports.ServiceInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, successResponse{Success: true, Data: service})
}

// Update handles PUT /api/services/:id (admin only).
//
// @Summary      Update a catalog service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Service id"
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/services/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid service ID")
	}

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	service, err := h.catalog.UpdateService(c.Request().Context(), id, ports.ServiceInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: service})
}

// Delete handles DELETE /api/services/:id (admin only).
//
// @Summary      Delete a catalog service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Service id"
// @Success      200 {object}  successResponse
// @Failure      404 {object}  errorResponse
// @Router       /api/services/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid service ID")
	}

	if err := h.catalog.DeleteService(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}
