package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the public item catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListItems handles GET /api/v1/items?q=&category=&page=
func (h *CatalogHandler) ListItems(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_PAGE", "page must be a number")
		}
		page = parsed
	}

	result, err := h.catalogUC.ListItems(c.Request().Context(), &usecase.ListItemsInput{
		Query:    c.QueryParam("q"),
		Category: entity.Category(c.QueryParam("category")),
		Page:     page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetItem handles GET /api/v1/items/:slug
func (h *CatalogHandler) GetItem(c echo.Context) error {
	item, err := h.catalogUC.GetItem(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}
