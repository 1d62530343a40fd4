package controller

import (
	"net/http"
	"strconv"

	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(5)
// @Success 200 {array} dto.ProductDTO
// @Router /products [get]
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	skip, limit := paging(ctx)
	products, err := c.catalogService.ListProducts(skip, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Product by id
// @Tags products
// @Produce json
// @Param product_id path string true "Product UUID"
// @Success 200 {object} dto.ProductDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{product_id} [get]
func (c *CatalogController) GetProduct(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid product id format"})
		return
	}
	product, err := c.catalogService.GetProduct(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// ListByCategory godoc
// @Summary Products within a category
// @Tags products
// @Produce json
// @Param category_id path int true "Category ID"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(5)
// @Success 200 {array} dto.ProductDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/category/{category_id} [get]
func (c *CatalogController) ListByCategory(ctx *gin.Context) {
	categoryID, ok := pathID(ctx, "category_id")
	if !ok {
		return
	}
	skip, limit := paging(ctx)
	products, err := c.catalogService.ListByCategory(categoryID, skip, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// Search godoc
// @Summary Search products by name
// @Tags products
// @Produce json
// @Param query query string true "Search term"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(5)
// @Success 200 {array} dto.ProductDTO
// @Router /products/search [get]
func (c *CatalogController) Search(ctx *gin.Context) {
	query := ctx.Query("query")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "query parameter is required"})
		return
	}
	skip, limit := paging(ctx)
	products, err := c.catalogService.Search(query, skip, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func paging(ctx *gin.Context) (int, int) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 5
	}
	return skip, limit
}
