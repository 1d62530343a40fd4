package admin

import (
	"net/http"

	"github.com/akozyreva/coursehub/internal/apperr"
	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CatalogController exposes catalog management to administrators.
type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// CreateBrand godoc
// @Summary (Admin) Create a brand
// @Tags admin
// @Accept json
// @Produce json
// @Param brand_data body dto.BrandCreateDTO true "Brand data"
// @Success 201 {object} model.Brand
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/brands [post]
func (c *CatalogController) CreateBrand(ctx *gin.Context) {
	var req dto.BrandCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateBrand: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid input data", Details: []string{err.Error()}})
		return
	}

	brand, err := c.catalogService.CreateBrand(req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "error creating brand"})
		return
	}
	ctx.JSON(http.StatusCreated, brand)
}

// CreateCategory godoc
// @Summary (Admin) Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Param category_data body dto.CategoryCreateDTO true "Category data"
// @Success 201 {object} model.Category
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/categories [post]
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateCategory: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid input data", Details: []string{err.Error()}})
		return
	}

	category, err := c.catalogService.CreateCategory(req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "error creating category"})
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// CreateProduct godoc
// @Summary (Admin) Create a product
// @Tags admin
// @Accept json
// @Produce json
// @Param product_data body dto.ProductCreateDTO true "Product data"
// @Success 201 {object} dto.ProductDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown category or brand"
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/products [post]
func (c *CatalogController) CreateProduct(ctx *gin.Context) {
	var req dto.ProductCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateProduct: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid input data", Details: []string{err.Error()}})
		return
	}

	product, err := c.catalogService.CreateProduct(req)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindValidation {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: apperr.MessageOf(err)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "error creating product"})
		return
	}
	ctx.JSON(http.StatusCreated, product)
}
