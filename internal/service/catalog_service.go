package service

import (
	"errors"

	"github.com/akozyreva/coursehub/internal/apperr"
	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/model"
	"github.com/akozyreva/coursehub/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CatalogService backs the demo storefront: public product browsing plus
// admin-only catalog management.
type CatalogService interface {
	ListProducts(skip, limit int) ([]dto.ProductDTO, error)
	GetProduct(id uuid.UUID) (*dto.ProductDTO, error)
	ListByCategory(categoryID uint, skip, limit int) ([]dto.ProductDTO, error)
	Search(query string, skip, limit int) ([]dto.ProductDTO, error)

	CreateBrand(req dto.BrandCreateDTO) (*model.Brand, error)
	CreateCategory(req dto.CategoryCreateDTO) (*model.Category, error)
	CreateProduct(req dto.ProductCreateDTO) (*dto.ProductDTO, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListProducts(skip, limit int) ([]dto.ProductDTO, error) {
	products, err := s.catalogRepo.ListProducts(skip, limit)
	if err != nil {
		log.Error().Err(err).Msg("ListProducts: query failed")
		return nil, apperr.Internal("error listing products", err)
	}
	return productsToDTOs(products), nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*dto.ProductDTO, error) {
	product, err := s.catalogRepo.FindProductByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Internal("error loading product", err)
	}

	var d dto.ProductDTO
	copier.Copy(&d, product)
	return &d, nil
}

func (s *catalogService) ListByCategory(categoryID uint, skip, limit int) ([]dto.ProductDTO, error) {
	if _, err := s.catalogRepo.FindCategoryByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Internal("error loading category", err)
	}

	products, err := s.catalogRepo.ListProductsByCategory(categoryID, skip, limit)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("ListByCategory: query failed")
		return nil, apperr.Internal("error listing products", err)
	}
	return productsToDTOs(products), nil
}

func (s *catalogService) Search(query string, skip, limit int) ([]dto.ProductDTO, error) {
	products, err := s.catalogRepo.SearchProducts(query, skip, limit)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Search: query failed")
		return nil, apperr.Internal("error searching products", err)
	}
	return productsToDTOs(products), nil
}

func (s *catalogService) CreateBrand(req dto.BrandCreateDTO) (*model.Brand, error) {
	brand := model.Brand{Name: req.Name}
	if err := s.catalogRepo.CreateBrand(&brand); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("CreateBrand: insert failed")
		return nil, apperr.Internal("error creating brand", err)
	}
	return &brand, nil
}

func (s *catalogService) CreateCategory(req dto.CategoryCreateDTO) (*model.Category, error) {
	category := model.Category{Name: req.Name}
	if err := s.catalogRepo.CreateCategory(&category); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("CreateCategory: insert failed")
		return nil, apperr.Internal("error creating category", err)
	}
	return &category, nil
}

func (s *catalogService) CreateProduct(req dto.ProductCreateDTO) (*dto.ProductDTO, error) {
	if _, err := s.catalogRepo.FindCategoryByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("category %d does not exist", req.CategoryID)
		}
		return nil, apperr.Internal("error loading category", err)
	}
	if _, err := s.catalogRepo.FindBrandByID(req.BrandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("brand %d does not exist", req.BrandID)
		}
		return nil, apperr.Internal("error loading brand", err)
	}

	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
	}
	if err := s.catalogRepo.CreateProduct(&product); err != nil {
		log.Error().Err(err).Str("sku", req.SKU).Msg("CreateProduct: insert failed")
		return nil, apperr.Internal("error creating product", err)
	}

	log.Info().Str("productID", product.ID.String()).Str("sku", product.SKU).Msg("Product created")
	var d dto.ProductDTO
	copier.Copy(&d, &product)
	return &d, nil
}

func productsToDTOs(products []model.Product) []dto.ProductDTO {
	dtos := make([]dto.ProductDTO, 0, len(products))
	for i := range products {
		var d dto.ProductDTO
		copier.Copy(&d, &products[i])
		dtos = append(dtos, d)
	}
	return dtos
}
