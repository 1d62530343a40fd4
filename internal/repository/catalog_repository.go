package repository

import (
	"github.com/akozyreva/coursehub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogRepository interface {
	CreateBrand(brand *model.Brand) error
	CreateCategory(category *model.Category) error
	CreateProduct(product *model.Product) error
	FindProductByID(id uuid.UUID) (*model.Product, error)
	ListProducts(offset, limit int) ([]model.Product, error)
	ListProductsByCategory(categoryID uint, offset, limit int) ([]model.Product, error)
	SearchProducts(query string, offset, limit int) ([]model.Product, error)
	FindCategoryByID(id uint) (*model.Category, error)
	FindBrandByID(id uint) (*model.Brand, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateBrand(brand *model.Brand) error {
	return r.db.Create(brand).Error
}

func (r *catalogRepository) CreateCategory(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *catalogRepository) CreateProduct(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *catalogRepository) FindProductByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) ListProducts(offset, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

func (r *catalogRepository) ListProductsByCategory(categoryID uint, offset, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category_id = ?", categoryID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

func (r *catalogRepository) SearchProducts(query string, offset, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("name ILIKE ?", "%"+query+"%").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

func (r *catalogRepository) FindCategoryByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) FindBrandByID(id uint) (*model.Brand, error) {
	var brand model.Brand
	err := r.db.First(&brand, id).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}
