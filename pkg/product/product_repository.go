package product

import (
	"Smart-Expiry-Tracker/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ProductRepository interface {
		SaveProduct(ctx context.Context, product *entities.Product) error
		GetProductByBarcode(ctx context.Context, userID, barcode string) (*entities.Product, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, userID, barcode string) error
		GetProducts(ctx context.Context, userID string) ([]*entities.Product, error)
		MarkAsNotified(ctx context.Context, userID, barcode string) error

		// Label scanning related
		CreateLabelScan(ctx context.Context, labelScan *entities.LabelScan) error
		UpdateLabelScan(ctx context.Context, labelScan *entities.LabelScan) error
		GetLabelScanByID(ctx context.Context, id string) (*entities.LabelScan, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) SaveProduct(ctx context.Context, product *entities.Product) error {
	// Rescanning the same barcode overwrites the stored record, matching
	// the (user, barcode) document key semantics.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "barcode"}},
		UpdateAll: true,
	}).Create(product).Error
}

func (r *productRepository) GetProductByBarcode(ctx context.Context, userID, barcode string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND barcode = ?", userID, barcode).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, userID, barcode string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND barcode = ?", userID, barcode).
		Delete(&entities.Product{}).Error
}

func (r *productRepository) GetProducts(ctx context.Context, userID string) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) MarkAsNotified(ctx context.Context, userID, barcode string) error {
	return r.db.WithContext(ctx).Model(&entities.Product{}).
		Where("user_id = ? AND barcode = ?", userID, barcode).
		Updates(map[string]interface{}{"notified": true}).Error
}

func (r *productRepository) CreateLabelScan(ctx context.Context, labelScan *entities.LabelScan) error {
	return r.db.WithContext(ctx).Create(labelScan).Error
}

func (r *productRepository) UpdateLabelScan(ctx context.Context, labelScan *entities.LabelScan) error {
	return r.db.WithContext(ctx).Save(labelScan).Error
}

func (r *productRepository) GetLabelScanByID(ctx context.Context, id string) (*entities.LabelScan, error) {
	var labelScan entities.LabelScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&labelScan).Error; err != nil {
		return nil, err
	}
	return &labelScan, nil
}
