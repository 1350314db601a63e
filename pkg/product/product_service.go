package product

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/entities"
	"Smart-Expiry-Tracker/pkg/scan"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var csvHeader = []string{"Product Name", "Barcode", "Expiry Date", "Days Left"}

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest, userID string) (domain.ProductResponse, error)
		GetProducts(ctx context.Context, userID string, opts domain.ViewOptions) (domain.ViewResult, error)
		UpdateProduct(ctx context.Context, barcode string, req domain.UpdateProductRequest, userID string) error
		DeleteProduct(ctx context.Context, barcode string, userID string) error
		GetDashboardStats(ctx context.Context, userID string) (domain.ViewStats, error)
		ExportCSV(ctx context.Context, userID string, opts domain.ViewOptions) ([]byte, error)
	}

	productService struct {
		productRepository ProductRepository
		now               func() time.Time
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{
		productRepository: productRepository,
		now:               time.Now,
	}
}

// AddProduct stores a manually entered product. Manual entries are only
// valid once they carry an expiry date, so the date is required here.
func (s *productService) AddProduct(ctx context.Context, req domain.AddProductRequest, userID string) (domain.ProductResponse, error) {
	if req.Barcode == "" {
		return domain.ProductResponse{}, domain.ErrMissingBarcode
	}
	if req.ExpiryDate == "" {
		return domain.ProductResponse{}, domain.ErrMissingExpiryDate
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrInvalidExpiryDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	product := &entities.Product{
		UserID:      userUUID,
		Barcode:     req.Barcode,
		ProductName: req.ProductName,
		ExpiryDate:  expiryDate,
		Type:        string(domain.ExpiryTypeManual),
	}

	if err := s.productRepository.SaveProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product, daysLeftNow(product, s.now())), nil
}

func (s *productService) GetProducts(ctx context.Context, userID string, opts domain.ViewOptions) (domain.ViewResult, error) {
	products, err := s.productRepository.GetProducts(ctx, userID)
	if err != nil {
		return domain.ViewResult{}, err
	}

	return ApplyView(products, opts, s.now()), nil
}

func (s *productService) UpdateProduct(ctx context.Context, barcode string, req domain.UpdateProductRequest, userID string) error {
	product, err := s.productRepository.GetProductByBarcode(ctx, userID, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if req.ProductName != "" {
		product.ProductName = req.ProductName
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		product.ExpiryDate = expiryDate
		// A fresh date restarts the notification cycle.
		product.Notified = false
	}

	return s.productRepository.UpdateProduct(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, barcode string, userID string) error {
	if _, err := s.productRepository.GetProductByBarcode(ctx, userID, barcode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	return s.productRepository.DeleteProduct(ctx, userID, barcode)
}

func (s *productService) GetDashboardStats(ctx context.Context, userID string) (domain.ViewStats, error) {
	products, err := s.productRepository.GetProducts(ctx, userID)
	if err != nil {
		return domain.ViewStats{}, err
	}

	result := ApplyView(products, domain.ViewOptions{Filter: domain.FilterAll}, s.now())
	return result.Stats, nil
}

// ExportCSV renders the current filtered view as RFC-4180 CSV, one row per
// product in display order.
func (s *productService) ExportCSV(ctx context.Context, userID string, opts domain.ViewOptions) ([]byte, error) {
	products, err := s.productRepository.GetProducts(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := ApplyView(products, opts, s.now())

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	if err := writer.WriteAll(ExportRows(result.Items)); err != nil {
		return nil, err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func daysLeftNow(product *entities.Product, today time.Time) int {
	return scan.DaysBetween(today, product.ExpiryDate)
}
