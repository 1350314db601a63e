package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddProduct    = "product added successfully"
	MessageSuccessUpdateProduct = "product updated successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessGetDashboard  = "dashboard statistics retrieved successfully"

	MessageFailedAddProduct     = "failed to add product"
	MessageFailedUpdateProduct  = "failed to update product"
	MessageFailedDeleteProduct  = "failed to delete product"
	MessageFailedGetProducts    = "failed to retrieve products"
	MessageFailedGetDashboard   = "failed to retrieve dashboard statistics"
	MessageFailedExportProducts = "failed to export products"

	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrMissingExpiryDate = errors.New("manual product requires an expiry date")
	ErrInvalidFilter     = errors.New("invalid filter type")
	ErrInvalidSortKey    = errors.New("invalid sort key")
)

// FilterType selects which slice of the collection a view shows. The three
// filters are mutually exclusive and applied before any other predicate.
type FilterType string

const (
	FilterAll          FilterType = "all"
	FilterExpiringSoon FilterType = "soon"
	FilterExpired      FilterType = "expired"
)

// SortKey orders a view ascending by the chosen field.
type SortKey string

const (
	SortByExpiry  SortKey = "expiry"
	SortByName    SortKey = "name"
	SortByBarcode SortKey = "barcode"
)

type (
	AddProductRequest struct {
		Barcode     string `json:"barcode" validate:"required"`
		ProductName string `json:"product_name" validate:"omitempty"`
		ExpiryDate  string `json:"expiry_date" validate:"required"`
	}

	UpdateProductRequest struct {
		ProductName string `json:"product_name" validate:"omitempty"`
		ExpiryDate  string `json:"expiry_date" validate:"omitempty"`
	}

	ProductResponse struct {
		Barcode     string     `json:"barcode"`
		ProductName string     `json:"product_name,omitempty"`
		ExpiryDate  string     `json:"expiry_date"`
		DaysLeft    int        `json:"days_left"`
		Type        ExpiryType `json:"type"`
		Notified    bool       `json:"notified"`
		AddedAt     time.Time  `json:"added_at"`
	}

	// ViewOptions are the filter dimensions of a collection view. All
	// predicates compose with logical AND.
	ViewOptions struct {
		Filter    FilterType
		Search    string
		StartDate *time.Time
		EndDate   *time.Time
		SortBy    SortKey
	}

	// ViewStats are aggregate counts over the filtered set.
	ViewStats struct {
		Total        int `json:"total"`
		Expired      int `json:"expired"`
		ExpiringSoon int `json:"expiring_soon"`
		Active       int `json:"active"`
	}

	ViewResult struct {
		Items []ProductResponse `json:"items"`
		Stats ViewStats         `json:"stats"`
	}
)
