package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

// ExpiryType records how an expiry date was obtained.
type ExpiryType string

const (
	ExpiryTypeGS1        ExpiryType = "GS1"
	ExpiryTypeCalculated ExpiryType = "Calculated"
	ExpiryTypeManual     ExpiryType = "Manual"
)

// NotifyThresholdDays is the number of days left at or below which a
// product qualifies for an expiry notification.
const NotifyThresholdDays = 7

var (
	MessageSuccessScanBarcode  = "barcode scanned successfully"
	MessageSuccessScanLabel    = "label scanned successfully"
	MessageNeedsImageScan      = "no expiry date in barcode, label image scan required"
	MessageNeedsManualEntry    = "expiry date could not be recognized, manual entry required"
	MessageFailedScanBarcode   = "failed to scan barcode"
	MessageFailedScanLabel     = "failed to scan label"
	MessageFailedRecognizeText = "failed to recognize label text"

	// Disjoint derivation outcomes. The first two are not failures: they
	// tell the caller which fallback strategy to run next.
	ErrNeedsImageScan   = errors.New("barcode carries no expiry date, image scan needed")
	ErrNeedsManualEntry = errors.New("label text carries no expiry date, manual entry needed")
	ErrInvalidDate      = errors.New("derived date is not a valid calendar date")

	ErrMissingBarcode      = errors.New("barcode must not be empty")
	ErrFailedRecognizeText = errors.New("OCR engine could not read the label image")
)

const (
	ScanStatusSaved            = "saved"
	ScanStatusNeedsImageScan   = "needs_image_scan"
	ScanStatusNeedsManualEntry = "needs_manual_entry"
)

type (
	// ExpiryResult is the outcome of a successful expiry derivation.
	ExpiryResult struct {
		Type       ExpiryType `json:"type"`
		ExpiryDate time.Time  `json:"expiry_date"`
		DaysLeft   int        `json:"days_left"`
	}

	ScanBarcodeRequest struct {
		Barcode     string `json:"barcode" validate:"required"`
		ProductName string `json:"product_name" validate:"omitempty"`
	}

	ScanLabelRequest struct {
		Barcode     string                `json:"barcode" form:"barcode" validate:"required"`
		ProductName string                `json:"product_name" form:"product_name" validate:"omitempty"`
		LabelImage  *multipart.FileHeader `json:"label_image" form:"label_image" validate:"required"`
	}

	ScanResponse struct {
		Status  string           `json:"status"`
		ScanID  string           `json:"scan_id,omitempty"`
		Product *ProductResponse `json:"product,omitempty"`
	}

	// NotificationRequest is handed to the notification dispatcher.
	NotificationRequest struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
)
