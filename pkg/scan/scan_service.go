package scan

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/entities"
	"Smart-Expiry-Tracker/internal/utils/storage"
	"Smart-Expiry-Tracker/pkg/notification"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type (
	ScanService interface {
		ScanBarcode(ctx context.Context, req domain.ScanBarcodeRequest, userID string) (domain.ScanResponse, error)
		ScanLabel(ctx context.Context, req domain.ScanLabelRequest, userID string) (domain.ScanResponse, error)
	}

	// ProductStore is the slice of the product repository the scan
	// pipeline needs to persist its results.
	ProductStore interface {
		SaveProduct(ctx context.Context, product *entities.Product) error
		CreateLabelScan(ctx context.Context, labelScan *entities.LabelScan) error
		UpdateLabelScan(ctx context.Context, labelScan *entities.LabelScan) error
	}

	scanService struct {
		store      ProductStore
		recognizer Recognizer
		notifier   notification.Notifier
		s3         storage.AwsS3
		now        func() time.Time
	}
)

func NewScanService(store ProductStore, recognizer Recognizer, notifier notification.Notifier, s3 storage.AwsS3) ScanService {
	return &scanService{
		store:      store,
		recognizer: recognizer,
		notifier:   notifier,
		s3:         s3,
		now:        time.Now,
	}
}

// ScanBarcode runs the first derivation strategy. A payload without a GS1
// use-by segment is not an error: the client is told to fall back to label
// image capture.
func (s *scanService) ScanBarcode(ctx context.Context, req domain.ScanBarcodeRequest, userID string) (domain.ScanResponse, error) {
	if req.Barcode == "" {
		return domain.ScanResponse{}, domain.ErrMissingBarcode
	}

	result, err := DeriveFromBarcode(req.Barcode, s.now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNeedsImageScan):
			return domain.ScanResponse{Status: domain.ScanStatusNeedsImageScan}, nil
		case errors.Is(err, domain.ErrInvalidDate):
			// An unusable date in the barcode ends the automatic pipeline.
			return domain.ScanResponse{Status: domain.ScanStatusNeedsManualEntry}, nil
		default:
			return domain.ScanResponse{}, err
		}
	}

	saved, err := s.saveResult(ctx, userID, req.Barcode, req.ProductName, result)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	return domain.ScanResponse{Status: domain.ScanStatusSaved, Product: saved}, nil
}

// ScanLabel runs the second derivation strategy: the label image is kept in
// object storage, handed to the OCR engine, and the recognized text goes
// through the calculated-expiry derivation.
func (s *scanService) ScanLabel(ctx context.Context, req domain.ScanLabelRequest, userID string) (domain.ScanResponse, error) {
	if req.Barcode == "" {
		return domain.ScanResponse{}, domain.ErrMissingBarcode
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ScanResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("label-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.LabelImage, "labels", storage.AllowImage...)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	labelScan := &entities.LabelScan{
		ID:       scanID,
		UserID:   userUUID,
		Barcode:  req.Barcode,
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
		Status:   "Pending",
	}

	if err := s.store.CreateLabelScan(ctx, labelScan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.ScanResponse{}, err
	}

	text, err := s.recognizer.Recognize(ctx, req.LabelImage)
	if err != nil {
		labelScan.Status = "Failed"
		_ = s.store.UpdateLabelScan(ctx, labelScan)
		return domain.ScanResponse{}, err
	}

	labelScan.RecognizedText = text

	result, err := DeriveFromRecognizedText(text, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrNeedsManualEntry) || errors.Is(err, domain.ErrInvalidDate) {
			labelScan.Status = "ManualRequired"
			_ = s.store.UpdateLabelScan(ctx, labelScan)
			return domain.ScanResponse{
				Status: domain.ScanStatusNeedsManualEntry,
				ScanID: scanID.String(),
			}, nil
		}
		labelScan.Status = "Failed"
		_ = s.store.UpdateLabelScan(ctx, labelScan)
		return domain.ScanResponse{}, err
	}

	labelScan.Status = "Processed"
	if err := s.store.UpdateLabelScan(ctx, labelScan); err != nil {
		return domain.ScanResponse{}, err
	}

	saved, err := s.saveResult(ctx, userID, req.Barcode, req.ProductName, result)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	return domain.ScanResponse{
		Status:  domain.ScanStatusSaved,
		ScanID:  scanID.String(),
		Product: saved,
	}, nil
}

func (s *scanService) saveResult(ctx context.Context, userID, barcode, productName string, result domain.ExpiryResult) (*domain.ProductResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	product := &entities.Product{
		UserID:      userUUID,
		Barcode:     barcode,
		ProductName: productName,
		ExpiryDate:  result.ExpiryDate,
		Type:        string(result.Type),
	}

	if ShouldNotify(result) {
		name := product.ProductName
		if name == "" {
			name = "Item"
		}
		alert := domain.NotificationRequest{
			Title: "Expiry Alert",
			Body:  fmt.Sprintf("%s expires in %d days!", name, result.DaysLeft),
		}
		if err := s.notifier.Notify(ctx, userID, alert); err != nil {
			// Notification transport failure must not lose the scan.
			log.Printf("failed to dispatch expiry alert: %v", err)
		} else {
			product.Notified = true
		}
	}

	if err := s.store.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	response := domain.ProductResponse{
		Barcode:     product.Barcode,
		ProductName: product.ProductName,
		ExpiryDate:  result.ExpiryDate.Format("2006-01-02"),
		DaysLeft:    result.DaysLeft,
		Type:        result.Type,
		Notified:    product.Notified,
		AddedAt:     product.CreatedAt,
	}
	return &response, nil
}
