package handlers

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/internal/api/presenters"
	"Smart-Expiry-Tracker/pkg/scan"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		ScanBarcode(c *fiber.Ctx) error
		ScanLabel(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) ScanBarcode(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ScanBarcodeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanBarcode, err)
	}

	res, err := h.scanService.ScanBarcode(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanBarcode, err)
	}

	message := domain.MessageSuccessScanBarcode
	if res.Status == domain.ScanStatusNeedsImageScan {
		message = domain.MessageNeedsImageScan
	} else if res.Status == domain.ScanStatusNeedsManualEntry {
		message = domain.MessageNeedsManualEntry
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}

func (h *scanHandler) ScanLabel(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ScanLabelRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("label_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.LabelImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanLabel, err)
	}

	res, err := h.scanService.ScanLabel(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFailedRecognizeText) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedRecognizeText, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanLabel, err)
	}

	message := domain.MessageSuccessScanLabel
	if res.Status == domain.ScanStatusNeedsManualEntry {
		message = domain.MessageNeedsManualEntry
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}
