package handlers

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/internal/api/presenters"
	"Smart-Expiry-Tracker/pkg/product"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		AddProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
		ExportProducts(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) AddProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	res, err := h.productService.AddProduct(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	opts, err := parseViewOptions(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	res, err := h.productService.GetProducts(c.Context(), userID, opts)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	barcode := c.Params("barcode")
	req := new(domain.UpdateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	if err := h.productService.UpdateProduct(c.Context(), barcode, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	barcode := c.Params("barcode")

	if err := h.productService.DeleteProduct(c.Context(), barcode, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *productHandler) GetDashboardStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.productService.GetDashboardStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *productHandler) ExportProducts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	opts, err := parseViewOptions(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportProducts, err)
	}

	csvData, err := h.productService.ExportCSV(c.Context(), userID, opts)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportProducts, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="filtered_expiry_data.csv"`)
	return c.Status(fiber.StatusOK).Send(csvData)
}

func parseViewOptions(c *fiber.Ctx) (domain.ViewOptions, error) {
	opts := domain.ViewOptions{
		Filter: domain.FilterType(c.Query("filter", string(domain.FilterAll))),
		Search: c.Query("search"),
		SortBy: domain.SortKey(c.Query("sort_by", string(domain.SortByExpiry))),
	}

	switch opts.Filter {
	case domain.FilterAll, domain.FilterExpiringSoon, domain.FilterExpired:
	default:
		return domain.ViewOptions{}, domain.ErrInvalidFilter
	}

	switch opts.SortBy {
	case domain.SortByExpiry, domain.SortByName, domain.SortByBarcode:
	default:
		return domain.ViewOptions{}, domain.ErrInvalidSortKey
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return domain.ViewOptions{}, domain.ErrInvalidExpiryDate
		}
		opts.StartDate = &start
	}

	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return domain.ViewOptions{}, domain.ErrInvalidExpiryDate
		}
		opts.EndDate = &end
	}

	return opts, nil
}
