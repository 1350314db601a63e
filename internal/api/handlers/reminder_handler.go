package handlers

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/internal/api/presenters"
	"Smart-Expiry-Tracker/pkg/reminder"

	"github.com/gofiber/fiber/v2"
)

type (
	ReminderHandler interface {
		GetReminders(c *fiber.Ctx) error
		RunDailySweep(c *fiber.Ctx) error
	}

	reminderHandler struct {
		reminderService reminder.ReminderService
	}
)

func NewReminderHandler(reminderService reminder.ReminderService) ReminderHandler {
	return &reminderHandler{reminderService: reminderService}
}

func (h *reminderHandler) GetReminders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.reminderService.GetReminders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReminders, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"reminders": items}, fiber.StatusOK, domain.MessageSuccessGetReminders)
}

func (h *reminderHandler) RunDailySweep(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	result, err := h.reminderService.RunDailySweep(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRunSweep, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessRunSweep)
}
