package reminder

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/pkg/notification"
	"Smart-Expiry-Tracker/pkg/product"
	"context"
	"fmt"
	"sort"
	"time"
)

type (
	ReminderService interface {
		GetReminders(ctx context.Context, userID string) ([]domain.ProductResponse, error)
		RunDailySweep(ctx context.Context, userID string) (domain.SweepResult, error)
	}

	reminderService struct {
		productRepository product.ProductRepository
		notifier          notification.Notifier
		now               func() time.Time
	}
)

func NewReminderService(productRepository product.ProductRepository, notifier notification.Notifier) ReminderService {
	return &reminderService{
		productRepository: productRepository,
		notifier:          notifier,
		now:               time.Now,
	}
}

// GetReminders lists every item within the notification window, soonest
// first. Already-expired items stay on the list.
func (s *reminderService) GetReminders(ctx context.Context, userID string) ([]domain.ProductResponse, error) {
	items, err := s.qualifyingItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// RunDailySweep dispatches at most one notification: the single
// soonest-expiring qualifying item that has not been alerted yet. One alert
// per sweep keeps the reminder channel from turning into spam.
func (s *reminderService) RunDailySweep(ctx context.Context, userID string) (domain.SweepResult, error) {
	items, err := s.qualifyingItems(ctx, userID)
	if err != nil {
		return domain.SweepResult{}, err
	}

	result := domain.SweepResult{Qualifying: len(items)}

	var next *domain.ProductResponse
	for i := range items {
		if !items[i].Notified {
			next = &items[i]
			break
		}
	}
	if next == nil {
		return result, nil
	}

	name := next.ProductName
	if name == "" {
		name = "Item"
	}
	reminder := domain.NotificationRequest{
		Title: "Daily Reminder",
		Body:  fmt.Sprintf("%s expires in %d days.", name, next.DaysLeft),
	}

	if err := s.notifier.Notify(ctx, userID, reminder); err != nil {
		return result, err
	}

	if err := s.productRepository.MarkAsNotified(ctx, userID, next.Barcode); err != nil {
		return result, err
	}

	next.Notified = true
	result.Notified = next
	return result, nil
}

func (s *reminderService) qualifyingItems(ctx context.Context, userID string) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := product.ApplyView(products, domain.ViewOptions{Filter: domain.FilterAll}, s.now())

	items := make([]domain.ProductResponse, 0, len(view.Items))
	for _, item := range view.Items {
		if item.DaysLeft <= domain.NotifyThresholdDays {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysLeft < items[j].DaysLeft
	})

	return items, nil
}
