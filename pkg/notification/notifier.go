package notification

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/internal/utils/mailing"
	"Smart-Expiry-Tracker/pkg/user"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type (
	// Notifier delivers an expiry alert to a user. Implementations own the
	// transport; callers only provide the {title, body} pair.
	Notifier interface {
		Notify(ctx context.Context, userID string, req domain.NotificationRequest) error
	}

	mailNotifier struct {
		userRepository user.UserRepository
	}
)

func NewMailNotifier(userRepository user.UserRepository) Notifier {
	return &mailNotifier{userRepository: userRepository}
}

func (n *mailNotifier) Notify(ctx context.Context, userID string, req domain.NotificationRequest) error {
	u, err := n.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	body := fmt.Sprintf("<p>%s</p>", req.Body)
	return mailing.SendMail(u.Email, req.Title, body)
}
