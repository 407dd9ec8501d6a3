package port

import (
	"context"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}
