package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
)

type logNotifier struct {
	logger *zap.Logger
}

// NewLog writes every notification to logger.
func NewLog(logger *zap.Logger) port.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(_ context.Context, msg domain.Notification) error {
	n.logger.Info(msg.Title,
		zap.String("kind", string(msg.Kind)),
		zap.String("description", msg.Description),
		zap.Time("at", msg.At))
	return nil
}
