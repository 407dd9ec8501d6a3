package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
)

// SubjectPrefix is followed by the notification kind, e.g. "storefront.notifications.success".
const SubjectPrefix = "storefront.notifications."

type natsNotifier struct {
	conn *nats.Conn
}

func NewNATS(conn *nats.Conn) port.Notifier {
	return &natsNotifier{conn: conn}
}

func (n *natsNotifier) Notify(ctx context.Context, msg domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := n.conn.Publish(SubjectPrefix+string(msg.Kind), data); err != nil {
		return fmt.Errorf("conn.Publish: %w", err)
	}

	return nil
}
