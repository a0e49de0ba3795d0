package wallet

import (
	"context"

	"go.uber.org/zap"

	"github.com/hoofledger/hoofledger/internal/logger"
)

// NotificationKind classifies a user-visible notification
type NotificationKind string

const (
	NotificationConnected       NotificationKind = "connected"
	NotificationDisconnected    NotificationKind = "disconnected"
	NotificationWrongNetwork    NotificationKind = "wrong_network"
	NotificationNetworkSwitched NotificationKind = "network_switched"
	NotificationAccountSwitched NotificationKind = "account_switched"
	NotificationError           NotificationKind = "error"
	NotificationSuccess         NotificationKind = "success"
)

// Notification is the user-facing message for a state change or failure
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
	Err         error
}

// Destructive reports whether the notification describes a failure or a lost connection
func (n Notification) Destructive() bool {
	switch n.Kind {
	case NotificationError, NotificationWrongNetwork, NotificationDisconnected:
		return true
	default:
		return false
	}
}

// Notifier shows notifications to the user
//
//go:generate mockgen -source=notifier.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to the structured log
type LogNotifier struct{}

func NewLogNotifier() Notifier {
	return &LogNotifier{}
}

func (l *LogNotifier) Notify(ctx context.Context, n Notification) {
	fields := []zap.Field{
		zap.String("kind", string(n.Kind)),
		zap.String("description", n.Description),
	}
	if n.Err != nil {
		fields = append(fields, zap.Error(n.Err))
	}

	if n.Destructive() {
		logger.WarnCtx(ctx, n.Title, fields...)
		return
	}
	logger.InfoCtx(ctx, n.Title, fields...)
}
