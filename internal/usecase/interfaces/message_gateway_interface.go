package interfaces

import "context"

// IMessageGateway delivers a text message to a freelancer chat (Telegram).
type IMessageGateway interface {
	SendMessage(ctx context.Context, chatID, text string) error
}
