package bot

import "context"

type Bot interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, filePath, caption string) error
}
