package bot

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mymmrac/telego"
)

type TelegramBot struct {
	client *telego.Bot
	logger *log.Logger
}

func NewTelegramBot(token string, logger *log.Logger) (Bot, error) {
	if logger == nil {
		logger = log.Default()
	}

	b, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telego bot: %w", err)
	}

	return &TelegramBot{
		client: b,
		logger: logger,
	}, nil
}

func (tb *TelegramBot) SendDocument(ctx context.Context, chatID int64, filePath, caption string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func(file *os.File) {
		if closeErr := file.Close(); closeErr != nil {
			tb.logger.Printf("Failed to close file %s: %v", filePath, closeErr)
		}
	}(file)

	_, err = tb.client.SendDocument(ctx, &telego.SendDocumentParams{
		ChatID:   telego.ChatID{ID: chatID},
		Document: telego.InputFile{File: file},
		Caption:  caption,
	})
	if err != nil {
		return fmt.Errorf("failed to send file to chat %d: %w", chatID, err)
	}
	return nil
}

func (tb *TelegramBot) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := tb.client.SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	return nil
}
