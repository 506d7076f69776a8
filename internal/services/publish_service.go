package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"pixelbanner/internal/bot"
	"pixelbanner/internal/storage"
)

type PublishService struct {
	bot         bot.Bot
	chatID      int64
	maxFileSize int64
	logger      *log.Logger
}

func NewPublishService(b bot.Bot, chatID, maxFileSize int64, logger *log.Logger) *PublishService {
	return &PublishService{
		bot:         b,
		chatID:      chatID,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Publish sends every output as a document so the pixels arrive unrecompressed.
// Files over the size limit are skipped.
func (s *PublishService) Publish(ctx context.Context, outputs []storage.Output) error {
	sent := 0
	for _, o := range outputs {
		stat, err := os.Stat(o.Path)
		if err != nil {
			return fmt.Errorf("stat file: %w", err)
		}
		if s.maxFileSize > 0 && stat.Size() > s.maxFileSize {
			s.logger.Printf("[WARN]: %s is %d bytes, over the %d byte limit. Skipping.", o.Path, stat.Size(), s.maxFileSize)
			continue
		}

		if err := s.bot.SendDocument(ctx, s.chatID, o.Path, o.Name); err != nil {
			return fmt.Errorf("publish %s: %w", o.Name, err)
		}
		sent++
	}

	summary := fmt.Sprintf("✅ Published %d of %d images.", sent, len(outputs))
	if err := s.bot.SendText(ctx, s.chatID, summary); err != nil {
		return fmt.Errorf("publish summary: %w", err)
	}
	s.logger.Println(summary)
	return nil
}
