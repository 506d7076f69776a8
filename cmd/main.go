package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pixelbanner/internal/bot"
	"pixelbanner/internal/config"
	"pixelbanner/internal/files"
	"pixelbanner/internal/image"
	"pixelbanner/internal/services"
	"pixelbanner/internal/storage"
)

func main() {
	logger := log.Default()
	cfg := config.Load(logger)

	outputs := storage.NewOutputStore()
	imageService := services.NewImageService(
		cfg,
		files.NewFontLoader(cfg.FontsDir, cfg.FontExt),
		files.NewAlphabetLoader(cfg.FontsDir),
		files.NewAssetLoader(cfg.ImagesDir),
		&image.Processor{},
		outputs,
		logger,
	)

	targets, err := selectTargets(imageService.Targets(), os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}
	for _, t := range targets {
		if err := t.Make(); err != nil {
			logger.Fatalf("%s: %v", t.Name, err)
		}
	}
	logger.Printf("Made %d images in '%s'", outputs.Len(), cfg.OutputsDir)

	if !cfg.Telegram.Enabled() {
		return
	}

	botService, err := bot.NewTelegramBot(cfg.Telegram.BotToken, logger)
	if err != nil {
		logger.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	publisher := services.NewPublishService(botService, cfg.Telegram.ChatID, cfg.Telegram.MaxFileSize, logger)
	if err := publisher.Publish(ctx, outputs.All()); err != nil {
		logger.Fatal(err)
	}
}
