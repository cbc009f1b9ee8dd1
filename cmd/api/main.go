package main

import (
	"TranscriptSummarizer_Backend/internal/auth"
	"TranscriptSummarizer_Backend/internal/config"
	"TranscriptSummarizer_Backend/internal/handler"
	"TranscriptSummarizer_Backend/internal/llm"
	"TranscriptSummarizer_Backend/internal/logger"
	"TranscriptSummarizer_Backend/internal/storage"
)

func main() {
	log := logger.New("api")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration, refusing to start")
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	h := handler.New(
		storage.NewUserStorage(db),
		auth.NewTokenManager(cfg.JWTSecret),
		llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel),
		log,
	)

	log.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := h.Router().Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
