package main

import (
	"context"
	"log"
	"os"

	"raidbot/internal/adapters/discord"
	"raidbot/internal/config"
	"raidbot/internal/domain/raidtypes"
	"raidbot/internal/infrastructure/database"
	"raidbot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Erreur lors des migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	raidRepo := database.NewRaidRepository(pool)
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	types, err := raidtypes.Load()
	if err != nil {
		log.Fatalf("❌ Erreur lors du chargement des types de raid: %v", err)
	}

	bot := discord.NewBot(cfg, raidRepo, translator, types)
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
