package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Token             string
	GuildID           string
	DatabaseURL       string
	MigrationsPath    string
	RaidPingRoleID    string
	GuildLeaderRoleID string
	RaidCaptainRoleID string
	TestChannelID     string
	DefaultLocale     string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:             os.Getenv("TOKEN"),
		GuildID:           os.Getenv("GUILD_ID"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsPath:    os.Getenv("MIGRATIONS_PATH"),
		RaidPingRoleID:    os.Getenv("RAID_PING_ROLE_ID"),
		GuildLeaderRoleID: os.Getenv("GUILD_LEADER_ROLE_ID"),
		RaidCaptainRoleID: os.Getenv("RAID_CAPTAIN_ROLE_ID"),
		TestChannelID:     os.Getenv("TEST_CHANNEL_ID"),
		DefaultLocale:     os.Getenv("LOCALE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PingMention renvoie la mention du rôle pingé dans les annonces et rappels.
func (c *Config) PingMention() string {
	return fmt.Sprintf("<@&%s>", c.RaidPingRoleID)
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	for name, id := range map[string]string{
		"GUILD_ID":             c.GuildID,
		"RAID_PING_ROLE_ID":    c.RaidPingRoleID,
		"GUILD_LEADER_ROLE_ID": c.GuildLeaderRoleID,
		"RAID_CAPTAIN_ROLE_ID": c.RaidCaptainRoleID,
	} {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("config: %s est requis et ne peut pas être vide", name)
		}
		if !digitsOnly(id) {
			return fmt.Errorf("config: %s doit être un ID Discord (chiffres uniquement)", name)
		}
	}

	if c.TestChannelID != "" && !digitsOnly(c.TestChannelID) {
		return fmt.Errorf("config: TEST_CHANNEL_ID doit être un ID de salon Discord (chiffres uniquement)")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
		c.DatabaseURL = "postgres://localhost:5432/raidbot?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "fr"
	}

	return nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
