package config

import (
	"strings"
	"testing"
)

func setValidEnv(t *testing.T) {
	t.Setenv("TOKEN", "abc.def.ghi")
	t.Setenv("GUILD_ID", "123456789012345678")
	t.Setenv("RAID_PING_ROLE_ID", "234567890123456789")
	t.Setenv("GUILD_LEADER_ROLE_ID", "345678901234567890")
	t.Setenv("RAID_CAPTAIN_ROLE_ID", "456789012345678901")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/raidbot")
	t.Setenv("TEST_CHANNEL_ID", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("LOCALE", "")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MigrationsPath != "migrations" {
		t.Errorf("MigrationsPath = %q", cfg.MigrationsPath)
	}
	if cfg.DefaultLocale != "fr" {
		t.Errorf("DefaultLocale = %q", cfg.DefaultLocale)
	}
	if cfg.PingMention() != "<@&234567890123456789>" {
		t.Errorf("PingMention = %q", cfg.PingMention())
	}
}

func TestLoadRequiresToken(t *testing.T) {
	setValidEnv(t)
	t.Setenv("TOKEN", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "TOKEN") {
		t.Fatalf("err = %v, attendu une erreur TOKEN", err)
	}
}

func TestLoadRejectsNonNumericIDs(t *testing.T) {
	setValidEnv(t)
	t.Setenv("RAID_PING_ROLE_ID", "pas-un-id")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "RAID_PING_ROLE_ID") {
		t.Fatalf("err = %v, attendu une erreur RAID_PING_ROLE_ID", err)
	}
}

func TestLoadRejectsBadDatabaseURL(t *testing.T) {
	setValidEnv(t)
	t.Setenv("DATABASE_URL", "pas une url")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("err = %v, attendu une erreur DATABASE_URL", err)
	}
}
