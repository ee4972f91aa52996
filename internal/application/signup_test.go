package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"raidbot/internal/domain"
)

func TestSignupSummary(t *testing.T) {
	repo := newFakeRepo()
	msgr := newFakeMessenger()
	svc := newTestService(t, repo, msgr, fixedClock)

	raid := testRaid("r1", fixedNow.Add(2*time.Hour))
	repo.rows["r1"] = *raid
	registerRaid(svc, "r1")

	msgr.displayName["u1"] = "Zoé"
	msgr.displayName["u2"] = "alice"
	msgr.displayName["u3"] = "Bob"
	// u4 a quitté le serveur: pas de nom résolu.

	svc.cache.Add("r1", "1️⃣", "u1")
	svc.cache.Add("r1", "1️⃣", "u2")
	svc.cache.Add("r1", "1️⃣", "u4")
	svc.cache.Add("r1", "2️⃣", "u1") // u1 est inscrit sur deux rôles
	svc.cache.Add("r1", "↪️", "u3")

	summary, err := svc.SignupSummary(context.Background(), "guild-1", "r1")
	if err != nil {
		t.Fatalf("SignupSummary: %v", err)
	}

	if summary.RaidName != "Raid du samedi" || summary.RaidType != raidTypeName {
		t.Errorf("en-tête inattendu: %+v", summary)
	}
	if len(summary.Roles) != 12 {
		t.Fatalf("rôles = %d, attendu les 12 emplacements du type", len(summary.Roles))
	}
	if summary.Roles[0].Emoji != "1️⃣" || summary.Roles[1].Emoji != "2️⃣" {
		t.Error("les rôles doivent suivre l'ordre déclaré du type")
	}

	// Tri insensible à la casse; le membre parti est absent.
	first := summary.Roles[0].Names
	if len(first) != 2 || first[0] != "alice" || first[1] != "Zoé" {
		t.Errorf("noms 1️⃣ = %v, attendu [alice Zoé]", first)
	}
	if len(summary.Backups) != 1 || summary.Backups[0] != "Bob" {
		t.Errorf("backups = %v, attendu [Bob]", summary.Backups)
	}

	// u1 compte une seule fois, u4 compte même sans nom résolu.
	if summary.Total != 4 {
		t.Errorf("total = %d, attendu 4 joueurs distincts", summary.Total)
	}
}

func TestSignupSummaryEmptyCache(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo, newFakeMessenger(), fixedClock)
	repo.rows["r1"] = *testRaid("r1", fixedNow.Add(2*time.Hour))

	summary, err := svc.SignupSummary(context.Background(), "guild-1", "r1")
	if err != nil {
		t.Fatalf("SignupSummary: %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("total = %d, attendu 0", summary.Total)
	}
	for _, role := range summary.Roles {
		if len(role.Names) != 0 {
			t.Errorf("rôle %s non vide: %v", role.Role, role.Names)
		}
	}
}

func TestSignupSummaryUnknownRaid(t *testing.T) {
	svc := newTestService(t, newFakeRepo(), newFakeMessenger(), fixedClock)
	if _, err := svc.SignupSummary(context.Background(), "guild-1", "absent"); !errors.Is(err, domain.ErrRaidNotFound) {
		t.Fatalf("err = %v, attendu ErrRaidNotFound", err)
	}
}

// The read path never mutates the cache.
func TestSignupSummaryLeavesCacheIntact(t *testing.T) {
	repo := newFakeRepo()
	msgr := newFakeMessenger()
	svc := newTestService(t, repo, msgr, fixedClock)
	repo.rows["r1"] = *testRaid("r1", fixedNow.Add(2*time.Hour))
	msgr.displayName["u1"] = "Alice"

	svc.cache.Add("r1", "1️⃣", "u1")
	if _, err := svc.SignupSummary(context.Background(), "guild-1", "r1"); err != nil {
		t.Fatalf("SignupSummary: %v", err)
	}
	if got := svc.cache.Users("r1", "1️⃣"); len(got) != 1 || got[0] != "u1" {
		t.Errorf("cache modifié par la lecture: %v", got)
	}
}
