package discord

import (
	"sync"

	"raidbot/internal/config"
	"raidbot/internal/domain/raidtypes"
	"raidbot/internal/ports/input"
	"raidbot/internal/ports/output"
)

// Handler handles Discord interactions using the raid use case.
type Handler struct {
	raidUC input.RaidUseCase
	t      output.T
	types  *raidtypes.Catalog
	cfg    *config.Config

	mu     sync.Mutex
	drafts map[string]*RaidDraft // keyed by user id
}

// NewHandler creates a Handler.
func NewHandler(
	raidUC input.RaidUseCase,
	translator output.T,
	types *raidtypes.Catalog,
	cfg *config.Config,
) *Handler {
	return &Handler{
		raidUC: raidUC,
		t:      translator,
		types:  types,
		cfg:    cfg,
		drafts: make(map[string]*RaidDraft),
	}
}

func (h *Handler) translate(key string, data map[string]any) string {
	return h.t.T(h.cfg.DefaultLocale, key, data)
}

func (h *Handler) draftFor(userID string) (*RaidDraft, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, ok := h.drafts[userID]
	return d, ok
}

func (h *Handler) putDraft(userID string, d *RaidDraft) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drafts[userID] = d
}

func (h *Handler) dropDraft(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.drafts, userID)
}
