package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/domain/raidtypes"
	"raidbot/internal/ports/output"
)

// fakeRepo is an in-memory RaidRepository.
type fakeRepo struct {
	mu   sync.Mutex
	rows map[string]entities.Raid

	upsertErr error
	deleteErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]entities.Raid)}
}

func (r *fakeRepo) Upsert(ctx context.Context, raid *entities.Raid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.rows[raid.ID] = *raid
	return nil
}

func (r *fakeRepo) Get(ctx context.Context, id string) (*entities.Raid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrRaidNotFound
	}
	return &row, nil
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]entities.Raid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Raid, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRepo) UpdateSchedule(ctx context.Context, id string, startAt, notifyAt time.Time, duration, tzCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return domain.ErrRaidNotFound
	}
	row.StartAt = startAt
	row.NotifyAt = notifyAt
	row.Duration = duration
	row.Timezone = tzCode
	r.rows[id] = row
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeRepo) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	return ok
}

func (r *fakeRepo) row(id string) (entities.Raid, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	return row, ok
}

func (r *fakeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type sentMessage struct {
	ChannelID string
	Content   string
}

type removedReaction struct {
	ChannelID string
	MessageID string
	Emoji     string
	UserID    string
}

// fakeMessenger records every outgoing call and serves canned fetch results.
type fakeMessenger struct {
	mu      sync.Mutex
	sent    []sentMessage
	removed []removedReaction
	nextID  int

	sendErr     error
	channelErr  map[string]error // channel id -> forced FetchChannel error
	messages    map[string]*output.MessageRef
	fetchErr    map[string]error // message id -> forced FetchMessage error
	removeErr   error
	displayName map[string]string // user id -> name; absent means unresolved
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{
		channelErr:  make(map[string]error),
		messages:    make(map[string]*output.MessageRef),
		fetchErr:    make(map[string]error),
		displayName: make(map[string]string),
	}
}

func (m *fakeMessenger) Send(ctx context.Context, channelID, content string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return "", m.sendErr
	}
	m.nextID++
	m.sent = append(m.sent, sentMessage{ChannelID: channelID, Content: content})
	return fmt.Sprintf("msg-%d", m.nextID), nil
}

func (m *fakeMessenger) FetchChannel(ctx context.Context, channelID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.channelErr[channelID]
}

func (m *fakeMessenger) FetchMessage(ctx context.Context, channelID, messageID string) (*output.MessageRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fetchErr[messageID]; err != nil {
		return nil, err
	}
	if ref, ok := m.messages[messageID]; ok {
		return ref, nil
	}
	return nil, fmt.Errorf("message %s inconnu", messageID)
}

func (m *fakeMessenger) RemoveReaction(ctx context.Context, channelID, messageID, emoji, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, removedReaction{channelID, messageID, emoji, userID})
	return nil
}

func (m *fakeMessenger) MemberDisplayName(ctx context.Context, guildID, userID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name, ok := m.displayName[userID]
	return name, ok
}

func (m *fakeMessenger) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *fakeMessenger) lastSent() (sentMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return sentMessage{}, false
	}
	return m.sent[len(m.sent)-1], true
}

func (m *fakeMessenger) removedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.removed)
}

// fakeT renders "key" or "key:Ping=..." so tests can assert on content.
type fakeT struct{}

func (fakeT) T(locale, key string, data map[string]any) string {
	if ping, ok := data["Ping"]; ok {
		return fmt.Sprintf("%s:%v", key, ping)
	}
	return key
}

// newTestService wires a RaidService over fakes and the embedded catalog.
func newTestService(t *testing.T, repo *fakeRepo, msgr *fakeMessenger, now func() time.Time) *RaidService {
	t.Helper()
	types, err := raidtypes.Load()
	if err != nil {
		t.Fatalf("chargement du catalogue: %v", err)
	}
	return NewRaidService(RaidServiceParams{
		Repo:          repo,
		Messenger:     msgr,
		Translator:    fakeT{},
		Types:         types,
		Registry:      NewRegistry(),
		Cache:         NewSignupCache(),
		PingMention:   "<@&42>",
		TestChannelID: "chan-test",
		Now:           now,
	})
}

// await polls cond until it holds or the deadline passes.
func await(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

const raidTypeName = "Crying Sky Raid"
