package application

import (
	"context"
	"sync"

	"raidbot/internal/ports/output"
)

// NotifyTask is the handle to a pending notification goroutine.
type NotifyTask struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the task and waits for it to wind down. If the task already
// entered its send step, it completes normally instead (at-least-once under
// the cancel/fire race).
func (t *NotifyTask) Cancel() {
	t.cancel()
	<-t.done
}

// RaidInfo is a snapshot of a registry entry's bookkeeping fields.
type RaidInfo struct {
	Name      string
	Type      string
	ChannelID string
}

type registryEntry struct {
	task      *NotifyTask
	name      string
	raidType  string
	channelID string
	msg       *output.MessageRef // lazily populated announcement ref
}

// Registry tracks active raids in memory: one entry per raid id, holding the
// live notification task and cached bookkeeping. Accessed from the gateway
// handlers and the timer goroutines, so every access goes through a mutex.
type Registry struct {
	mu    sync.Mutex
	raids map[string]*registryEntry
}

func NewRegistry() *Registry {
	return &Registry{raids: make(map[string]*registryEntry)}
}

// Register inserts an entry with no task attached. Used as a placeholder
// during recovery so reactions arriving mid-restore are not dropped.
func (r *Registry) Register(id, name, raidType, channelID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.raids[id] = &registryEntry{name: name, raidType: raidType, channelID: channelID}
}

// AttachTask stores the notification task handle for id.
func (r *Registry) AttachTask(id string, task *NotifyTask) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.raids[id]; ok {
		e.task = task
	}
}

// TakeTask removes and returns the task handle, or nil.
func (r *Registry) TakeTask(id string) *NotifyTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.raids[id]
	if !ok || e.task == nil {
		return nil
	}
	task := e.task
	e.task = nil
	return task
}

// Info returns the bookkeeping snapshot for id.
func (r *Registry) Info(id string) (RaidInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.raids[id]
	if !ok {
		return RaidInfo{}, false
	}
	return RaidInfo{Name: e.name, Type: e.raidType, ChannelID: e.channelID}, true
}

// Contains reports whether id is an active raid.
func (r *Registry) Contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.raids[id]
	return ok
}

// Message returns the cached announcement reference, or nil.
func (r *Registry) Message(id string) *output.MessageRef {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.raids[id]; ok {
		return e.msg
	}
	return nil
}

// SetMessage caches the announcement reference for reuse.
func (r *Registry) SetMessage(id string, ref *output.MessageRef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.raids[id]; ok {
		e.msg = ref
	}
}

// Remove deletes the entry. Removing an absent id is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.raids, id)
}

// IDs lists active raid ids.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.raids))
	for id := range r.raids {
		out = append(out, id)
	}
	return out
}

// Len returns the number of active raids.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.raids)
}
