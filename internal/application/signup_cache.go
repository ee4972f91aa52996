package application

import "sync"

// SignupCache maps raid id -> reaction emoji -> set of user ids. It mirrors the
// reaction state of each announcement message for valid sign-up emojis only.
type SignupCache struct {
	mu    sync.Mutex
	raids map[string]map[string]map[string]struct{}
}

func NewSignupCache() *SignupCache {
	return &SignupCache{raids: make(map[string]map[string]map[string]struct{})}
}

// Add records userID under emoji, creating nested entries as needed.
func (c *SignupCache) Add(raidID, emoji, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byEmoji, ok := c.raids[raidID]
	if !ok {
		byEmoji = make(map[string]map[string]struct{})
		c.raids[raidID] = byEmoji
	}
	users, ok := byEmoji[emoji]
	if !ok {
		users = make(map[string]struct{})
		byEmoji[emoji] = users
	}
	users[userID] = struct{}{}
}

// Discard removes userID from emoji's set. Absence is not an error.
func (c *SignupCache) Discard(raidID, emoji, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if byEmoji, ok := c.raids[raidID]; ok {
		delete(byEmoji[emoji], userID)
	}
}

// Replace installs a full reaction snapshot for raidID (recovery path).
func (c *SignupCache) Replace(raidID string, byEmoji map[string][]string) {
	fresh := make(map[string]map[string]struct{}, len(byEmoji))
	for emoji, users := range byEmoji {
		set := make(map[string]struct{}, len(users))
		for _, u := range users {
			set[u] = struct{}{}
		}
		fresh[emoji] = set
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.raids[raidID] = fresh
}

// Drop deletes every cached reaction for raidID. No-op when absent.
func (c *SignupCache) Drop(raidID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.raids, raidID)
}

// Contains reports whether raidID has a cache entry.
func (c *SignupCache) Contains(raidID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.raids[raidID]
	return ok
}

// Users returns a copy of the user ids reacting with emoji on raidID.
func (c *SignupCache) Users(raidID, emoji string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	users := c.raids[raidID][emoji]
	out := make([]string, 0, len(users))
	for u := range users {
		out = append(out, u)
	}
	return out
}

// Snapshot returns a deep copy of raidID's reaction state, so read paths
// never observe or cause concurrent mutation.
func (c *SignupCache) Snapshot(raidID string) map[string][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	byEmoji, ok := c.raids[raidID]
	if !ok {
		return nil
	}
	out := make(map[string][]string, len(byEmoji))
	for emoji, users := range byEmoji {
		ids := make([]string, 0, len(users))
		for u := range users {
			ids = append(ids, u)
		}
		out[emoji] = ids
	}
	return out
}
