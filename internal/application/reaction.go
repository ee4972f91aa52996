package application

import (
	"context"
	"log"
)

// IngestReactionAdd applies one reaction-add signal. Reactions on unrelated
// messages and reactions from bots are ignored; a disallowed emoji is pruned
// from the message in the background so a slow or rate-limited removal call
// never stalls ingestion of the next reaction event.
func (s *RaidService) IngestReactionAdd(ctx context.Context, channelID, messageID, emoji, userID string, isBot bool) {
	info, ok := s.registry.Info(messageID)
	if !ok || isBot {
		return
	}
	rt, ok := s.types.Get(info.Type)
	if !ok {
		log.Printf("❌ Raid %s a un type inconnu %q.", messageID, info.Type)
		return
	}
	if !rt.Allowed(emoji) {
		go s.pruneReaction(channelID, messageID, emoji, userID)
		return
	}
	s.cache.Add(messageID, emoji, userID)
}

// IngestReactionRemove mirrors an un-react into the cache. Removing an
// absent user or emoji is a no-op, like the add side.
func (s *RaidService) IngestReactionRemove(ctx context.Context, messageID, emoji, userID string) {
	if !s.registry.Contains(messageID) {
		return
	}
	s.cache.Discard(messageID, emoji, userID)
}

// pruneReaction removes exactly one disallowed reaction instance from one
// user. Runs detached from the ingestion path; failures only reach the log.
func (s *RaidService) pruneReaction(channelID, messageID, emoji, userID string) {
	ctx := context.Background()
	if s.registry.Message(messageID) == nil {
		ref, err := s.msgr.FetchMessage(ctx, channelID, messageID)
		if err != nil {
			log.Printf("⚠️ Annonce %s introuvable, réaction %s de %s non retirée: %v", messageID, emoji, userID, err)
			return
		}
		s.registry.SetMessage(messageID, ref)
	}
	if err := s.msgr.RemoveReaction(ctx, channelID, messageID, emoji, userID); err != nil {
		log.Printf("⚠️ Retrait de la réaction %s de %s sur %s: %v", emoji, userID, messageID, err)
	}
}
