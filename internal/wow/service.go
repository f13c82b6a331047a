package wow

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Tony1885/tonyWoW/internal/cache"
	"github.com/Tony1885/tonyWoW/internal/raiderio"
)

// ProfileClient is the provider call the service depends on.
type ProfileClient interface {
	GetCharacter(ctx context.Context, region, realm, name string) (*raiderio.Character, error)
}

// Service resolves identities into cached character profiles.
type Service struct {
	client ProfileClient
	cache  *cache.Cache
	ttl    time.Duration
	negTTL time.Duration
	logger *slog.Logger
}

// NewService creates a lookup service. ttl bounds how long a resolved
// profile is served without re-fetching; negTTL does the same for absent
// results.
func NewService(client ProfileClient, c *cache.Cache, ttl, negTTL time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		cache:  c,
		ttl:    ttl,
		negTTL: negTTL,
		logger: logger,
	}
}

// GetCharacterProfile is the sole lookup entry point. It returns
// (nil, ErrMissingIdentity) for unusable input and (nil, nil) when the
// character cannot be resolved — the caller never sees transport or
// provider errors.
func (s *Service) GetCharacterProfile(ctx context.Context, region, realm, name string) (*CharacterProfile, error) {
	id, err := Normalize(region, realm, name)
	if err != nil {
		return nil, err
	}
	profile, _ := s.Lookup(ctx, id)
	return profile, nil
}

// Lookup resolves a normalized identity, consulting the cache first. A nil
// profile means absent: not found, or the provider is unreachable. The
// second return reports whether the result came from cache.
func (s *Service) Lookup(ctx context.Context, id Identity) (*CharacterProfile, bool) {
	key := id.Key()

	if data, _, ok := s.cache.Get(key); ok {
		if data == nil {
			return nil, true
		}
		var cached CharacterProfile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, true
		}
		s.logger.Warn("Discarding undecodable cache entry", "key", key)
	}

	profile := s.fetch(ctx, id)
	if profile == nil {
		s.cache.SetNegative(key, s.negTTL)
		return nil, false
	}

	if data, err := json.Marshal(profile); err == nil {
		s.cache.Set(key, data, s.ttl)
	}
	return profile, false
}

// fetch runs the bounded two-variant lookup against the provider.
//
// Raider.io is inconsistent about case sensitivity and encoding for accented
// names: the lowercased form resolves most characters, but some only answer
// under their display casing. This is deliberately a fixed two-attempt
// sequence, not a retry loop — there is no third spelling worth trying.
func (s *Service) fetch(ctx context.Context, id Identity) *CharacterProfile {
	variants := []string{id.Lookup()}
	if id.Name != variants[0] {
		variants = append(variants, id.Name)
	}

	for _, name := range variants {
		raw, err := s.client.GetCharacter(ctx, id.Region, id.Realm, name)
		if err != nil {
			if errors.Is(err, raiderio.ErrNotFound) {
				s.logger.Debug("Character not found under variant",
					"region", id.Region, "realm", id.Realm, "name", name)
			} else {
				s.logger.Warn("Provider lookup failed",
					"region", id.Region, "realm", id.Realm, "name", name, "error", err)
			}
			continue
		}

		if profile := ToProfile(raw); profile != nil {
			return profile
		}
		s.logger.Debug("Provider returned payload without a name",
			"region", id.Region, "realm", id.Realm, "name", name)
	}

	return nil
}
