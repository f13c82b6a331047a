package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tony1885/tonyWoW/internal/cache"
	"github.com/Tony1885/tonyWoW/internal/config"
	"github.com/Tony1885/tonyWoW/internal/derive"
	"github.com/Tony1885/tonyWoW/internal/raiderio"
	"github.com/Tony1885/tonyWoW/internal/wow"
)

// stubProvider serves a fixed character under its lowercase name.
type stubProvider struct {
	calls int
}

func (s *stubProvider) GetCharacter(ctx context.Context, region, realm, name string) (*raiderio.Character, error) {
	s.calls++
	if region == "eu" && realm == "ysondre" && name == "moussman" {
		return &raiderio.Character{
			Name:           "Moussman",
			Class:          "Monk",
			ActiveSpecName: "Brewmaster",
			ActiveSpecRole: "TANK",
			Faction:        "horde",
			Region:         "eu",
			Realm:          "Ysondre",
			Gear:           &raiderio.Gear{ItemLevelEquipped: 489, ItemLevelTotal: 492},
			MythicPlusScoresBySeason: []raiderio.Season{
				{Season: "season-tww-3", Scores: raiderio.Scores{All: 2650, Tank: 2650}},
			},
			MythicPlusRanks: &raiderio.Ranks{
				Overall:   raiderio.Rank{World: 12000, Region: 4000, Realm: 12},
				Class:     raiderio.Rank{World: 900, Region: 300, Realm: 2},
				ClassTank: &raiderio.Rank{World: 450, Region: 140, Realm: 1},
			},
		}, nil
	}
	return nil, raiderio.ErrNotFound
}

func newTestRouter(t *testing.T) (http.Handler, *stubProvider) {
	t.Helper()

	cfg := &config.Config{
		CORSAllowOrigins: []string{"*"},
		CacheEnabled:     true,
		CacheTTL:         time.Minute,
		NegativeCacheTTL: 30 * time.Second,
	}
	provider := &stubProvider{}
	appCache := cache.New(cfg.CacheEnabled)
	service := wow.NewService(provider, appCache, cfg.CacheTTL, cfg.NegativeCacheTTL, nil)
	deriver := derive.New(derive.DefaultConfig())

	return NewRouter(service, deriver, appCache, cfg), provider
}

func get(t *testing.T, router http.Handler, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetCharacterEndpoint(t *testing.T) {
	router, provider := newTestRouter(t)

	rec := get(t, router, "/api/v1/characters/eu/ysondre/Moussman", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))

	var body struct {
		Profile struct {
			Name  string `json:"name"`
			Class string `json:"class"`
		} `json:"profile"`
		View struct {
			Tier struct {
				Name  string `json:"name"`
				Color string `json:"color"`
			} `json:"score_tier"`
			RankRows  []map[string]interface{} `json:"rank_rows"`
			Links     []derive.LinkCategory    `json:"link_categories"`
			Keystones derive.KeystoneCounts    `json:"keystone_counts"`
		} `json:"view"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "Moussman", body.Profile.Name)
	assert.Equal(t, "elite", body.View.Tier.Name)
	assert.Len(t, body.View.RankRows, 3)
	assert.Equal(t, derive.KeystoneCounts{TenPlus: 24, FivePlus: 35, TwoPlus: 11}, body.View.Keystones)

	var titles []string
	for _, c := range body.View.Links {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"Performance", "Collections", "Monk Guides"}, titles)

	assert.Equal(t, 1, provider.calls)
}

func TestGetCharacterServedFromCache(t *testing.T) {
	router, provider := newTestRouter(t)

	first := get(t, router, "/api/v1/characters/eu/ysondre/Moussman", nil)
	require.Equal(t, http.StatusOK, first.Code)

	// Different URL casing, same normalized identity.
	second := get(t, router, "/api/v1/characters/EU/Ysondre/MOUSSMAN", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, 1, provider.calls, "one page worth of components means one outbound call")
}

func TestGetCharacterNotModified(t *testing.T) {
	router, _ := newTestRouter(t)

	first := get(t, router, "/api/v1/characters/eu/ysondre/Moussman", nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	second := get(t, router, "/api/v1/characters/eu/ysondre/Moussman", map[string]string{
		"If-None-Match": etag,
	})
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.Bytes())
}

func TestGetCharacterNotFound(t *testing.T) {
	router, provider := newTestRouter(t)

	rec := get(t, router, "/api/v1/characters/eu/ysondre/unknownhero", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["error"]["code"])
	assert.Equal(t, 2, provider.calls, "both encoding variants get their attempt")
}

func TestGetCharacterMissingIdentity(t *testing.T) {
	router, provider := newTestRouter(t)

	rec := get(t, router, "/api/v1/characters/eu/ysondre/%20", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_IDENTITY", body["error"]["code"])
	assert.Zero(t, provider.calls, "unusable input must not reach the provider")
}

func TestGetCharacterLinksEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(t, router, "/api/v1/characters/eu/ysondre/Moussman/links", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Class      string                `json:"class"`
		Categories []derive.LinkCategory `json:"link_categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Monk", body.Class)
	require.Len(t, body.Categories, 3)
	assert.Equal(t, "Monk Guides", body.Categories[2].Title)
}

func TestRosterEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(t, router, "/api/v1/roster", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Characters []struct {
			Name  string `json:"name"`
			Class string `json:"class"`
		} `json:"characters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Characters, 2)
	assert.Equal(t, "Moussman", body.Characters[0].Name)
	assert.Equal(t, "Mamènne", body.Characters[1].Name)
}

func TestMetaTierListEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(t, router, "/api/v1/meta/tierlist", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tiers []struct {
			Tier  string `json:"tier"`
			Roles []struct {
				Role string `json:"role"`
			} `json:"roles"`
		} `json:"tiers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tiers, 2)
	assert.Equal(t, "S", body.Tiers[0].Tier)
	assert.Equal(t, "A", body.Tiers[1].Tier)
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusOK, get(t, router, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/health/cache", nil).Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/", nil).Code)
}
