package raiderio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient(srv.URL, 600, 5*time.Second, nil)
	return client, srv
}

func TestGetCharacterRequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"region": r.URL.Query().Get("region"),
			"realm":  r.URL.Query().Get("realm"),
			"name":   r.URL.Query().Get("name"),
			"fields": r.URL.Query().Get("fields"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Mamènne","class":"Paladin"}`))
	})
	defer srv.Close()

	character, err := client.GetCharacter(context.Background(), "eu", "ysondre", "Mamènne")
	require.NoError(t, err)

	assert.Equal(t, "/characters/profile", gotPath)
	assert.Equal(t, "eu", gotQuery["region"])
	assert.Equal(t, "ysondre", gotQuery["realm"])
	assert.Equal(t, "Mamènne", gotQuery["name"], "accented names must survive the query encoding round-trip")
	assert.Equal(t, "gear,mythic_plus_scores_by_season:current,mythic_plus_ranks", gotQuery["fields"])
	assert.Equal(t, "Mamènne", character.Name)
}

func TestGetCharacterDecodesProfile(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Moussman",
			"class": "Monk",
			"active_spec_name": "Brewmaster",
			"active_spec_role": "TANK",
			"faction": "horde",
			"gear": {"item_level_equipped": 489, "item_level_total": 492},
			"mythic_plus_scores_by_season": [
				{"season": "season-tww-3", "scores": {"all": 2650.4, "tank": 2650.4, "healer": 0, "dps": 310.2}}
			],
			"mythic_plus_ranks": {
				"overall": {"world": 12000, "region": 4000, "realm": 12},
				"class": {"world": 900, "region": 300, "realm": 2},
				"class_tank": {"world": 450, "region": 140, "realm": 1}
			}
		}`))
	})
	defer srv.Close()

	character, err := client.GetCharacter(context.Background(), "eu", "ysondre", "moussman")
	require.NoError(t, err)

	assert.Equal(t, "Moussman", character.Name)
	require.NotNil(t, character.Gear)
	assert.Equal(t, 489.0, character.Gear.ItemLevelEquipped)
	require.Len(t, character.MythicPlusScoresBySeason, 1)
	assert.Equal(t, 2650.4, character.MythicPlusScoresBySeason[0].Scores.All)
	require.NotNil(t, character.MythicPlusRanks)
	require.NotNil(t, character.MythicPlusRanks.ClassTank)
	assert.Equal(t, 450, character.MythicPlusRanks.ClassTank.World)
	assert.Nil(t, character.MythicPlusRanks.ClassHealer)
}

func TestGetCharacterNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"statusCode":404,"error":"Not Found","message":"Could not find requested character"}`, http.StatusNotFound)
	})
	defer srv.Close()

	character, err := client.GetCharacter(context.Background(), "eu", "ysondre", "unknownhero")
	assert.Nil(t, character)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCharacterServerError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})
	defer srv.Close()

	character, err := client.GetCharacter(context.Background(), "eu", "ysondre", "moussman")
	assert.Nil(t, character)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "502")
}

func TestGetCharacterMalformedBody(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance page</html>"))
	})
	defer srv.Close()

	character, err := client.GetCharacter(context.Background(), "eu", "ysondre", "moussman")
	assert.Nil(t, character)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate([]byte("short"), 10))
	assert.Equal(t, "abcde...", truncate([]byte("abcdefghij"), 5))
}
