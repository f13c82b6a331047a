package wow

import (
	"strings"

	"github.com/Tony1885/tonyWoW/internal/raiderio"
)

// CharacterProfile is the validated result of a lookup. JSON field names
// mirror the provider's so the frontend keeps one vocabulary.
type CharacterProfile struct {
	Name              string `json:"name"`
	Race              string `json:"race"`
	Class             string `json:"class"`
	ActiveSpecName    string `json:"active_spec_name"`
	ActiveSpecRole    string `json:"active_spec_role"`
	Gender            string `json:"gender"`
	Faction           string `json:"faction"`
	AchievementPoints int    `json:"achievement_points"`
	ThumbnailURL      string `json:"thumbnail_url"`
	Region            string `json:"region"`
	Realm             string `json:"realm"`
	ProfileURL        string `json:"profile_url"`

	Gear    Gear           `json:"gear"`
	Seasons []SeasonScores `json:"mythic_plus_scores_by_season"`
	Ranks   RankTable      `json:"mythic_plus_ranks"`
}

type Gear struct {
	ItemLevelEquipped float64 `json:"item_level_equipped"`
	ItemLevelTotal    float64 `json:"item_level_total"`
}

type SeasonScores struct {
	Season string     `json:"season"`
	Scores RoleScores `json:"scores"`
}

type RoleScores struct {
	All    float64 `json:"all"`
	Dps    float64 `json:"dps"`
	Healer float64 `json:"healer"`
	Tank   float64 `json:"tank"`
}

type RankTable struct {
	Overall     Rank  `json:"overall"`
	Class       Rank  `json:"class"`
	ClassTank   *Rank `json:"class_tank,omitempty"`
	ClassHealer *Rank `json:"class_healer,omitempty"`
	ClassDps    *Rank `json:"class_dps,omitempty"`
}

type Rank struct {
	World  int `json:"world"`
	Region int `json:"region"`
	Realm  int `json:"realm"`
}

// CurrentScores returns the current-season role scores, zero when the
// character has no seasonal data.
func (p *CharacterProfile) CurrentScores() RoleScores {
	if len(p.Seasons) == 0 {
		return RoleScores{}
	}
	return p.Seasons[0].Scores
}

// Score returns the overall current-season Mythic+ score.
func (p *CharacterProfile) Score() float64 {
	return p.CurrentScores().All
}

// ToProfile projects a raw provider payload into a CharacterProfile.
//
// A payload without a non-empty name does not represent a real character and
// maps to nil. Everything else is copied defensively: gear, seasonal scores,
// and ranks may be wholly absent without invalidating the profile.
func ToProfile(raw *raiderio.Character) *CharacterProfile {
	if raw == nil || strings.TrimSpace(raw.Name) == "" {
		return nil
	}

	p := &CharacterProfile{
		Name:              raw.Name,
		Race:              raw.Race,
		Class:             raw.Class,
		ActiveSpecName:    raw.ActiveSpecName,
		ActiveSpecRole:    raw.ActiveSpecRole,
		Gender:            raw.Gender,
		Faction:           raw.Faction,
		AchievementPoints: raw.AchievementPoints,
		ThumbnailURL:      raw.ThumbnailURL,
		Region:            raw.Region,
		Realm:             raw.Realm,
		ProfileURL:        raw.ProfileURL,
	}

	if raw.Gear != nil {
		p.Gear = Gear{
			ItemLevelEquipped: raw.Gear.ItemLevelEquipped,
			ItemLevelTotal:    raw.Gear.ItemLevelTotal,
		}
	}

	for _, season := range raw.MythicPlusScoresBySeason {
		p.Seasons = append(p.Seasons, SeasonScores{
			Season: season.Season,
			Scores: RoleScores{
				All:    season.Scores.All,
				Dps:    season.Scores.Dps,
				Healer: season.Scores.Healer,
				Tank:   season.Scores.Tank,
			},
		})
	}

	if raw.MythicPlusRanks != nil {
		p.Ranks = RankTable{
			Overall:     Rank(raw.MythicPlusRanks.Overall),
			Class:       Rank(raw.MythicPlusRanks.Class),
			ClassTank:   copyRank(raw.MythicPlusRanks.ClassTank),
			ClassHealer: copyRank(raw.MythicPlusRanks.ClassHealer),
			ClassDps:    copyRank(raw.MythicPlusRanks.ClassDps),
		}
	}

	return p
}

func copyRank(r *raiderio.Rank) *Rank {
	if r == nil {
		return nil
	}
	rank := Rank(*r)
	return &rank
}
