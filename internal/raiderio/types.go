package raiderio

// Character is the partial Raider.io character-profile response. Fields the
// dashboard does not render (raid progression, best runs, ...) are left out;
// the decoder ignores them.
type Character struct {
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
	LastCrawledAt     string `json:"last_crawled_at"`
	ProfileURL        string `json:"profile_url"`

	Gear                     *Gear    `json:"gear"`
	MythicPlusScoresBySeason []Season `json:"mythic_plus_scores_by_season"`
	MythicPlusRanks          *Ranks   `json:"mythic_plus_ranks"`
}

type Gear struct {
	ItemLevelEquipped float64 `json:"item_level_equipped"`
	ItemLevelTotal    float64 `json:"item_level_total"`
}

type Season struct {
	Season string `json:"season"`
	Scores Scores `json:"scores"`
}

type Scores struct {
	All    float64 `json:"all"`
	Dps    float64 `json:"dps"`
	Healer float64 `json:"healer"`
	Tank   float64 `json:"tank"`
}

type Ranks struct {
	Overall     Rank  `json:"overall"`
	Class       Rank  `json:"class"`
	ClassTank   *Rank `json:"class_tank"`
	ClassHealer *Rank `json:"class_healer"`
	ClassDps    *Rank `json:"class_dps"`
}

type Rank struct {
	World  int `json:"world"`
	Region int `json:"region"`
	Realm  int `json:"realm"`
}
