// Package derive computes presentation values that have no meaning in the
// provider data but are required by the UI: score tiers, rank-leaderboard
// rows, per-class link sets, color keys, and curated keystone counts.
package derive

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Tony1885/tonyWoW/internal/wow"
)

// Deriver computes view values from a resolved profile. All tables come
// from the injected Config; the methods are pure.
type Deriver struct {
	cfg Config

	// class keywords sorted longest-first, so "demon hunter" consumes its
	// text before "hunter" gets a chance to match it
	keywords []string
}

// New creates a Deriver over an immutable presentation config.
func New(cfg Config) *Deriver {
	keywords := make([]string, 0, len(cfg.ClassCategories))
	for k := range cfg.ClassCategories {
		keywords = append(keywords, k)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if len(keywords[i]) != len(keywords[j]) {
			return len(keywords[i]) > len(keywords[j])
		}
		return keywords[i] < keywords[j]
	})
	return &Deriver{cfg: cfg, keywords: keywords}
}

// View is everything the character page renders beyond the raw profile.
type View struct {
	Tier       ScoreTier      `json:"score_tier"`
	RankRows   []RankRow      `json:"rank_rows"`
	Links      []LinkCategory `json:"link_categories"`
	Keystones  KeystoneCounts `json:"keystone_counts"`
	ClassColor string         `json:"class_color"`
	Faction    string         `json:"faction_color"`
	RenderURL  string         `json:"render_url,omitempty"`
	WidgetID   int            `json:"widget_character_id,omitempty"`
}

// RankRow is one leaderboard placement line.
type RankRow struct {
	Label  string `json:"label"`
	Role   string `json:"role"`
	World  int    `json:"world"`
	Region int    `json:"region"`
	Realm  int    `json:"realm"`
}

// View assembles the full derived view for a resolved profile. Callers must
// not pass nil — an absent character has no view.
func (d *Deriver) View(p *wow.CharacterProfile) View {
	override := d.override(p.Name)
	return View{
		Tier:       d.ScoreTier(p.Score()),
		RankRows:   d.RankRows(p),
		Links:      d.LinkCategories(p.Class),
		Keystones:  override.Keystones,
		ClassColor: d.ClassColor(p.Class),
		Faction:    d.FactionColor(p.Faction),
		RenderURL:  override.RenderURL,
		WidgetID:   override.WidgetCharacterID,
	}
}

// ScoreTier classifies an overall score into its band. Total and monotonic:
// every score lands in exactly one tier, and higher scores never land lower.
func (d *Deriver) ScoreTier(score float64) ScoreTier {
	for _, tier := range d.cfg.Tiers {
		if score > tier.Min {
			return tier
		}
	}
	// The low band's threshold is effectively -inf, so this is unreachable
	// with the shipped config; guard against an empty custom table anyway.
	if len(d.cfg.Tiers) == 0 {
		return ScoreTier{}
	}
	return d.cfg.Tiers[len(d.cfg.Tiers)-1]
}

// RankRows builds the leaderboard rows the character actually occupies. The
// overall and all-of-class rows are always present; a class-role row appears
// only when that role's score is nonzero or it is the active role — no rank
// lines for roles the character has never played.
func (d *Deriver) RankRows(p *wow.CharacterProfile) []RankRow {
	scores := p.CurrentScores()
	role := strings.ToUpper(p.ActiveSpecRole)

	rows := []RankRow{
		rankRow("All Classes", "all", p.Ranks.Overall),
		rankRow("All "+p.Class+"s", "all", p.Ranks.Class),
	}
	if p.Ranks.ClassTank != nil && (scores.Tank > 0 || role == "TANK") {
		rows = append(rows, rankRow(p.Class+" Tanks", "tank", *p.Ranks.ClassTank))
	}
	if p.Ranks.ClassHealer != nil && (scores.Healer > 0 || role == "HEALER") {
		rows = append(rows, rankRow(p.Class+" Healers", "healer", *p.Ranks.ClassHealer))
	}
	if p.Ranks.ClassDps != nil && (scores.Dps > 0 || role == "DPS") {
		rows = append(rows, rankRow(p.Class+" DPS", "dps", *p.Ranks.ClassDps))
	}
	return rows
}

func rankRow(label, role string, r wow.Rank) RankRow {
	return RankRow{Label: label, Role: role, World: r.World, Region: r.Region, Realm: r.Realm}
}

// LinkCategories returns the outbound link groups for a class string: the
// base categories plus the guide set of every class keyword found in the
// string. Matching is case-insensitive and substring-tolerant; longer
// keywords consume their text first so "Demon Hunter" does not also count
// as "Hunter".
func (d *Deriver) LinkCategories(class string) []LinkCategory {
	categories := make([]LinkCategory, len(d.cfg.BaseCategories))
	copy(categories, d.cfg.BaseCategories)

	remaining := strings.ToLower(class)
	for _, keyword := range d.keywords {
		if strings.Contains(remaining, keyword) {
			categories = append(categories, d.cfg.ClassCategories[keyword])
			remaining = strings.ReplaceAll(remaining, keyword, "")
		}
	}
	return categories
}

// KeystoneCounts returns curated timed-run totals for a character name, or
// the zero value for anyone outside the override table. Never a guess.
func (d *Deriver) KeystoneCounts(name string) KeystoneCounts {
	return d.override(name).Keystones
}

// RenderURL returns the curated character render image, empty when unknown.
func (d *Deriver) RenderURL(name string) string {
	return d.override(name).RenderURL
}

// ClassColor returns the class display color, white for unknown classes.
func (d *Deriver) ClassColor(class string) string {
	if color, ok := d.cfg.ClassColors[strings.ToLower(class)]; ok {
		return color
	}
	return "#FFFFFF"
}

// FactionColor returns the faction display color, white for unknown factions.
func (d *Deriver) FactionColor(faction string) string {
	if color, ok := d.cfg.FactionColors[strings.ToLower(faction)]; ok {
		return color
	}
	return "#FFFFFF"
}

// override looks up curated values by exact normalized-name match.
func (d *Deriver) override(name string) CharacterOverride {
	key := strings.ToLower(norm.NFC.String(name))
	return d.cfg.Overrides[key]
}
