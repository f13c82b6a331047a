package derive

// Config carries the static presentation tables. It is built once at process
// start and injected into the Deriver; nothing mutates it afterwards.
type Config struct {
	// ClassColors maps lowercase class name to its display hex color.
	ClassColors map[string]string

	// FactionColors maps lowercase faction to its display hex color.
	FactionColors map[string]string

	// Tiers is the ordered score banding, highest threshold first.
	Tiers []ScoreTier

	// BaseCategories are the link categories every character gets.
	BaseCategories []LinkCategory

	// ClassCategories maps a lowercase class keyword to its guide links.
	ClassCategories map[string]LinkCategory

	// Overrides maps a lookup-cased character name to hand-curated values
	// the provider does not expose. Known stopgap: run counts should come
	// from the provider's run endpoints once those are wired in.
	Overrides map[string]CharacterOverride
}

// ScoreTier is a named, color-coded band over the overall Mythic+ score.
// A score belongs to the first tier whose Min it exceeds.
type ScoreTier struct {
	Name  string  `json:"name"`
	Min   float64 `json:"min"`
	Color string  `json:"color"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

type LinkCategory struct {
	Title string `json:"title"`
	Links []Link `json:"links"`
}

// KeystoneCounts are timed-run totals per keystone bracket.
type KeystoneCounts struct {
	TenPlus  int `json:"ten_plus"`
	FivePlus int `json:"five_plus"`
	TwoPlus  int `json:"two_plus"`
}

// CharacterOverride holds curated per-character values.
type CharacterOverride struct {
	Keystones         KeystoneCounts
	WidgetCharacterID int
	RenderURL         string
}

const wowIcon = "https://wow.zamimg.com/images/wow/icons/large/"

// DefaultConfig returns the presentation tables the dashboard ships with.
func DefaultConfig() Config {
	return Config{
		ClassColors: map[string]string{
			"monk":         "#00FF96",
			"paladin":      "#F58CBA",
			"warrior":      "#C79C6E",
			"hunter":       "#ABD473",
			"rogue":        "#FFF569",
			"priest":       "#FFFFFF",
			"death knight": "#C41E3A",
			"shaman":       "#0070DE",
			"mage":         "#3FC7EB",
			"warlock":      "#8787ED",
			"druid":        "#FF7D0A",
			"demon hunter": "#A330C9",
			"evoker":       "#33937F",
		},

		FactionColors: map[string]string{
			"alliance": "#0078FF",
			"horde":    "#B30000",
		},

		Tiers: []ScoreTier{
			{Name: "elite", Min: 2500, Color: "#FB923C"},
			{Name: "high", Min: 2000, Color: "#C084FC"},
			{Name: "mid", Min: 0, Color: "#60A5FA"},
			{Name: "low", Min: -1 << 30, Color: "#9CA3AF"},
		},

		BaseCategories: []LinkCategory{
			{
				Title: "Performance",
				Links: []Link{
					{Label: "Raider.io Rankings", URL: "https://raider.io/mythic-plus-rankings/season-tww-3/all/world/leaderboards-strict"},
					{Label: "Wowhead Guides", URL: "https://www.wowhead.com/guides/mythic-plus-dps-tier-list"},
					{Label: "Icy Veins Data", URL: "https://www.icy-veins.com/wow/mythic-dps-tier-list"},
				},
			},
			{
				Title: "Collections",
				Links: []Link{
					{Label: "Simple Armory Mounts", URL: "https://simplearmory.com"},
					{Label: "Simple Armory Achievements", URL: "https://simplearmory.com"},
				},
			},
		},

		ClassCategories: map[string]LinkCategory{
			"monk": {
				Title: "Monk Guides",
				Links: []Link{
					{Label: "Brewmaster", URL: "https://www.wowhead.com/guides/classes/monk/brewmaster/overview-pve-tank", Icon: wowIcon + "spell_monk_brewmaster_spec.jpg"},
					{Label: "Mistweaver", URL: "https://www.wowhead.com/guides/classes/monk/mistweaver/overview-pve-healer", Icon: wowIcon + "spell_monk_mistweaver_spec.jpg"},
					{Label: "Windwalker", URL: "https://www.wowhead.com/guides/classes/monk/windwalker/overview-pve-dps", Icon: wowIcon + "spell_monk_windwalker_spec.jpg"},
				},
			},
			"paladin": {
				Title: "Paladin Guides",
				Links: []Link{
					{Label: "Protection", URL: "https://www.wowhead.com/guides/classes/paladin/protection/overview-pve-tank", Icon: wowIcon + "ability_paladin_shieldofthetemplar.jpg"},
					{Label: "Holy", URL: "https://www.wowhead.com/guides/classes/paladin/holy/overview-pve-healer", Icon: wowIcon + "spell_holy_holybolt.jpg"},
					{Label: "Retribution", URL: "https://www.wowhead.com/guides/classes/paladin/retribution/overview-pve-dps", Icon: wowIcon + "spell_holy_auraoflight.jpg"},
				},
			},
			"warrior": {
				Title: "Warrior Guides",
				Links: []Link{
					{Label: "Protection", URL: "https://www.wowhead.com/guides/classes/warrior/protection/overview-pve-tank", Icon: wowIcon + "ability_warrior_defensivestance.jpg"},
					{Label: "Arms", URL: "https://www.wowhead.com/guides/classes/warrior/arms/overview-pve-dps", Icon: wowIcon + "ability_warrior_savageblow.jpg"},
					{Label: "Fury", URL: "https://www.wowhead.com/guides/classes/warrior/fury/overview-pve-dps", Icon: wowIcon + "ability_warrior_innerrage.jpg"},
				},
			},
			"hunter": {
				Title: "Hunter Guides",
				Links: []Link{
					{Label: "Beast Mastery", URL: "https://www.wowhead.com/guides/classes/hunter/beast-mastery/overview-pve-dps", Icon: wowIcon + "ability_hunter_bestialdiscipline.jpg"},
					{Label: "Marksmanship", URL: "https://www.wowhead.com/guides/classes/hunter/marksmanship/overview-pve-dps", Icon: wowIcon + "ability_hunter_focusedaim.jpg"},
					{Label: "Survival", URL: "https://www.wowhead.com/guides/classes/hunter/survival/overview-pve-dps", Icon: wowIcon + "ability_hunter_camouflage.jpg"},
				},
			},
			"rogue": {
				Title: "Rogue Guides",
				Links: []Link{
					{Label: "Assassination", URL: "https://www.wowhead.com/guides/classes/rogue/assassination/overview-pve-dps", Icon: wowIcon + "ability_rogue_deadlyprecision.jpg"},
					{Label: "Outlaw", URL: "https://www.wowhead.com/guides/classes/rogue/outlaw/overview-pve-dps", Icon: wowIcon + "ability_rogue_waylay.jpg"},
					{Label: "Subtlety", URL: "https://www.wowhead.com/guides/classes/rogue/subtlety/overview-pve-dps", Icon: wowIcon + "ability_stealth.jpg"},
				},
			},
			"priest": {
				Title: "Priest Guides",
				Links: []Link{
					{Label: "Discipline", URL: "https://www.wowhead.com/guides/classes/priest/discipline/overview-pve-healer", Icon: wowIcon + "spell_holy_powerwordshield.jpg"},
					{Label: "Holy", URL: "https://www.wowhead.com/guides/classes/priest/holy/overview-pve-healer", Icon: wowIcon + "spell_holy_guardianspirit.jpg"},
					{Label: "Shadow", URL: "https://www.wowhead.com/guides/classes/priest/shadow/overview-pve-dps", Icon: wowIcon + "spell_shadow_shadowwordpain.jpg"},
				},
			},
			"death knight": {
				Title: "Death Knight Guides",
				Links: []Link{
					{Label: "Blood", URL: "https://www.wowhead.com/guides/classes/death-knight/blood/overview-pve-tank", Icon: wowIcon + "spell_deathknight_bloodpresence.jpg"},
					{Label: "Frost", URL: "https://www.wowhead.com/guides/classes/death-knight/frost/overview-pve-dps", Icon: wowIcon + "spell_deathknight_frostpresence.jpg"},
					{Label: "Unholy", URL: "https://www.wowhead.com/guides/classes/death-knight/unholy/overview-pve-dps", Icon: wowIcon + "spell_deathknight_unholypresence.jpg"},
				},
			},
			"shaman": {
				Title: "Shaman Guides",
				Links: []Link{
					{Label: "Elemental", URL: "https://www.wowhead.com/guides/classes/shaman/elemental/overview-pve-dps", Icon: wowIcon + "spell_nature_lightning.jpg"},
					{Label: "Enhancement", URL: "https://www.wowhead.com/guides/classes/shaman/enhancement/overview-pve-dps", Icon: wowIcon + "spell_nature_lightiningot.jpg"},
					{Label: "Restoration", URL: "https://www.wowhead.com/guides/classes/shaman/restoration/overview-pve-healer", Icon: wowIcon + "spell_nature_magicrevelation.jpg"},
				},
			},
			"mage": {
				Title: "Mage Guides",
				Links: []Link{
					{Label: "Arcane", URL: "https://www.wowhead.com/guides/classes/mage/arcane/overview-pve-dps", Icon: wowIcon + "spell_holy_magicalsentry.jpg"},
					{Label: "Fire", URL: "https://www.wowhead.com/guides/classes/mage/fire/overview-pve-dps", Icon: wowIcon + "spell_fire_firebolt02.jpg"},
					{Label: "Frost", URL: "https://www.wowhead.com/guides/classes/mage/frost/overview-pve-dps", Icon: wowIcon + "spell_frost_frostbolt02.jpg"},
				},
			},
			"warlock": {
				Title: "Warlock Guides",
				Links: []Link{
					{Label: "Affliction", URL: "https://www.wowhead.com/guides/classes/warlock/affliction/overview-pve-dps", Icon: wowIcon + "spell_shadow_deathcoil.jpg"},
					{Label: "Demonology", URL: "https://www.wowhead.com/guides/classes/warlock/demonology/overview-pve-dps", Icon: wowIcon + "spell_shadow_metamorphosis.jpg"},
					{Label: "Destruction", URL: "https://www.wowhead.com/guides/classes/warlock/destruction/overview-pve-dps", Icon: wowIcon + "spell_shadow_rainoffire.jpg"},
				},
			},
			"druid": {
				Title: "Druid Guides",
				Links: []Link{
					{Label: "Guardian", URL: "https://www.wowhead.com/guides/classes/druid/guardian/overview-pve-tank", Icon: wowIcon + "ability_druid_maul.jpg"},
					{Label: "Restoration", URL: "https://www.wowhead.com/guides/classes/druid/restoration/overview-pve-healer", Icon: wowIcon + "spell_nature_healingtouch.jpg"},
					{Label: "Balance", URL: "https://www.wowhead.com/guides/classes/druid/balance/overview-pve-dps", Icon: wowIcon + "spell_nature_starfall.jpg"},
				},
			},
			"demon hunter": {
				Title: "Demon Hunter Guides",
				Links: []Link{
					{Label: "Vengeance", URL: "https://www.wowhead.com/guides/classes/demon-hunter/vengeance/overview-pve-tank", Icon: wowIcon + "ability_demonhunter_spectatortank.jpg"},
					{Label: "Havoc", URL: "https://www.wowhead.com/guides/classes/demon-hunter/havoc/overview-pve-dps", Icon: wowIcon + "ability_demonhunter_specdmg.jpg"},
				},
			},
			"evoker": {
				Title: "Evoker Guides",
				Links: []Link{
					{Label: "Preservation", URL: "https://www.wowhead.com/guides/classes/evoker/preservation/overview-pve-healer", Icon: wowIcon + "ability_evoker_preservation.jpg"},
					{Label: "Devastation", URL: "https://www.wowhead.com/guides/classes/evoker/devastation/overview-pve-dps", Icon: wowIcon + "ability_evoker_devastation.jpg"},
					{Label: "Augmentation", URL: "https://www.wowhead.com/guides/classes/evoker/augmentation/overview-pve-dps", Icon: wowIcon + "ability_evoker_augmentation.jpg"},
				},
			},
		},

		Overrides: map[string]CharacterOverride{
			"moussman": {
				Keystones:         KeystoneCounts{TenPlus: 24, FivePlus: 35, TwoPlus: 11},
				WidgetCharacterID: 288772995,
				RenderURL:         "https://render.worldofwarcraft.com/eu/character/ysondre/41/176557609-main-raw.png",
			},
			"mamènne": {
				RenderURL: "https://render.worldofwarcraft.com/eu/character/ysondre/251/173840891-main-raw.png",
			},
		},
	}
}
