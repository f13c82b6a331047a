// Package meta holds the hand-curated seasonal spec tier list shown on the
// meta page. Editorial content, updated by hand each season.
package meta

const iconBase = "https://wow.zamimg.com/images/wow/icons/large/"

type Spec struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type RoleGroup struct {
	Role  string `json:"role"`
	Specs []Spec `json:"specs"`
}

type Tier struct {
	Tier  string      `json:"tier"`
	Color string      `json:"color"`
	Roles []RoleGroup `json:"roles"`
}

var tierList = []Tier{
	{
		Tier:  "S",
		Color: "#ff4e50",
		Roles: []RoleGroup{
			{
				Role: "Tanks",
				Specs: []Spec{
					{Name: "Vengeance DH", Icon: iconBase + "ability_demonhunter_spectatortank.jpg"},
					{Name: "Guardian Druid", Icon: iconBase + "ability_druid_maul.jpg"},
				},
			},
			{
				Role: "Healers",
				Specs: []Spec{
					{Name: "Resto Shaman", Icon: iconBase + "spell_nature_magicrevelation.jpg"},
					{Name: "Preservation Evoker", Icon: iconBase + "ability_evoker_preservation.jpg"},
				},
			},
			{
				Role: "DPS",
				Specs: []Spec{
					{Name: "Frost DK", Icon: iconBase + "spell_deathknight_frostpresence.jpg"},
					{Name: "Arcane Mage", Icon: iconBase + "spell_holy_magicalsentry.jpg"},
					{Name: "Enhance Shaman", Icon: iconBase + "spell_nature_lightiningot.jpg"},
					{Name: "Assassination Rogue", Icon: iconBase + "ability_rogue_deadlyprecision.jpg"},
				},
			},
		},
	},
	{
		Tier:  "A",
		Color: "#ffbb33",
		Roles: []RoleGroup{
			{
				Role: "Tanks",
				Specs: []Spec{
					{Name: "Blood DK", Icon: iconBase + "spell_deathknight_bloodpresence.jpg"},
					{Name: "Protection Paladin", Icon: iconBase + "ability_paladin_shieldofthetemplar.jpg"},
				},
			},
			{
				Role: "Healers",
				Specs: []Spec{
					{Name: "Holy Paladin", Icon: iconBase + "spell_holy_holybolt.jpg"},
					{Name: "Mistweaver Monk", Icon: iconBase + "spell_monk_mistweaver_spec.jpg"},
				},
			},
			{
				Role: "DPS",
				Specs: []Spec{
					{Name: "Windwalker Monk", Icon: iconBase + "spell_monk_windwalker_spec.jpg"},
					{Name: "Shadow Priest", Icon: iconBase + "spell_shadow_shadowwordpain.jpg"},
					{Name: "Havoc DH", Icon: iconBase + "ability_demonhunter_specdmg.jpg"},
				},
			},
		},
	},
}

// TierList returns the current-season tier list. Callers must not mutate
// the result.
func TierList() []Tier {
	return tierList
}
