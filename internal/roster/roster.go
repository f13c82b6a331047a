// Package roster holds the dashboard's pinned characters. Static
// configuration: the character selector renders these before any provider
// lookup happens.
package roster

type Character struct {
	Name    string `json:"name"`
	Realm   string `json:"realm"`
	Region  string `json:"region"`
	Level   int    `json:"level"`
	Class   string `json:"class"`
	Race    string `json:"race"`
	Faction string `json:"faction"`
	Spec    string `json:"spec"`
	Color   string `json:"color"`
	Render  string `json:"render"`
}

var pinned = []Character{
	{
		Name:    "Moussman",
		Realm:   "ysondre",
		Region:  "eu",
		Level:   80,
		Class:   "Monk",
		Race:    "Pandaren",
		Faction: "Horde",
		Spec:    "Maître Brasseur",
		Color:   "#00FF96",
		Render:  "https://render.worldofwarcraft.com/eu/character/ysondre/41/176557609-main-raw.png",
	},
	{
		Name:    "Mamènne",
		Realm:   "ysondre",
		Region:  "eu",
		Level:   80,
		Class:   "Paladin",
		Race:    "Humain",
		Faction: "Alliance",
		Spec:    "Vindicte",
		Color:   "#F58CBA",
		Render:  "https://render.worldofwarcraft.com/eu/character/ysondre/251/173840891-main-raw.png",
	},
}

// Pinned returns the configured roster. Callers must not mutate the result.
func Pinned() []Character {
	return pinned
}
