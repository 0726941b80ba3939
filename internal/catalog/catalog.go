// Package catalog holds the skill tree data: categories (branches of the
// radial tree) and the skills that hang off them. The built-in catalog is a
// read-only table; callers receive copies and can never mutate it.
package catalog

// Skill is a leaf node of the tree.
type Skill struct {
	Name  string `toml:"name"`
	Hex   string `toml:"hex"`
	Quest string `toml:"quest"`
}

// Category is one branch of the tree. Angle is the branch's central direction
// in degrees and Spread the angular width its skills fan across. Skill order
// is significant: it decides angular placement and distance from the core.
type Category struct {
	Name   string  `toml:"name"`
	Angle  float64 `toml:"angle"`
	Spread float64 `toml:"spread"`
	Color  string  `toml:"color"`
	Skills []Skill `toml:"skill"`
}

var builtin = []Category{
	{
		Name:   "Passing",
		Angle:  -90,
		Spread: 60,
		Color:  "#30F6FF",
		Skills: []Skill{
			{Name: "Ping Trivella", Hex: "#30F6FF", Quest: "Deliver 80 successful ping trivella switches over 25m during competitive drills."},
			{Name: "Ground Laser", Hex: "#46F4C1", Quest: "Thread 120 ground ball assists through mannequins with 90% pace control."},
			{Name: "Vision Sync", Hex: "#1DE6FF", Quest: "Complete 150 one-touch wall passes with under 3s decision time in scrimmages."},
		},
	},
	{
		Name:   "Shooting",
		Angle:  0,
		Spread: 70,
		Color:  "#FF6FFF",
		Skills: []Skill{
			{Name: "Rabona Powershot", Hex: "#FF6FFF", Quest: "Score 50 rabona power strikes above 80km/h recorded by smart goal sensors."},
			{Name: "Trivella Curl", Hex: "#FF88D6", Quest: "Bend 60 trivella passing shots into top corners from outside the box."},
			{Name: "Passing Volley", Hex: "#FF55AA", Quest: "Convert 40 first-time volleys from teammate layoffs with 85% target accuracy."},
		},
	},
	{
		Name:   "Receiving",
		Angle:  90,
		Spread: 65,
		Color:  "#69FFAD",
		Skills: []Skill{
			{Name: "Inside Cushion", Hex: "#69FFAD", Quest: "Absorb 100 driven passes with inside-foot control under 1.5m rebound."},
			{Name: "Outside Shield", Hex: "#45F7C6", Quest: "Secure 85 outside-foot traps while protecting lane against pressure dummies."},
			{Name: "Chest Vault", Hex: "#7BFFC9", Quest: "Bring down 70 aerial balls to playable height using chest control in drills."},
		},
	},
	{
		Name:   "Freestyle",
		Angle:  180,
		Spread: 70,
		Color:  "#FFC85C",
		Skills: []Skill{
			{Name: "ATW Flow", Hex: "#FFC85C", Quest: "String 120 around-the-world combos without drops across three difficulty tempos."},
			{Name: "AKKA Burst", Hex: "#FF9E5C", Quest: "Execute 90 AKKA variations transitioning into forward dribble within 2s."},
			{Name: "Eclipse Orbit", Hex: "#FFB66B", Quest: "Perform 60 eclipse flicks finishing with controlled stall on dominant foot."},
		},
	},
}

// Default returns a copy of the built-in catalog.
func Default() []Category {
	return Clone(builtin)
}

// Clone deep-copies cats so the result shares no slices with the input.
func Clone(cats []Category) []Category {
	if cats == nil {
		return nil
	}
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = c
		if c.Skills != nil {
			out[i].Skills = append([]Skill(nil), c.Skills...)
		}
	}
	return out
}

// SkillCount returns the number of skills across all categories.
func SkillCount(cats []Category) int {
	n := 0
	for _, c := range cats {
		n += len(c.Skills)
	}
	return n
}
