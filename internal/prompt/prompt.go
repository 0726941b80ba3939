// Package prompt serializes a skill catalog into the single instruction
// string handed to generative design tools. Composition is a pure function of
// the catalog: no randomness, no locale, no clock.
package prompt

import (
	"strings"

	"github.com/papapumpkin/skillarc/internal/catalog"
)

// Fixed template sections surrounding the catalog-derived parts.
const (
	intro = "Build a futuristic football progression tracker web app with a dark grey #0B0F14 glassmorphism interface and neon holo grid, inspired by RPG radial skill trees like Wings Calisthenics."

	hub = "Center hub shows core XP, spokes render animated nodes with category-specific glow and unlock animations."

	telemetry = "Integrate progress bars, quest counters, success rate telemetry, and radial connectors with subtle particle effects."

	features = "Include copy-to-clipboard prompt exporter, responsive layout ready for Vercel deployment, and lore snippets that reference unlocking trick-based mastery."
)

// Delimiters between serialized parts.
const (
	SkillSep    = " | "
	CategorySep = "; "
)

// Compose returns the full prompt for cats.
func Compose(cats []catalog.Category) string {
	segments := make([]string, len(cats))
	for i, c := range cats {
		segments[i] = CategorySegment(c)
	}

	parts := []string{
		intro,
		hub,
		telemetry,
		Palette(cats),
		"Every skill requires quests; " + strings.Join(segments, CategorySep) + ".",
		features,
	}
	return collapseSpace(strings.Join(parts, " "))
}

// CategorySegment serializes one branch as
// "<name> <color> skills <fragment> | <fragment> ...".
func CategorySegment(c catalog.Category) string {
	fragments := make([]string, len(c.Skills))
	for i, s := range c.Skills {
		fragments[i] = SkillFragment(s)
	}
	return c.Name + " " + c.Color + " skills " + strings.Join(fragments, SkillSep)
}

// SkillFragment serializes one skill as "<name> <hex> quest <quest>". Periods
// are dropped from the quest so that it cannot end the surrounding sentence.
func SkillFragment(s catalog.Skill) string {
	return s.Name + " " + s.Hex + " quest " + strings.ReplaceAll(s.Quest, ".", "")
}

// Palette returns the palette legend naming each branch's anchor color.
func Palette(cats []catalog.Category) string {
	anchors := make([]string, len(cats))
	for i, c := range cats {
		anchors[i] = c.Name + " " + c.Color
	}
	return "Palette anchors: " + strings.Join(anchors, ", ") + " with complementary gradients for each skill node."
}

// collapseSpace replaces every run of whitespace with a single space and
// trims the ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
