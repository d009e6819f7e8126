package color

import "strings"

const categoryUber = "Uber"

var palettes = []Range{
	{
		Name: "Global Warming", Type: Sequential, Category: categoryUber,
		Colors: []string{"#5A1846", "#900C3F", "#C70039", "#E3611C", "#F1920E", "#FFC300"},
	},
	{
		Name: "Uber Viz Sequential", Type: Sequential, Category: categoryUber,
		Colors: []string{"#E6FAFA", "#C1E5E6", "#9DD0D4", "#75BBC1", "#4BA7AF", "#00939C"},
	},
	{
		Name: "Sunrise", Type: Sequential, Category: categoryUber,
		Colors: []string{"#355C7D", "#63617F", "#916681", "#C06C84", "#D28389", "#E59A8D"},
	},
	{
		Name: "Ice And Fire", Type: Diverging, Category: categoryUber,
		Colors: []string{"#0198BD", "#49E3CE", "#E8FEB5", "#FEEDB1", "#FEAD54", "#D50255"},
	},
	{
		Name: "Uber Viz Diverging", Type: Diverging, Category: categoryUber,
		Colors: []string{"#00939C", "#5DBABF", "#BAE1E2", "#F8C0AA", "#DD7755", "#C22E00"},
	},
}

// DefaultRange is the gradient new layers start with.
const DefaultRange = "Global Warming"

// LookupRange returns a copy of a built-in range. Names match case-insensitively.
func LookupRange(name string) (Range, bool) {
	for _, p := range palettes {
		if strings.EqualFold(p.Name, name) {
			p.Colors = append([]string(nil), p.Colors...)
			return p, true
		}
	}
	return Range{}, false
}

// RangeNames lists the built-in ranges.
func RangeNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}
