package internal

import (
	"embed"
	"log"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into colored point sets. This is not a
// full (or even correct) svg parser. Every circle is a point, and its fill is
// its color. Colors are numbered in order of first appearance. SVG's y axis
// points down, so y is negated. If anything goes wrong, it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *ColorPointSet {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	colorIndex := map[string]int{}
	var colors [][]Point
	for _, circleEl := range circles {
		fill := circleEl.Attributes["fill"]
		color, ok := colorIndex[fill]
		if !ok {
			color = len(colors)
			colorIndex[fill] = color
			colors = append(colors, nil)
		}
		x := parseAttribute(name, circleEl, "cx")
		y := parseAttribute(name, circleEl, "cy")
		colors[color] = append(colors[color], Point{x, -y})
	}
	return NewColorPointSet(DefaultOptions().DomainMargin, colors...)
}

func parseAttribute(name string, el *svgparser.Element, attribute string) float64 {
	value, err := strconv.ParseFloat(el.Attributes[attribute], 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q in fixture %q: %v", attribute, el.Attributes[attribute], name, err)
	}
	return value
}

// Some ad hoc code specified fixtures

// Random points in [-10, 10]^2. A fixed seed keeps runs reproducible.
func RandomColorPointSet(seed int64, counts ...int) *ColorPointSet {
	return RandomColorPointSetIn(seed, 10, counts...)
}

// Random points in [-size, size]^2
func RandomColorPointSetIn(seed int64, size float64, counts ...int) *ColorPointSet {
	random := rand.New(rand.NewSource(seed))
	colors := make([][]Point, len(counts))
	for color, count := range counts {
		for i := 0; i < count; i++ {
			colors[color] = append(colors[color], Point{
				X: (random.Float64()*2 - 1) * size,
				Y: (random.Float64()*2 - 1) * size,
			})
		}
	}
	return NewColorPointSet(1, colors...)
}
