package problems

import (
	"fmt"
	"sort"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// MapColoring models map coloring with named regions and string-valued
// color domains: one variable per region, NotEqual per adjacent pair.
type MapColoring struct {
	regions   []string
	adjacency map[string][]string
	colors    []string
	name      string
}

// NewMapColoring creates a map coloring problem from an adjacency map
// (region name to adjacent region names) and a color list. Adjacency may
// list each border once or twice; duplicates collapse to one constraint.
func NewMapColoring(adjacency map[string][]string, colors []string, name string) (*MapColoring, error) {
	if len(adjacency) == 0 {
		return nil, fmt.Errorf("map coloring: no regions")
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("map coloring: no colors")
	}
	for region, adjacent := range adjacency {
		for _, other := range adjacent {
			if _, ok := adjacency[other]; !ok {
				return nil, fmt.Errorf("map coloring: %s borders unknown region %s", region, other)
			}
		}
	}

	regions := make([]string, 0, len(adjacency))
	for region := range adjacency {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	colorsCopy := make([]string, len(colors))
	copy(colorsCopy, colors)

	return &MapColoring{
		regions:   regions,
		adjacency: adjacency,
		colors:    colorsCopy,
		name:      name,
	}, nil
}

// CSP builds the constraint problem.
func (m *MapColoring) CSP() (*csp.CSP[string], error) {
	b := csp.NewBuilder[string](m.name)

	vars := make(map[string]*csp.Variable[string], len(m.regions))
	for _, region := range m.regions {
		v, err := b.AddVariable(region, csp.NewDomain(m.colors))
		if err != nil {
			return nil, err
		}
		vars[region] = v
	}

	seen := make(map[[2]string]bool)
	for _, region := range m.regions {
		for _, other := range m.adjacency[region] {
			key := [2]string{region, other}
			if region > other {
				key = [2]string{other, region}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			if err := b.AddConstraint(csp.NewNotEqual(vars[region], vars[other])); err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}

// Name returns the problem's display name.
func (m *MapColoring) Name() string { return m.name }

// Description returns a one-line description.
func (m *MapColoring) Description() string {
	return fmt.Sprintf("Color %d regions with %d colors such that no adjacent regions have the same color.", len(m.regions), len(m.colors))
}

// Regions returns the region names in sorted order.
func (m *MapColoring) Regions() []string { return m.regions }

// Colors returns the available colors.
func (m *MapColoring) Colors() []string { return m.colors }

// Adjacent returns the regions bordering the given one.
func (m *MapColoring) Adjacent(region string) []string { return m.adjacency[region] }

// AustraliaMap returns the classic Australia map with three colors.
// Tasmania has no mainland borders.
func AustraliaMap() *MapColoring {
	adjacency := map[string][]string{
		"WA":  {"NT", "SA"},
		"NT":  {"WA", "SA", "Q"},
		"SA":  {"WA", "NT", "Q", "NSW", "V"},
		"Q":   {"NT", "SA", "NSW"},
		"NSW": {"Q", "SA", "V"},
		"V":   {"SA", "NSW"},
		"T":   {},
	}
	colors := []string{"Red", "Green", "Blue"}
	m, _ := NewMapColoring(adjacency, colors, "Australia")
	return m
}

// USASampleMap returns a small sample of western US states with four
// colors.
func USASampleMap() *MapColoring {
	adjacency := map[string][]string{
		"WA": {"OR", "ID"},
		"OR": {"WA", "ID", "NV", "CA"},
		"CA": {"OR", "NV", "AZ"},
		"ID": {"WA", "OR", "NV", "UT", "WY", "MT"},
		"NV": {"OR", "CA", "AZ", "UT", "ID"},
		"UT": {"ID", "NV", "AZ", "WY"},
		"AZ": {"CA", "NV", "UT"},
		"MT": {"ID", "WY"},
		"WY": {"ID", "UT", "MT"},
	}
	colors := []string{"Red", "Green", "Blue", "Yellow"}
	m, _ := NewMapColoring(adjacency, colors, "USA-Sample")
	return m
}
