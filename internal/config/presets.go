package config

import "sort"

// Preset is a named set of lanes ready to load into the gel. Lane 0 is the
// size standard; the remaining lanes hold example samples.
type Preset struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Lanes       []LaneConfig `yaml:"lanes"`
}

var Presets = map[string]*Preset{
	"100bp": {
		Name:        "100bp",
		Description: "100 bp ladder with two unknowns",
		Lanes: []LaneConfig{
			{Lane: 0, Label: "100bp ladder", Sizes: []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1200, 1500}},
			{Lane: 1, Label: "sample A", Sizes: []int{150, 420, 780}},
			{Lane: 2, Label: "sample B", Sizes: []int{300, 650}},
		},
	},
	"1kb": {
		Name:        "1kb",
		Description: "1 kb ladder for larger fragments",
		Lanes: []LaneConfig{
			{Lane: 0, Label: "1kb ladder", Sizes: []int{250, 500, 750, 1000, 1500, 2000, 2500, 3000, 4000, 5000, 6000, 8000, 10000}},
			{Lane: 1, Label: "sample A", Sizes: []int{1800, 4200}},
			{Lane: 2, Label: "sample B", Sizes: []int{900, 3500, 7000}},
		},
	},
	"lambda-hindiii": {
		Name:        "lambda-hindiii",
		Description: "lambda DNA / HindIII digest",
		Lanes: []LaneConfig{
			{Lane: 0, Label: "lambda HindIII", Sizes: []int{125, 564, 2027, 2322, 4361, 6557, 9416, 23130}},
			{Lane: 1, Label: "uncut lambda", Sizes: []int{48502}},
		},
	},
	"pcr-check": {
		Name:        "pcr-check",
		Description: "PCR products against a 100 bp ladder",
		Lanes: []LaneConfig{
			{Lane: 0, Label: "100bp ladder", Sizes: []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}},
			{Lane: 1, Label: "reaction 1", Sizes: []int{347}},
			{Lane: 2, Label: "reaction 2", Sizes: []int{512}},
			{Lane: 3, Label: "reaction 3", Sizes: []int{789}},
		},
	},
}

// GetPreset returns nil when the name is unknown.
func GetPreset(name string) *Preset {
	return Presets[name]
}

// ListPresets returns the preset names sorted alphabetically.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
