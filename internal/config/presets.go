package config

var Presets = map[string]*Config{
	"lpsc": {
		Name: "lpsc", CRe: 0.00390625, CIm: 0.31640625, MaxIter: 100, Radius: 2,
	},
	"origin": {
		Name: "origin", CRe: 0, CIm: 0, MaxIter: 100, Radius: 2,
	},
	"period2": {
		Name: "period2", CRe: -1, CIm: 0, MaxIter: 100, Radius: 2,
	},
	"escape": {
		Name: "escape", CRe: 1, CIm: 1, MaxIter: 100, Radius: 2,
	},
	"boundary": {
		Name: "boundary", CRe: 0.25, CIm: 0, MaxIter: 1000, Radius: 2,
	},
}

// GetPreset returns a copy so callers may override fields.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
