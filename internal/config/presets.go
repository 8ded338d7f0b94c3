package config

import "sort"

var Presets = map[string]*Config{
	"clock": {
		Operand: 14, Modulus: 12, Generator: 1, Mode: ModeReduction,
		Ticks: DefaultTicks, FPS: DefaultFPS,
	},
	"week": {
		Operand: 30, Modulus: 7, Generator: 1, Mode: ModeReduction,
		Ticks: 2 * DefaultTicks, FPS: DefaultFPS,
	},
	"exact": {
		Operand: 3, Modulus: 3, Generator: 1, Mode: ModeReduction,
		Ticks: DefaultTicks, FPS: DefaultFPS,
	},
	"full": {
		Operand: 0, Modulus: 5, Generator: 1, Mode: ModeCycle,
		Ticks: DefaultTicks, FPS: DefaultFPS,
	},
	"subgroup": {
		Operand: 0, Modulus: 12, Generator: 3, Mode: ModeCycle,
		Ticks: DefaultTicks, FPS: DefaultFPS,
	},
	"coprime": {
		Operand: 0, Modulus: 12, Generator: 5, Mode: ModeCycle,
		Ticks: 3 * DefaultTicks, FPS: DefaultFPS,
	},
	"trivial": {
		Operand: 0, Modulus: 9, Generator: 0, Mode: ModeCycle,
		Ticks: DefaultTicks, FPS: DefaultFPS,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Window = DefaultConfig().Window
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
