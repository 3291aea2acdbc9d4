package core

// Bounds is the inclusive range and starting value of a menu setting.
type Bounds struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Default int `yaml:"default"`
}

// Clamp restricts v to the bounds.
func (b Bounds) Clamp(v int) int {
	return Clamp(v, b.Min, b.Max)
}

// Settings holds the puzzle parameters chosen on the menu.
type Settings struct {
	Poles int
	Disks int
}

// SettingsBounds pairs the limits of both menu settings.
type SettingsBounds struct {
	Poles Bounds `yaml:"poles"`
	Disks Bounds `yaml:"disks"`
}

// Defaults returns the starting settings.
func (sb SettingsBounds) Defaults() Settings {
	return Settings{
		Poles: sb.Poles.Clamp(sb.Poles.Default),
		Disks: sb.Disks.Clamp(sb.Disks.Default),
	}
}

// Clamp returns s with both values forced into their bounds.
func (s Settings) Clamp(sb SettingsBounds) Settings {
	return Settings{
		Poles: sb.Poles.Clamp(s.Poles),
		Disks: sb.Disks.Clamp(s.Disks),
	}
}

// Setting indexes one of the two menu settings.
type Setting int

const (
	SettingPoles Setting = iota
	SettingDisks
)

// Label returns the menu caption of the setting.
func (s Setting) Label() string {
	if s == SettingDisks {
		return "Disks"
	}
	return "Poles"
}

// Step adds delta to the selected setting, staying within bounds.
func (s Settings) Step(which Setting, delta int, sb SettingsBounds) Settings {
	switch which {
	case SettingPoles:
		s.Poles = sb.Poles.Clamp(s.Poles + delta)
	case SettingDisks:
		s.Disks = sb.Disks.Clamp(s.Disks + delta)
	}
	return s
}

// Value returns the current value of the selected setting.
func (s Settings) Value(which Setting) int {
	if which == SettingDisks {
		return s.Disks
	}
	return s.Poles
}
