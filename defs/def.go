// Package defs loads named tween definitions from YAML so designers
// can tune durations and curves without recompiling, with an fsnotify
// watcher for live editing.
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/tween"
	"github.com/milk9111/tween/ease"
	"github.com/milk9111/tween/interp"
)

// Def is one named tween definition. Factor defaults to 1 when omitted.
type Def struct {
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
	Factor   float64 `yaml:"factor"`
	Realtime bool    `yaml:"realtime"`
	Rotation bool    `yaml:"rotation"`
}

// Mode resolves the def's easing mode, defaulting to linear when the
// field is empty.
func (d Def) Mode() (ease.Mode, error) {
	if d.Ease == "" {
		return ease.Linear, nil
	}
	return ease.ParseMode(d.Ease)
}

func (d Def) factor() float64 {
	if d.Factor == 0 {
		return 1
	}
	return d.Factor
}

// EaseOption resolves the def's mode and factor into a run option, so
// callers driving their own runs (the ECS helpers, for one) ease the
// same way Start does.
func (d Def) EaseOption() (tween.Option, error) {
	mode, err := d.Mode()
	if err != nil {
		return nil, err
	}
	return tween.WithEase(mode, d.factor()), nil
}

// Start launches this def on the runner. Rotation defs use spherical
// interpolation; realtime defs consume the unscaled delta.
func (d Def) Start(r *tween.Runner, start, end interp.Value, onUpdate func(interp.Value), onComplete func()) (tween.Handle, error) {
	opt, err := d.EaseOption()
	if err != nil {
		return 0, err
	}

	switch {
	case d.Rotation && d.Realtime:
		return r.TweenRotationRealtime(d.Duration, start, end, onUpdate, onComplete, opt)
	case d.Rotation:
		return r.TweenRotation(d.Duration, start, end, onUpdate, onComplete, opt)
	case d.Realtime:
		return r.TweenValueRealtime(d.Duration, start, end, onUpdate, onComplete, opt)
	default:
		return r.TweenValue(d.Duration, start, end, onUpdate, onComplete, opt)
	}
}

// Library maps def names to definitions.
type Library map[string]Def

// Load parses a library from YAML.
func Load(data []byte) (Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("defs: unmarshal library: %w", err)
	}
	return lib, nil
}

// LoadFile reads a library from disk.
func LoadFile(filename string) (Library, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("defs: load %s: %w", filename, err)
	}
	lib, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("defs: parse %s: %w", filename, err)
	}
	return lib, nil
}
