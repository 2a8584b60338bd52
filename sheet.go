package kinetic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Components is a Value spelled in YAML: either a bare scalar or a sequence.
//
//	from: 0
//	from: [0, 0]
type Components []float64

// UnmarshalYAML accepts a scalar node as a single component.
func (c *Components) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*c = Components{f}
		return nil
	}
	var vs []float64
	if err := node.Decode(&vs); err != nil {
		return err
	}
	*c = vs
	return nil
}

// value converts to a tween endpoint: one component is a scalar, more is a
// vector.
func (c Components) value() Value {
	if len(c) == 1 {
		return Scalar(c[0])
	}
	return Vector(c...)
}

// SheetTween is one tween entry in a sheet.
type SheetTween struct {
	Key      string     `yaml:"key"`
	From     Components `yaml:"from"`
	To       Components `yaml:"to"`
	Duration float64    `yaml:"duration"`
	Easing   string     `yaml:"easing"`
	Yoyo     bool       `yaml:"yoyo"`
	Repeat   int        `yaml:"repeat"`
	Autoplay bool       `yaml:"autoplay"`
}

// Sheet is a declarative set of tween definitions:
//
//	tweens:
//	  - key: fade
//	    from: 0
//	    to: 1
//	    duration: 1.5
//	    easing: easeInOutQuad
//	    autoplay: true
//
// Unknown easing names degrade to DefaultEase when applied, matching
// programmatic registration.
type Sheet struct {
	Tweens []SheetTween `yaml:"tweens"`
}

// LoadSheet parses a YAML sheet and validates each entry the same way
// Scheduler.Create would.
func LoadSheet(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("kinetic: parse sheet: %w", err)
	}
	if len(sheet.Tweens) == 0 {
		return nil, fmt.Errorf("kinetic: parse sheet: no tweens")
	}
	for i, st := range sheet.Tweens {
		if st.Key == "" {
			return nil, fmt.Errorf("kinetic: parse sheet: tween %d: empty key", i)
		}
		if st.Duration <= 0 {
			return nil, fmt.Errorf("kinetic: parse sheet: tween %q: duration must be > 0, got %v", st.Key, st.Duration)
		}
		if len(st.From) == 0 || len(st.To) == 0 {
			return nil, fmt.Errorf("kinetic: parse sheet: tween %q: missing from/to", st.Key)
		}
		if len(st.From) != len(st.To) {
			return nil, fmt.Errorf("kinetic: parse sheet: tween %q: %w (from %d, to %d)",
				st.Key, ErrShapeMismatch, len(st.From), len(st.To))
		}
	}
	return &sheet, nil
}

// LoadSheetFile reads and parses a YAML sheet from disk.
func LoadSheetFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kinetic: load sheet %s: %w", path, err)
	}
	sheet, err := LoadSheet(data)
	if err != nil {
		return nil, fmt.Errorf("kinetic: load sheet %s: %w", path, err)
	}
	return sheet, nil
}

// ApplySheet registers every entry in the sheet, binding the given update
// hook to each, and plays the autoplay entries. Registration stops at the
// first error (typically ErrDuplicateKey when re-applying; Clear first to
// reload a sheet in place). onUpdate may be nil.
func (s *Scheduler) ApplySheet(sheet *Sheet, onUpdate UpdateFunc) error {
	for _, st := range sheet.Tweens {
		_, err := s.Create(st.Key, TweenConfig{
			From:     st.From.value(),
			To:       st.To.value(),
			Duration: st.Duration,
			Easing:   st.Easing,
			Yoyo:     st.Yoyo,
			Repeat:   st.Repeat,
			OnUpdate: onUpdate,
		})
		if err != nil {
			return fmt.Errorf("kinetic: apply sheet: %w", err)
		}
	}
	for _, st := range sheet.Tweens {
		if st.Autoplay {
			s.Play(st.Key)
		}
	}
	return nil
}
