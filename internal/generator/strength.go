package generator

import "fmt"

// Strength is a coarse ordinal label derived from a Config.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}

// MarshalText encodes the label by name.
func (s Strength) MarshalText() ([]byte, error) {
	switch s {
	case Weak, Medium, Strong:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("invalid strength %d", int(s))
}

// UnmarshalText decodes a label produced by MarshalText.
func (s *Strength) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Weak":
		*s = Weak
	case "Medium":
		*s = Medium
	case "Strong":
		*s = Strong
	default:
		return fmt.Errorf("unknown strength %q", text)
	}
	return nil
}

// Classify labels cfg using a fixed three tier table. It looks only at the
// configuration, not at any generated password.
func Classify(cfg Config) Strength {
	switch {
	case cfg.Length >= 12 && cfg.IncludeDigits && cfg.IncludeSymbols:
		return Strong
	case cfg.Length >= 8 && (cfg.IncludeDigits || cfg.IncludeSymbols):
		return Medium
	default:
		return Weak
	}
}
