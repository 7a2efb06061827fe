package scenario

import "errors"

// Sentinel errors for loading and validating scenarios.
var (
	// ErrUnknownFormat is returned for a file extension or Format that has no decoder.
	ErrUnknownFormat = errors.New("scenario: unknown format")

	// ErrDecode wraps a YAML or TOML decoding failure.
	ErrDecode = errors.New("scenario: decode failed")

	// ErrNoValues indicates a scenario without any values.
	ErrNoValues = errors.New("scenario: no values")

	// ErrBadParameter indicates start or step below 1.
	ErrBadParameter = errors.New("scenario: start and step must be at least 1")

	// ErrUnknownMode indicates a mode other than "run" or "once".
	ErrUnknownMode = errors.New("scenario: unknown mode")
)

// Mode selects the elimination semantics.
type Mode string

const (
	// ModeRun continues each count from the successor of the last removal.
	ModeRun Mode = "run"

	// ModeOnce restarts each count at the head of the circle.
	ModeOnce Mode = "once"
)

// Format names a scenario encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Scenario is one counting-out run described as data.
type Scenario struct {
	Name   string   `yaml:"name"   toml:"name"`
	Values []string `yaml:"values" toml:"values"`
	Start  int      `yaml:"start"  toml:"start"`
	Step   int      `yaml:"step"   toml:"step"`
	Mode   Mode     `yaml:"mode"   toml:"mode"`
}

// Result holds the circle before elimination and the removal order.
type Result struct {
	Name       string   `yaml:"name,omitempty"`
	Mode       Mode     `yaml:"mode"`
	Initial    []string `yaml:"initial"`
	Eliminated []string `yaml:"eliminated"`
}
