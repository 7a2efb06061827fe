package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvring/circular"
)

// Parse decodes data in the given format. Unknown fields are an error.
// The result is not validated; call Validate before Execute.
func Parse(data []byte, format Format) (*Scenario, error) {
	var sc Scenario
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&sc); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrDecode, err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&sc); err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return &sc, nil
}

// FormatOf maps a file extension (.yaml, .yml, .toml) to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Load reads and parses the scenario file at path, then validates it.
func Load(path string) (*Scenario, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	sc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Validate checks the scenario and fills in ModeRun when Mode is empty.
func (sc *Scenario) Validate() error {
	if len(sc.Values) == 0 {
		return ErrNoValues
	}
	if sc.Start < 1 || sc.Step < 1 {
		return fmt.Errorf("start=%d step=%d: %w", sc.Start, sc.Step, ErrBadParameter)
	}
	switch sc.Mode {
	case "":
		sc.Mode = ModeRun
	case ModeRun, ModeOnce:
	default:
		return fmt.Errorf("%q: %w", sc.Mode, ErrUnknownMode)
	}
	return nil
}

// Execute validates sc, places its values in a circle and eliminates them
// all according to its mode.
func (sc *Scenario) Execute(opts ...circular.RunOption[string]) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	ring := circular.New[string](circular.WithCapacity(len(sc.Values)))
	for _, v := range sc.Values {
		ring.Append(v)
	}
	res := &Result{
		Name:    sc.Name,
		Mode:    sc.Mode,
		Initial: ring.Values(),
	}

	switch sc.Mode {
	case ModeRun:
		out, err := ring.EliminateRun(sc.Start, sc.Step, opts...)
		if err != nil {
			return nil, err
		}
		res.Eliminated = out
	case ModeOnce:
		o := circular.DefaultRunOptions[string]()
		for _, opt := range opts {
			opt(&o)
		}
		res.Eliminated = make([]string, 0, ring.Len())
		for round := 1; ring.Len() > 0; round++ {
			v, err := ring.EliminateOnce(sc.Start, sc.Step)
			if err != nil {
				return nil, err
			}
			res.Eliminated = append(res.Eliminated, v)
			o.OnEliminate(round, v)
		}
	}
	return res, nil
}
