package csvtable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig decodes a YAML configuration document. Omitted keys keep their
// defaults and an empty document yields [DefaultConfig]. The data must hold
// at most one document.
//
//	date: iso8601                  # or deferred, {layout: ...}, {strftime: ...}
//	bool: {true: "Y", false: "N"}  # or true_false, yes_no_upper, integer, ...
func LoadConfig(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, err
	}
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		return Config{}, fmt.Errorf("%w: line %d: more than one document", ErrInvalidConfig, extra.Line)
	case !errors.Is(err, io.EOF):
		return Config{}, err
	}
	return cfg, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidConfig, value.Line)
	}
	cfg := Default()
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "date":
			d, err := decodeDateStrategy(val)
			if err != nil {
				return err
			}
			cfg.DateStrategy = d
		case "bool":
			b, err := decodeBoolStrategy(val)
			if err != nil {
				return err
			}
			cfg.BoolStrategy = b
		default:
			return fmt.Errorf("%w: line %d: unknown key %q", ErrInvalidConfig, key.Line, key.Value)
		}
	}
	*c = cfg
	return nil
}

// MarshalYAML implements [yaml.Marshaler]. Custom date functions and
// formatters other than [Layout] and [Strftime] cannot be expressed.
func (c Config) MarshalYAML() (any, error) {
	date, err := encodeDateStrategy(c.DateStrategy)
	if err != nil {
		return nil, err
	}
	return struct {
		Date any `yaml:"date"`
		Bool any `yaml:"bool"`
	}{
		Date: date,
		Bool: encodeBoolStrategy(c.BoolStrategy),
	}, nil
}

type dateSpec struct {
	Layout   string `yaml:"layout,omitempty"`
	Strftime string `yaml:"strftime,omitempty"`
	Location string `yaml:"location,omitempty"`
}

func decodeDateStrategy(n *yaml.Node) (DateStrategy, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return ParseDateStrategy(n.Value)
	case yaml.MappingNode:
		var opts dateSpec
		if err := n.Decode(&opts); err != nil {
			return DateStrategy{}, err
		}
		var f DateFormatter
		switch {
		case opts.Layout != "" && opts.Strftime != "":
			return DateStrategy{}, fmt.Errorf("%w: line %d: date sets both layout and strftime", ErrInvalidConfig, n.Line)
		case opts.Layout != "":
			f = Layout(opts.Layout)
		case opts.Strftime != "":
			f = Strftime(opts.Strftime)
		default:
			return DateStrategy{}, fmt.Errorf("%w: line %d: date needs a layout or strftime pattern", ErrInvalidConfig, n.Line)
		}
		if opts.Location != "" {
			loc, err := time.LoadLocation(opts.Location)
			if err != nil {
				return DateStrategy{}, fmt.Errorf("%w: line %d: %w", ErrInvalidConfig, n.Line, err)
			}
			f = InLocation(f, loc)
		}
		return FormattedDate(f), nil
	default:
		return DateStrategy{}, fmt.Errorf("%w: line %d: date must be a name or a mapping", ErrInvalidConfig, n.Line)
	}
}

func encodeDateStrategy(d DateStrategy) (any, error) {
	switch d.kind {
	case dateFormatted:
		var opts dateSpec
		f := d.formatter
		if l, ok := f.(located); ok {
			if l.loc != nil {
				opts.Location = l.loc.String()
			}
			f = l.f
		}
		switch x := f.(type) {
		case Layout:
			opts.Layout = string(x)
		case Strftime:
			opts.Strftime = string(x)
		default:
			return nil, fmt.Errorf("%w: date formatter %T cannot be marshaled", ErrInvalidConfig, f)
		}
		return opts, nil
	case dateCustom:
		return nil, fmt.Errorf("%w: custom date function cannot be marshaled", ErrInvalidConfig)
	default:
		return d.String(), nil
	}
}

func decodeBoolStrategy(n *yaml.Node) (BoolStrategy, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return ParseBoolStrategy(n.Value)
	case yaml.MappingNode:
		var t, f *string
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if val.Kind != yaml.ScalarNode {
				return BoolStrategy{}, fmt.Errorf("%w: line %d: bool %s value must be a string", ErrInvalidConfig, val.Line, key.Value)
			}
			switch key.Value {
			case "true":
				t = &val.Value
			case "false":
				f = &val.Value
			default:
				return BoolStrategy{}, fmt.Errorf("%w: line %d: unknown bool key %q", ErrInvalidConfig, key.Line, key.Value)
			}
		}
		if t == nil || f == nil {
			return BoolStrategy{}, fmt.Errorf("%w: line %d: bool needs both true and false values", ErrInvalidConfig, n.Line)
		}
		return CustomBool(*t, *f), nil
	default:
		return BoolStrategy{}, fmt.Errorf("%w: line %d: bool must be a name or a mapping", ErrInvalidConfig, n.Line)
	}
}

func encodeBoolStrategy(b BoolStrategy) any {
	if b.kind != boolCustom {
		return b.String()
	}
	t, f := b.Values()
	return map[string]string{"true": t, "false": f}
}
