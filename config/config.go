// Package config gathers the session configuration once, before the room is shown.
//
// Values come from defaults, an optional .env file, SEATPLAN_* environment
// variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/seat-planner/model"
)

const (
	EnvPrefix     = "SEATPLAN_"
	DefaultDotEnv = ".env"
)

var ErrInvalidNumber = errors.New("not a whole number")

// Config is the immutable session configuration
type Config struct {
	RosterPath string  `env:"ROSTER" validate:"required_without=DemoSize"`
	DemoSize   int     `env:"DEMO" validate:"gte=0,lte=500"`
	Rows       int     `env:"ROWS" envDefault:"9" validate:"gte=1,lte=64"`
	Capacities []int   `env:"CAPACITIES" envDefault:"3,4,4" envSeparator:"," validate:"required,min=1,max=32,dive,gte=0,lte=16"`
	Schema     string  `env:"SCHEMA"`
	Sound      bool    `env:"SOUND"`
	Volume     float64 `env:"VOLUME" envDefault:"0.5" validate:"gte=0,lte=1"`
	Debug      bool    `env:"DEBUG"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load resolves the configuration from a .env file, an environment list and arguments
// environ uses the os.Environ format; a missing .env file is not an error
func Load(args, environ []string, dotenvPath string, stderr io.Writer) (Config, error) {
	vars := env.ToMap(environ)
	if dotenvPath != "" {
		fileVars, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			for k, v := range fileVars {
				if _, set := vars[k]; !set {
					vars[k] = v
				}
			}
		case !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("read %s: %w", dotenvPath, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars, Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}

	if err := cfg.parseFlags(args, stderr); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) parseFlags(args []string, stderr io.Writer) error {
	fset := flag.NewFlagSet("seat-planner", flag.ContinueOnError)
	fset.SetOutput(stderr)

	caps := joinInts(c.Capacities, ",")
	fset.StringVar(&c.RosterPath, "roster", c.RosterPath, "Roster CSV file (semicolon separated)")
	fset.IntVar(&c.DemoSize, "demo", c.DemoSize, "Use a synthetic roster of N students instead of a file")
	fset.IntVar(&c.Rows, "rows", c.Rows, "Number of table rows (depth of the room)")
	fset.StringVar(&caps, "caps", caps, "Seats per table for each column, e.g. 3,4,4")
	fset.StringVar(&c.Schema, "schema", c.Schema, "Explicit layout, rows separated by ';', e.g. 3,4;2,3,3")
	fset.BoolVar(&c.Sound, "sound", c.Sound, "Play sound cues")
	fset.Float64Var(&c.Volume, "volume", c.Volume, "Sound volume, 0 to 1")
	fset.BoolVar(&c.Debug, "debug", c.Debug, "Write a debug log under logs/")

	if err := fset.Parse(args); err != nil {
		return err
	}

	parsed, err := ParseCapacities(caps)
	if err != nil {
		return fmt.Errorf("-caps: %w", err)
	}
	c.Capacities = parsed

	if fset.NArg() > 0 {
		c.RosterPath = fset.Arg(0)
	}
	return nil
}

// Validate checks bounds and that a roster source is set
// An explicit schema gets the same row and capacity bounds as Rows and Capacities
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return describe("", err)
	}
	if c.Schema != "" {
		schema, err := ParseSchema(c.Schema)
		if err != nil {
			return fmt.Errorf("invalid Schema: %w", err)
		}
		if err := validate.Var(schema, schemaBounds); err != nil {
			return describe("Schema", err)
		}
	}
	return nil
}

const schemaBounds = "max=64,dive,max=32,dive,gte=0,lte=16"

// describe turns the first validation error into a short message, field overrides the reported name
func describe(field string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if field == "" {
		field = fe.Field()
	}
	if fe.Param() != "" {
		return fmt.Errorf("invalid %s: must satisfy %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Errorf("invalid %s: %s", field, fe.Tag())
}

// BuildRoom creates the room from the explicit schema if set, otherwise from rows and capacities
func (c Config) BuildRoom() (*model.Room, error) {
	if c.Schema != "" {
		schema, err := ParseSchema(c.Schema)
		if err != nil {
			return nil, err
		}
		return model.NewRoom(schema)
	}
	return model.NewCompactRoom(c.Rows, c.Capacities)
}

// ParseCapacities parses a comma separated list of seat counts
func ParseCapacities(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	caps := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, ErrInvalidNumber)
		}
		if n < 0 {
			return nil, fmt.Errorf("%q: %w", p, model.ErrNegativeCapacity)
		}
		caps = append(caps, n)
	}
	return caps, nil
}

// ParseSchema parses rows separated by ';', each a list of capacities
func ParseSchema(s string) ([][]int, error) {
	var schema [][]int
	for i, line := range strings.Split(s, ";") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		caps, err := ParseCapacities(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		schema = append(schema, caps)
	}
	if len(schema) == 0 {
		return nil, model.ErrEmptyLayout
	}
	return schema, nil
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, sep)
}
