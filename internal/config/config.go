package config

import (
	"encoding/json"
	"os"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SourceType selects the point source implementation.
type SourceType string

const (
	SourceMock   SourceType = "mock"
	SourceRemote SourceType = "remote"
)

const (
	DefaultBaseURL    = "https://hr-challenge.dev.tapyou.com/api"
	DefaultPointsPath = "test/points"
)

// Config is the application configuration. Values not present in the config
// file keep their defaults from Default.
type Config struct {
	Source         SourceType      `yaml:"source" json:"source" jsonschema:"title=Source,description=Point source implementation,enum=mock,enum=remote" validate:"required,oneof=mock remote"`
	BaseURL        string          `yaml:"base_url" json:"base_url" jsonschema:"title=Base URL,description=Base URL of the points API" validate:"required,url"`
	PointsPath     string          `yaml:"points_path" json:"points_path" jsonschema:"title=Points Path,description=Path of the points endpoint relative to the base URL" validate:"required"`
	MinCount       int             `yaml:"min_count" json:"min_count" jsonschema:"title=Min Count,description=Smallest count the remote API accepts" validate:"min=0"`
	MaxCount       int             `yaml:"max_count" json:"max_count" jsonschema:"title=Max Count,description=Largest count the remote API accepts" validate:"gtefield=MinCount"`
	InitialCount   int             `yaml:"initial_count" json:"initial_count" jsonschema:"title=Initial Count,description=Count requested at startup" validate:"min=0,ltefield=SliderMax"`
	SliderMax      int             `yaml:"slider_max" json:"slider_max" jsonschema:"title=Slider Max,description=Upper bound of the requested count input" validate:"min=1"`
	SliderStep     int             `yaml:"slider_step" json:"slider_step" jsonschema:"title=Slider Step,description=Increment of the count slider" validate:"min=1"`
	OutdatedAfter  time.Duration   `yaml:"outdated_after" json:"outdated_after" jsonschema:"title=Outdated After,description=Idle time after which displayed data is marked outdated" validate:"gt=0"`
	RequestTimeout time.Duration   `yaml:"request_timeout" json:"request_timeout" jsonschema:"title=Request Timeout,description=Timeout of a single remote request" validate:"gt=0"`
	GraphType      types.GraphType `yaml:"graph_type" json:"graph_type" jsonschema:"title=Graph Type,description=Initial render style,enum=sharp,enum=smooth" validate:"required,oneof=sharp smooth"`
	Mock           MockConfig      `yaml:"mock" json:"mock" jsonschema:"title=Mock,description=Mock source settings"`
	Log            LogConfig       `yaml:"log" json:"log" jsonschema:"title=Log,description=Logging settings"`
}

// MockConfig configures the mock point generator.
type MockConfig struct {
	Seed        int64         `yaml:"seed" json:"seed" jsonschema:"title=Seed,description=Seed of the pseudo-random generator"`
	Delay       time.Duration `yaml:"delay" json:"delay" jsonschema:"title=Delay,description=Simulated latency per request" validate:"gte=0"`
	XStep       float32       `yaml:"x_step" json:"x_step" jsonschema:"title=X Step,description=Distance between consecutive x values" validate:"gt=0"`
	YMax        float32       `yaml:"y_max" json:"y_max" jsonschema:"title=Y Max,description=Upper bound of generated y values" validate:"gt=0"`
	FailureRate float64       `yaml:"failure_rate" json:"failure_rate" jsonschema:"title=Failure Rate,description=Probability that a request fails" validate:"gte=0,lte=1"`
	// Reproducible makes equal counts always yield equal point sets.
	Reproducible bool `yaml:"reproducible" json:"reproducible" jsonschema:"title=Reproducible,description=Reseed the generator on every request"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level" json:"level" jsonschema:"title=Level,enum=debug,enum=info,enum=warn,enum=error" validate:"required,oneof=debug info warn error"`
	File  string `yaml:"file" json:"file" jsonschema:"title=File,description=Log file used by the terminal UI"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:         SourceMock,
		BaseURL:        DefaultBaseURL,
		PointsPath:     DefaultPointsPath,
		MinCount:       1,
		MaxCount:       20,
		InitialCount:   10,
		SliderMax:      20,
		SliderStep:     2,
		OutdatedAfter:  10 * time.Second,
		RequestTimeout: 10 * time.Second,
		GraphType:      types.GraphTypeSmooth,
		Mock: MockConfig{
			Seed:        0,
			Delay:       5 * time.Second,
			XStep:       50,
			YMax:        1000,
			FailureRate: 0,
		},
		Log: LogConfig{
			Level: "info",
			File:  "argo-graph.log",
		},
	}
}

// Load reads a YAML config file on top of the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to parse config file %s", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate validates the Config struct.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return nil
}

// ClampCount limits n to the range accepted by the count input.
func (c *Config) ClampCount(n int) int {
	return min(max(n, 0), c.SliderMax)
}

// Schema returns the JSON schema of the config file.
func Schema() (string, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	r.Mapper = mapDuration
	schema := r.Reflect(Config{})

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}

// mapDuration describes durations as the strings the YAML config uses, e.g. "10s".
func mapDuration(t reflect.Type) *jsonschema.Schema {
	if t != reflect.TypeOf(time.Duration(0)) {
		return nil
	}

	return &jsonschema.Schema{
		Type:    "string",
		Pattern: `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
	}
}
