package shades

import(
	"fmt"
	"io/ioutil"
	"log"
	"runtime"

	"gopkg.in/yaml.v2"
)

/* Example config file ...

verbosity: 1
params:
  threshold: 5
  norm: 5
workers: 8
maxpixels: 268435456

*/

type Config struct {
	Verbosity   int

	Params      Params

	Workers     int   // How many goroutines the per-pixel passes may use; <=1 means run inline
	MaxPixels   int   // Refuse images with more pixels than this; 0 means no limit
}

func NewConfig() Config {
	return Config{
		Params:    NewParams(),
		Workers:   runtime.NumCPU(),
		MaxPixels: DefaultMaxPixels,
	}
}

// DefaultMaxPixels is 256 megapixels; a 4-channel float32 buffer for
// that is already 4GB.
const DefaultMaxPixels = 1 << 28

func NewConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse config: %v", err)
	}
	return c, c.Finalize()
}

func LoadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return NewConfig(), fmt.Errorf("config read '%s': %v", filename, err)
	}

	c, err := NewConfigFromYaml(contents)
	if err != nil {
		return c, fmt.Errorf("config '%s': %w", filename, err)
	}
	return c, nil
}

// SaveConfig writes the config out, so a later run can pick up the same
// values with LoadConfig.
func (c Config)SaveConfig(filename string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config marshal: %v", err)
	}
	if err := ioutil.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("config write '%s': %v", filename, err)
	}
	return nil
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Printf("Can't marshal config yaml: %v\n", err)
		return ""
	}
	return string(b)
}

// Finalize does sanity checks and fills in defaults
func (c *Config)Finalize() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.MaxPixels < 0 {
		return fmt.Errorf("%w: maxpixels %d is negative", ErrInvalidParameters, c.MaxPixels)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return nil
}
