package bmpdump

import (
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// DefaultWorkers is the number of concurrent scan workers used when the
// configuration doesn't say otherwise.
const DefaultWorkers = 10

// Config holds the optional settings read from the CLI configuration
// file.
type Config struct {
	DB      string `yaml:"db"`
	Workers int    `yaml:"workers"`
}

// LoadConfig reads a YAML configuration file. A missing file is not an
// error; the defaults are returned instead.
func LoadConfig(path string) (*Config, error) {
	c := &Config{
		Workers: DefaultWorkers,
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if c.Workers < 1 {
		c.Workers = DefaultWorkers
	}

	return c, nil
}
