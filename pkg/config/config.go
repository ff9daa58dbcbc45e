// Package config defines the configuration of the gdbloc tool and its
// on-disk config file.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path"

	"gopkg.in/yaml.v2"
)

const (
	configDir  string = ".gdbloc"
	configFile string = "config.yml"
)

// Config defines all configuration options available to be set through
// the config file.
type Config struct {
	// DefaultLanguage selects the lexical rules used when parsing
	// locations ("c", "c++", "ada").
	DefaultLanguage string `yaml:"default-language"`

	// QualifiedByDefault makes function names match fully qualified
	// names only, as if -qualified had been given.
	QualifiedByDefault bool `yaml:"qualified-by-default"`

	// LinespecStyle renders explicit locations in colon separated
	// linespec form instead of option form.
	LinespecStyle bool `yaml:"linespec-style"`

	// ParseCacheSize is the number of parsed locations kept by the
	// interactive parse cache.
	ParseCacheSize *int `yaml:"parse-cache-size,omitempty"`
}

// LoadConfig attempts to populate a Config object from the config.yml
// file.
func LoadConfig() *Config {
	err := createConfigPath()
	if err != nil {
		fmt.Printf("Could not create config directory: %v.", err)
		return &Config{}
	}
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		fmt.Printf("Unable to get config file path: %v.", err)
		return &Config{}
	}
	return loadConfigFile(fullConfigFile)
}

func loadConfigFile(path string) *Config {
	f, err := os.Open(path)
	if err != nil {
		f, err = createDefaultConfig(path)
		if err != nil {
			fmt.Printf("Error creating default config file: %v", err)
			return &Config{}
		}
	}
	defer func() {
		err := f.Close()
		if err != nil {
			fmt.Printf("Closing config file failed: %v.", err)
		}
	}()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		fmt.Printf("Unable to read config data: %v.", err)
		return &Config{}
	}

	var c Config
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		fmt.Printf("Unable to decode config file: %v.", err)
		return &Config{}
	}

	return &c
}

// SaveConfig will marshal and save the config struct to disk.
func SaveConfig(conf *Config) error {
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		return err
	}
	return saveConfigFile(conf, fullConfigFile)
}

func saveConfigFile(conf *Config, path string) error {
	out, err := yaml.Marshal(*conf)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(out)
	return err
}

func createDefaultConfig(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("unable to create config file: %v", err)
	}
	err = writeDefaultConfig(f)
	if err != nil {
		return nil, fmt.Errorf("unable to write default configuration: %v", err)
	}
	return f, nil
}

func writeDefaultConfig(f *os.File) error {
	_, err := f.WriteString(
		`# Configuration file for the gdbloc location parser.

# This is the default configuration file. Available options are provided, but disabled.
# Delete the leading hash mark to enable an item.

# Language whose lexical rules are used when parsing locations.
# default-language: c++

# Match function names against fully qualified names only.
# qualified-by-default: false

# Render explicit locations in colon separated linespec style.
# linespec-style: false

# Number of parsed locations kept by the interactive parse cache.
# parse-cache-size: 128
`)
	return err
}

func createConfigPath() error {
	path, err := GetConfigFilePath("")
	if err != nil {
		return err
	}
	return os.MkdirAll(path, 0700)
}

// GetConfigFilePath gets the full path to the given config file name.
func GetConfigFilePath(file string) (string, error) {
	if configPath := os.Getenv("GDBLOC_HOME"); configPath != "" {
		return path.Join(configPath, file), nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return path.Join(usr.HomeDir, configDir, file), nil
}
