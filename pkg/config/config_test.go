package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")

	size := 64
	in := &Config{
		DefaultLanguage:    "ada",
		QualifiedByDefault: true,
		LinespecStyle:      true,
		ParseCacheSize:     &size,
	}
	require.NoError(t, saveConfigFile(in, file))

	out := loadConfigFile(file)
	assert.Equal(t, in, out)
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")

	c := loadConfigFile(file)
	require.NotNil(t, c)
	assert.Equal(t, &Config{}, c)

	// The default config file is all comments.
	data, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# default-language:")
}

func TestGetConfigFilePathHomeOverride(t *testing.T) {
	old := os.Getenv("GDBLOC_HOME")
	defer os.Setenv("GDBLOC_HOME", old)
	require.NoError(t, os.Setenv("GDBLOC_HOME", "/tmp/gdbloc-test"))

	p, err := GetConfigFilePath("config.yml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/gdbloc-test/config.yml", p)
}
