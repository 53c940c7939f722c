package bmpdump_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmapkit/bmpdump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "bmpdump")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("db: /var/lib/bmpdump.db\nworkers: 3\n"), 0644))

	cfg, err := bmpdump.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/bmpdump.db", cfg.DB)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := bmpdump.LoadConfig(filepath.Join(os.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DB)
	assert.Equal(t, bmpdump.DefaultWorkers, cfg.Workers)
}

func TestLoadConfigBadWorkers(t *testing.T) {
	dir, err := ioutil.TempDir("", "bmpdump")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("workers: -1\n"), 0644))

	cfg, err := bmpdump.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, bmpdump.DefaultWorkers, cfg.Workers)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir, err := ioutil.TempDir("", "bmpdump")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("{not yaml\n"), 0644))

	_, err = bmpdump.LoadConfig(path)
	assert.Error(t, err)
}
