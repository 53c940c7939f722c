package bmpdump_test

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmapkit/bmpdump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir, err := ioutil.TempDir("", "bmpdump")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0755))

	img := palettedBMP()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "a", "one.bmp"), img, 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "b", "two.bmp"), img, 0644))
	// rejected by the decoder, logged and skipped
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "broken.bmp"), []byte("PM not a bitmap"), 0644))
	// not a .bmp, never visited
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hello"), 0644))

	m, err := bmpdump.New(filepath.Join(dir, "catalog.db"), log.New(ioutil.Discard, "", 0))
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Scan(dir, 2))

	dupes, err := m.Duplicates()
	require.NoError(t, err)
	require.Len(t, dupes, 1)
	assert.Len(t, dupes[0].Paths, 2)
}
