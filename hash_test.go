package bmpdump

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "bmpdump")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	require.NoError(t, ioutil.WriteFile(a, []byte("same contents"), 0644))
	require.NoError(t, ioutil.WriteFile(b, []byte("same contents"), 0644))
	require.NoError(t, ioutil.WriteFile(c, []byte("different contents"), 0644))

	ha, err := hashFile(a)
	require.NoError(t, err)
	hb, err := hashFile(b)
	require.NoError(t, err)
	hc, err := hashFile(c)
	require.NoError(t, err)

	assert.Len(t, ha, 16)
	assert.Equal(t, ha, hb)
	assert.NotEqual(t, ha, hc)

	_, err = hashFile(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
