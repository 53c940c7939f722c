package bmpdump

import (
	"fmt"
	"io"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
)

// hashFile returns the xxhash64 fingerprint of the file contents as a
// fixed-width hex string.
func hashFile(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}
