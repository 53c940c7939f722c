/*
Package bmpdump is a library for inspecting uncompressed Windows bitmap
files and maintaining a catalog of their metadata.
*/
package bmpdump

import "log"

type BMPDump struct {
	db     *CatalogDB
	logger *log.Logger
}

func New(db string, logger *log.Logger) (*BMPDump, error) {
	catalog, err := NewCatalogDB(db)
	if err != nil {
		return nil, err
	}

	return &BMPDump{
		db:     catalog,
		logger: logger,
	}, nil
}

func (m *BMPDump) Close() error {
	return m.db.Close()
}

// Duplicates returns the cataloged bitmaps whose contents hash the
// same.
func (m *BMPDump) Duplicates() ([]Duplicate, error) {
	return m.db.Duplicates()
}
