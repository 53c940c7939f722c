package bmpdump

import (
	"database/sql"
	"fmt"

	"github.com/bitmapkit/bmpdump/bmp"
	_ "github.com/mattn/go-sqlite3"
)

// CatalogDB is the SQLite database holding one row per scanned bitmap.
type CatalogDB struct {
	db *sql.DB
}

func NewCatalogDB(file string) (*CatalogDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS bitmap (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, hash TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, bits_per_pixel INTEGER NOT NULL, palette_colors INTEGER NOT NULL, file_size INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &CatalogDB{
		db: db,
	}, nil
}

func (db *CatalogDB) Close() error {
	return db.db.Close()
}

// Upsert records the headers of the bitmap at path, replacing any
// previous row for the same path.
func (db *CatalogDB) Upsert(path, hash string, c bmp.Config) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO bitmap (path, hash, width, height, bits_per_pixel, palette_colors, file_size) VALUES (?, ?, ?, ?, ?, ?, ?)",
		path, hash, c.InfoHeader.Width, c.InfoHeader.Height, c.InfoHeader.BitsPerPixel, c.InfoHeader.PaletteColors, c.FileHeader.FileSize); err != nil {
		return err
	}
	return nil
}

// Duplicate groups catalog entries sharing the same content hash.
type Duplicate struct {
	Hash  string
	Paths []string
}

// Duplicates returns the hashes that appear more than once in the
// catalog, together with their paths in lexical order.
func (db *CatalogDB) Duplicates() ([]Duplicate, error) {
	rows, err := db.db.Query("SELECT hash, path FROM bitmap ORDER BY hash, path")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []Duplicate
	for rows.Next() {
		var hash, path string
		if err := rows.Scan(&hash, &path); err != nil {
			return nil, err
		}
		if len(groups) == 0 || groups[len(groups)-1].Hash != hash {
			groups = append(groups, Duplicate{Hash: hash})
		}
		groups[len(groups)-1].Paths = append(groups[len(groups)-1].Paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var dupes []Duplicate
	for _, g := range groups {
		if len(g.Paths) > 1 {
			dupes = append(dupes, g)
		}
	}

	return dupes, nil
}
