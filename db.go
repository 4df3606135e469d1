package rcgen

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Asset is a generated map or texture as recorded in the asset database.
type Asset struct {
	Name       string
	Kind       Kind
	SHA1       string
	Width      int
	Height     int
	References []string
}

// AssetDB records every asset generated so that maps can be checked against
// the textures that actually exist.
type AssetDB struct {
	db *sql.DB
}

// NewAssetDB opens, creating if necessary, the asset database stored in file.
func NewAssetDB(file string) (*AssetDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, kind INTEGER NOT NULL, sha1 TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS reference (asset_id INTEGER NOT NULL, texture TEXT NOT NULL, UNIQUE(asset_id, texture), FOREIGN KEY(asset_id) REFERENCES asset(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &AssetDB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *AssetDB) Close() error {
	return db.db.Close()
}

// Record stores a, replacing any previous asset with the same name.
func (db *AssetDB) Record(a *Asset) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM reference WHERE asset_id IN (SELECT id FROM asset WHERE name = ?)", a.Name); err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM asset WHERE name = ?", a.Name); err != nil {
		return err
	}

	result, err := tx.Exec("INSERT INTO asset (name, kind, sha1, width, height) VALUES (?, ?, ?, ?, ?)", a.Name, a.Kind, a.SHA1, a.Width, a.Height)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for _, r := range a.References {
		if _, err = tx.Exec("INSERT OR IGNORE INTO reference (asset_id, texture) VALUES (?, ?)", id, r); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Find returns the asset called name or nil if there is no such asset.
func (db *AssetDB) Find(name string) (*Asset, error) {
	var id int64
	a := &Asset{Name: name}
	switch err := db.db.QueryRow("SELECT id, kind, sha1, width, height FROM asset WHERE name = ?", name).Scan(&id, &a.Kind, &a.SHA1, &a.Width, &a.Height); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
	default:
		return nil, err
	}

	rows, err := db.db.Query("SELECT texture FROM reference WHERE asset_id = ? ORDER BY rowid", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r string
		if err := rows.Scan(&r); err != nil {
			return nil, err
		}
		a.References = append(a.References, r)
	}

	return a, rows.Err()
}

// MissingTextures returns those textures that have not been recorded as
// generated textures.
func (db *AssetDB) MissingTextures(textures []string) ([]string, error) {
	var missing []string
	for _, t := range textures {
		var n int
		if err := db.db.QueryRow("SELECT COUNT(*) FROM asset WHERE name = ? AND kind = ?", t, KindTexture).Scan(&n); err != nil {
			return nil, err
		}
		if n == 0 {
			missing = append(missing, t)
		}
	}
	return missing, nil
}
