package loader

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// LoadSQLite reads a lexicon from a SQLite database created by SaveSQLite.
func LoadSQLite(ctx context.Context, path string) (*Source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("failed to open database: %v", err)}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("failed to open database: %v", err)}
	}
	defer func() { _ = db.Close() }()

	src := &Source{}
	if err := readMeta(ctx, db, src); err != nil {
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	if err := readEntries(ctx, db, path, src); err != nil {
		return nil, err
	}
	if err := readIrregulars(ctx, db, path, src); err != nil {
		return nil, err
	}
	return src, nil
}

func readMeta(ctx context.Context, db *sql.DB, src *Source) error {
	for key, dst := range map[string]*string{"language": &src.Language, "id": &src.ID} {
		err := db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(dst)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("read %s: %w", key, err)
		}
	}
	return nil
}

func readEntries(ctx context.Context, db *sql.DB, path string, src *Source) error {
	rows, err := db.QueryContext(ctx, `
		SELECT e.id, e.base, e.category, f.name, f.value
		FROM entries e
		LEFT JOIN entry_features f ON f.entry_id = e.id
		ORDER BY e.id, f.name
	`)
	if err != nil {
		return &LoadError{File: path, Message: fmt.Sprintf("query entries: %v", err)}
	}
	defer func() { _ = rows.Close() }()

	lastID := int64(-1)
	for rows.Next() {
		var (
			id             int64
			base, category string
			name, value    sql.NullString
		)
		if err := rows.Scan(&id, &base, &category, &name, &value); err != nil {
			return &LoadError{File: path, Message: fmt.Sprintf("scan entry: %v", err)}
		}
		if id != lastID {
			cat, err := parseCategory(path, category)
			if err != nil {
				return err
			}
			src.Entries = append(src.Entries, core.NewWordEntry(base, cat))
			lastID = id
		}
		if name.Valid {
			e := &src.Entries[len(src.Entries)-1]
			if e.Features == nil {
				e.Features = make(core.Features)
			}
			e.Features[core.Feature(name.String)] = value.String
		}
	}
	if err := rows.Err(); err != nil {
		return &LoadError{File: path, Message: fmt.Sprintf("read entries: %v", err)}
	}
	return nil
}

func readIrregulars(ctx context.Context, db *sql.DB, path string, src *Source) error {
	rows, err := db.QueryContext(ctx, `
		SELECT base, category, form, exclusive
		FROM irregular_forms
		ORDER BY base, category, position
	`)
	if err != nil {
		return &LoadError{File: path, Message: fmt.Sprintf("query irregular forms: %v", err)}
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			base, category, form string
			exclusive            bool
		)
		if err := rows.Scan(&base, &category, &form, &exclusive); err != nil {
			return &LoadError{File: path, Message: fmt.Sprintf("scan irregular form: %v", err)}
		}
		cat, err := parseCategory(path, category)
		if err != nil {
			return err
		}
		n := len(src.Irregulars)
		if n > 0 && src.Irregulars[n-1].Base == base && src.Irregulars[n-1].Category == cat {
			last := &src.Irregulars[n-1]
			last.Forms = append(last.Forms, form)
			last.Exclusive = last.Exclusive || exclusive
			continue
		}
		src.Irregulars = append(src.Irregulars, language.Irregular{
			Base:      base,
			Category:  cat,
			Forms:     []string{form},
			Exclusive: exclusive,
		})
	}
	if err := rows.Err(); err != nil {
		return &LoadError{File: path, Message: fmt.Sprintf("read irregular forms: %v", err)}
	}
	return nil
}

// SaveSQLite writes src to a SQLite database at path, creating the schema
// if needed. Existing entries with the same base and category are replaced.
// A new database is stamped with src.ID, or a fresh UUID when src.ID is
// empty; the stamp of an existing database is kept.
func SaveSQLite(ctx context.Context, path string, src *Source) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := src.ID
	if id == "" {
		id = uuid.New().String()
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO meta (key, value) VALUES ('id', ?)`, id); err != nil {
		return fmt.Errorf("save id: %w", err)
	}

	if src.Language != "" {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO meta (key, value) VALUES ('language', ?)`, src.Language); err != nil {
			return fmt.Errorf("save language: %w", err)
		}
	}

	for _, e := range src.Entries {
		if err := saveEntry(ctx, tx, e); err != nil {
			return err
		}
	}

	for _, irr := range src.Irregulars {
		for i, form := range irr.Forms {
			if _, err := tx.ExecContext(ctx, `
				INSERT OR REPLACE INTO irregular_forms (base, category, form, position, exclusive)
				VALUES (?, ?, ?, ?, ?)
			`, irr.Base, string(irr.Category), form, i, irr.Exclusive); err != nil {
				return fmt.Errorf("save irregular form %s of %s: %w", form, irr.Base, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func saveEntry(ctx context.Context, tx *sql.Tx, e core.WordEntry) error {
	var id int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO entries (base, category) VALUES (?, ?)
		ON CONFLICT (base, category) DO UPDATE SET base = excluded.base
		RETURNING id
	`, e.Base, string(e.Category)).Scan(&id)
	if err != nil {
		return fmt.Errorf("save entry %s: %w", e.Key(), err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM entry_features WHERE entry_id = ?`, id); err != nil {
		return fmt.Errorf("clear features of %s: %w", e.Key(), err)
	}
	for name, value := range e.Features {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entry_features (entry_id, name, value) VALUES (?, ?, ?)`,
			id, string(name), value); err != nil {
			return fmt.Errorf("save feature %s of %s: %w", name, e.Key(), err)
		}
	}
	return nil
}
