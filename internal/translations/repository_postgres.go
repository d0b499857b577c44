package translations

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS translation (
		lang TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (lang, key)
	)`)
	return err
}

// Get returns the stored bundle. An empty table yields an empty bundle; the
// service decides when to fall back to defaults.
func (r *PostgresRepository) Get() Bundle {
	rows, err := r.db.Query(`SELECT lang, key, value FROM translation`)
	if err != nil {
		return Bundle{}
	}
	defer rows.Close()

	out := Bundle{}
	for rows.Next() {
		var lang, key, value string
		if err := rows.Scan(&lang, &key, &value); err != nil {
			continue
		}
		if out[lang] == nil {
			out[lang] = Strings{}
		}
		out[lang][key] = value
	}
	return out
}

func (r *PostgresRepository) Replace(b Bundle) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM translation`); err != nil {
		return err
	}
	for lang, strs := range b {
		for key, value := range strs {
			if _, err := tx.Exec(`INSERT INTO translation (lang, key, value) VALUES ($1,$2,$3)`, lang, key, value); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}
