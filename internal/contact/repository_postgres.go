package contact

import (
	"database/sql"
)

// PostgresRepository stores the contact record as a single row.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS contact (
		id INT PRIMARY KEY DEFAULT 1,
		phone TEXT NOT NULL DEFAULT '',
		instagram TEXT NOT NULL DEFAULT '',
		telegram TEXT NOT NULL DEFAULT '',
		CHECK (id = 1)
	)`)
	return err
}

func (r *PostgresRepository) Get() (Info, error) {
	var info Info
	err := r.db.QueryRow(`SELECT phone, instagram, telegram FROM contact WHERE id = 1`).
		Scan(&info.Phone, &info.Instagram, &info.Telegram)
	if err != nil {
		// missing row or missing table — callers fall back to defaults
		return Info{}, err
	}
	return info, nil
}

func (r *PostgresRepository) Set(info Info) error {
	_, err := r.db.Exec(`INSERT INTO contact (id, phone, instagram, telegram)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET phone = $1, instagram = $2, telegram = $3`,
		info.Phone, info.Instagram, info.Telegram)
	return err
}
