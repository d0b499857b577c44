package message

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
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS message (
		message_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL DEFAULT '',
		created_at TEXT
	)`)
	return err
}

func (r *PostgresRepository) List() []Message {
	rows, err := r.db.Query(`SELECT message_id, name, phone, text, created_at FROM message ORDER BY message_id DESC`)
	if err != nil {
		return []Message{}
	}
	defer rows.Close()

	out := make([]Message, 0)
	for rows.Next() {
		var (
			m       Message
			created sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Text, &created); err != nil {
			continue
		}
		m.CreatedAt = created.String
		out = append(out, m)
	}
	return out
}

func (r *PostgresRepository) Create(m Message) (Message, error) {
	err := r.db.QueryRow(
		`INSERT INTO message (name, phone, text, created_at) VALUES ($1,$2,$3,$4) RETURNING message_id`,
		m.Name, m.Phone, m.Text, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return Message{}, err
	}
	return m, nil
}
