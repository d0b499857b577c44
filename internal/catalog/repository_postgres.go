package catalog

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listPerfumesQuery = `
		SELECT perfume_id, perfume_name, brand, description, image, notes, category, price, old_price
		FROM perfume
		ORDER BY position
	`
	getPerfumeByIDQuery = `
		SELECT perfume_id, perfume_name, brand, description, image, notes, category, price, old_price
		FROM perfume
		WHERE perfume_id = $1
	`
	insertPerfumeQuery = `
		INSERT INTO perfume (perfume_id, perfume_name, brand, description, image, notes, category, price, old_price, position)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, COALESCE((SELECT MIN(position) FROM perfume), 1) - 1)
	`
	updatePerfumeQuery = `
		UPDATE perfume
		SET perfume_name = $1,
			brand = $2,
			description = $3,
			image = $4,
			notes = $5,
			category = $6,
			price = $7,
			old_price = $8
		WHERE perfume_id = $9
	`
	deletePerfumeQuery = `DELETE FROM perfume WHERE perfume_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the perfume table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS perfume (
		perfume_id TEXT PRIMARY KEY,
		perfume_name TEXT,
		brand TEXT,
		description TEXT,
		image TEXT,
		notes TEXT[],
		category TEXT,
		price INT,
		old_price INT,
		position INT NOT NULL DEFAULT 0
	)`)
	return err
}

func (r *PostgresRepository) List() []Perfume {
	rows, err := r.db.Query(listPerfumesQuery)
	if err != nil {
		return []Perfume{}
	}
	defer rows.Close()

	out := make([]Perfume, 0)
	for rows.Next() {
		p, err := scanPerfume(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Perfume, error) {
	row := r.db.QueryRow(getPerfumeByIDQuery, id)
	p, err := scanPerfume(row)
	if err != nil {
		return Perfume{}, ErrNotFound
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Perfume) (Perfume, error) {
	_, err := r.db.Exec(insertPerfumeQuery,
		p.ID, p.Name, p.Brand, p.Description, p.Image, pq.Array(p.Notes), p.Category, p.Price, p.OldPrice)
	if err != nil {
		return Perfume{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id string, p Perfume) (Perfume, error) {
	res, err := r.db.Exec(updatePerfumeQuery,
		p.Name, p.Brand, p.Description, p.Image, pq.Array(p.Notes), p.Category, p.Price, p.OldPrice, id)
	if err != nil {
		return Perfume{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Perfume{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deletePerfumeQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Replace overwrites the whole table inside one transaction so snapshot saves
// stay atomic.
func (r *PostgresRepository) Replace(perfumes []Perfume) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM perfume`); err != nil {
		return err
	}
	for i, p := range perfumes {
		if _, err := tx.Exec(`
			INSERT INTO perfume (perfume_id, perfume_name, brand, description, image, notes, category, price, old_price, position)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			p.ID, p.Name, p.Brand, p.Description, p.Image, pq.Array(p.Notes), p.Category, p.Price, p.OldPrice, i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerfume(row rowScanner) (Perfume, error) {
	var (
		p        Perfume
		name     sql.NullString
		brand    sql.NullString
		desc     sql.NullString
		image    sql.NullString
		category sql.NullString
		price    sql.NullInt64
		oldPrice sql.NullInt64
	)
	if err := row.Scan(&p.ID, &name, &brand, &desc, &image, pq.Array(&p.Notes), &category, &price, &oldPrice); err != nil {
		return Perfume{}, err
	}
	p.Name = name.String
	p.Brand = brand.String
	p.Description = desc.String
	p.Image = image.String
	p.Category = category.String
	if price.Valid {
		v := int(price.Int64)
		p.Price = &v
	}
	if oldPrice.Valid {
		v := int(oldPrice.Int64)
		p.OldPrice = &v
	}
	if p.Notes == nil {
		p.Notes = []string{}
	}
	return p, nil
}
