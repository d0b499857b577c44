package catalog

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var perfumeColumns = []string{"perfume_id", "perfume_name", "brand", "description", "image", "notes", "category", "price", "old_price"}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(perfumeColumns).
		AddRow("a1", "Aventus", "Creed", "d", "img", "{pineapple,birch}", "Fresh", 1500000, nil).
		AddRow("a2", "Herod", "Marly", nil, "img2", "{tobacco}", "Oriental", nil, nil)
	mock.ExpectQuery("SELECT perfume_id").WillReturnRows(rows)

	all := repo.List()
	if len(all) != 2 {
		t.Fatalf("expected 2 perfumes, got %d", len(all))
	}
	if all[0].Price == nil || *all[0].Price != 1500000 {
		t.Fatalf("unexpected price: %+v", all[0].Price)
	}
	if len(all[0].Notes) != 2 || all[0].Notes[0] != "pineapple" {
		t.Fatalf("unexpected notes: %v", all[0].Notes)
	}
	if all[1].Description != "" || all[1].Price != nil {
		t.Fatalf("null columns should map to zero values: %+v", all[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("WHERE perfume_id").WithArgs("missing").WillReturnRows(sqlmock.NewRows(perfumeColumns))

	if _, err := repo.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE perfume").WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.Update("missing", Perfume{Name: "X"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresReplace_TransactionalOverwrite(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM perfume").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO perfume").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO perfume").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	perfumes := []Perfume{{ID: "a1", Name: "A"}, {ID: "a2", Name: "B"}}
	if err := repo.Replace(perfumes); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresReplace_RollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM perfume").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO perfume").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if err := repo.Replace([]Perfume{{ID: "a1"}}); err == nil {
		t.Fatalf("expected an error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
