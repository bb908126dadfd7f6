package cart

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresLoad_MissingRowIsEmptyCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT items FROM carts").WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"items"}))

	c, err := repo.Load("s1")
	if err != nil {
		t.Fatalf("expected nil err for missing row, got %v", err)
	}
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", c.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresLoad_CorruptBlobDegradesToEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"items"}).AddRow(`{"not": "a line item array`)
	mock.ExpectQuery("SELECT items FROM carts").WithArgs("s1").WillReturnRows(rows)

	c, err := repo.Load("s1")
	if err != nil {
		t.Fatalf("corrupt blob must not surface an error, got %v", err)
	}
	if len(c.Items) != 0 {
		t.Fatalf("corrupt blob must reload as empty cart, got %+v", c.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSaveThenLoad_RoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO carts").
		WithArgs("s1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	stored := `[{"productId":"p1","title":"Air Stride Max","unitPrice":12999,"quantity":2,"size":"UK 9","color":"Black"}]`
	mock.ExpectQuery("SELECT items FROM carts").WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"items"}).AddRow(stored))

	c := Cart{}
	c.Add(LineItem{ProductID: "p1", Title: "Air Stride Max", UnitPrice: 12999, Quantity: 2, Size: "UK 9", Color: "Black"})
	if err := repo.Save("s1", c); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load("s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].UnitPrice != 12999 || got.Items[0].Size != "UK 9" {
		t.Fatalf("round trip mismatch: %+v", got.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM carts").WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete("s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
