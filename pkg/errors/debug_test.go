package errors

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDumpNilError(t *testing.T) {
	if d := Dump(nil); d.TopMessage != "" || len(d.Chain) != 0 {
		t.Fatalf("expected zero dump, got %+v", d)
	}
}

func TestDumpCarriesCodeAndChain(t *testing.T) {
	err := Wrap(CodeDependency, fmt.Errorf("dial tcp: connection refused"), "load user")

	d := Dump(err)
	if d.Code != CodeDependency {
		t.Fatalf("expected dependency code, got %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected two chain links, got %v", d.Chain)
	}
}

func TestDumpExtractsPostgresFields(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "cart_items_user_product_key",
		TableName:      "cart_items",
		Detail:         "Key already exists.",
		Message:        "duplicate key value violates unique constraint",
	}

	d := Dump(Wrap(CodeConflict, pgErr, "add cart item"))
	if d.PGCode != "23505" || d.PGConstraint != "cart_items_user_product_key" {
		t.Fatalf("postgres fields not extracted: %+v", d)
	}
	if d.PGTable != "cart_items" || d.PGDetail != "Key already exists." {
		t.Fatalf("unexpected postgres detail: %+v", d)
	}
}
