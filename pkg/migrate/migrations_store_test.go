package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eshop-labs/storefront-api/pkg/migrate"
)

func TestCartMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_cart_items.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS cart_items",
		"FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE",
		"CONSTRAINT cart_items_user_product_key UNIQUE (user_id, product_id)",
		"CHECK (quantity >= 1)",
		"DROP TABLE IF EXISTS cart_items",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestWishlistMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_wishlist_items.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS wishlist_items",
		"FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE",
		"CONSTRAINT wishlist_items_user_product_key UNIQUE (user_id, product_id)",
		"DROP TABLE IF EXISTS wishlist_items",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %s found", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
