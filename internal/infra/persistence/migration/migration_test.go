package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationFS, "sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected migration file %s", name)
		}
	}

	assert.Equal(t, ups, downs)
}

func TestInitialMigrationCreatesRelationshipTable(t *testing.T) {
	body, err := fs.ReadFile(migrationFS, "sql/000001_product_interest.up.sql")
	require.NoError(t, err)

	sql := string(body)
	assert.Contains(t, sql, "product_interest_relationships")
	assert.Contains(t, sql, "UNIQUE (product_id, customer_id)")
	assert.Contains(t, sql, "product_meta")
}
