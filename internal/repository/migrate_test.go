package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"serenityhaven/internal/database"
)

func TestAutoMigrate_SQLite(t *testing.T) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	assert.NoError(t, AutoMigrate(db))

	for _, table := range []string{"staff", "rooms", "customers", "customer_notes", "bookings", "payments"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestEnsureNoOverbookingConstraint_SQLiteNoOp(t *testing.T) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)
	assert.NoError(t, AutoMigrate(db))

	// SQLite has no exclusion constraints; the call must not touch the DB.
	assert.NoError(t, EnsureNoOverbookingConstraint(db))
}

func TestNoOverbookingConstraint_RangeMatchesColumnType(t *testing.T) {
	ddl := strings.Join(noOverbookingStatements, "\n")

	// time.Time columns land as timestamptz on Postgres, so the range
	// expression must be tstzrange or the DDL fails to resolve.
	assert.Contains(t, ddl, "tstzrange(check_in_date, check_out_date, '[)')")
	assert.NotContains(t, ddl, "tsrange(check_in_date")
	assert.Contains(t, ddl, "EXCLUDE USING gist")
	assert.Contains(t, ddl, "status NOT IN ('cancelled', 'no_show')")
}
