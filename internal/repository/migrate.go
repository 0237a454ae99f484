package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables behind every repository in
// this package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&staffModel{},
		&roomModel{},
		&customerModel{},
		&customerNoteModel{},
		&bookingModel{},
		&paymentModel{},
	)
}

// GORM stores time.Time columns as timestamptz on Postgres, so the
// exclusion constraint has to be built over tstzrange. Stays are
// half-open: checkout day is free for the next arrival.
var noOverbookingStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS idx_no_overbooking`,
	`ALTER TABLE bookings ADD CONSTRAINT idx_no_overbooking
EXCLUDE USING gist (
  room_id WITH =,
  tstzrange(check_in_date, check_out_date, '[)') WITH &&
) WHERE (status NOT IN ('cancelled', 'no_show'))`,
}

// EnsureNoOverbookingConstraint installs the Postgres exclusion
// constraint that makes overlapping active bookings impossible at the
// database level. It is a no-op on other drivers; SQLite deployments
// rely on the transactional overlap check alone.
func EnsureNoOverbookingConstraint(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, s := range noOverbookingStatements {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}
