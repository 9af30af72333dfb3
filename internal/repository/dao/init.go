package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&Account{},
		&Student{},
		&Warden{},
		&Room{},
		&Allocation{},
	)
	if err != nil {
		return err
	}

	// One Active allocation per (room, bed). AutoMigrate cannot express a
	// partial index, so it is created directly.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_allocations_active_bed
		 ON allocations (room_id, bed_number) WHERE status = 'Active'`,
	).Error
}
