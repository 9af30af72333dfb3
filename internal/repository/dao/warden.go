package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrWardenNotFound = errors.New("warden not found")
	ErrStaffIDExists  = errors.New("staff id already taken")
)

// Warden is a 1:1 profile keyed by its account id.
type Warden struct {
	AccountID uint    `gorm:"primaryKey"`
	Account   Account `gorm:"foreignKey:AccountID"`

	StaffID       string `gorm:"uniqueIndex;not null"` // human-facing, e.g. WARD3107
	AssignedBlock string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type WardenDAO struct {
	db *gorm.DB
}

func NewWardenDAO(db *gorm.DB) *WardenDAO {
	return &WardenDAO{
		db: db,
	}
}

func (d *WardenDAO) InsertWithAccount(ctx context.Context, account Account, warden Warden) (Warden, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&account); result.Error != nil {
			if isUniqueViolation(result.Error, "uni_accounts_email") {
				return ErrAccountEmailExists
			}

			return result.Error
		}

		warden.AccountID = account.ID
		if result := tx.Create(&warden); result.Error != nil {
			if isUniqueViolation(result.Error, "idx_wardens_staff_id") {
				return ErrStaffIDExists
			}

			return result.Error
		}

		warden.Account = account

		return nil
	})
	if err != nil {
		return Warden{}, err
	}

	return warden, nil
}

func (d *WardenDAO) FindByAccountID(ctx context.Context, accountID uint) (Warden, error) {
	var warden Warden

	result := d.db.WithContext(ctx).
		Preload("Account").
		First(&warden, "account_id = ?", accountID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Warden{}, ErrWardenNotFound
		}

		return Warden{}, result.Error
	}

	return warden, nil
}
