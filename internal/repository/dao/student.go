package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentIDExists = errors.New("student id already taken")
)

// Student is a 1:1 profile keyed by its account id.
type Student struct {
	AccountID uint    `gorm:"primaryKey"`
	Account   Account `gorm:"foreignKey:AccountID"`

	StudentID string `gorm:"uniqueIndex;not null"` // human-facing, e.g. STD4821
	Course    string
	Year      int

	// RoomID is written only by the occupancy transactions in this package.
	RoomID *uint `gorm:"index"`
	Room   *Room `gorm:"foreignKey:RoomID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StudentDAO struct {
	db *gorm.DB
}

func NewStudentDAO(db *gorm.DB) *StudentDAO {
	return &StudentDAO{
		db: db,
	}
}

// InsertWithAccount creates the account and its student profile as one unit.
func (d *StudentDAO) InsertWithAccount(ctx context.Context, account Account, student Student) (Student, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&account); result.Error != nil {
			if isUniqueViolation(result.Error, "uni_accounts_email") {
				return ErrAccountEmailExists
			}

			return result.Error
		}

		student.AccountID = account.ID
		if result := tx.Create(&student); result.Error != nil {
			if isUniqueViolation(result.Error, "idx_students_student_id") {
				return ErrStudentIDExists
			}

			return result.Error
		}

		student.Account = account

		return nil
	})
	if err != nil {
		return Student{}, err
	}

	return student, nil
}

func (d *StudentDAO) FindByID(ctx context.Context, id uint) (Student, error) {
	var student Student

	result := d.db.WithContext(ctx).
		Preload("Account").
		Preload("Room").
		Preload("Room.Occupants").
		Preload("Room.Occupants.Account").
		First(&student, "account_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Student{}, ErrStudentNotFound
		}

		return Student{}, result.Error
	}

	return student, nil
}

func (d *StudentDAO) List(ctx context.Context) ([]Student, error) {
	var students []Student

	result := d.db.WithContext(ctx).
		Preload("Account").
		Preload("Room").
		Order("account_id").
		Find(&students)
	if result.Error != nil {
		return nil, result.Error
	}

	return students, nil
}

// UpdateProfile touches profile fields only. The room reference is owned by
// the occupancy transactions and is deliberately not updatable here.
func (d *StudentDAO) UpdateProfile(ctx context.Context, student Student) (Student, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, lockErr := lockStudent(tx, student.AccountID); lockErr != nil {
			return lockErr
		}

		updates := map[string]interface{}{
			"course": student.Course,
			"year":   student.Year,
		}
		if result := tx.Model(&Student{}).Where("account_id = ?", student.AccountID).Updates(updates); result.Error != nil {
			return result.Error
		}

		accountUpdates := map[string]interface{}{
			"first_name": student.Account.FirstName,
			"last_name":  student.Account.LastName,
			"phone":      student.Account.Phone,
		}

		return tx.Model(&Account{}).Where("id = ?", student.AccountID).Updates(accountUpdates).Error
	})
	if err != nil {
		return Student{}, err
	}

	return d.FindByID(ctx, student.AccountID)
}
