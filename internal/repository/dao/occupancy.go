package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
)

var (
	ErrRoomFull               = errors.New("room is full")
	ErrRoomUnderMaintenance   = errors.New("room is under maintenance")
	ErrStudentAlreadyAssigned = errors.New("student already has a room assigned")
	ErrStudentNotInRoom       = errors.New("student is not assigned to this room")
)

// OccupancyDAO owns every mutation of students.room_id and of
// rooms.occupied_count/status. Each operation is one transaction that locks
// the affected rows, re-validates under the lock, and recomputes the derived
// room fields before commit. The allocation ledger reuses the same locked
// helpers, so there is exactly one writer path into the occupancy invariants.
type OccupancyDAO struct {
	db *gorm.DB
}

func NewOccupancyDAO(db *gorm.DB) *OccupancyDAO {
	return &OccupancyDAO{
		db: db,
	}
}

func (d *OccupancyDAO) Assign(ctx context.Context, studentID, roomID uint) (Room, Student, error) {
	var (
		room    Room
		student Student
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		room, student, txErr = assignLocked(tx, studentID, roomID)

		return txErr
	})
	if err != nil {
		return Room{}, Student{}, err
	}

	return room, student, nil
}

func (d *OccupancyDAO) Remove(ctx context.Context, studentID, roomID uint) (Room, Student, error) {
	var (
		room    Room
		student Student
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		room, student, txErr = removeLocked(tx, studentID, roomID)

		return txErr
	})
	if err != nil {
		return Room{}, Student{}, err
	}

	return room, student, nil
}

// Transfer moves a student between rooms as one transaction. Both rooms are
// locked in ascending id order so two opposite transfers cannot deadlock.
func (d *OccupancyDAO) Transfer(ctx context.Context, studentID, fromRoomID, toRoomID uint) (Room, Student, error) {
	var (
		toRoom  Room
		student Student
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		first, second := fromRoomID, toRoomID
		if second < first {
			first, second = second, first
		}
		if _, txErr := lockRoom(tx, first); txErr != nil {
			return txErr
		}
		if _, txErr := lockRoom(tx, second); txErr != nil {
			return txErr
		}

		if _, _, txErr := removeLocked(tx, studentID, fromRoomID); txErr != nil {
			return txErr
		}

		var txErr error
		toRoom, student, txErr = assignLocked(tx, studentID, toRoomID)

		return txErr
	})
	if err != nil {
		return Room{}, Student{}, err
	}

	return toRoom, student, nil
}

// SetMaintenance flips the room in or out of maintenance. Entering
// maintenance evicts every occupant and cancels their active ledger entries.
func (d *OccupancyDAO) SetMaintenance(ctx context.Context, roomID uint, on bool) (Room, error) {
	var room Room

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, txErr := lockRoom(tx, roomID)
		if txErr != nil {
			return txErr
		}

		if on {
			txErr = tx.Model(&Student{}).
				Where("room_id = ?", roomID).
				Update("room_id", nil).Error
			if txErr != nil {
				return txErr
			}

			txErr = tx.Model(&Allocation{}).
				Where("room_id = ? AND status = ?", roomID, "Active").
				Updates(map[string]interface{}{"status": "Cancelled", "end_date": time.Now()}).Error
			if txErr != nil {
				return txErr
			}

			now := time.Now()
			txErr = tx.Model(&Room{}).
				Where("id = ?", roomID).
				Update("last_maintenance", &now).Error
			if txErr != nil {
				return txErr
			}
			locked.LastMaintenance = &now
		}

		locked.Status = string(maintenanceStatus(on))
		if txErr = refreshRoomLocked(tx, &locked); txErr != nil {
			return txErr
		}
		room = locked

		return nil
	})
	if err != nil {
		return Room{}, err
	}

	return room, nil
}

func maintenanceStatus(on bool) domain.RoomStatus {
	if on {
		return domain.RoomStatusMaintenance
	}

	return domain.RoomStatusAvailable
}

func lockRoom(tx *gorm.DB, roomID uint) (Room, error) {
	var room Room

	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Room{}, ErrRoomNotFound
		}

		return Room{}, err
	}

	return room, nil
}

func lockStudent(tx *gorm.DB, studentID uint) (Student, error) {
	var student Student

	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&student, "account_id = ?", studentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Student{}, ErrStudentNotFound
		}

		return Student{}, err
	}

	return student, nil
}

func countOccupants(tx *gorm.DB, roomID uint) (int, error) {
	var count int64

	err := tx.Model(&Student{}).Where("room_id = ?", roomID).Count(&count).Error

	return int(count), err
}

// assignLocked is the single path that puts a student into a room. Callers
// run inside a transaction; all preconditions are re-checked under the locks.
func assignLocked(tx *gorm.DB, studentID, roomID uint) (Room, Student, error) {
	room, err := lockRoom(tx, roomID)
	if err != nil {
		return Room{}, Student{}, err
	}

	student, err := lockStudent(tx, studentID)
	if err != nil {
		return Room{}, Student{}, err
	}

	if room.Status == string(domain.RoomStatusMaintenance) {
		return Room{}, Student{}, ErrRoomUnderMaintenance
	}
	if student.RoomID != nil {
		return Room{}, Student{}, ErrStudentAlreadyAssigned
	}

	occupied, err := countOccupants(tx, roomID)
	if err != nil {
		return Room{}, Student{}, err
	}
	if occupied >= room.Capacity {
		return Room{}, Student{}, ErrRoomFull
	}

	err = tx.Model(&Student{}).Where("account_id = ?", studentID).Update("room_id", roomID).Error
	if err != nil {
		return Room{}, Student{}, err
	}
	student.RoomID = &roomID

	if err = refreshRoomLocked(tx, &room); err != nil {
		return Room{}, Student{}, err
	}

	return room, student, nil
}

// removeLocked is the single path that takes a student out of a room.
func removeLocked(tx *gorm.DB, studentID, roomID uint) (Room, Student, error) {
	room, err := lockRoom(tx, roomID)
	if err != nil {
		return Room{}, Student{}, err
	}

	student, err := lockStudent(tx, studentID)
	if err != nil {
		return Room{}, Student{}, err
	}

	if student.RoomID == nil || *student.RoomID != roomID {
		return Room{}, Student{}, ErrStudentNotInRoom
	}

	err = tx.Model(&Student{}).Where("account_id = ?", studentID).Update("room_id", nil).Error
	if err != nil {
		return Room{}, Student{}, err
	}
	student.RoomID = nil

	if err = refreshRoomLocked(tx, &room); err != nil {
		return Room{}, Student{}, err
	}

	return room, student, nil
}

// refreshRoomLocked recomputes occupied_count from the student rows and
// derives status. The caller must hold the room's row lock.
func refreshRoomLocked(tx *gorm.DB, room *Room) error {
	occupied, err := countOccupants(tx, room.ID)
	if err != nil {
		return err
	}

	underMaintenance := room.Status == string(domain.RoomStatusMaintenance)
	room.OccupiedCount = occupied
	room.Status = string(domain.DeriveRoomStatus(room.Capacity, occupied, underMaintenance))

	return tx.Model(&Room{}).
		Where("id = ?", room.ID).
		Updates(map[string]interface{}{
			"occupied_count": room.OccupiedCount,
			"status":         room.Status,
		}).Error
}
