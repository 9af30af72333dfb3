package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrRoomNotFound           = errors.New("room not found")
	ErrRoomNumberExists       = errors.New("room number already exists in this block")
	ErrCapacityBelowOccupancy = errors.New("capacity cannot be reduced below current occupancy")
)

type Room struct {
	ID uint `gorm:"primaryKey"`

	Block      string `gorm:"not null;uniqueIndex:uniq_rooms_block_number"`
	RoomNumber string `gorm:"not null;uniqueIndex:uniq_rooms_block_number"`
	RoomLabel  string `gorm:"uniqueIndex"` // generated, e.g. RM-A-101
	Floor      string

	Capacity int `gorm:"not null"`

	// OccupiedCount is stored for cheap status filtering but is recomputed
	// from the student rows inside every occupancy transaction; nothing
	// increments it independently.
	OccupiedCount int    `gorm:"not null;default:0"`
	Status        string `gorm:"not null;default:'Available';index"`

	RoomType    string
	Facilities  []string `gorm:"serializer:json"`
	Description string
	Price       int
	PricePeriod string `gorm:"default:'month'"`
	ImageURL    string

	LastMaintenance *time.Time

	Occupants []Student `gorm:"foreignKey:RoomID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// RoomFilter narrows List. Zero values mean "no filter".
type RoomFilter struct {
	Block    string
	Floor    string
	Status   string
	RoomType string
}

type RoomDAO struct {
	db *gorm.DB
}

func NewRoomDAO(db *gorm.DB) *RoomDAO {
	return &RoomDAO{
		db: db,
	}
}

func (d *RoomDAO) Insert(ctx context.Context, room Room) (Room, error) {
	room.RoomLabel = "RM-" + room.Block + "-" + room.RoomNumber

	result := d.db.WithContext(ctx).Create(&room)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uniq_rooms_block_number") {
			return Room{}, ErrRoomNumberExists
		}

		return Room{}, result.Error
	}

	return room, nil
}

func (d *RoomDAO) FindByID(ctx context.Context, id uint) (Room, error) {
	var room Room

	result := d.db.WithContext(ctx).
		Preload("Occupants").
		Preload("Occupants.Account").
		First(&room, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Room{}, ErrRoomNotFound
		}

		return Room{}, result.Error
	}

	return room, nil
}

func (d *RoomDAO) List(ctx context.Context, filter RoomFilter) ([]Room, error) {
	query := d.db.WithContext(ctx).
		Preload("Occupants").
		Preload("Occupants.Account")

	if filter.Block != "" {
		query = query.Where("block = ?", filter.Block)
	}
	if filter.Floor != "" {
		query = query.Where("floor = ?", filter.Floor)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RoomType != "" {
		query = query.Where("room_type = ?", filter.RoomType)
	}

	var rooms []Room
	if result := query.Order("block, room_number").Find(&rooms); result.Error != nil {
		return nil, result.Error
	}

	return rooms, nil
}

// Update applies editable fields. The capacity guard and the status
// recomputation run under the room's row lock so a concurrent assignment
// cannot slip between the check and the write.
func (d *RoomDAO) Update(ctx context.Context, room Room) (Room, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, lockErr := lockRoom(tx, room.ID)
		if lockErr != nil {
			return lockErr
		}

		occupied, countErr := countOccupants(tx, room.ID)
		if countErr != nil {
			return countErr
		}
		if room.Capacity < occupied {
			return ErrCapacityBelowOccupancy
		}

		updates := map[string]interface{}{
			"floor":        room.Floor,
			"capacity":     room.Capacity,
			"room_type":    room.RoomType,
			"facilities":   room.Facilities,
			"description":  room.Description,
			"price":        room.Price,
			"price_period": room.PricePeriod,
			"image_url":    room.ImageURL,
		}
		if result := tx.Model(&Room{}).Where("id = ?", room.ID).Updates(updates); result.Error != nil {
			return result.Error
		}

		current.Capacity = room.Capacity

		return refreshRoomLocked(tx, &current)
	})
	if err != nil {
		return Room{}, err
	}

	return d.FindByID(ctx, room.ID)
}

// Delete removes the room and clears every referencing student in the same
// transaction. Active ledger entries for the room are cancelled.
func (d *RoomDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockRoom(tx, id); err != nil {
			return err
		}

		err := tx.Model(&Student{}).
			Where("room_id = ?", id).
			Update("room_id", nil).Error
		if err != nil {
			return err
		}

		err = tx.Model(&Allocation{}).
			Where("room_id = ? AND status = ?", id, "Active").
			Updates(map[string]interface{}{"status": "Cancelled", "end_date": time.Now()}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&Room{}, id).Error
	})
}
