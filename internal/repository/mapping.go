package repository

import (
	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository/dao"
)

func accountDaoToDomain(a dao.Account) domain.Account {
	return domain.Account{
		ID:             a.ID,
		Email:          a.Email,
		Password:       a.Password,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Phone:          a.Phone,
		Role:           a.Role,
		ProfilePicture: a.ProfilePicture,
		IsActive:       a.IsActive,
		LastLogin:      a.LastLogin,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func studentDaoToDomain(s dao.Student) domain.Student {
	student := domain.Student{
		Account:   accountDaoToDomain(s.Account),
		StudentID: s.StudentID,
		Course:    s.Course,
		Year:      s.Year,
		RoomID:    s.RoomID,
	}
	student.ID = s.AccountID

	if s.Room != nil {
		room := roomDaoToDomain(*s.Room)
		student.Room = &room
	}

	return student
}

func studentsDaoToDomain(students []dao.Student) []domain.Student {
	converted := make([]domain.Student, 0, len(students))
	for _, s := range students {
		converted = append(converted, studentDaoToDomain(s))
	}

	return converted
}

func wardenDaoToDomain(w dao.Warden) domain.Warden {
	warden := domain.Warden{
		Account:       accountDaoToDomain(w.Account),
		StaffID:       w.StaffID,
		AssignedBlock: w.AssignedBlock,
	}
	warden.ID = w.AccountID

	return warden
}

func roomDaoToDomain(r dao.Room) domain.Room {
	return domain.Room{
		ID:              r.ID,
		Block:           r.Block,
		RoomNumber:      r.RoomNumber,
		RoomLabel:       r.RoomLabel,
		Floor:           r.Floor,
		Capacity:        r.Capacity,
		OccupiedCount:   r.OccupiedCount,
		RoomType:        r.RoomType,
		Facilities:      r.Facilities,
		Status:          domain.RoomStatus(r.Status),
		Description:     r.Description,
		Price:           r.Price,
		PricePeriod:     r.PricePeriod,
		ImageURL:        r.ImageURL,
		LastMaintenance: r.LastMaintenance,
		Occupants:       studentsDaoToDomain(r.Occupants),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func roomsDaoToDomain(rooms []dao.Room) []domain.Room {
	converted := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		converted = append(converted, roomDaoToDomain(r))
	}

	return converted
}

func allocationDaoToDomain(a dao.Allocation) domain.Allocation {
	allocation := domain.Allocation{
		ID:            a.ID,
		StudentID:     a.StudentID,
		RoomID:        a.RoomID,
		BedNumber:     a.BedNumber,
		StartDate:     a.StartDate,
		EndDate:       a.EndDate,
		Status:        domain.AllocationStatus(a.Status),
		PaymentStatus: domain.PaymentStatus(a.PaymentStatus),
		AllocatedByID: a.AllocatedByID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}

	if a.Student.AccountID != 0 {
		student := studentDaoToDomain(a.Student)
		allocation.Student = &student
	}
	if a.Room.ID != 0 {
		room := roomDaoToDomain(a.Room)
		allocation.Room = &room
	}

	return allocation
}
