package service

import (
	"errors"
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/util"

	"gorm.io/gorm"
)

type ScheduleService struct {
	ScheduleRepo *repository.ScheduleRepository
}

func NewScheduleService(scheduleRepo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{ScheduleRepo: scheduleRepo}
}

type ScheduleRequest struct {
	Date      string   `json:"date" binding:"required"` // YYYY-MM-DD
	Tasks     []string `json:"tasks"`
	Completed *bool    `json:"completed"`
	Notes     string   `json:"notes" binding:"max=500"`
}

// Upsert 写入某天的日程；该天已有日程时整体覆盖
func (s *ScheduleService) Upsert(userID uint, req ScheduleRequest) (*model.ScheduleEntry, error) {
	date, err := time.Parse(util.DateFormat, req.Date)
	if err != nil {
		return nil, util.ErrInvalidDate
	}

	entries, err := s.ScheduleRepo.FindByUserID(userID, date, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var entry *model.ScheduleEntry
	if len(entries) > 0 {
		entry = &entries[0]
	} else {
		entry = &model.ScheduleEntry{UserID: userID, Date: date}
	}

	entry.Tasks = req.Tasks
	entry.Notes = req.Notes
	if req.Completed != nil {
		entry.Completed = *req.Completed
	}

	if entry.ID == 0 {
		err = s.ScheduleRepo.Create(entry)
	} else {
		err = s.ScheduleRepo.Update(entry)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ScheduleService) Update(userID, id uint, req ScheduleRequest) (*model.ScheduleEntry, error) {
	entry, err := s.ScheduleRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Date != "" {
		date, err := time.Parse(util.DateFormat, req.Date)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		entry.Date = date
	}
	entry.Tasks = req.Tasks
	entry.Notes = req.Notes
	if req.Completed != nil {
		entry.Completed = *req.Completed
	}

	if err := s.ScheduleRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ScheduleService) Delete(userID, id uint) error {
	return s.ScheduleRepo.Delete(id, userID)
}

// List 获取日期范围内的日程；from/to为空串表示不限
func (s *ScheduleService) List(userID uint, from, to string) ([]model.ScheduleEntry, error) {
	var fromTime, toTime time.Time
	var err error
	if from != "" {
		fromTime, err = time.Parse(util.DateFormat, from)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
	}
	if to != "" {
		toTime, err = time.Parse(util.DateFormat, to)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
	}
	return s.ScheduleRepo.FindByUserID(userID, fromTime, toTime)
}
