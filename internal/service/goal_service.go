package service

import (
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/util"
)

type GoalService struct {
	GoalRepo *repository.GoalRepository
}

func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{GoalRepo: goalRepo}
}

type GoalRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"omitempty,oneof=daily weekly monthly yearly"`
	Target      int    `json:"target" binding:"required,min=1"`
	Current     *int   `json:"current"`
	Unit        string `json:"unit"`
	Deadline    string `json:"deadline" binding:"required"` // YYYY-MM-DD
	Status      string `json:"status" binding:"omitempty,oneof=active completed paused"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	ChapterID   *uint  `json:"chapterId"`
}

func (s *GoalService) Create(userID uint, req GoalRequest) (*model.Goal, error) {
	deadline, err := time.Parse(util.DateFormat, req.Deadline)
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Type:        model.GoalWeekly,
		Target:      req.Target,
		Unit:        "problems",
		Deadline:    deadline,
		Status:      model.GoalActive,
		Priority:    "medium",
		ChapterID:   req.ChapterID,
	}
	if req.Type != "" {
		goal.Type = model.GoalType(req.Type)
	}
	if req.Unit != "" {
		goal.Unit = req.Unit
	}
	if req.Priority != "" {
		goal.Priority = req.Priority
	}
	if req.Current != nil {
		goal.Current = *req.Current
	}
	applyAutoComplete(goal)

	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Update(userID, id uint, req GoalRequest) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	deadline, err := time.Parse(util.DateFormat, req.Deadline)
	if err != nil {
		return nil, err
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.Target = req.Target
	goal.Deadline = deadline
	goal.ChapterID = req.ChapterID
	if req.Type != "" {
		goal.Type = model.GoalType(req.Type)
	}
	if req.Unit != "" {
		goal.Unit = req.Unit
	}
	if req.Priority != "" {
		goal.Priority = req.Priority
	}
	if req.Status != "" {
		goal.Status = model.GoalStatus(req.Status)
	}
	if req.Current != nil {
		goal.Current = *req.Current
	}
	applyAutoComplete(goal)

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateProgress 只更新目标当前值
func (s *GoalService) UpdateProgress(userID, id uint, current int) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	goal.Current = current
	applyAutoComplete(goal)

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(userID, id uint) error {
	return s.GoalRepo.Delete(id, userID)
}

func (s *GoalService) Get(userID, id uint) (*model.Goal, error) {
	return s.GoalRepo.FindByIDAndUserID(id, userID)
}

func (s *GoalService) List(userID uint, status, goalType string, chapterID *uint) ([]model.Goal, error) {
	return s.GoalRepo.FindByUserID(userID, status, goalType, chapterID)
}

// applyAutoComplete 当前值达到目标后自动标记完成
func applyAutoComplete(goal *model.Goal) {
	if goal.Status == model.GoalActive && goal.Target > 0 && goal.Current >= goal.Target {
		goal.Status = model.GoalCompleted
	}
}
