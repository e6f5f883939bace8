package service

import (
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
)

type ProblemService struct {
	ProblemRepo *repository.ProblemRepository
}

func NewProblemService(problemRepo *repository.ProblemRepository) *ProblemService {
	return &ProblemService{ProblemRepo: problemRepo}
}

type ProblemRequest struct {
	Title      string   `json:"title" binding:"required,max=200"`
	Difficulty string   `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	Topics     []string `json:"topics"`
	ChapterID  *uint    `json:"chapterId"`
	Status     string   `json:"status"`
	Notes      string   `json:"notes" binding:"max=2000"`
	URL        string   `json:"url"`
	TimeSpent  *int     `json:"timeSpent"`
}

func (s *ProblemService) Create(userID uint, req ProblemRequest) (*model.Problem, error) {
	problem := &model.Problem{
		UserID:     userID,
		Title:      req.Title,
		Difficulty: model.Difficulty(req.Difficulty),
		Topics:     req.Topics,
		ChapterID:  req.ChapterID,
		Status:     model.ProblemNotStarted,
		Notes:      req.Notes,
		URL:        req.URL,
	}
	if req.Status != "" {
		problem.Status = model.ProblemStatus(req.Status)
	}
	if req.TimeSpent != nil {
		problem.TimeSpent = *req.TimeSpent
	}
	if problem.Status == model.ProblemCompleted {
		now := time.Now()
		problem.CompletedAt = &now
	}

	if err := s.ProblemRepo.Create(problem); err != nil {
		return nil, err
	}
	return problem, nil
}

// Update 更新题目；首次转为已完成时写入完成时间，之后不再覆盖
func (s *ProblemService) Update(userID, id uint, req ProblemRequest) (*model.Problem, error) {
	problem, err := s.ProblemRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	problem.Title = req.Title
	problem.Difficulty = model.Difficulty(req.Difficulty)
	problem.Topics = req.Topics
	problem.ChapterID = req.ChapterID
	problem.Notes = req.Notes
	problem.URL = req.URL
	if req.TimeSpent != nil {
		problem.TimeSpent = *req.TimeSpent
	}
	if req.Status != "" {
		problem.Status = model.ProblemStatus(req.Status)
	}
	if problem.Status == model.ProblemCompleted && problem.CompletedAt == nil {
		now := time.Now()
		problem.CompletedAt = &now
	}

	if err := s.ProblemRepo.Update(problem); err != nil {
		return nil, err
	}
	return problem, nil
}

func (s *ProblemService) Delete(userID, id uint) error {
	return s.ProblemRepo.Delete(id, userID)
}

func (s *ProblemService) Get(userID, id uint) (*model.Problem, error) {
	return s.ProblemRepo.FindByIDAndUserID(id, userID)
}

func (s *ProblemService) List(userID uint, filter repository.ProblemFilter) ([]model.Problem, error) {
	return s.ProblemRepo.FindByUserID(userID, filter)
}

// AddAttachment 把上传好的附件URL挂到题目上
func (s *ProblemService) AddAttachment(userID, id uint, url string) (*model.Problem, error) {
	problem, err := s.ProblemRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}
	problem.Attachments = append(problem.Attachments, url)
	if err := s.ProblemRepo.Update(problem); err != nil {
		return nil, err
	}
	return problem, nil
}
