package service

import (
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/util"
)

type ChapterService struct {
	ChapterRepo *repository.ChapterRepository
	PrefsRepo   *repository.PreferencesRepository
}

func NewChapterService(chapterRepo *repository.ChapterRepository, prefsRepo *repository.PreferencesRepository) *ChapterService {
	return &ChapterService{ChapterRepo: chapterRepo, PrefsRepo: prefsRepo}
}

type ChapterRequest struct {
	Title         string               `json:"title" binding:"required,max=200"`
	Description   string               `json:"description"`
	Topics        []model.ChapterTopic `json:"topics"`
	Order         int                  `json:"order"`
	EstimatedDays int                  `json:"estimatedDays"`
}

type ChapterProgressRequest struct {
	TopicIndex        *int  `json:"topicIndex"`
	IsCompleted       *bool `json:"isCompleted"`
	CompletedProblems *int  `json:"completedProblems"`
}

func (s *ChapterService) Create(userID uint, req ChapterRequest) (*model.Chapter, error) {
	chapter := &model.Chapter{
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Topics:        req.Topics,
		Order:         req.Order,
		EstimatedDays: req.EstimatedDays,
	}
	if chapter.EstimatedDays == 0 {
		chapter.EstimatedDays = 7
	}
	chapter.RecalcProgress(time.Now())

	if err := s.ChapterRepo.Create(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *ChapterService) Update(userID, id uint, req ChapterRequest) (*model.Chapter, error) {
	chapter, err := s.ChapterRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	chapter.Title = req.Title
	chapter.Description = req.Description
	chapter.Topics = req.Topics
	chapter.Order = req.Order
	if req.EstimatedDays > 0 {
		chapter.EstimatedDays = req.EstimatedDays
	}
	chapter.RecalcProgress(time.Now())

	if err := s.ChapterRepo.Update(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *ChapterService) Delete(userID, id uint) error {
	return s.ChapterRepo.Delete(id, userID)
}

func (s *ChapterService) Get(userID, id uint) (*model.Chapter, error) {
	return s.ChapterRepo.FindByIDAndUserID(id, userID)
}

func (s *ChapterService) List(userID uint) ([]model.Chapter, error) {
	return s.ChapterRepo.FindByUserID(userID)
}

// UpdateProgress 更新单个主题的完成状态并重算章节进度
// 第一次有进度时记录开始时间；完成时间只在首次达到100时写入
func (s *ChapterService) UpdateProgress(userID, id uint, req ChapterProgressRequest) (*model.Chapter, error) {
	chapter, err := s.ChapterRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	if req.TopicIndex != nil {
		idx := *req.TopicIndex
		if idx < 0 || idx >= len(chapter.Topics) {
			return nil, util.ErrTopicIndexOutOfRange
		}
		if req.IsCompleted != nil {
			chapter.Topics[idx].IsCompleted = *req.IsCompleted
		}
		if req.CompletedProblems != nil {
			chapter.Topics[idx].CompletedProblems = *req.CompletedProblems
		}
	}

	now := time.Now()
	if chapter.StartedAt == nil {
		chapter.StartedAt = &now
	}
	chapter.RecalcProgress(now)

	if err := s.ChapterRepo.Update(chapter); err != nil {
		return nil, err
	}

	// 偏好表记录最近一次进度更新时间
	if prefs, err := s.PrefsRepo.FindOrCreateByUserID(userID); err == nil {
		prefs.LastProgressUpdate = now
		_ = s.PrefsRepo.Update(prefs)
	}

	return chapter, nil
}
