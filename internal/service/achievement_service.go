package service

import (
	"context"
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/stats"
	"dsa_tracker_backend/pkg/logger"

	"go.uber.org/zap"
)

// AchievementService 成就评估与首次解锁持久化
type AchievementService struct {
	ProblemRepo     *repository.ProblemRepository
	ChapterRepo     *repository.ChapterRepository
	SessionRepo     *repository.StudySessionRepository
	PrefsRepo       *repository.PreferencesRepository
	AchievementRepo *repository.AchievementRepository
	StreakLookback  int
}

func NewAchievementService(
	problemRepo *repository.ProblemRepository,
	chapterRepo *repository.ChapterRepository,
	sessionRepo *repository.StudySessionRepository,
	prefsRepo *repository.PreferencesRepository,
	achievementRepo *repository.AchievementRepository,
	streakLookback int,
) *AchievementService {
	return &AchievementService{
		ProblemRepo:     problemRepo,
		ChapterRepo:     chapterRepo,
		SessionRepo:     sessionRepo,
		PrefsRepo:       prefsRepo,
		AchievementRepo: achievementRepo,
		StreakLookback:  streakLookback,
	}
}

// AchievementView 单项成就的对外视图
type AchievementView struct {
	stats.AchievementStatus
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// AchievementSummary /achievements 的响应体
type AchievementSummary struct {
	Achievements  []AchievementView `json:"achievements"`
	TotalPoints   int               `json:"totalPoints"`
	UnlockedCount int               `json:"unlockedCount"`
	TotalCount    int               `json:"totalCount"`
}

// Evaluate 按当前指标评估全部成就
// 新解锁的成就写入首次解锁记录；已有记录的时间戳保持首次值不变
func (s *AchievementService) Evaluate(ctx context.Context, userID uint) (*AchievementSummary, error) {
	metrics, err := s.collectMetrics(userID)
	if err != nil {
		return nil, err
	}

	statuses := stats.Evaluate(metrics)

	unlocks, err := s.AchievementRepo.FindUnlocksByUserID(userID)
	if err != nil {
		return nil, err
	}

	summary := &AchievementSummary{
		Achievements: make([]AchievementView, 0, len(statuses)),
		TotalCount:   len(statuses),
	}

	totalPoints := 0
	for _, st := range statuses {
		view := AchievementView{AchievementStatus: st}

		if st.IsUnlocked {
			summary.UnlockedCount++
			totalPoints += st.Points

			if existing, ok := unlocks[st.ID]; ok {
				t := existing.UnlockedAt
				view.UnlockedAt = &t
			} else {
				now := time.Now()
				unlock := &model.AchievementUnlock{
					UserID:        userID,
					AchievementID: st.ID,
					UnlockedAt:    now,
				}
				if err := s.AchievementRepo.RecordUnlock(unlock); err != nil {
					logger.Log.Error("record achievement unlock",
						zap.Uint("user_id", userID), zap.Int("achievement_id", st.ID), zap.Error(err))
				}
				view.UnlockedAt = &now
			}
		}

		summary.Achievements = append(summary.Achievements, view)
	}
	summary.TotalPoints = totalPoints

	// 偏好表里的总积分是派生缓存，顺手刷新
	if prefs, err := s.PrefsRepo.FindOrCreateByUserID(userID); err == nil && prefs.TotalPoints != totalPoints {
		prefs.TotalPoints = totalPoints
		if err := s.PrefsRepo.Update(prefs); err != nil {
			logger.Log.Error("refresh total points", zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	return summary, nil
}

// collectMetrics 从题目、章节、学习记录聚合评估指标
// 连续天数一律现场重算，不读偏好表里的缓存值
func (s *AchievementService) collectMetrics(userID uint) (stats.AchievementMetrics, error) {
	var m stats.AchievementMetrics

	problems, err := s.ProblemRepo.FindCompletedByUserID(userID)
	if err != nil {
		return m, err
	}
	m.CompletedTotal = len(problems)
	for _, p := range problems {
		switch p.Difficulty {
		case model.DifficultyEasy:
			m.EasyCompleted++
		case model.DifficultyMedium:
			m.MediumCompleted++
		case model.DifficultyHard:
			m.HardCompleted++
		}
	}

	chapters, err := s.ChapterRepo.FindByUserID(userID)
	if err != nil {
		return m, err
	}
	for _, c := range chapters {
		if c.IsCompleted {
			m.ChaptersCompleted++
		}
	}

	prefs, err := s.PrefsRepo.FindOrCreateByUserID(userID)
	if err != nil {
		return m, err
	}
	sessions, err := s.SessionRepo.FindAllByUserID(userID)
	if err != nil {
		return m, err
	}
	activeDays, err := stats.ActiveDays(toActivityRecords(sessions))
	if err != nil {
		return m, err
	}
	streaks, err := stats.ComputeStreaks(activeDays, stats.Today(prefs.Timezone), s.StreakLookback)
	if err != nil {
		return m, err
	}
	m.CurrentStreak = streaks.Current

	return m, nil
}
