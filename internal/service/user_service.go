package service

import (
	"context"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/stats"
)

// UserService 用户总览统计与偏好设置
type UserService struct {
	UserRepo        *repository.UserRepository
	ProblemRepo     *repository.ProblemRepository
	ChapterRepo     *repository.ChapterRepository
	SessionRepo     *repository.StudySessionRepository
	PrefsRepo       *repository.PreferencesRepository
	AchievementRepo *repository.AchievementRepository
	Cache           *StatsCache
	StreakLookback  int
}

func NewUserService(
	userRepo *repository.UserRepository,
	problemRepo *repository.ProblemRepository,
	chapterRepo *repository.ChapterRepository,
	sessionRepo *repository.StudySessionRepository,
	prefsRepo *repository.PreferencesRepository,
	achievementRepo *repository.AchievementRepository,
	cache *StatsCache,
	streakLookback int,
) *UserService {
	return &UserService{
		UserRepo:        userRepo,
		ProblemRepo:     problemRepo,
		ChapterRepo:     chapterRepo,
		SessionRepo:     sessionRepo,
		PrefsRepo:       prefsRepo,
		AchievementRepo: achievementRepo,
		Cache:           cache,
		StreakLookback:  streakLookback,
	}
}

// UserStats /user/stats 的响应体
type UserStats struct {
	TotalProblems        int `json:"totalProblems"`
	CompletedProblems    int `json:"completedProblems"`
	CompletionRate       int `json:"completionRate"`
	CurrentStreak        int `json:"currentStreak"`
	LongestStreak        int `json:"longestStreak"`
	TotalTimeSpent       int `json:"totalTimeSpent"` // 分钟
	TotalStudyTime       int `json:"totalStudyTime"` // 分钟，来自学习记录
	CompletedChapters    int `json:"completedChapters"`
	TotalChapters        int `json:"totalChapters"`
	WeeklyGoal           int `json:"weeklyGoal"`
	WeeklyGoalProgress   int `json:"weeklyGoalProgress"`
	TotalPoints          int `json:"totalPoints"`
	UnlockedAchievements int `json:"unlockedAchievements"`
	Level                int `json:"level"`
}

type PreferencesRequest struct {
	EmailEnabled       *bool  `json:"emailEnabled"`
	DailyReminderTime  string `json:"dailyReminderTime" binding:"omitempty,len=5"`
	ProgressReportTime string `json:"progressReportTime" binding:"omitempty,len=5"`
	WeeklyReportDay    *int   `json:"weeklyReportDay" binding:"omitempty"`
	Timezone           string `json:"timezone" binding:"omitempty,max=50"`
	WeeklyGoal         *int   `json:"weeklyGoal" binding:"omitempty,min=1,max=7"`
}

// Stats 用户总览；连续天数现场重算，偏好表里的计数只作展示用途
func (s *UserService) Stats(ctx context.Context, userID uint) (*UserStats, error) {
	var cached UserStats
	if s.Cache.Get(ctx, "user", userID, &cached) {
		return &cached, nil
	}

	prefs, err := s.PrefsRepo.FindOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}

	problems, err := s.ProblemRepo.FindByUserID(userID, repository.ProblemFilter{})
	if err != nil {
		return nil, err
	}

	out := &UserStats{
		TotalProblems: len(problems),
		WeeklyGoal:    prefs.WeeklyGoal,
	}
	for _, p := range problems {
		out.TotalTimeSpent += p.TimeSpent
		if p.Status == model.ProblemCompleted {
			out.CompletedProblems++
		}
	}
	out.CompletionRate = stats.CompletionRate(out.TotalProblems, out.CompletedProblems)

	chapters, err := s.ChapterRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	out.TotalChapters = len(chapters)
	for _, c := range chapters {
		if c.IsCompleted {
			out.CompletedChapters++
		}
	}

	sessions, err := s.SessionRepo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	records := toActivityRecords(sessions)
	for _, r := range records {
		out.TotalStudyTime += r.DurationMinutes
	}

	today := stats.Today(prefs.Timezone)
	activeDays, err := stats.ActiveDays(records)
	if err != nil {
		return nil, err
	}
	streaks, err := stats.ComputeStreaks(activeDays, today, s.StreakLookback)
	if err != nil {
		return nil, err
	}
	out.CurrentStreak = streaks.Current
	out.LongestStreak = streaks.Longest

	// 周目标进度按本周（周日起始）的学习天数计
	weekStart, weekEnd, err := weekBounds(today)
	if err != nil {
		return nil, err
	}
	for day := range activeDays {
		if day >= weekStart && day <= weekEnd {
			out.WeeklyGoalProgress++
		}
	}

	unlocks, err := s.AchievementRepo.FindUnlocksByUserID(userID)
	if err != nil {
		return nil, err
	}
	out.UnlockedAchievements = len(unlocks)
	for _, def := range stats.Catalog {
		if _, ok := unlocks[def.ID]; ok {
			out.TotalPoints += def.Points
		}
	}
	out.Level = out.TotalPoints/100 + 1

	s.Cache.Set(ctx, "user", userID, out)
	return out, nil
}

func (s *UserService) GetPreferences(userID uint) (*model.UserPreferences, error) {
	return s.PrefsRepo.FindOrCreateByUserID(userID)
}

func (s *UserService) UpdatePreferences(ctx context.Context, userID uint, req PreferencesRequest) (*model.UserPreferences, error) {
	prefs, err := s.PrefsRepo.FindOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}

	if req.EmailEnabled != nil {
		prefs.EmailEnabled = *req.EmailEnabled
	}
	if req.DailyReminderTime != "" {
		prefs.DailyReminderTime = req.DailyReminderTime
	}
	if req.ProgressReportTime != "" {
		prefs.ProgressReportTime = req.ProgressReportTime
	}
	if req.WeeklyReportDay != nil {
		prefs.WeeklyReportDay = *req.WeeklyReportDay
	}
	if req.Timezone != "" {
		prefs.Timezone = req.Timezone
	}
	if req.WeeklyGoal != nil {
		prefs.WeeklyGoal = *req.WeeklyGoal
	}

	if err := s.PrefsRepo.Update(prefs); err != nil {
		return nil, err
	}

	// 时区变化会影响"今天"的口径
	s.Cache.Invalidate(ctx, userID)
	return prefs, nil
}
