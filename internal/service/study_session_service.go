package service

import (
	"context"
	"errors"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/stats"
	"dsa_tracker_backend/internal/util"
	"dsa_tracker_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StudySessionService 学习记录及其统计
type StudySessionService struct {
	SessionRepo    *repository.StudySessionRepository
	PrefsRepo      *repository.PreferencesRepository
	Cache          *StatsCache
	StreakLookback int
}

func NewStudySessionService(
	sessionRepo *repository.StudySessionRepository,
	prefsRepo *repository.PreferencesRepository,
	cache *StatsCache,
	streakLookback int,
) *StudySessionService {
	return &StudySessionService{
		SessionRepo:    sessionRepo,
		PrefsRepo:      prefsRepo,
		Cache:          cache,
		StreakLookback: streakLookback,
	}
}

type StudySessionRequest struct {
	Date           string   `json:"date" binding:"required"`
	Duration       int      `json:"duration" binding:"required,min=1"`
	Topics         []string `json:"topics"`
	Notes          string   `json:"notes"`
	ProblemsSolved int      `json:"problemsSolved" binding:"min=0"`
	Difficulty     string   `json:"difficulty"`
}

// PeriodStats 某个时间段的汇总
type PeriodStats struct {
	Duration int `json:"duration"`
	Problems int `json:"problems"`
	Sessions int `json:"sessions"`
}

// DailyStats 今天与昨天的对比
type DailyStats struct {
	Today         int     `json:"today"`
	Yesterday     int     `json:"yesterday"`
	Change        float64 `json:"change"`
	ProblemsToday int     `json:"problemsToday"`
}

// SessionStats /study-sessions/stats 的响应体
type SessionStats struct {
	Daily     DailyStats        `json:"daily"`
	Weekly    PeriodStats       `json:"weekly"`
	Monthly   PeriodStats       `json:"monthly"`
	AllTime   PeriodStats       `json:"allTime"`
	Streaks   stats.Streaks     `json:"streaks"`
	Chart     SessionChart      `json:"chart"`
	TopTopics []stats.TopicCount `json:"topTopics"`
}

type SessionChart struct {
	Weekly []stats.DayPoint `json:"weekly"`
}

// Record 将学习记录写入；当天已有记录时按合并律并入
func (s *StudySessionService) Record(ctx context.Context, userID uint, req StudySessionRequest) (*model.StudySession, bool, error) {
	if _, err := stats.ParseDay(req.Date); err != nil {
		return nil, false, util.ErrInvalidDate
	}

	incoming := &model.StudySession{
		UserID:         userID,
		Date:           req.Date,
		Duration:       req.Duration,
		Topics:         req.Topics,
		Notes:          req.Notes,
		ProblemsSolved: req.ProblemsSolved,
		Difficulty:     model.Difficulty(req.Difficulty),
	}
	if incoming.Difficulty == "" {
		incoming.Difficulty = model.DifficultyMedium
	}

	existing, err := s.SessionRepo.FindByUserAndDate(userID, req.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	created := false
	var session *model.StudySession
	if existing != nil {
		existing.Merge(incoming)
		if err := s.SessionRepo.Update(existing); err != nil {
			return nil, false, err
		}
		session = existing
	} else {
		if err := s.SessionRepo.Create(incoming); err != nil {
			return nil, false, err
		}
		session = incoming
		created = true
	}

	s.refreshDerived(ctx, userID)
	return session, created, nil
}

func (s *StudySessionService) Update(ctx context.Context, userID, id uint, req StudySessionRequest) (*model.StudySession, error) {
	if _, err := stats.ParseDay(req.Date); err != nil {
		return nil, util.ErrInvalidDate
	}

	session, err := s.SessionRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	session.Date = req.Date
	session.Duration = req.Duration
	session.Topics = req.Topics
	session.Notes = req.Notes
	session.ProblemsSolved = req.ProblemsSolved
	if req.Difficulty != "" {
		session.Difficulty = model.Difficulty(req.Difficulty)
	}

	if err := s.SessionRepo.Update(session); err != nil {
		return nil, err
	}

	s.refreshDerived(ctx, userID)
	return session, nil
}

func (s *StudySessionService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.SessionRepo.Delete(id, userID); err != nil {
		return err
	}
	s.refreshDerived(ctx, userID)
	return nil
}

func (s *StudySessionService) List(userID uint, startDate, endDate string, limit int) ([]model.StudySession, error) {
	return s.SessionRepo.FindByUserID(userID, startDate, endDate, limit)
}

// Stats 汇总学习统计；结果有redis缓存，写入路径负责失效
func (s *StudySessionService) Stats(ctx context.Context, userID uint) (*SessionStats, error) {
	var cached SessionStats
	if s.Cache.Get(ctx, "sessions", userID, &cached) {
		return &cached, nil
	}

	prefs, err := s.PrefsRepo.FindOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.SessionRepo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	records := toActivityRecords(sessions)

	today := stats.Today(prefs.Timezone)
	yesterday, err := stats.AddDays(today, -1)
	if err != nil {
		return nil, err
	}

	todayAgg, err := stats.Aggregate(records, today, today)
	if err != nil {
		return nil, err
	}
	yesterdayAgg, err := stats.Aggregate(records, yesterday, yesterday)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd, err := weekBounds(today)
	if err != nil {
		return nil, err
	}
	weekAgg, err := stats.Aggregate(records, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	monthStart, err := stats.AddDays(today, -30)
	if err != nil {
		return nil, err
	}
	monthAgg, err := stats.Aggregate(records, monthStart, today)
	if err != nil {
		return nil, err
	}

	var allTime stats.WindowTotals
	for _, r := range records {
		allTime.TotalDuration += r.DurationMinutes
		allTime.TotalProblems += r.ProblemsSolved
		allTime.SessionCount++
	}

	activeDays, err := stats.ActiveDays(records)
	if err != nil {
		return nil, err
	}
	streaks, err := stats.ComputeStreaks(activeDays, today, s.StreakLookback)
	if err != nil {
		return nil, err
	}

	weeklySeries, err := stats.Series(records, 7, today)
	if err != nil {
		return nil, err
	}

	change := 0.0
	if yesterdayAgg.TotalDuration > 0 {
		change = float64(todayAgg.TotalDuration-yesterdayAgg.TotalDuration) / float64(yesterdayAgg.TotalDuration) * 100
	}

	result := &SessionStats{
		Daily: DailyStats{
			Today:         todayAgg.TotalDuration,
			Yesterday:     yesterdayAgg.TotalDuration,
			Change:        change,
			ProblemsToday: todayAgg.TotalProblems,
		},
		Weekly:    PeriodStats{Duration: weekAgg.TotalDuration, Problems: weekAgg.TotalProblems, Sessions: weekAgg.SessionCount},
		Monthly:   PeriodStats{Duration: monthAgg.TotalDuration, Problems: monthAgg.TotalProblems, Sessions: monthAgg.SessionCount},
		AllTime:   PeriodStats{Duration: allTime.TotalDuration, Problems: allTime.TotalProblems, Sessions: allTime.SessionCount},
		Streaks:   streaks,
		Chart:     SessionChart{Weekly: weeklySeries},
		TopTopics: stats.TopTopics(records, 5),
	}

	s.Cache.Set(ctx, "sessions", userID, result)
	return result, nil
}

// refreshDerived 写入后刷新偏好表里的冗余连续天数并失效缓存
// 缓存口径：扫描重算是唯一事实来源，偏好表只是展示缓存
func (s *StudySessionService) refreshDerived(ctx context.Context, userID uint) {
	prefs, err := s.PrefsRepo.FindOrCreateByUserID(userID)
	if err != nil {
		logger.Log.Error("refresh streak cache: load preferences", zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	sessions, err := s.SessionRepo.FindAllByUserID(userID)
	if err != nil {
		logger.Log.Error("refresh streak cache: load sessions", zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	activeDays, err := stats.ActiveDays(toActivityRecords(sessions))
	if err != nil {
		logger.Log.Error("refresh streak cache: invalid records", zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	streaks, err := stats.ComputeStreaks(activeDays, stats.Today(prefs.Timezone), s.StreakLookback)
	if err != nil {
		logger.Log.Error("refresh streak cache: compute", zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	if err := s.PrefsRepo.RefreshStreaks(userID, streaks.Current, streaks.Longest); err != nil {
		logger.Log.Error("refresh streak cache: persist", zap.Uint("user_id", userID), zap.Error(err))
	}

	s.Cache.Invalidate(ctx, userID)
}

func toActivityRecords(sessions []model.StudySession) []stats.ActivityRecord {
	records := make([]stats.ActivityRecord, 0, len(sessions))
	for _, sess := range sessions {
		records = append(records, stats.ActivityRecord{
			Date:            sess.Date,
			DurationMinutes: sess.Duration,
			ProblemsSolved:  sess.ProblemsSolved,
			Topics:          sess.Topics,
		})
	}
	return records
}

// weekBounds 返回包含day的自然周（周日起始）的首末日
func weekBounds(day string) (string, string, error) {
	t, err := stats.ParseDay(day)
	if err != nil {
		return "", "", err
	}
	start := t.AddDate(0, 0, -int(t.Weekday()))
	end := start.AddDate(0, 0, 6)
	return start.Format(stats.DayLayout), end.Format(stats.DayLayout), nil
}
