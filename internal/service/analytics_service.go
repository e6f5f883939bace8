package service

import (
	"context"
	"time"

	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/stats"
)

// AnalyticsService 进度分析页的数据汇总
type AnalyticsService struct {
	ProblemRepo    *repository.ProblemRepository
	ChapterRepo    *repository.ChapterRepository
	SessionRepo    *repository.StudySessionRepository
	PrefsRepo      *repository.PreferencesRepository
	Cache          *StatsCache
	StreakLookback int
}

func NewAnalyticsService(
	problemRepo *repository.ProblemRepository,
	chapterRepo *repository.ChapterRepository,
	sessionRepo *repository.StudySessionRepository,
	prefsRepo *repository.PreferencesRepository,
	cache *StatsCache,
	streakLookback int,
) *AnalyticsService {
	return &AnalyticsService{
		ProblemRepo:    problemRepo,
		ChapterRepo:    chapterRepo,
		SessionRepo:    sessionRepo,
		PrefsRepo:      prefsRepo,
		Cache:          cache,
		StreakLookback: streakLookback,
	}
}

// WeeklyCompletionPoint 最近一周每日完成的题目数
type WeeklyCompletionPoint struct {
	Day      string `json:"day"` // Mon, Tue...
	Date     string `json:"date"`
	Problems int    `json:"problems"`
}

// MonthlyGoal 某个月的目标完成情况
type MonthlyGoal struct {
	Month     string `json:"month"` // Jan, Feb...
	Completed int    `json:"completed"`
	Target    int    `json:"target"`
}

// AnalyticsOverview /analytics 的响应体
type AnalyticsOverview struct {
	TotalProblems      int                       `json:"totalProblems"`
	CompletedProblems  int                       `json:"completedProblems"`
	InProgressProblems int                       `json:"inProgressProblems"`
	CompletionRate     int                       `json:"completionRate"`
	Difficulty         stats.DifficultyBreakdown `json:"difficultyBreakdown"`
	WeeklyProgress     []WeeklyCompletionPoint   `json:"weeklyProgress"`
	TopicProgress      []stats.TopicProgress     `json:"topicProgress"`
	MonthlyGoals       []MonthlyGoal             `json:"monthlyGoals"`
	ChaptersCompleted  int                       `json:"chaptersCompleted"`
	TotalChapters      int                       `json:"totalChapters"`
	StreakDays         int                       `json:"streakDays"`
	TotalTimeSpent     int                       `json:"totalTimeSpent"`
}

// 月度目标图表的固定目标值，与前端展示保持一致
const monthlyGoalTarget = 30

// Overview 汇总进度分析数据；结果有redis缓存
func (s *AnalyticsService) Overview(ctx context.Context, userID uint) (*AnalyticsOverview, error) {
	var cached AnalyticsOverview
	if s.Cache.Get(ctx, "analytics", userID, &cached) {
		return &cached, nil
	}

	prefs, err := s.PrefsRepo.FindOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(prefs.Timezone)
	if err != nil {
		loc = time.UTC
	}

	problems, err := s.ProblemRepo.FindByUserID(userID, repository.ProblemFilter{})
	if err != nil {
		return nil, err
	}

	overview := &AnalyticsOverview{TotalProblems: len(problems)}

	completed := make([]stats.CompletedProblem, 0, len(problems))
	completedAt := make([]time.Time, 0, len(problems))
	for _, p := range problems {
		overview.TotalTimeSpent += p.TimeSpent
		if p.Status == model.ProblemInProgress {
			overview.InProgressProblems++
		}
		if p.Status != model.ProblemCompleted {
			continue
		}
		overview.CompletedProblems++
		cp := stats.CompletedProblem{Difficulty: string(p.Difficulty)}
		if p.ChapterID != nil {
			cp.ChapterID = *p.ChapterID
		}
		completed = append(completed, cp)
		if p.CompletedAt != nil {
			completedAt = append(completedAt, *p.CompletedAt)
		}
	}

	overview.CompletionRate = stats.CompletionRate(overview.TotalProblems, overview.CompletedProblems)
	overview.Difficulty = stats.ByDifficulty(completed)

	today := stats.Today(prefs.Timezone)
	overview.WeeklyProgress, err = s.weeklyCompletions(completedAt, today, loc)
	if err != nil {
		return nil, err
	}

	chapters, err := s.ChapterRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	overview.TotalChapters = len(chapters)
	chapterTopics := make([]stats.ChapterTopics, 0, len(chapters))
	for _, c := range chapters {
		if c.IsCompleted {
			overview.ChaptersCompleted++
		}
		ct := stats.ChapterTopics{Title: c.Title, TotalTopics: len(c.Topics)}
		for _, t := range c.Topics {
			if t.IsCompleted {
				ct.CompletedCount++
			}
		}
		chapterTopics = append(chapterTopics, ct)
	}
	overview.TopicProgress = stats.ByTopic(chapterTopics)

	// 最近3个月的月度完成图，目标固定
	for _, m := range lastMonths(time.Now().In(loc), 3) {
		overview.MonthlyGoals = append(overview.MonthlyGoals, MonthlyGoal{
			Month:     m.Format("Jan"),
			Completed: stats.MonthlyCompleted(completedAt, m.Year(), m.Month(), loc),
			Target:    monthlyGoalTarget,
		})
	}

	sessions, err := s.SessionRepo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	activeDays, err := stats.ActiveDays(toActivityRecords(sessions))
	if err != nil {
		return nil, err
	}
	streaks, err := stats.ComputeStreaks(activeDays, today, s.StreakLookback)
	if err != nil {
		return nil, err
	}
	overview.StreakDays = streaks.Current

	s.Cache.Set(ctx, "analytics", userID, overview)
	return overview, nil
}

// lastMonths 含当月在内最近n个自然月，升序
// 先锚定到当月1号再回退，避免月末日期回退时向前归一（如3月31日减一个月变成3月3日）
func lastMonths(now time.Time, n int) []time.Time {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	months := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		months = append(months, anchor.AddDate(0, -i, 0))
	}
	return months
}

// weeklyCompletions 最近7天每日完成的题目数，按完成时间归日
func (s *AnalyticsService) weeklyCompletions(completedAt []time.Time, today string, loc *time.Location) ([]WeeklyCompletionPoint, error) {
	byDay := make(map[string]int)
	for _, t := range completedAt {
		byDay[t.In(loc).Format(stats.DayLayout)]++
	}

	points := make([]WeeklyCompletionPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day, err := stats.AddDays(today, -i)
		if err != nil {
			return nil, err
		}
		t, err := stats.ParseDay(day)
		if err != nil {
			return nil, err
		}
		points = append(points, WeeklyCompletionPoint{
			Day:      t.Format("Mon"),
			Date:     day,
			Problems: byDay[day],
		})
	}
	return points, nil
}
