package service

import (
	"context"
	"fmt"
	"time"

	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/stats"
	"dsa_tracker_backend/pkg/logger"
	"dsa_tracker_backend/pkg/mailer"
	"dsa_tracker_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// ReminderService 定时邮件提醒：每日学习提醒和每周进度报告
// 由外部cron通过带密钥的HTTP入口触发
type ReminderService struct {
	UserRepo    *repository.UserRepository
	PrefsRepo   *repository.PreferencesRepository
	SessionRepo *repository.StudySessionRepository
	ProblemRepo *repository.ProblemRepository
	Mailer      *mailer.Mailer
	AppBaseURL  string
}

func NewReminderService(
	userRepo *repository.UserRepository,
	prefsRepo *repository.PreferencesRepository,
	sessionRepo *repository.StudySessionRepository,
	problemRepo *repository.ProblemRepository,
	m *mailer.Mailer,
	appBaseURL string,
) *ReminderService {
	return &ReminderService{
		UserRepo:    userRepo,
		PrefsRepo:   prefsRepo,
		SessionRepo: sessionRepo,
		ProblemRepo: problemRepo,
		Mailer:      m,
		AppBaseURL:  appBaseURL,
	}
}

// ReminderResult 一轮提醒的发送统计
type ReminderResult struct {
	Eligible int `json:"eligible"`
	Sent     int `json:"sent"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// SendDailyReminders 给所有开启邮件提醒且今天还没学习的用户发提醒
func (s *ReminderService) SendDailyReminders(ctx context.Context) (*ReminderResult, error) {
	result := &ReminderResult{}
	if !s.Mailer.Enabled() {
		return result, fmt.Errorf("mailer not configured")
	}

	prefsList, err := s.PrefsRepo.FindAllWithEmailEnabled()
	if err != nil {
		return nil, err
	}

	for _, prefs := range prefsList {
		result.Eligible++

		user, err := s.UserRepo.FindByID(prefs.UserID)
		if err != nil {
			result.Failed++
			continue
		}

		// 今天已经学过的用户不需要提醒
		today := stats.Today(prefs.Timezone)
		if session, err := s.SessionRepo.FindByUserAndDate(prefs.UserID, today); err == nil && session != nil {
			result.Skipped++
			continue
		}

		html := s.dailyReminderHTML(user.Name, prefs.CurrentStreak)
		if err := s.Mailer.Send(ctx, user.Email, user.Name, "Don't break your streak! Daily DSA reminder", html); err != nil {
			logger.Log.Error("send daily reminder", zap.Uint("user_id", prefs.UserID), zap.Error(err))
			monitoring.ReminderEmails.WithLabelValues("daily", "failed").Inc()
			result.Failed++
			continue
		}
		monitoring.ReminderEmails.WithLabelValues("daily", "sent").Inc()
		result.Sent++
	}

	logger.Log.Info("daily reminders dispatched",
		zap.Int("eligible", result.Eligible), zap.Int("sent", result.Sent),
		zap.Int("skipped", result.Skipped), zap.Int("failed", result.Failed))
	return result, nil
}

// SendWeeklyReports 给所有开启邮件提醒的用户发最近一周的进度报告
func (s *ReminderService) SendWeeklyReports(ctx context.Context) (*ReminderResult, error) {
	result := &ReminderResult{}
	if !s.Mailer.Enabled() {
		return result, fmt.Errorf("mailer not configured")
	}

	prefsList, err := s.PrefsRepo.FindAllWithEmailEnabled()
	if err != nil {
		return nil, err
	}

	for _, prefs := range prefsList {
		result.Eligible++

		user, err := s.UserRepo.FindByID(prefs.UserID)
		if err != nil {
			result.Failed++
			continue
		}

		today := stats.Today(prefs.Timezone)
		weekAgo, err := stats.AddDays(today, -6)
		if err != nil {
			result.Failed++
			continue
		}

		sessions, err := s.SessionRepo.FindByUserID(prefs.UserID, weekAgo, today, 0)
		if err != nil {
			result.Failed++
			continue
		}

		totals, err := stats.Aggregate(toActivityRecords(sessions), weekAgo, today)
		if err != nil {
			result.Failed++
			continue
		}

		html := s.weeklyReportHTML(user.Name, totals, prefs.CurrentStreak, prefs.WeeklyGoal)
		if err := s.Mailer.Send(ctx, user.Email, user.Name, "Your weekly DSA progress report", html); err != nil {
			logger.Log.Error("send weekly report", zap.Uint("user_id", prefs.UserID), zap.Error(err))
			monitoring.ReminderEmails.WithLabelValues("weekly", "failed").Inc()
			result.Failed++
			continue
		}
		monitoring.ReminderEmails.WithLabelValues("weekly", "sent").Inc()
		result.Sent++
	}

	logger.Log.Info("weekly reports dispatched",
		zap.Int("eligible", result.Eligible), zap.Int("sent", result.Sent), zap.Int("failed", result.Failed))
	return result, nil
}

func (s *ReminderService) dailyReminderHTML(name string, streak int) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h1 style="color: #3b82f6;">Hello %s!</h1>
<p>This is your daily reminder to continue your DSA learning journey.</p>
<p>Your current streak is <strong>%d days</strong> — keep it going!</p>
<div style="text-align: center; margin: 30px 0;">
<a href="%s/dashboard" style="background-color: #3b82f6; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Continue Learning</a>
</div>
<p style="color: #9ca3af; font-size: 14px;">You're receiving this email because you enabled daily reminders in your settings.</p>
</div>`, name, streak, s.AppBaseURL)
}

func (s *ReminderService) weeklyReportHTML(name string, totals stats.WindowTotals, streak, weeklyGoal int) string {
	hours := float64(totals.TotalDuration) / 60
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h1 style="color: #3b82f6;">Weekly Report for %s</h1>
<p>Here is what you accomplished this week (as of %s):</p>
<ul>
<li>Problems solved: <strong>%d</strong></li>
<li>Study time: <strong>%.1f hours</strong></li>
<li>Study days: <strong>%d</strong> (goal: %d)</li>
<li>Current streak: <strong>%d days</strong></li>
</ul>
<div style="text-align: center; margin: 30px 0;">
<a href="%s/dashboard/analytics" style="background-color: #3b82f6; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Full Analytics</a>
</div>
</div>`, name, time.Now().Format("2006-01-02"), totals.TotalProblems, hours, totals.SessionCount, weeklyGoal, streak, s.AppBaseURL)
}
