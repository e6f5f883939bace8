package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/stats"
	"dsa_tracker_backend/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sentMail struct {
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	Subject string `json:"subject"`
}

func newReminderService(t *testing.T, apiBaseURL string) (*ReminderService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	m := mailer.New(config.EmailConfig{
		APIBaseURL: apiBaseURL,
		APIKey:     "test-key",
		FromEmail:  "noreply@example.com",
		FromName:   "DSA Tracker",
	})

	svc := NewReminderService(
		repository.NewUserRepository(db),
		repository.NewPreferencesRepository(db),
		repository.NewStudySessionRepository(db),
		repository.NewProblemRepository(db),
		m,
		"https://app.example.com",
	)
	return svc, db
}

func newMailServer(t *testing.T) (*httptest.Server, *[]sentMail) {
	t.Helper()

	var sent []sentMail
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/mail/send", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var mail sentMail
		require.NoError(t, json.NewDecoder(r.Body).Decode(&mail))
		sent = append(sent, mail)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)
	return srv, &sent
}

func reminderUser(t *testing.T, db *gorm.DB, email string, emailEnabled bool) *model.User {
	t.Helper()

	user := &model.User{Name: "User " + email, Email: email, Password: "hash"}
	require.NoError(t, db.Create(user).Error)

	prefs := &model.UserPreferences{
		UserID:     user.ID,
		Timezone:   "UTC",
		WeeklyGoal: 5,
	}
	require.NoError(t, db.Create(prefs).Error)
	// EmailEnabled 列有默认值，false 需要显式写入
	require.NoError(t, db.Model(prefs).Update("email_enabled", emailEnabled).Error)
	return user
}

func TestDailyRemindersSkipUsersWhoStudiedToday(t *testing.T) {
	srv, sent := newMailServer(t)
	svc, db := newReminderService(t, srv.URL)

	idle := reminderUser(t, db, "idle@example.com", true)
	active := reminderUser(t, db, "active@example.com", true)
	reminderUser(t, db, "optout@example.com", false)

	require.NoError(t, db.Create(&model.StudySession{
		UserID: active.ID, Date: stats.Today("UTC"), Duration: 30,
		Difficulty: model.DifficultyMedium,
	}).Error)

	result, err := svc.SendDailyReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Eligible)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Skipped)
	assert.Zero(t, result.Failed)

	require.Len(t, *sent, 1)
	assert.Equal(t, idle.Email, (*sent)[0].Personalizations[0].To[0].Email)
}

func TestWeeklyReportsSendToAllEnabled(t *testing.T) {
	srv, sent := newMailServer(t)
	svc, db := newReminderService(t, srv.URL)

	reminderUser(t, db, "a@example.com", true)
	reminderUser(t, db, "b@example.com", true)
	reminderUser(t, db, "optout@example.com", false)

	result, err := svc.SendWeeklyReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Eligible)
	assert.Equal(t, 2, result.Sent)
	assert.Len(t, *sent, 2)
	assert.Equal(t, "Your weekly DSA progress report", (*sent)[0].Subject)
}

func TestRemindersFailWithoutMailerConfig(t *testing.T) {
	svc, _ := newReminderService(t, "")
	svc.Mailer = mailer.New(config.EmailConfig{})

	_, err := svc.SendDailyReminders(context.Background())
	assert.Error(t, err)

	_, err = svc.SendWeeklyReports(context.Background())
	assert.Error(t, err)
}

func TestMailerReportsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	svc, db := newReminderService(t, srv.URL)
	reminderUser(t, db, "a@example.com", true)

	result, err := svc.SendDailyReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Zero(t, result.Sent)
}
