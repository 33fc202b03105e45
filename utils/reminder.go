package utils

import (
	"fmt"
	"log"
	"time"

	"elearn/config"
	"elearn/database"
	"elearn/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderDelay is the inactivity window after which a reminder fires
const ReminderDelay = 24 * time.Hour

// ReminderScheduler arms and fires durable inactivity reminders. Pending
// reminders are rows in the reminders table, so they survive process
// restarts; a periodic sweep fires the due ones. The clock is injectable so
// the sweep can be tested deterministically.
type ReminderScheduler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReminderScheduler builds a scheduler on the given database. A nil clock
// defaults to time.Now.
func NewReminderScheduler(db *gorm.DB, now func() time.Time) *ReminderScheduler {
	if now == nil {
		now = time.Now
	}
	return &ReminderScheduler{db: db, now: now}
}

// ArmEnrollmentReminder arms an independent 24-hour check after a new
// enrollment. Each enrollment arms its own row; these are not coordinated
// with tracking reminders.
func (s *ReminderScheduler) ArmEnrollmentReminder(userID uint) error {
	reminder := models.Reminder{
		UserID: userID,
		Kind:   models.ReminderKindEnrollment,
		DueAt:  s.now().Add(ReminderDelay),
	}
	return s.db.Create(&reminder).Error
}

// ArmTrackingReminder arms the single 24-hour tracking check for a user.
// Last arm wins: any pending tracking reminder for the user is cleared
// before the new one is created, so there is never a queue of them.
func (s *ReminderScheduler) ArmTrackingReminder(userID uint) error {
	if err := s.db.Where("user_id = ? AND kind = ? AND fired = false AND is_deleted = false",
		userID, models.ReminderKindTracking).
		Delete(&models.Reminder{}).Error; err != nil {
		return err
	}

	reminder := models.Reminder{
		UserID: userID,
		Kind:   models.ReminderKindTracking,
		DueAt:  s.now().Add(ReminderDelay),
	}
	return s.db.Create(&reminder).Error
}

// PendingCount reports how many unfired reminders of the given kind a user has
func (s *ReminderScheduler) PendingCount(userID uint, kind string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Reminder{}).
		Where("user_id = ? AND kind = ? AND fired = false AND is_deleted = false", userID, kind).
		Count(&count).Error
	return count, err
}

// Sweep fires every due reminder: it re-checks the inactivity condition and
// creates a Notification when it still holds, otherwise it is a no-op. The
// row is marked fired either way.
func (s *ReminderScheduler) Sweep() {
	now := s.now()

	var due []models.Reminder
	if err := s.db.Where("due_at <= ? AND fired = false AND is_deleted = false", now).
		Find(&due).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching due reminders: %v", err)
		return
	}

	for _, reminder := range due {
		fire, message := s.check(reminder, now)
		if fire {
			notification := models.Notification{
				UserID:  reminder.UserID,
				Title:   "Reminder",
				Message: message,
			}
			if err := s.db.Create(&notification).Error; err != nil {
				log.Printf("[REMINDER-SCHEDULER] Error creating notification for user %d: %v", reminder.UserID, err)
				continue
			}
			log.Printf("[REMINDER-SCHEDULER] Sent reminder to user %d (%s)", reminder.UserID, reminder.Kind)
		}

		if err := s.db.Model(&models.Reminder{}).Where("id = ?", reminder.ID).
			Update("fired", true).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error marking reminder %d fired: %v", reminder.ID, err)
		}
	}
}

// check re-reads the user's tracking rows and decides whether the reminder
// still applies at fire time.
func (s *ReminderScheduler) check(reminder models.Reminder, now time.Time) (bool, string) {
	switch reminder.Kind {
	case models.ReminderKindEnrollment:
		// Fires while the user has not completed a single lesson
		var complete int64
		if err := s.db.Model(&models.Tracking{}).
			Where("user_id = ? AND status = true AND is_deleted = false", reminder.UserID).
			Count(&complete).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error checking trackings for user %d: %v", reminder.UserID, err)
			return false, ""
		}
		if complete == 0 {
			return true, "You have incomplete lessons. Please continue your learning."
		}

	case models.ReminderKindTracking:
		// Fires when the most recent tracking update is at least 24h old
		var latest models.Tracking
		err := s.db.Where("user_id = ? AND is_deleted = false", reminder.UserID).
			Order("updated_at desc").First(&latest).Error
		if err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching latest tracking for user %d: %v", reminder.UserID, err)
			return false, ""
		}
		if now.Sub(latest.UpdatedAt) >= ReminderDelay {
			return true, "You haven't updated your progress in the last 24 hours. Please continue learning."
		}
	}

	return false, ""
}

// InitializeReminderScheduler sets up the periodic reminder sweep
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing reminder scheduler...")

	scheduler := NewReminderScheduler(database.Database.Db, nil)

	c := cron.New()
	spec := fmt.Sprintf("@every %dm", config.AppConfig.ReminderSweepMinutes)
	c.AddFunc(spec, func() {
		scheduler.Sweep()
	})

	c.Start()
	log.Printf("[REMINDER-SCHEDULER] Reminder scheduler started - sweeps every %dm", config.AppConfig.ReminderSweepMinutes)
}
