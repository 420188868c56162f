package service

import (
	"context"
	"fmt"
	"time"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"go.uber.org/zap"
)

// lowSessionThreshold triggers the renewal warning when a subscription has
// this many sessions or fewer left (and at least one).
const lowSessionThreshold = 3

// expiryWarningWindow is how far ahead the expiry check looks.
const expiryWarningWindow = 7 * 24 * time.Hour

// AlertService runs the periodic schedule and subscription checks. Ticks are
// best-effort: a missed tick (process stopped, clock skew) is lost work, not
// an error.
type AlertService interface {
	// Run blocks, checking on every tick until the context is cancelled.
	Run(ctx context.Context)
	// CheckNow performs one pass: session-start notifications for slots
	// booked at the current minute, and subscription warnings.
	CheckNow(ctx context.Context)
	Dismiss(ctx context.Context, alertID string) error
	Alerts(ctx context.Context) []domain.Alert
}

type alertService struct {
	store    *store.Store
	interval time.Duration
	logger   *zap.SugaredLogger
}

// NewAlertService creates a new instance of alertService.
func NewAlertService(st *store.Store, interval time.Duration, logger *zap.SugaredLogger) AlertService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &alertService{store: st, interval: interval, logger: logger}
}

func (s *alertService) Run(ctx context.Context) {
	s.logger.Infow("alert scheduler started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alert scheduler stopped")
			return
		case <-ticker.C:
			s.CheckNow(ctx)
		}
	}
}

func (s *alertService) CheckNow(ctx context.Context) {
	now := time.Now()
	day := now.Weekday().String()
	clock := now.Format("15:04")

	_ = s.store.Update(func(state *store.State) error {
		if state.Profile == nil {
			return nil
		}
		if state.Profile.IsTrainer() {
			s.checkBookedSlots(state, day, clock, now)
		} else {
			s.checkSubscription(state, now)
		}
		return nil
	})
}

// checkBookedSlots posts a session-start notification into the booked
// trainee's AI thread when a slot matches the current minute.
func (s *alertService) checkBookedSlots(state *store.State, day, clock string, now time.Time) {
	daySched, ok := state.Profile.Trainer.Availability[day]
	if !ok {
		return
	}
	for _, slot := range daySched.InOrder() {
		if slot.Time != clock || !slot.Booked() {
			continue
		}
		trainee, ok := state.TraineeByID(slot.BookedTraineeID)
		if !ok {
			continue
		}
		msgID := fmt.Sprintf("session-start-%s-%s", slot.ID, now.Format("2006-01-02"))
		if messageExists(state, msgID) {
			continue
		}
		state.Messages = append(state.Messages, domain.Message{
			ID:        msgID,
			Type:      domain.MessageText,
			ChatType:  domain.ChatAI,
			Text:      fmt.Sprintf("🚨 وقت تمرین! %s عزیز، جلسه شما ساعت %s شروع شده است.", trainee.FullName, slot.Time),
			Sender:    domain.SenderAI,
			Timestamp: now,
			TraineeID: slot.BookedTraineeID,
		})
		state.Alerts = append(state.Alerts, domain.Alert{
			ID:        msgID,
			Trainee:   trainee.FullName,
			Issue:     fmt.Sprintf("Booked session at %s is starting", slot.Time),
			Type:      domain.AlertInfo,
			Timestamp: now,
		})
		s.logger.Infow("session-start notification posted", "trainee_id", slot.BookedTraineeID, "time", slot.Time)
	}
}

// checkSubscription warns the signed-in trainee when their subscription is
// nearly used up or about to expire.
func (s *alertService) checkSubscription(state *store.State, now time.Time) {
	trainee, ok := state.TraineeByID(state.Profile.ID)
	if !ok || trainee.Subscription == nil {
		return
	}
	sub := trainee.Subscription

	if sub.SessionsRemaining > 0 && sub.SessionsRemaining <= lowSessionThreshold {
		msgID := fmt.Sprintf("sub-expiry-warning-%s", trainee.ID)
		if !messageExists(state, msgID) {
			state.Messages = append(state.Messages, domain.Message{
				ID:        msgID,
				Type:      domain.MessageText,
				ChatType:  domain.ChatAI,
				Text:      fmt.Sprintf("⚠️ هشدار تمدید: تنها %d جلسه از اشتراک شما باقی مانده است. لطفاً برای تمدید اقدام کنید.", sub.SessionsRemaining),
				Sender:    domain.SenderAI,
				Timestamp: now,
				TraineeID: trainee.ID,
			})
		}
	}

	if sub.ExpiryDate != nil && sub.ExpiryDate.After(now) && sub.ExpiryDate.Sub(now) < expiryWarningWindow {
		alertID := fmt.Sprintf("sub-expiring-%s", trainee.ID)
		if !alertExists(state, alertID) {
			state.Alerts = append(state.Alerts, domain.Alert{
				ID:        alertID,
				Trainee:   trainee.FullName,
				Issue:     fmt.Sprintf("Subscription expires %s", sub.ExpiryDate.Format("2006-01-02")),
				Type:      domain.AlertWarning,
				Timestamp: now,
			})
		}
	}
}

func (s *alertService) Dismiss(ctx context.Context, alertID string) error {
	return s.store.Update(func(state *store.State) error {
		for i := range state.Alerts {
			if state.Alerts[i].ID == alertID {
				state.Alerts = append(state.Alerts[:i], state.Alerts[i+1:]...)
				break
			}
		}
		return nil
	})
}

func (s *alertService) Alerts(ctx context.Context) []domain.Alert {
	var out []domain.Alert
	s.store.View(func(state *store.State) {
		out = append(out, state.Alerts...)
	})
	return out
}

func messageExists(state *store.State, id string) bool {
	for i := range state.Messages {
		if state.Messages[i].ID == id {
			return true
		}
	}
	return false
}

func alertExists(state *store.State, id string) bool {
	for i := range state.Alerts {
		if state.Alerts[i].ID == id {
			return true
		}
	}
	return false
}
