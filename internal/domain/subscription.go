package domain

import "time"

// SubscriptionType is the trainee's tier; VIP grants access to VIP slots.
type SubscriptionType string

const (
	SubscriptionNormal SubscriptionType = "normal"
	SubscriptionVIP    SubscriptionType = "vip"
)

// Subscription describes a trainee's paid plan. SessionsRemaining never
// exceeds SessionsTotal; renewal resets it to SessionsTotal.
type Subscription struct {
	Type              SubscriptionType `bson:"type" json:"type"`
	Price             float64          `bson:"price" json:"price"`
	SessionsTotal     int              `bson:"sessionsTotal" json:"sessions_total"`
	SessionsRemaining int              `bson:"sessionsRemaining" json:"sessions_remaining"`
	ExpiryDate        *time.Time       `bson:"expiryDate,omitempty" json:"expiry_date,omitempty"`
	IsPaid            bool             `bson:"isPaid" json:"is_paid"`
}

func (s *Subscription) IsVIP() bool {
	return s.Type == SubscriptionVIP
}
