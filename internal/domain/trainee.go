package domain

import "time"

// TraineeSummary is the trainer-side roster entry for one managed trainee:
// the trainee's profile plus derived coaching state. The active program is
// referenced by ID, not cloned; UnreadCount is the out-of-band read-state
// bookkeeping for the trainee's direct thread.
type TraineeSummary struct {
	Profile `bson:",inline"`

	LastWorkout         string        `bson:"lastWorkout,omitempty" json:"last_workout,omitempty"`
	ComplianceRate      float64       `bson:"complianceRate" json:"compliance_rate"`
	ActiveProgramID     string        `bson:"activeProgramId,omitempty" json:"active_program_id,omitempty"`
	ActiveProgramName   string        `bson:"activeProgramName,omitempty" json:"active_program_name,omitempty"`
	RecentWeightChange  float64       `bson:"recentWeightChange" json:"recent_weight_change"`
	InspirationImageKey string        `bson:"inspirationImageKey,omitempty" json:"inspiration_image_key,omitempty"`
	UnreadCount         int           `bson:"unreadCount" json:"unread_count"`
	LastMessageAt       *time.Time    `bson:"lastMessageAt,omitempty" json:"last_message_at,omitempty"`
	IsVIP               bool          `bson:"isVip,omitempty" json:"is_vip,omitempty"`
	Subscription        *Subscription `bson:"subscription,omitempty" json:"subscription,omitempty"`
}

// CanBookVIP reports whether this trainee may book a VIP-tagged slot.
func (t *TraineeSummary) CanBookVIP() bool {
	if t.IsVIP {
		return true
	}
	return t.Subscription != nil && t.Subscription.IsVIP()
}
