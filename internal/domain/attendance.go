package domain

import "time"

// AttendanceStatus marks whether a trainee is still inside the gym.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusExited  AttendanceStatus = "exited"
)

// AttendanceRecord is one check-in/check-out event. Records are never
// deleted; they form a permanent history. CheckOut stays nil until the
// trainee exits.
type AttendanceRecord struct {
	ID        string           `bson:"_id" json:"id"`
	TraineeID string           `bson:"traineeId" json:"trainee_id"`
	GymID     string           `bson:"gymId" json:"gym_id"`
	CheckIn   time.Time        `bson:"checkIn" json:"check_in"`
	CheckOut  *time.Time       `bson:"checkOut,omitempty" json:"check_out,omitempty"`
	Status    AttendanceStatus `bson:"status" json:"status"`
}
