package domain

// SlotType tags a bookable slot as open to everyone or VIP-only.
type SlotType string

const (
	SlotNormal SlotType = "normal"
	SlotVIP    SlotType = "vip"
)

// AvailabilitySlot is a trainer-defined bookable time unit at a specific gym.
// BookedTraineeID is empty while the slot is unbooked and holds exactly one
// trainee ID once booked; a booking op must never overwrite a set value.
type AvailabilitySlot struct {
	ID              string   `bson:"_id" json:"id"`
	Time            string   `bson:"time" json:"time"` // HH:MM
	Type            SlotType `bson:"type" json:"type"`
	GymID           string   `bson:"gymId" json:"gym_id"`
	BookedTraineeID string   `bson:"bookedTraineeId,omitempty" json:"booked_trainee_id,omitempty"`
}

func (s *AvailabilitySlot) Booked() bool {
	return s.BookedTraineeID != ""
}

// DaySchedule keeps one day's slots indexed by ID alongside their insertion
// order. Sorting by time is a read-time concern for callers.
type DaySchedule struct {
	Order []string                     `bson:"order" json:"order"`
	Slots map[string]*AvailabilitySlot `bson:"slots" json:"slots"`
}

// Availability maps day names ("Saturday", ...) to that day's schedule.
type Availability map[string]*DaySchedule

// Day returns the schedule for a day, creating it on first use.
func (a Availability) Day(day string) *DaySchedule {
	d, ok := a[day]
	if !ok {
		d = &DaySchedule{Slots: make(map[string]*AvailabilitySlot)}
		a[day] = d
	}
	return d
}

// Lookup finds a slot by day and ID without creating anything.
func (a Availability) Lookup(day, slotID string) (*AvailabilitySlot, bool) {
	d, ok := a[day]
	if !ok {
		return nil, false
	}
	s, ok := d.Slots[slotID]
	return s, ok
}

// Add appends a slot to the day's insertion order and index.
func (d *DaySchedule) Add(slot *AvailabilitySlot) {
	if d.Slots == nil {
		d.Slots = make(map[string]*AvailabilitySlot)
	}
	d.Slots[slot.ID] = slot
	d.Order = append(d.Order, slot.ID)
}

// Remove drops a slot from both the index and the order list.
func (d *DaySchedule) Remove(slotID string) {
	delete(d.Slots, slotID)
	for i, id := range d.Order {
		if id == slotID {
			d.Order = append(d.Order[:i], d.Order[i+1:]...)
			break
		}
	}
}

// InOrder returns the day's slots in insertion order.
func (d *DaySchedule) InOrder() []*AvailabilitySlot {
	out := make([]*AvailabilitySlot, 0, len(d.Order))
	for _, id := range d.Order {
		if s, ok := d.Slots[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Gym is a static reference record for a training location.
type Gym struct {
	ID        string `bson:"_id" json:"id"`
	NameFa    string `bson:"nameFa" json:"name_fa"`
	NameEn    string `bson:"nameEn" json:"name_en"`
	Address   string `bson:"address,omitempty" json:"address,omitempty"`
	TrainerID string `bson:"trainerId" json:"trainer_id"`
}
