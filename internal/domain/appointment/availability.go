package appointment

import "time"

type AvailabilityInput struct {
	Barber string
	Type   Type
	Date   time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
