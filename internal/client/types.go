package client

// Wire types shared by both backends. Field names and formats match the
// served API exactly, so the two storage universes stay interchangeable
// from the presentation's point of view.

const (
	dateFormat      = "2006-01-02"
	timestampFormat = "2006-01-02 15:04"
)

// Activity is one logged exercise session. ID and Timestamp are assigned
// by whichever backend performed the write.
type Activity struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	Intensity string `json:"intensity"`
	Notes     string `json:"notes"`
	Timestamp string `json:"timestamp"`
}

// Wellness is the single entry for one calendar day.
type Wellness struct {
	ID          int64   `json:"id"`
	EnergyLevel int     `json:"energy_level"`
	SleepHours  float64 `json:"sleep_hours"`
	MoodScore   int     `json:"mood_score"`
	Date        string  `json:"date"`
}

// ActivityInput carries the caller-supplied fields of a new activity.
type ActivityInput struct {
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	Intensity string `json:"intensity"`
	Notes     string `json:"notes"`
}

// WellnessInput carries today's metrics. The day itself is chosen by the
// active backend's clock, never by the caller.
type WellnessInput struct {
	EnergyLevel int     `json:"energy_level"`
	SleepHours  float64 `json:"sleep_hours"`
	MoodScore   int     `json:"mood_score"`
}

// ChartSeries splits wellness entries into the three index-aligned
// sequences the chart sink consumes: dates, sleep hours, energy levels.
func ChartSeries(entries []Wellness) (dates []string, sleep []float64, energy []float64) {
	dates = make([]string, 0, len(entries))
	sleep = make([]float64, 0, len(entries))
	energy = make([]float64, 0, len(entries))

	for _, entry := range entries {
		dates = append(dates, entry.Date)
		sleep = append(sleep, entry.SleepHours)
		energy = append(energy, float64(entry.EnergyLevel))
	}
	return dates, sleep, energy
}
