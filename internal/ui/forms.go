package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pulselog/internal/client"
)

// ActivityForm collects a new activity interactively. Numeric fields are
// coerced, not validated: a non-numeric duration stores as zero, the same
// acknowledged gap the web front-end has with parseInt.
func ActivityForm() (client.ActivityInput, error) {
	var (
		activityType string
		duration     string
		notes        string
	)
	intensity := "medium"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Activity type").Placeholder("Run, Swim, Yoga...").Value(&activityType),
			huh.NewInput().Title("Duration (minutes)").Value(&duration),
			huh.NewSelect[string]().Title("Intensity").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).Value(&intensity),
			huh.NewInput().Title("Notes").Value(&notes),
		).Title("Log Activity"),
	)

	if err := form.Run(); err != nil {
		return client.ActivityInput{}, err
	}

	minutes, _ := strconv.Atoi(strings.TrimSpace(duration))
	return client.ActivityInput{
		Type:      activityType,
		Duration:  minutes,
		Intensity: intensity,
		Notes:     notes,
	}, nil
}

// WellnessForm collects today's metrics interactively.
func WellnessForm() (client.WellnessInput, error) {
	var (
		energy string
		sleep  string
		mood   string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Energy level (1-10)").Value(&energy),
			huh.NewInput().Title("Sleep hours").Value(&sleep),
			huh.NewInput().Title("Mood score (1-10)").Value(&mood),
		).Title("Daily Pulse"),
	)

	if err := form.Run(); err != nil {
		return client.WellnessInput{}, err
	}

	energyLevel, _ := strconv.Atoi(strings.TrimSpace(energy))
	sleepHours, _ := strconv.ParseFloat(strings.TrimSpace(sleep), 64)
	moodScore, _ := strconv.Atoi(strings.TrimSpace(mood))

	return client.WellnessInput{
		EnergyLevel: energyLevel,
		SleepHours:  sleepHours,
		MoodScore:   moodScore,
	}, nil
}
