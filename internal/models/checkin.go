package models

import (
	"fmt"
	"strings"
	"time"
)

type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodBad     Mood = "bad"
)

// ParseMood converts user input into a Mood. Empty input defaults to
// neutral.
func ParseMood(s string) (Mood, error) {
	switch Mood(strings.ToLower(strings.TrimSpace(s))) {
	case MoodGreat:
		return MoodGreat, nil
	case MoodGood:
		return MoodGood, nil
	case MoodNeutral, "":
		return MoodNeutral, nil
	case MoodBad:
		return MoodBad, nil
	default:
		return "", fmt.Errorf("invalid mood %q (expected great, good, neutral, or bad)", s)
	}
}

// Emoji returns the display glyph for a mood.
func (m Mood) Emoji() string {
	switch m {
	case MoodGreat:
		return "😊"
	case MoodGood:
		return "🙂"
	case MoodBad:
		return "😞"
	default:
		return "😐"
	}
}

// CheckIn is an immutable record of one successful watering. It is created
// exactly once per check-in and only removed when its plant is purged.
type CheckIn struct {
	ID        string    `json:"id"`
	PlantID   string    `json:"plant_id"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	Mood      Mood      `json:"mood"`
}
