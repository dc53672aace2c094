package models

import "time"

// ExerciseType is the category of an exercise.
type ExerciseType string

const (
	ExerciseStrength ExerciseType = "strength"
	ExerciseCardio   ExerciseType = "cardio"
	ExerciseMindBody ExerciseType = "mindbody"
)

// IsValid reports whether t is a known category.
func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseStrength, ExerciseCardio, ExerciseMindBody:
		return true
	}
	return false
}

// Intensity levels accepted for mind-body exercises.
var Intensities = []string{"Light", "Moderate", "High"}

// IsValidIntensity checks if s is one of Intensities.
func IsValidIntensity(s string) bool {
	for _, v := range Intensities {
		if v == s {
			return true
		}
	}
	return false
}

// Workout is a named routine owned by a user.
type Workout struct {
	ID        int64      `json:"id" yaml:"id"`
	UserID    int64      `json:"-" yaml:"-"`
	Name      string     `json:"name" yaml:"name"`
	CreatedAt time.Time  `json:"createdAt" yaml:"created_at"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

// Exercise belongs to exactly one workout. Category fields that do not apply
// to Type are nil; a non-nil zero is a recorded zero.
type Exercise struct {
	ID       int64        `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Type     ExerciseType `json:"exerciseType" yaml:"exercise_type"`
	Position int          `json:"-" yaml:"-"`

	// strength
	Sets   *int     `json:"sets,omitempty" yaml:"sets,omitempty"`
	Reps   *int     `json:"reps,omitempty" yaml:"reps,omitempty"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`

	// cardio
	Distance *float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	Speed    *float64 `json:"speed,omitempty" yaml:"speed,omitempty"`

	// cardio and mindbody
	Duration *float64 `json:"duration,omitempty" yaml:"duration,omitempty"`

	// mindbody
	Intensity *string `json:"intensity,omitempty" yaml:"intensity,omitempty"`
}

// Normalize drops every field that does not belong to the exercise's category.
func (e *Exercise) Normalize() {
	switch e.Type {
	case ExerciseStrength:
		e.Distance, e.Speed, e.Duration, e.Intensity = nil, nil, nil, nil
	case ExerciseCardio:
		e.Sets, e.Reps, e.Weight, e.Intensity = nil, nil, nil, nil
	case ExerciseMindBody:
		e.Sets, e.Reps, e.Weight, e.Distance, e.Speed = nil, nil, nil, nil, nil
	}
}

// WorkoutLog records one completion of a workout.
type WorkoutLog struct {
	ID        int64     `json:"id" yaml:"id"`
	UserID    int64     `json:"-" yaml:"-"`
	WorkoutID int64     `json:"workoutId" yaml:"workout_id"`
	LoggedAt  time.Time `json:"loggedAt" yaml:"logged_at"`
	LoggedOn  string    `json:"date" yaml:"date"`
}
