package models

import "time"

// Goal is a free-text target the user can tick off.
type Goal struct {
	ID          int64     `json:"id,string" yaml:"id"`
	UserID      int64     `json:"-" yaml:"-"`
	Title       string    `json:"title" yaml:"title"`
	IsCompleted bool      `json:"isCompleted" yaml:"is_completed"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

// GoalUpdate carries a partial goal update; nil fields are left untouched.
type GoalUpdate struct {
	Title       *string `json:"title"`
	IsCompleted *bool   `json:"isCompleted"`
}
