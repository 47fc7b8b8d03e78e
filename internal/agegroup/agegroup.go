// Package agegroup maps rounded readability levels to reader ages and US grades.
package agegroup

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a score does not round to a known level.
var ErrOutOfRange = errors.New("score out of supported range")

// Group is one row of the level table.
type Group struct {
	Level  int    `json:"level" yaml:"level"`
	MinAge int    `json:"min_age" yaml:"min_age"`
	MaxAge int    `json:"max_age" yaml:"max_age"`
	Grade  string `json:"grade" yaml:"grade"`
}

var groups = [...]Group{
	{Level: 1, MinAge: 5, MaxAge: 6, Grade: "Kindergarten"},
	{Level: 2, MinAge: 6, MaxAge: 7, Grade: "First Grade"},
	{Level: 3, MinAge: 7, MaxAge: 8, Grade: "Second Grade"},
	{Level: 4, MinAge: 8, MaxAge: 9, Grade: "Third Grade"},
	{Level: 5, MinAge: 9, MaxAge: 10, Grade: "Fourth Grade"},
	{Level: 6, MinAge: 10, MaxAge: 11, Grade: "Fifth Grade"},
	{Level: 7, MinAge: 11, MaxAge: 12, Grade: "Sixth Grade"},
	{Level: 8, MinAge: 12, MaxAge: 13, Grade: "Seventh Grade"},
	{Level: 9, MinAge: 13, MaxAge: 14, Grade: "Eighth Grade"},
	{Level: 10, MinAge: 14, MaxAge: 15, Grade: "Ninth Grade"},
	{Level: 11, MinAge: 15, MaxAge: 16, Grade: "Tenth Grade"},
	{Level: 12, MinAge: 16, MaxAge: 17, Grade: "Eleventh Grade"},
	{Level: 13, MinAge: 17, MaxAge: 18, Grade: "Twelfth Grade"},
	{Level: 14, MinAge: 18, MaxAge: 22, Grade: "College student"},
}

// Ages renders the age range as "<min>-<max>".
func (g Group) Ages() string {
	return fmt.Sprintf("%d-%d", g.MinAge, g.MaxAge)
}

// UpperAge returns the upper bound of the age range.
func (g Group) UpperAge() int {
	return g.MaxAge
}

// All returns a copy of the table ordered by level.
func All() []Group {
	out := make([]Group, len(groups))
	copy(out, groups[:])
	return out
}

// ByLevel returns the group with the given level.
func ByLevel(level int) (Group, error) {
	for _, g := range groups {
		if g.Level == level {
			return g, nil
		}
	}
	return Group{}, fmt.Errorf("level %d: %w", level, ErrOutOfRange)
}

// ForScore rounds score half-up and returns the matching group.
func ForScore(score float64) (Group, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return Group{}, fmt.Errorf("score %v: %w", score, ErrOutOfRange)
	}
	rounded := math.Floor(score + 0.5)
	if rounded < float64(groups[0].Level) || rounded > float64(groups[len(groups)-1].Level) {
		return Group{}, fmt.Errorf("score %.2f: %w", score, ErrOutOfRange)
	}
	return ByLevel(int(rounded))
}
