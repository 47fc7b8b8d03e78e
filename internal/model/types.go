// Package model defines shared data structures.
package model

import (
	"github.com/verte-zerg/readage/internal/readability"
	"github.com/verte-zerg/readage/internal/report"
)

// Config defines the settings for one analysis run after flags and the
// config file have been merged.
type Config struct {
	Path string
	// Selection is empty when the user should be asked.
	Selection readability.Selection
	Format    report.Format
	Pick      bool
	LogLevel  string
}

// Preselected reports whether the selection is already known.
func (c Config) Preselected() bool {
	return c.Selection != ""
}
