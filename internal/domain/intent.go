// Package domain contains core domain types for the campus chatbot.
package domain

import (
	"fmt"
	"strings"
)

// Intent is a stored (pattern, response) pair used to answer chat queries.
// The tag is a human-readable label and plays no part in matching.
type Intent struct {
	ID       int64  `json:"id"`
	Tag      string `json:"tag"`
	Pattern  string `json:"pattern"`
	Response string `json:"response"`
}

// Validate checks that all fields required for insert/update are present.
func (i *Intent) Validate() error {
	if strings.TrimSpace(i.Tag) == "" {
		return fmt.Errorf("tag cannot be empty")
	}
	if strings.TrimSpace(i.Pattern) == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if strings.TrimSpace(i.Response) == "" {
		return fmt.Errorf("response cannot be empty")
	}
	return nil
}
