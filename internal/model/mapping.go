package model

import (
	"fmt"
	"strings"
)

// MappingStatus describes how a new-code section relates to the old one
type MappingStatus string

const (
	StatusReplaced MappingStatus = "replaced" // Provision carried over under a new number
	StatusAmended  MappingStatus = "amended"  // Provision carried over with substantive changes
	StatusRepealed MappingStatus = "repealed" // Provision dropped without an equivalent
)

// ParseMappingStatus converts a raw string into a MappingStatus, rejecting
// anything outside the three-valued set
func ParseMappingStatus(s string) (MappingStatus, error) {
	switch st := MappingStatus(strings.TrimSpace(s)); st {
	case StatusReplaced, StatusAmended, StatusRepealed:
		return st, nil
	default:
		return "", fmt.Errorf("unknown mapping status: %q", s)
	}
}

// Valid reports whether the status is one of the three accepted values
func (s MappingStatus) Valid() bool {
	switch s {
	case StatusReplaced, StatusAmended, StatusRepealed:
		return true
	}
	return false
}

// Mapping records the correspondence between an old-code section and its
// new-code equivalent
type Mapping struct {
	OldCode    CodeFamily    `json:"old_code"`
	OldSection string        `json:"old_section"`
	NewCode    CodeFamily    `json:"new_code"`
	NewSection string        `json:"new_section"`
	Status     MappingStatus `json:"status"`
}

// Validate checks the mapping's enumerated fields at construction time
func (m *Mapping) Validate() error {
	if !m.OldCode.Valid() {
		return fmt.Errorf("mapping %s: unknown old code family %q", m.OldSection, m.OldCode)
	}
	if !m.NewCode.Valid() {
		return fmt.Errorf("mapping %s: unknown new code family %q", m.OldSection, m.NewCode)
	}
	if !m.Status.Valid() {
		return fmt.Errorf("mapping %s -> %s: unknown status %q", m.OldSection, m.NewSection, m.Status)
	}
	return nil
}

// MappingRef is the display form of a mapping attached to an analysis,
// e.g. {"ipc": "IPC 302", "bns": "BNS 103", "status": "replaced"}
type MappingRef struct {
	IPC    string        `json:"ipc"`
	BNS    string        `json:"bns"`
	Status MappingStatus `json:"status"`
}
