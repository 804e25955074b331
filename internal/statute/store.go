package statute

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aumai/openjudge/internal/model"
)

// Store provides read-only access to the static statute tables: IPC
// sections, BNS sections, and the IPC-to-BNS transition mapping. All data
// is loaded once at construction and immutable afterwards, so a single
// Store may be shared by concurrent callers without locking.
type Store struct {
	sections map[model.CodeFamily]map[string]model.Section
	mappings map[string]model.Mapping // keyed by old (IPC) section number
}

var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Default returns the process-wide shared store. The embedded tables are
// validated by the package tests, so a failure here is a programming error.
func Default() *Store {
	defaultOnce.Do(func() {
		s, err := New()
		if err != nil {
			panic(fmt.Sprintf("statute: invalid embedded tables: %v", err))
		}
		defaultStore = s
	})
	return defaultStore
}

// New builds a store from the embedded tables, validating every record.
// Invalid enumeration values, duplicate (code, number) pairs, and duplicate
// mappings for one old section are rejected here, never during lookups.
func New() (*Store, error) {
	s := &Store{
		sections: make(map[model.CodeFamily]map[string]model.Section),
		mappings: make(map[string]model.Mapping),
	}

	for _, table := range [][]model.Section{ipcSections, bnsSections} {
		for _, sec := range table {
			if err := sec.Validate(); err != nil {
				return nil, err
			}
			byNumber := s.sections[sec.Code]
			if byNumber == nil {
				byNumber = make(map[string]model.Section)
				s.sections[sec.Code] = byNumber
			}
			if _, dup := byNumber[sec.Number]; dup {
				return nil, fmt.Errorf("duplicate section %s %s", sec.Code, sec.Number)
			}
			byNumber[sec.Number] = sec
		}
	}

	for _, m := range ipcToBNSMappings {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.mappings[m.OldSection]; dup {
			return nil, fmt.Errorf("duplicate mapping for %s %s", m.OldCode, m.OldSection)
		}
		s.mappings[m.OldSection] = m
	}

	return s, nil
}

// Lookup returns the section with the given code family and number.
// The number is trimmed of surrounding whitespace and matched exactly
// (case-sensitive, since numbers may contain letters). Absence is a
// normal outcome, reported through the boolean, never an error.
func (s *Store) Lookup(family model.CodeFamily, number string) (*model.Section, bool) {
	byNumber, ok := s.sections[family]
	if !ok {
		return nil, false
	}
	sec, ok := byNumber[strings.TrimSpace(number)]
	if !ok {
		return nil, false
	}
	return &sec, true
}

// MapToNewCode returns the BNS mapping for an old IPC section number,
// or absent when no transition is recorded.
func (s *Store) MapToNewCode(oldNumber string) (*model.Mapping, bool) {
	m, ok := s.mappings[strings.TrimSpace(oldNumber)]
	if !ok {
		return nil, false
	}
	return &m, true
}

// AllOf returns every section of the given code family. Order is
// unspecified and need not be stable across calls.
func (s *Store) AllOf(family model.CodeFamily) []model.Section {
	byNumber := s.sections[family]
	out := make([]model.Section, 0, len(byNumber))
	for _, sec := range byNumber {
		out = append(out, sec)
	}
	return out
}
