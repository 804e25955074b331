package model

import (
	"fmt"
	"strings"
)

// CodeFamily identifies which Indian legal code a section belongs to
type CodeFamily string

const (
	CodeIPC   CodeFamily = "IPC"    // Indian Penal Code, 1860
	CodeBNS   CodeFamily = "BNS"    // Bharatiya Nyaya Sanhita, 2023 (replaces IPC)
	CodeCrPC  CodeFamily = "CrPC"   // Code of Criminal Procedure, 1973
	CodeBNSS  CodeFamily = "BNSS"   // Bharatiya Nagarik Suraksha Sanhita, 2023 (replaces CrPC)
	CodeITAct CodeFamily = "IT Act" // Information Technology Act, 2000
	CodePOCSO CodeFamily = "POCSO"  // Protection of Children from Sexual Offences Act, 2012
)

// codeFamilies is the closed set of accepted code identifiers
var codeFamilies = map[CodeFamily]bool{
	CodeIPC:   true,
	CodeBNS:   true,
	CodeCrPC:  true,
	CodeBNSS:  true,
	CodeITAct: true,
	CodePOCSO: true,
}

// ParseCodeFamily converts a raw string into a CodeFamily, rejecting
// anything outside the fixed set
func ParseCodeFamily(s string) (CodeFamily, error) {
	f := CodeFamily(strings.TrimSpace(s))
	if !f.Valid() {
		return "", fmt.Errorf("unknown code family: %q", s)
	}
	return f, nil
}

// Valid reports whether the code family is one of the accepted identifiers
func (f CodeFamily) Valid() bool {
	return codeFamilies[f]
}

// Section represents a single numbered provision of an Indian legal code
type Section struct {
	Code        CodeFamily `json:"code"`           // Legal code family (IPC, BNS, ...)
	Number      string     `json:"section_number"` // Section number, may contain letters or parentheses (e.g. "498A", "3(5)")
	Title       string     `json:"title"`          // Short title of the provision
	Description string     `json:"description"`    // Full text of the provision
	Punishment  *string    `json:"punishment"`     // Prescribed punishment, nil when not applicable
	Bailable    *bool      `json:"bailable"`       // true = bailable, false = non-bailable, nil = depends on the offence
}

// Validate checks the section's enumerated fields at construction time
func (s *Section) Validate() error {
	if !s.Code.Valid() {
		return fmt.Errorf("section %s: unknown code family %q", s.Number, s.Code)
	}
	if strings.TrimSpace(s.Number) == "" {
		return fmt.Errorf("section of %s: empty section number", s.Code)
	}
	return nil
}

// Ref identifies a section by code family and number
type Ref struct {
	Family CodeFamily
	Number string
}

// Display returns the human-readable reference, e.g. "IPC 302"
func (r Ref) Display() string {
	return string(r.Family) + " " + r.Number
}
