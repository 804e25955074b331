package analyze

import (
	"fmt"
	"strings"

	"github.com/aumai/openjudge/internal/model"
	"github.com/aumai/openjudge/internal/statute"
)

// Analyzer matches free-text case descriptions against the statute tables
// through keyword substring matching. It holds no mutable state; one
// instance may serve concurrent callers.
type Analyzer struct {
	store *statute.Store
	rules []Rule
}

// NewAnalyzer creates an analyzer backed by the shared statute store
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithStore(statute.Default())
}

// NewAnalyzerWithStore creates an analyzer backed by the given store
func NewAnalyzerWithStore(store *statute.Store) *Analyzer {
	return &Analyzer{
		store: store,
		rules: keywordRules,
	}
}

// Analyze performs keyword-based legal analysis on a case description.
// The call is pure and deterministic; no input, including the empty
// string, produces an error. An input that matches nothing yields an
// empty section list and an advisory summary.
func (a *Analyzer) Analyze(caseDescription string) model.Analysis {
	lower := strings.ToLower(caseDescription)

	// Non-nil so an empty result serializes as [], not null
	sections := []model.Section{}
	mappings := []model.MappingRef{}
	var categories []string
	seenRefs := make(map[model.Ref]bool)
	seenMappings := make(map[string]bool)

	for _, rule := range a.rules {
		if !rule.fires(lower) {
			continue
		}

		for _, ref := range rule.Sections {
			if seenRefs[ref] {
				continue
			}
			seenRefs[ref] = true
			if sec, ok := a.store.Lookup(ref.Family, ref.Number); ok {
				sections = append(sections, *sec)
			}
		}

		if !containsString(categories, rule.Category) {
			categories = append(categories, rule.Category)
		}

		// Record the BNS transition for every matched IPC reference
		for _, ref := range rule.Sections {
			if ref.Family != model.CodeIPC {
				continue
			}
			m, ok := a.store.MapToNewCode(ref.Number)
			if !ok {
				continue
			}
			oldRef := model.Ref{Family: m.OldCode, Number: m.OldSection}.Display()
			if seenMappings[oldRef] {
				continue
			}
			seenMappings[oldRef] = true
			mappings = append(mappings, model.MappingRef{
				IPC:    oldRef,
				BNS:    model.Ref{Family: m.NewCode, Number: m.NewSection}.Display(),
				Status: m.Status,
			})
		}
	}

	return model.Analysis{
		CaseDescription:  caseDescription,
		RelevantSections: sections,
		IPCToBNSMapping:  mappings,
		Summary:          buildSummary(sections, categories),
		Disclaimer:       model.Disclaimer,
	}
}

// fires reports whether any of the rule's keywords occurs in the
// lowercased input. One matching keyword is enough; there is no word
// boundary requirement.
func (r Rule) fires(lowerText string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowerText, kw) {
			return true
		}
	}
	return false
}

// buildSummary assembles the human-readable summary. With no matches it
// produces a fixed advisory recommending professional consultation.
func buildSummary(sections []model.Section, categories []string) string {
	if len(sections) == 0 {
		return "No specific IPC/BNS sections could be matched to the case description." +
			" The case may involve civil law, special statutes, or requires more detail." +
			" Consult a qualified advocate for proper legal analysis."
	}

	var ipcRefs, bnsRefs []string
	for _, sec := range sections {
		switch sec.Code {
		case model.CodeIPC:
			ipcRefs = append(ipcRefs, sec.Number)
		case model.CodeBNS:
			bnsRefs = append(bnsRefs, sec.Number)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The case potentially involves the following offences: %s. ", strings.Join(categories, ", "))
	if len(ipcRefs) > 0 {
		fmt.Fprintf(&b, "Relevant IPC sections: %s. ", strings.Join(ipcRefs, ", "))
	}
	if len(bnsRefs) > 0 {
		fmt.Fprintf(&b, "Corresponding BNS 2023 sections: %s. ", strings.Join(bnsRefs, ", "))
	}
	b.WriteString("Note: The Bharatiya Nyaya Sanhita (BNS) 2023 replaced the IPC from 1 July 2024." +
		" New cases are charged under BNS; old cases under IPC.")
	return b.String()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
