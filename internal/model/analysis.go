package model

// Disclaimer is attached verbatim to every analysis result
const Disclaimer = "This tool does not provide legal advice." +
	" Consult a qualified legal professional."

// Analysis is the result of matching one case description against the
// statute tables
type Analysis struct {
	CaseDescription  string       `json:"case_description"`   // Original input text, preserved as given
	RelevantSections []Section    `json:"relevant_sections"`  // Matched sections, deduplicated, insertion order
	IPCToBNSMapping  []MappingRef `json:"ipc_to_bns_mapping"` // IPC -> BNS transitions for matched IPC sections
	Summary          string       `json:"summary"`            // Human-readable summary of the analysis
	Disclaimer       string       `json:"disclaimer"`         // Always non-empty
}
