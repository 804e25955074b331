package analyze

import "github.com/aumai/openjudge/internal/model"

// Rule associates trigger keywords with the sections they point at. A rule
// fires when any keyword occurs as a substring of the lowercased input.
type Rule struct {
	Keywords []string    // Trigger substrings, all lowercase
	Sections []model.Ref // Target sections, ordered
	Category string      // Offence category label
}

// keywordRules is the fixed, ordered keyword-to-section table. Matching is
// deliberately permissive: substrings may fire inside compound words, which
// is a documented source of false positives.
var keywordRules = []Rule{
	{Keywords: []string{"murder", "killed", "death", "homicide"}, Sections: refs("302", "103"), Category: "murder"},
	{Keywords: []string{"attempt to murder", "attempted murder"}, Sections: refs("307", "109"), Category: "attempt to murder"},
	{Keywords: []string{"culpable homicide", "manslaughter"}, Sections: refs("304", "105"), Category: "culpable homicide"},
	{Keywords: []string{"rape", "sexual assault"}, Sections: refs("376", "64"), Category: "rape"},
	{Keywords: []string{"theft", "stealing", "stolen"}, Sections: refs("379", "303"), Category: "theft"},
	{Keywords: []string{"dwelling", "house theft", "home theft"}, Sections: refs("380", "305"), Category: "dwelling theft"},
	{Keywords: []string{"robbery", "snatching"}, Sections: refs("392", "309"), Category: "robbery"},
	{Keywords: []string{"dacoity", "gang robbery", "armed robbery"}, Sections: refs("395", "310"), Category: "dacoity"},
	{Keywords: []string{"cheating", "fraud", "deception", "scam"}, Sections: refs("420", "318"), Category: "cheating"},
	{Keywords: []string{"breach of trust", "misappropriation"}, Sections: refs("406", "316"), Category: "criminal breach of trust"},
	{Keywords: []string{"domestic violence", "cruelty by husband", "marital cruelty"}, Sections: refs("498A", "85"), Category: "domestic cruelty"},
	{Keywords: []string{"dowry death", "dowry harassment", "dowry murder"}, Sections: refs("304B", "80"), Category: "dowry death"},
	{Keywords: []string{"kidnapping", "abduction", "missing child"}, Sections: refs("363", "137"), Category: "kidnapping"},
	{Keywords: []string{"molestation", "outrage modesty", "eve teasing physical"}, Sections: refs("354", "74"), Category: "assault on modesty"},
	{Keywords: []string{"hurt", "beating", "assault", "punch", "attack person"}, Sections: refs("323", "115"), Category: "causing hurt"},
	{Keywords: []string{"grievous hurt", "severe injury", "permanent injury"}, Sections: refs("325", "117"), Category: "grievous hurt"},
	{Keywords: []string{"wrongful restraint", "confined", "blocked path"}, Sections: refs("341", "126"), Category: "wrongful restraint"},
	{Keywords: []string{"threat", "intimidation", "threatening"}, Sections: refs("506", "351"), Category: "criminal intimidation"},
	{Keywords: []string{"conspiracy", "planning crime", "gang plan"}, Sections: refs("120B", "61"), Category: "criminal conspiracy"},
	{Keywords: []string{"rioting", "mob violence", "unlawful assembly"}, Sections: refs("147", "191"), Category: "rioting"},
	{Keywords: []string{"communal tension", "religious hatred", "caste violence"}, Sections: refs("153A", "196"), Category: "promoting enmity"},
	{Keywords: []string{"receiving stolen", "buying stolen"}, Sections: refs("411", "302"), Category: "receiving stolen property"},
	{Keywords: []string{"false evidence", "perjury", "false witness"}, Sections: refs("193", "229"), Category: "false evidence"},
	{Keywords: []string{"trespass", "breaking in", "unlawful entry"}, Sections: refs("447", "329"), Category: "criminal trespass"},
	{Keywords: []string{"rash driving", "dangerous driving", "road accident negligence"}, Sections: refs("279", "281"), Category: "rash driving"},
	{Keywords: []string{"negligence death", "accident death", "hit and run"}, Sections: refs("304A", "106"), Category: "death by negligence"},
	{Keywords: []string{"eve teasing", "gesture insult woman", "verbal harassment woman"}, Sections: refs("509", "79"), Category: "insulting woman's modesty"},
}

// refs builds the IPC/BNS section reference pair every rule carries.
func refs(ipc, bns string) []model.Ref {
	return []model.Ref{
		{Family: model.CodeIPC, Number: ipc},
		{Family: model.CodeBNS, Number: bns},
	}
}
