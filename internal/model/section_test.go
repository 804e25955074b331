package model

import "testing"

func TestParseCodeFamily_Known(t *testing.T) {
	known := []string{"IPC", "BNS", "CrPC", "BNSS", "IT Act", "POCSO"}

	for _, raw := range known {
		family, err := ParseCodeFamily(raw)
		if err != nil {
			t.Errorf("ParseCodeFamily(%q): unexpected error: %v", raw, err)
			continue
		}
		if string(family) != raw {
			t.Errorf("ParseCodeFamily(%q) = %q", raw, family)
		}
		if !family.Valid() {
			t.Errorf("family %q should be valid", family)
		}
	}
}

func TestParseCodeFamily_TrimsWhitespace(t *testing.T) {
	family, err := ParseCodeFamily("  IPC  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if family != CodeIPC {
		t.Errorf("expected IPC, got %q", family)
	}
}

func TestParseCodeFamily_Unknown(t *testing.T) {
	unknown := []string{"INVALID_CODE", "ipc", "", "Penal Code"}

	for _, raw := range unknown {
		if _, err := ParseCodeFamily(raw); err == nil {
			t.Errorf("ParseCodeFamily(%q): expected error, got none", raw)
		}
	}
}

func TestSectionValidate(t *testing.T) {
	valid := Section{
		Code:        CodeIPC,
		Number:      "302",
		Title:       "Murder",
		Description: "Punishment for murder.",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid section rejected: %v", err)
	}

	badCode := valid
	badCode.Code = "INVALID_CODE"
	if err := badCode.Validate(); err == nil {
		t.Error("expected error for unknown code family")
	}

	emptyNumber := valid
	emptyNumber.Number = "   "
	if err := emptyNumber.Validate(); err == nil {
		t.Error("expected error for empty section number")
	}
}

func TestSectionOptionalFields(t *testing.T) {
	// punishment and bailable may both be absent (e.g. IPC 34)
	section := Section{
		Code:        CodeIPC,
		Number:      "34",
		Title:       "Common intention",
		Description: "Acts by several persons.",
	}
	if err := section.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if section.Punishment != nil {
		t.Error("expected nil punishment")
	}
	if section.Bailable != nil {
		t.Error("expected nil bailable (tri-state unknown)")
	}
}

func TestRefDisplay(t *testing.T) {
	tests := []struct {
		ref  Ref
		want string
	}{
		{Ref{Family: CodeIPC, Number: "302"}, "IPC 302"},
		{Ref{Family: CodeBNS, Number: "3(5)"}, "BNS 3(5)"},
	}

	for _, tt := range tests {
		if got := tt.ref.Display(); got != tt.want {
			t.Errorf("Display() = %q, want %q", got, tt.want)
		}
	}
}
