package model

import "testing"

func TestParseMappingStatus_Known(t *testing.T) {
	for _, raw := range []string{"replaced", "amended", "repealed"} {
		status, err := ParseMappingStatus(raw)
		if err != nil {
			t.Errorf("ParseMappingStatus(%q): unexpected error: %v", raw, err)
			continue
		}
		if string(status) != raw {
			t.Errorf("ParseMappingStatus(%q) = %q", raw, status)
		}
	}
}

func TestParseMappingStatus_Unknown(t *testing.T) {
	for _, raw := range []string{"unknown_status", "REPLACED", ""} {
		if _, err := ParseMappingStatus(raw); err == nil {
			t.Errorf("ParseMappingStatus(%q): expected error, got none", raw)
		}
	}
}

func TestMappingValidate(t *testing.T) {
	valid := Mapping{
		OldCode:    CodeIPC,
		OldSection: "302",
		NewCode:    CodeBNS,
		NewSection: "103",
		Status:     StatusReplaced,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid mapping rejected: %v", err)
	}

	badStatus := valid
	badStatus.Status = "superseded"
	if err := badStatus.Validate(); err == nil {
		t.Error("expected error for unknown status")
	}

	badOldCode := valid
	badOldCode.OldCode = "XYZ"
	if err := badOldCode.Validate(); err == nil {
		t.Error("expected error for unknown old code family")
	}

	badNewCode := valid
	badNewCode.NewCode = "XYZ"
	if err := badNewCode.Validate(); err == nil {
		t.Error("expected error for unknown new code family")
	}
}

func TestMappingValidate_Repealed(t *testing.T) {
	m := Mapping{
		OldCode:    CodeIPC,
		OldSection: "377",
		NewCode:    CodeBNS,
		NewSection: "0",
		Status:     StatusRepealed,
	}
	if err := m.Validate(); err != nil {
		t.Errorf("repealed mapping rejected: %v", err)
	}
}
