package workflow

import (
	"testing"
)

func TestMetadataValue(t *testing.T) {
	tests := []struct {
		name     string
		metadata Metadata
		wantNil  bool
	}{
		{"empty metadata stores as NULL", Metadata{}, true},
		{"checklist only", Metadata{Checklist: []string{"IT Setup"}}, false},
		{"department snapshot only", Metadata{OldDepartment: "Sales", NewDepartment: "Marketing"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.metadata.Value()
			if err != nil {
				t.Fatalf("Value() error = %v", err)
			}
			if (value == nil) != tt.wantNil {
				t.Errorf("Value() = %v, wantNil %v", value, tt.wantNil)
			}
		})
	}
}

func TestMetadataScan(t *testing.T) {
	var m Metadata
	payload := []byte(`{"checklist":["A","B"],"oldDepartment":"Sales","newDepartment":"Marketing"}`)
	if err := m.Scan(payload); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(m.Checklist) != 2 {
		t.Errorf("Checklist length = %d, want 2", len(m.Checklist))
	}
	if m.OldDepartment != "Sales" || m.NewDepartment != "Marketing" {
		t.Errorf("department snapshot = %q -> %q", m.OldDepartment, m.NewDepartment)
	}
}

func TestMetadataScanNil(t *testing.T) {
	var m Metadata
	if err := m.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if m.Checklist != nil || m.OldDepartment != "" {
		t.Errorf("Scan(nil) mutated metadata: %+v", m)
	}
}

func TestMetadataScanInvalidType(t *testing.T) {
	var m Metadata
	if err := m.Scan(42); err == nil {
		t.Error("Scan(42) expected error, got nil")
	}
}
