package fsys

import (
	"errors"
	"testing"
)

func TestValidateRelPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "app/Modules", false},
		{"current_dir", ".", false},
		{"dotdot_inside_name", "app/..Modules", false},
		{"cleaned_inside", "app/x/../Modules", false},
		{"absolute", "/etc/Modules", true},
		{"parent", "..", true},
		{"escapes", "../Modules", true},
		{"escapes_after_clean", "app/../../Modules", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrPathTraversal) {
					t.Errorf("ValidateRelPath(%q) error = %v, want ErrPathTraversal", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateRelPath(%q) unexpected error: %v", tt.path, err)
			}
		})
	}
}
