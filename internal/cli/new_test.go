package cli

import "testing"

func TestValidateName(t *testing.T) {
	valid := []string{"my-wasm-app", "demo", "a1", "0start", "x-y-z"}
	for _, name := range valid {
		if err := validateName(name); err != nil {
			t.Errorf("validateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "-leading", "UPPER", "has space", "dot.name", "under_score"}
	for _, name := range invalid {
		if err := validateName(name); err == nil {
			t.Errorf("validateName(%q) = nil, want error", name)
		}
	}
}
