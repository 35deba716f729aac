package toolchain

import "testing"

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		line    string
		want    string
		wantErr bool
	}{
		{"emcc (Emscripten gcc/clang-like replacement) 3.1.61", "3.1.61", false},
		{"v20.11.1", "20.11.1", false},
		{"1.0.34 (git~1.0.35-27-gfc42b1a6)", "1.0.34", false},
		{"git version 2.44.0", "2.44.0", false},
		{"no digits here", "", true},
	}

	for _, tt := range tests {
		got, err := ExtractVersion(tt.line)
		if (err != nil) != tt.wantErr {
			t.Errorf("ExtractVersion(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractVersion(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestMeetsMinimum(t *testing.T) {
	tests := []struct {
		line string
		min  string
		want bool
	}{
		{"v20.11.1", "18.0.0", true},
		{"v16.20.2", "18.0.0", false},
		{"emcc (Emscripten) 3.1.61", "3.0.0", true},
		{"emcc (Emscripten) 2.0.34", "3.0.0", false},
		{"git version 2.44.0", "2.44.0", true},
	}

	for _, tt := range tests {
		got, err := MeetsMinimum(tt.line, tt.min)
		if err != nil {
			t.Errorf("MeetsMinimum(%q, %q) error: %v", tt.line, tt.min, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MeetsMinimum(%q, %q) = %v, want %v", tt.line, tt.min, got, tt.want)
		}
	}
}

func TestMeetsMinimumNoVersion(t *testing.T) {
	if _, err := MeetsMinimum("garbage output", "1.0.0"); err == nil {
		t.Error("expected error for unparseable version line")
	}
}
