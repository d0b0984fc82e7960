package version

import "testing"

// =============================================================================
// Compare Tests
// =============================================================================

// TestCompare covers ordering across versions of equal and unequal length.
func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "2.6.28", "2.6.28", 0},
		{"trailing zero equal", "4.15.0", "4.15", 0},
		{"trailing zeros equal", "3.0.0.0", "3", 0},
		{"numeric not lexicographic", "2.6.5", "2.6.28", -1},
		{"less", "2.4.20", "2.6.28", -1},
		{"greater", "2.6.29", "2.6.28", 1},
		{"major greater", "5.10.0", "2.6.28", 1},
		{"longer and greater", "2.6.28.1", "2.6.28", 1},
		{"shorter and less", "2.6", "2.6.28", -1},
		{"single component", "3", "2.6.28", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Compare(%q, %q) error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestCompare_Symmetric verifies that swapping the arguments flips the sign.
func TestCompare_Symmetric(t *testing.T) {
	got, err := Compare("2.6.28", "2.6.5")
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if got != 1 {
		t.Errorf("Compare(\"2.6.28\", \"2.6.5\") = %d, want 1", got)
	}
}

// TestCompare_Malformed verifies that non-numeric components are rejected
// rather than silently ordered.
func TestCompare_Malformed(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"alpha component", "2.6.x", "2.6.28"},
		{"alpha in second", "2.6.28", "2.6.x"},
		{"empty string", "", "2.6.28"},
		{"trailing dot", "2.6.", "2.6.28"},
		{"double dot", "2..6", "2.6.28"},
		{"negative component", "2.-6.28", "2.6.28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compare(tt.a, tt.b); err == nil {
				t.Errorf("Compare(%q, %q) succeeded, want error", tt.a, tt.b)
			}
		})
	}
}

// =============================================================================
// LeadingNumeric Tests
// =============================================================================

// TestLeadingNumeric verifies extraction of the dotted-numeric head from
// real-world uname release strings.
func TestLeadingNumeric(t *testing.T) {
	tests := []struct {
		release string
		want    string
	}{
		{"5.10.0-amd64", "5.10.0"},
		{"4.15.0-112-generic", "4.15.0"},
		{"2.6.32-754.el6.x86_64", "2.6.32"},
		{"2.4.20", "2.4.20"},
		{"4.14+", "4.14"},
		{"5.15.167.4-microsoft-standard-WSL2", "5.15.167.4"},
		{"weird", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := LeadingNumeric(tt.release)
		if got != tt.want {
			t.Errorf("LeadingNumeric(%q) = %q, want %q", tt.release, got, tt.want)
		}
	}
}
