package pkgmanager

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Manager
		wantErr bool
	}{
		{"npm", NPM, false},
		{"PNPM", PNPM, false},
		{" yarn ", Yarn, false},
		{"bun", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNamesOrder(t *testing.T) {
	want := []string{"npm", "pnpm", "yarn"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunScriptCommand(t *testing.T) {
	if got := PNPM.RunScriptCommand("dev"); got != "pnpm run dev" {
		t.Errorf("RunScriptCommand() = %q, want %q", got, "pnpm run dev")
	}
}
