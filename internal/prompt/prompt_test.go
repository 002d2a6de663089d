package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/initvue/init-vue/internal/pkgmanager"
)

func TestCollect_AllQuestions(t *testing.T) {
	in := strings.NewReader("my-app\n2\n8080\n")
	var out bytes.Buffer

	got, err := Collect(in, &out, Answers{}, 3000)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if got.ProjectName != "my-app" {
		t.Errorf("ProjectName = %q, want %q", got.ProjectName, "my-app")
	}
	if got.PackageManager != pkgmanager.PNPM {
		t.Errorf("PackageManager = %q, want pnpm", got.PackageManager)
	}
	if got.Port != 8080 {
		t.Errorf("Port = %d, want 8080", got.Port)
	}
	if !strings.Contains(out.String(), "3) yarn") {
		t.Errorf("menu not printed:\n%s", out.String())
	}
}

func TestCollect_LeavesRestInBufferedReader(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("my-app\n1\n\nyes\nno\n"))

	if _, err := Collect(in, &bytes.Buffer{}, Answers{}, 3000); err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	rest, err := io.ReadAll(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(rest) != "yes\nno\n" {
		t.Errorf("unread input = %q, want %q", rest, "yes\nno\n")
	}
}

func TestCollect_DefaultPort(t *testing.T) {
	in := strings.NewReader("my-app\n1\n\n")
	got, err := Collect(in, &bytes.Buffer{}, Answers{}, 3000)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if got.Port != 3000 {
		t.Errorf("Port = %d, want default 3000", got.Port)
	}
}

func TestCollect_SkipsPresetFields(t *testing.T) {
	// Only the port question should be asked.
	in := strings.NewReader("4000")
	var out bytes.Buffer

	got, err := Collect(in, &out, Answers{ProjectName: "site", PackageManager: pkgmanager.Yarn}, 3000)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if got.Port != 4000 {
		t.Errorf("Port = %d, want 4000", got.Port)
	}
	if strings.Contains(out.String(), "Project name") {
		t.Error("project name should not be asked when preset")
	}
	if strings.Contains(out.String(), "package manager") {
		t.Error("package manager should not be asked when preset")
	}
}

func TestCollect_CancelPackageManager(t *testing.T) {
	for _, answer := range []string{"0\n", "q\n", "\n"} {
		in := strings.NewReader("my-app\n" + answer)
		_, err := Collect(in, &bytes.Buffer{}, Answers{}, 3000)
		if !errors.Is(err, ErrNoPackageManager) {
			t.Errorf("answer %q: error = %v, want ErrNoPackageManager", answer, err)
		}
	}
}

func TestCollect_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty name", "\n1\n\n"},
		{"bad name", "../escape\n1\n\n"},
		{"menu out of range", "app\n7\n\n"},
		{"port not a number", "app\n1\nabc\n"},
		{"port out of range", "app\n1\n70000\n"},
		{"negative port", "app\n1\n-1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Collect(strings.NewReader(tt.input), &bytes.Buffer{}, Answers{}, 3000)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	for _, p := range []int{1, 3000, 65535} {
		if err := ValidatePort(p); err != nil {
			t.Errorf("ValidatePort(%d) error: %v", p, err)
		}
	}
	for _, p := range []int{0, -5, 65536} {
		if err := ValidatePort(p); err == nil {
			t.Errorf("ValidatePort(%d) expected error", p)
		}
	}
}
