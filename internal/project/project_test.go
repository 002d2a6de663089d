package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadPackageJSON(t *testing.T) {
	dir := t.TempDir()
	content := `{
  // generated by create-vue
  "name": "my-app",
  "version": "0.0.0",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
  },
}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	pkg, err := ReadPackageJSON(dir)
	if err != nil {
		t.Fatalf("ReadPackageJSON() error: %v", err)
	}
	if pkg.Name != "my-app" {
		t.Errorf("Name = %q, want my-app", pkg.Name)
	}
	if !pkg.HasScript("dev") {
		t.Error("expected dev script")
	}
	if pkg.HasScript("serve") {
		t.Error("unexpected serve script")
	}
	names := pkg.ScriptNames()
	if len(names) != 2 || names[0] != "build" || names[1] != "dev" {
		t.Errorf("ScriptNames() = %v", names)
	}
}

func TestReadPackageJSON_Missing(t *testing.T) {
	if _, err := ReadPackageJSON(t.TempDir()); err == nil {
		t.Error("expected error for missing package.json")
	}
}
