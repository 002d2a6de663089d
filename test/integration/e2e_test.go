//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/initvue/init-vue/internal/logging"
	"github.com/initvue/init-vue/internal/pkgmanager"
	"github.com/initvue/init-vue/internal/preset"
	"github.com/initvue/init-vue/internal/prompt"
	"github.com/initvue/init-vue/internal/runtime"
	"github.com/initvue/init-vue/internal/scaffold"
)

func runScaffold(t *testing.T, env *testEnv, pm pkgmanager.Manager) (*scaffold.Result, error) {
	t.Helper()
	p, err := preset.Default()
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	return scaffold.Run(context.Background(), scaffold.Options{
		WorkDir: env.WorkDir,
		Answers: prompt.Answers{ProjectName: "demo", PackageManager: pm, Port: 4173},
		Preset:  p,
		Runner:  &runtime.ExecRunner{Stdout: &out, Stderr: &out, Stdin: strings.NewReader("")},
		Log:     logging.Nop(),
	})
}

// TestFullFlow drives the real exec path: generator, patch, install, cleanup.
func TestFullFlow(t *testing.T) {
	env := setupTestEnv(t)

	res, err := runScaffold(t, env, pkgmanager.Yarn)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	calls := env.calls(t)
	want := []string{"create-vue@latest demo --template vue", "yarn install"}
	if strings.Join(calls, "|") != strings.Join(want, "|") {
		t.Errorf("calls = %v, want %v", calls, want)
	}

	dir := filepath.Join(env.WorkDir, "demo")
	if !strings.Contains(readFile(t, filepath.Join(dir, "vite.config.js")), "port: 4173,") {
		t.Error("port not configured")
	}
	assertFileExists(t, filepath.Join(dir, "node_modules"))
	assertFileExists(t, filepath.Join(dir, "src/assets"))
	assertNotExists(t, filepath.Join(dir, "src/assets/logo.svg"))
	assertFileExists(t, filepath.Join(dir, "src/components/icons"))
	assertNotExists(t, filepath.Join(dir, "src/components/icons/IconDocs.vue"))
	assertNotExists(t, filepath.Join(dir, "src/components/HelloWorld.vue"))
	assertNotExists(t, filepath.Join(dir, "src/components/__tests__"))

	if strings.Contains(readFile(t, filepath.Join(dir, "src/main.js")), "main.css") {
		t.Error("stylesheet import not removed")
	}
	if res.DevCommand != "yarn run dev" {
		t.Errorf("DevCommand = %q", res.DevCommand)
	}
}

func TestGeneratorFailure(t *testing.T) {
	env := setupTestEnv(t)
	t.Setenv("FAKE_FAIL", "npx")

	_, err := runScaffold(t, env, pkgmanager.NPM)
	if err == nil {
		t.Fatal("expected error")
	}
	if calls := env.calls(t); len(calls) != 1 {
		t.Errorf("only the generator may run, calls = %v", calls)
	}
	assertNotExists(t, filepath.Join(env.WorkDir, "demo"))
}

func TestInstallFailure(t *testing.T) {
	env := setupTestEnv(t)
	t.Setenv("FAKE_FAIL", "install")

	_, err := runScaffold(t, env, pkgmanager.PNPM)
	if err == nil {
		t.Fatal("expected error")
	}
	// Boilerplate must still be there: cleanup never ran.
	assertFileExists(t, filepath.Join(env.WorkDir, "demo", "src/components/HelloWorld.vue"))
}
