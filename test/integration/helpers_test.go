//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeGenerator emulates `npx create-vue@latest <name> --template vue`.
const fakeGenerator = `#!/bin/sh
echo "$@" >> "$FAKE_LOG"
[ "$FAKE_FAIL" = "npx" ] && exit 3
name="$2"
mkdir -p "$name/src/assets" "$name/src/components/icons" "$name/src/components/__tests__"
cat > "$name/vite.config.js" <<'CFG'
import { defineConfig } from 'vite'
import vue from '@vitejs/plugin-vue'

export default defineConfig({
  plugins: [vue()],
})
CFG
printf '{"name":"%s","scripts":{"dev":"vite"}}\n' "$name" > "$name/package.json"
printf "import './assets/main.css'\n\nimport { createApp } from 'vue'\nimport App from './App.vue'\n\ncreateApp(App).mount('#app')\n" > "$name/src/main.js"
echo "<template><HelloWorld /></template>" > "$name/src/App.vue"
echo "<svg/>" > "$name/src/assets/logo.svg"
echo "body{}" > "$name/src/assets/main.css"
echo "x" > "$name/src/components/HelloWorld.vue"
echo "x" > "$name/src/components/__tests__/HelloWorld.spec.js"
echo "x" > "$name/src/components/icons/IconDocs.vue"
`

// fakeInstaller emulates `<pm> install`.
const fakeInstaller = `#!/bin/sh
echo "$(basename "$0") $@" >> "$FAKE_LOG"
[ "$FAKE_FAIL" = "install" ] && exit 1
mkdir -p node_modules
`

// testEnv holds paths to isolated test directories.
type testEnv struct {
	BinDir  string // fake tools, prepended to PATH
	WorkDir string // where projects are created
	LogPath string // every fake invocation is appended here
}

// setupTestEnv puts fake npx/npm/pnpm/yarn on PATH and isolates config.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	env := &testEnv{
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.LogPath = filepath.Join(env.BinDir, "calls.log")

	writeExecutable(t, filepath.Join(env.BinDir, "npx"), fakeGenerator)
	for _, pm := range []string{"npm", "pnpm", "yarn"} {
		writeExecutable(t, filepath.Join(env.BinDir, pm), fakeInstaller)
	}

	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("FAKE_LOG", env.LogPath)
	t.Setenv("FAKE_FAIL", "")
	t.Setenv("INIT_VUE_HOME", t.TempDir())
	return env
}

func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed", path)
	}
}
