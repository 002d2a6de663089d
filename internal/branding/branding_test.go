package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "init-vue" {
		t.Errorf("CLIName() = %q, want %q", got, "init-vue")
	}
	if got := HomeDir(); got != ".init-vue" {
		t.Errorf("HomeDir() = %q, want %q", got, ".init-vue")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "INIT_VUE_HOME" {
		t.Errorf("EnvVar(home) = %q, want %q", got, "INIT_VUE_HOME")
	}
}
