package app

import (
	"strings"
	"testing"
)

func TestSubcommands_Registered(t *testing.T) {
	want := []string{"suggest", "recommend", "intent", "compare", "templates", "stats", "history", "mcp"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		name := cmd.Use
		if idx := strings.IndexByte(name, ' '); idx >= 0 {
			name = name[:idx]
		}
		registered[name] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("%s subcommand not registered on rootCmd", name)
		}
	}
}

func TestPersistentFlags_Registered(t *testing.T) {
	for _, name := range []string{"config", "no-color", "json", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s not registered", name)
		}
	}
}

func TestSetVersion(t *testing.T) {
	defer SetVersion(appVersion)

	SetVersion("1.2.3")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("rootCmd.Version = %q", rootCmd.Version)
	}
}
