package testkit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Run executes a single scenario file against a dispatcher built by newStore.
func Run(t *testing.T, newStore Factory, scenarioPath string) {
	t.Helper()

	s, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("testkit: load scenario %q: %v", scenarioPath, err)
	}

	t.Run(s.Name, func(t *testing.T) {
		runScenario(t, newStore, s)
	})
}

// RunDir discovers every *.json file in dir and runs each as a subtest.
// Scenario files that fail to parse are reported as test failures.
func RunDir(t *testing.T, newStore Factory, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			t.Errorf("testkit: load %q: %v", path, err)
			continue
		}
		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, newStore, s)
		})
	}
}

func runScenario(t *testing.T, newStore Factory, s *Scenario) {
	t.Helper()

	d := newStore(s)
	results, err := Replay(d, s)
	require.NoError(t, err, "[%s] replay", s.Name)

	for _, r := range results {
		AssertStepOutcome(t, s, r)
	}
	AssertExpectation(t, s, d)
}
