package conformance

import "testing"

func TestConformance(t *testing.T) {
	suites, err := LoadAllSuites()
	if err != nil {
		t.Fatalf("Failed to load scenario suites: %v", err)
	}
	if len(suites) == 0 {
		t.Fatal("No scenario suites loaded")
	}

	for _, loaded := range suites {
		t.Run(loaded.File, func(t *testing.T) {
			for _, tc := range loaded.Suite.Tests {
				t.Run(tc.Name, func(t *testing.T) {
					if tc.Skip != "" {
						t.Skipf("Skipped: %s", tc.Skip)
					}
					if err := RunCase(tc); err != nil {
						t.Errorf("Scenario failed: %v", err)
					}
				})
			}
		})
	}
}

func TestLoadAllSuites(t *testing.T) {
	suites, err := LoadAllSuites()
	if err != nil {
		t.Fatalf("Failed to load suites: %v", err)
	}

	total := 0
	for _, loaded := range suites {
		if loaded.Suite.Name == "" {
			t.Errorf("%s: suite has no name", loaded.File)
		}
		for i, tc := range loaded.Suite.Tests {
			if tc.Name == "" {
				t.Errorf("%s: test %d has no name", loaded.File, i)
			}
			if tc.Value == nil {
				t.Errorf("%s: test %q has no value literal", loaded.File, tc.Name)
			}
			empty := tc.Expect.Print == nil && tc.Expect.Quoted == nil &&
				tc.Expect.Length == nil && tc.Expect.Truthy == nil &&
				tc.Expect.Compare == nil
			if empty {
				t.Errorf("%s: test %q has no expectations", loaded.File, tc.Name)
			}
			total++
		}
	}
	t.Logf("Loaded %d scenarios from %d files", total, len(suites))
}
