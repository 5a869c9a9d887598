package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TestPath is the directory holding the scenario files
const TestPath = "testdata"

// LoadedSuite represents a suite with its source file path
type LoadedSuite struct {
	File  string
	Suite TestSuite
}

// LoadAllSuites walks the scenario directory and loads every suite
func LoadAllSuites() ([]LoadedSuite, error) {
	var loaded []LoadedSuite

	err := filepath.Walk(TestPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		suite, err := loadSuiteFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		relPath, _ := filepath.Rel(TestPath, path)
		loaded = append(loaded, LoadedSuite{File: relPath, Suite: suite})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

func loadSuiteFile(path string) (TestSuite, error) {
	var suite TestSuite

	data, err := os.ReadFile(path)
	if err != nil {
		return suite, err
	}
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return suite, err
	}
	return suite, nil
}
