// Package checkfile loads check suites from .datacheck.yaml files.
package checkfile

import (
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/vertti/datacheck/pkg/binarycheck"
	"github.com/vertti/datacheck/pkg/check"
	"github.com/vertti/datacheck/pkg/frame"
)

// FileName is the suite file FindFile looks for.
const FileName = ".datacheck.yaml"

// Suite is a list of checks to run over a table.
type Suite struct {
	Requires string      `yaml:"requires"` // semver constraint on the datacheck version
	Columns  []string    `yaml:"columns"`  // subset of table columns, default all
	Checks   []CheckSpec `yaml:"checks"`
}

// CheckSpec names one check. Thresh only applies to mostly_same.
type CheckSpec struct {
	Name   string   `yaml:"name"`
	Thresh *float64 `yaml:"thresh"`
}

// FindFile returns explicitPath if set, otherwise searches startDir and its
// parents for FileName, stopping at the home directory or a git root.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", errors.Wrap(err, "check file not found")
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrap(err, "failed to get absolute path")
	}

	for {
		path := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.Newf("%s file not found", FileName)
}

// Load reads and validates a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading suite file
	if err != nil {
		return nil, errors.Wrap(err, "read check file")
	}
	return Parse(data)
}

// Parse decodes and validates a suite.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse check file")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) validate() error {
	if len(s.Checks) == 0 {
		return errors.New("at least one check is required")
	}
	if s.Requires != "" {
		if _, err := semver.NewConstraint(s.Requires); err != nil {
			return errors.Wrapf(err, "invalid requires constraint %q", s.Requires)
		}
	}
	seen := make(map[string]bool, len(s.Columns))
	for _, col := range s.Columns {
		if col == "" {
			return errors.New("columns must not contain empty names")
		}
		if seen[col] {
			return errors.Newf("column %q listed twice", col)
		}
		seen[col] = true
	}
	for i, spec := range s.Checks {
		if spec.Name == "" {
			return errors.Newf("checks[%d].name is required", i)
		}
		if spec.Thresh != nil && spec.Name != binarycheck.TitleMostlySame {
			return errors.Newf("check %s does not take thresh", spec.Name)
		}
		if _, err := spec.checker(); err != nil {
			return errors.Wrapf(err, "checks[%d]", i)
		}
	}
	return nil
}

func (c CheckSpec) checker() (check.Checker, error) {
	thresh := binarycheck.DefaultThresh
	if c.Thresh != nil {
		thresh = *c.Thresh
	}
	return binarycheck.NewChecker(c.Name, thresh)
}

// Checkers builds the suite's checks in file order.
func (s *Suite) Checkers() ([]check.Checker, error) {
	checkers := make([]check.Checker, 0, len(s.Checks))
	for _, spec := range s.Checks {
		c, err := spec.checker()
		if err != nil {
			return nil, err
		}
		checkers = append(checkers, c)
	}
	return checkers, nil
}

// CheckVersion returns an error if version does not satisfy Requires.
// Development builds ("dev" or empty) always pass.
func (s *Suite) CheckVersion(version string) error {
	if s.Requires == "" || version == "" || version == "dev" {
		return nil
	}
	constraint, err := semver.NewConstraint(s.Requires)
	if err != nil {
		return errors.Wrapf(err, "invalid requires constraint %q", s.Requires)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(err, "invalid version %q", version)
	}
	if !constraint.Check(v) {
		return errors.Newf("datacheck %s does not satisfy %q", version, s.Requires)
	}
	return nil
}

// Run narrows data to Columns, when set, and runs every check.
func (s *Suite) Run(data frame.Data) ([]check.Result, error) {
	if len(s.Columns) > 0 {
		tbl, ok := data.(*frame.Table)
		if !ok {
			return nil, errors.New("columns can only be selected from a table")
		}
		sub, err := tbl.Select(s.Columns...)
		if err != nil {
			return nil, err
		}
		data = sub
	}

	checkers, err := s.Checkers()
	if err != nil {
		return nil, err
	}
	return check.RunAll(data, checkers...)
}
