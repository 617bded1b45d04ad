// Package testcase stores example inputs and expected outputs per puzzle
// part, so solutions can be checked against the puzzle's examples before
// an answer is submitted.
package testcase

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Apsurt/aocenv/internal/config"
)

// Case is one example: an input and the output the solution should print.
type Case struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Set holds the saved cases for one puzzle day.
type Set struct {
	Part1 []Case `yaml:"part_1"`
	Part2 []Case `yaml:"part_2"`
}

// ForPart returns the cases for a part. Unknown parts yield nil.
func (s *Set) ForPart(part int) []Case {
	switch part {
	case 1:
		return s.Part1
	case 2:
		return s.Part2
	}
	return nil
}

// Add appends a case for a part.
func (s *Set) Add(part int, c Case) error {
	switch part {
	case 1:
		s.Part1 = append(s.Part1, c)
	case 2:
		s.Part2 = append(s.Part2, c)
	default:
		return fmt.Errorf("testcase: part %d must be 1 or 2", part)
	}
	return nil
}

// Delete removes the index-th case (1-based, matching the listing) for a
// part.
func (s *Set) Delete(part, index int) error {
	cases := s.ForPart(part)
	if index < 1 || index > len(cases) {
		return fmt.Errorf("testcase: test #%d for part %d does not exist", index, part)
	}
	cases = append(cases[:index-1], cases[index:]...)
	switch part {
	case 1:
		s.Part1 = cases
	case 2:
		s.Part2 = cases
	default:
		return fmt.Errorf("testcase: part %d must be 1 or 2", part)
	}
	return nil
}

func path(root string, year, day int) string {
	return filepath.Join(root, config.Dir, "tests", fmt.Sprint(year), fmt.Sprintf("%02d.yaml", day))
}

// Load reads the case set for a puzzle day. A missing file is an empty set.
func Load(root string, year, day int) (*Set, error) {
	data, err := os.ReadFile(path(root, year, day))
	if errors.Is(err, os.ErrNotExist) {
		return &Set{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("testcase: read: %w", err)
	}
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testcase: parse: %w", err)
	}
	return &s, nil
}

// Save writes the case set for a puzzle day.
func Save(root string, year, day int, s *Set) error {
	p := path(root, year, day)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("testcase: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("testcase: marshal: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("testcase: write: %w", err)
	}
	return nil
}
