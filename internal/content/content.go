// Package content holds the static page copy: hero profile, skill groups and
// career history. The data is compiled into the binary from site.yaml.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

type JobStatus string

const (
	StatusCurrent  JobStatus = "Current"
	StatusPrevious JobStatus = "Previous"
)

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

type JobRecord struct {
	Status      JobStatus `yaml:"status"`
	Company     string    `yaml:"company"`
	Position    string    `yaml:"position"`
	Description []string  `yaml:"description"`
	Image       string    `yaml:"image"`
}

func (j JobRecord) IsCurrent() bool { return j.Status == StatusCurrent }

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Profile struct {
	Name     string   `yaml:"name"`
	Taglines []string `yaml:"taglines"`
	Links    []Link   `yaml:"links"`
	About    []string `yaml:"about"`
}

type SkillGroup struct {
	Title  string   `yaml:"title"`
	Side   Side     `yaml:"side"`
	Skills []string `yaml:"skills"`
}

type Site struct {
	Profile Profile      `yaml:"profile"`
	Skills  []SkillGroup `yaml:"skills"`
	Jobs    []JobRecord  `yaml:"jobs"`
}

// Load decodes the embedded site data.
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Parse decodes and validates site data. Job order is kept as written.
func Parse(b []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode site: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) validate() error {
	if s.Profile.Name == "" {
		return errors.New("profile name is required")
	}
	for i, j := range s.Jobs {
		switch j.Status {
		case StatusCurrent, StatusPrevious:
		default:
			return fmt.Errorf("job %d: unknown status %q", i, j.Status)
		}
		if j.Company == "" || j.Position == "" {
			return fmt.Errorf("job %d: company and position are required", i)
		}
	}
	for _, g := range s.Skills {
		if g.Side != SideLeft && g.Side != SideRight {
			return fmt.Errorf("skill group %q: unknown side %q", g.Title, g.Side)
		}
	}
	return nil
}

// SkillsBySide returns the skill cards shown on one side of the globe.
func (s *Site) SkillsBySide(side Side) []SkillGroup {
	var out []SkillGroup
	for _, g := range s.Skills {
		if g.Side == side {
			out = append(out, g)
		}
	}
	return out
}
