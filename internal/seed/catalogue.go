// Package seed generates sample users, jobs, applications and bookmarks for local development.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var defaultCatalogue []byte

// SalaryBand bounds generated salaries, in thousands of dollars.
type SalaryBand struct {
	MinLow  int `yaml:"min_low"`
	MinHigh int `yaml:"min_high"`
	MaxLow  int `yaml:"max_low"`
	MaxHigh int `yaml:"max_high"`
}

// ExperienceLevel is one experience option with its salary band and requirements key.
type ExperienceLevel struct {
	Name         string     `yaml:"name"`
	Requirements string     `yaml:"requirements"`
	Salary       SalaryBand `yaml:"salary"`
}

// Category groups job titles with the skill sets offered for them.
type Category struct {
	Name   string   `yaml:"name"`
	Titles []string `yaml:"titles"`
	Skills []string `yaml:"skills"`
}

// Description is used for titles containing any of its keywords.
type Description struct {
	Keywords []string `yaml:"keywords"`
	Text     string   `yaml:"text"`
}

// Catalogue is the vocabulary sample data is drawn from.
type Catalogue struct {
	Companies          []string          `yaml:"companies"`
	RecruiterNames     []string          `yaml:"recruiter_names"`
	SeekerNames        []string          `yaml:"seeker_names"`
	SeekerEmailDomain  string            `yaml:"seeker_email_domain"`
	Locations          []string          `yaml:"locations"`
	JobTypes           []string          `yaml:"job_types"`
	ExperienceLevels   []ExperienceLevel `yaml:"experience_levels"`
	Categories         []Category        `yaml:"categories"`
	Descriptions       []Description     `yaml:"descriptions"`
	DefaultDescription string            `yaml:"default_description"`
	Requirements       map[string]string `yaml:"requirements"`
	CoverLetter        string            `yaml:"cover_letter"`
}

// DefaultCatalogue parses the embedded catalogue.
func DefaultCatalogue() (*Catalogue, error) {
	return ParseCatalogue(defaultCatalogue)
}

// ParseCatalogue decodes and validates a YAML catalogue.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every list the generator draws from is populated.
func (c *Catalogue) Validate() error {
	var errs []error
	required := map[string]int{
		"companies":         len(c.Companies),
		"recruiter_names":   len(c.RecruiterNames),
		"seeker_names":      len(c.SeekerNames),
		"locations":         len(c.Locations),
		"job_types":         len(c.JobTypes),
		"experience_levels": len(c.ExperienceLevels),
		"categories":        len(c.Categories),
	}
	for name, n := range required {
		if n == 0 {
			errs = append(errs, fmt.Errorf("catalogue: %s is empty", name))
		}
	}
	if c.SeekerEmailDomain == "" {
		errs = append(errs, errors.New("catalogue: seeker_email_domain is empty"))
	}
	for _, lvl := range c.ExperienceLevels {
		if _, ok := c.Requirements[lvl.Requirements]; !ok {
			errs = append(errs, fmt.Errorf("catalogue: experience level %q references unknown requirements %q", lvl.Name, lvl.Requirements))
		}
		s := lvl.Salary
		if s.MinLow <= 0 || s.MinLow > s.MinHigh || s.MaxLow > s.MaxHigh || s.MinHigh > s.MaxLow {
			errs = append(errs, fmt.Errorf("catalogue: experience level %q has an invalid salary band", lvl.Name))
		}
	}
	for _, cat := range c.Categories {
		if len(cat.Titles) == 0 || len(cat.Skills) == 0 {
			errs = append(errs, fmt.Errorf("catalogue: category %q needs titles and skills", cat.Name))
		}
	}
	return errors.Join(errs...)
}

// descriptionFor picks the description whose keywords match title.
func (c *Catalogue) descriptionFor(title string) string {
	lower := strings.ToLower(title)
	for _, d := range c.Descriptions {
		for _, k := range d.Keywords {
			if strings.Contains(lower, strings.ToLower(k)) {
				return strings.TrimSpace(d.Text)
			}
		}
	}
	return strings.TrimSpace(c.DefaultDescription)
}
