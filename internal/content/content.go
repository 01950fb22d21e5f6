// Package content holds the page document: the headline phrases, stats,
// skills and sections the animations run over.
package content

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the page content.
//
// Configuration file: content.yaml (any path, chosen with --content or the
// O key at runtime).
type Document struct {
	Name     string    `yaml:"name"`
	Phrases  []string  `yaml:"phrases"`
	Stats    []Stat    `yaml:"stats"`
	Skills   []Skill   `yaml:"skills"`
	Sections []Section `yaml:"sections"`
}

// Stat is an animated counter. Count is kept as the literal so that "98.5"
// and "98" format differently.
type Stat struct {
	Label  string `yaml:"label"`
	Count  string `yaml:"count"`
	Suffix string `yaml:"suffix"`
}

// Skill is a card with a fill bar. Width is a percentage.
type Skill struct {
	Name  string  `yaml:"name"`
	Width float64 `yaml:"width"`
}

type Section struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Default is the built-in page.
func Default() *Document {
	return &Document{
		Name: "Bhargava Katta",
		Phrases: []string{
			"AI & Automation Engineer",
			"Copilot Studio Agent · GitHub Copilot Agent",
			"SRE Agent · Custom Agent · Azure AI",
			"Cloud Infrastructure at Scale",
			"Microsoft · HPCL · HDFC · Indian Railway",
			"Power Platform & Automation",
			"Making Enterprise Work Easier with AI",
		},
		Stats: []Stat{
			{Label: "Years experience", Count: "8", Suffix: "+"},
			{Label: "Automations shipped", Count: "2500", Suffix: "+"},
			{Label: "Enterprise clients", Count: "15", Suffix: ""},
			{Label: "Uptime delivered", Count: "99.9", Suffix: "%"},
		},
		Skills: []Skill{
			{Name: "Azure AI", Width: 92},
			{Name: "Copilot Studio", Width: 90},
			{Name: "Power Platform", Width: 88},
			{Name: "Cloud Infrastructure", Width: 85},
			{Name: "Go & Python", Width: 78},
		},
		Sections: []Section{
			{Title: "About", Body: "Engineer building agents and automation for large enterprises."},
			{Title: "Experience", Body: "Microsoft, HPCL, HDFC and Indian Railway programmes."},
			{Title: "Projects", Body: "Copilot agents, SRE agents and self-healing infrastructure."},
			{Title: "Contact", Body: "Reach out to talk about AI and automation."},
		},
	}
}

// Parse decodes a YAML document. Sections missing from the file keep their
// built-in values.
func Parse(data []byte) (*Document, error) {
	doc := Default()
	var loaded Document
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if loaded.Name != "" {
		doc.Name = loaded.Name
	}
	if loaded.Phrases != nil {
		doc.Phrases = loaded.Phrases
	}
	if loaded.Stats != nil {
		doc.Stats = loaded.Stats
	}
	if loaded.Skills != nil {
		doc.Skills = loaded.Skills
	}
	if loaded.Sections != nil {
		doc.Sections = loaded.Sections
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content %s: %w", path, err)
	}
	return Parse(data)
}

// Validate rejects documents the page cannot lay out. Malformed stat counts
// are allowed through and display as NaN.
func (d *Document) Validate() error {
	for i, s := range d.Stats {
		if strings.TrimSpace(s.Label) == "" {
			return fmt.Errorf("stat %d: missing label", i)
		}
	}
	for i, s := range d.Skills {
		if s.Width < 0 || s.Width > 100 {
			return fmt.Errorf("skill %q (%d): width %.1f out of range [0, 100]", s.Name, i, s.Width)
		}
	}
	return nil
}

// Marshal encodes the document back to YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
