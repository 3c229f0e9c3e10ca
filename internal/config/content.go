package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_content.yaml
var defaultContent []byte

// Content is the portfolio text and data shown in the sections.
type Content struct {
	Owner         Owner          `yaml:"owner"`
	Sections      []string       `yaml:"sections"`
	Terminal      []TerminalLine `yaml:"terminal"`
	Messages      []string       `yaml:"messages"`
	HeroCode      []string       `yaml:"heroCode"`
	Stats         []Stat         `yaml:"stats"`
	About         []string       `yaml:"about"`
	Skills        []Skill        `yaml:"skills"`
	Achievements  []Achievement  `yaml:"achievements"`
	Timeline      []TimelineItem `yaml:"timeline"`
	Projects      []Project      `yaml:"projects"`
	Highlights    []string       `yaml:"highlights"`
	ResumeActions []string       `yaml:"resumeActions"`
}

type Owner struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Email string `yaml:"email"`
}

// TerminalLine is one line of the intro terminal. Prompt lines are typed out
// character by character.
type TerminalLine struct {
	Text   string `yaml:"text"`
	Prompt bool   `yaml:"prompt"`
}

type Stat struct {
	Label  string `yaml:"label"`
	Target int    `yaml:"target"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"` // percent
}

type Achievement struct {
	Title    string `yaml:"title"`
	Detail   string `yaml:"detail"`
	Unlocked bool   `yaml:"unlocked"`
}

// TimelineItem is one entry of the journey timeline.
type TimelineItem struct {
	Period string `yaml:"period"`
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// DefaultContent returns the embedded content document.
func DefaultContent() *Content {
	c, err := ParseContent(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return c
}

// LoadContent reads a content document from path. An empty path returns the
// embedded default.
func LoadContent(path string) (*Content, error) {
	if path == "" {
		return DefaultContent(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	c, err := ParseContent(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseContent decodes and validates a content document.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &c, nil
}

// Validate checks that sections are unique and non-empty and that numeric
// targets are in range.
func (c *Content) Validate() error {
	if len(c.Sections) == 0 {
		return errors.New("sections must not be empty")
	}
	seen := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if s == "" {
			return errors.New("section name must not be empty")
		}
		if seen[s] {
			return fmt.Errorf("duplicate section %q", s)
		}
		seen[s] = true
	}
	for _, sk := range c.Skills {
		if sk.Level < 0 || sk.Level > 100 {
			return fmt.Errorf("skill %q level %d out of range [0, 100]", sk.Name, sk.Level)
		}
	}
	for _, st := range c.Stats {
		if st.Target < 0 {
			return fmt.Errorf("stat %q target must not be negative", st.Label)
		}
	}
	return nil
}
