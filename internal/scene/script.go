package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed scripts.yaml
var defaultScripts []byte

var ErrInvalidScript = errors.New("scene: invalid script")

// Reactions are the lines shown after a submission settles
type Reactions struct {
	Success string `yaml:"success"`
	Failure string `yaml:"failure"`
}

// Script is the content of one scene
type Script struct {
	Text       string    `yaml:"text"`
	Prompt     string    `yaml:"prompt"`
	Background string    `yaml:"background"`
	Character  string    `yaml:"character"`
	Reactions  Reactions `yaml:"reactions"`
}

// Scripts holds the script of every scene
type Scripts struct {
	Intro     Script `yaml:"intro"`
	Challenge Script `yaml:"challenge"`
}

// For returns the script of scene id
func (s Scripts) For(id ID) Script {
	if id == Challenge {
		return s.Challenge
	}
	return s.Intro
}

// DefaultScripts returns the built-in scripts
func DefaultScripts() Scripts {
	s, err := ParseScripts(defaultScripts)
	if err != nil {
		panic(fmt.Sprintf("embedded scripts: %v", err))
	}
	return s
}

// LoadScripts reads scripts from a YAML file; an empty path returns the defaults
func LoadScripts(path string) (Scripts, error) {
	if path == "" {
		return DefaultScripts(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scripts{}, fmt.Errorf("read scripts: %w", err)
	}
	return ParseScripts(raw)
}

// ParseScripts decodes and validates YAML scripts
func ParseScripts(raw []byte) (Scripts, error) {
	var s Scripts
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Scripts{}, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	for _, id := range []ID{Intro, Challenge} {
		sc := s.For(id)
		if sc.Text == "" {
			return Scripts{}, fmt.Errorf("%w: %s has no text", ErrInvalidScript, id)
		}
		if sc.Prompt == "" {
			return Scripts{}, fmt.Errorf("%w: %s has no prompt", ErrInvalidScript, id)
		}
	}
	return s, nil
}
