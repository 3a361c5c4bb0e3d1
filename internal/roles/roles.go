// Package roles holds the fixed interview role catalog.
package roles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogSize is the number of roles the UI always presents.
const CatalogSize = 6

// Role is a job-track profile with its scripted question list.
type Role struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Accent      string   `yaml:"accent"`
	Icon        string   `yaml:"icon"`
	Questions   []string `yaml:"questions"`
}

var builtin = []Role{
	{
		ID:          "sde",
		Name:        "SDE",
		Description: "General software development: data structures, system design, coding habits.",
		Accent:      "#7aa2f7",
		Icon:        "λ",
		Questions: []string{
			"Walk me through a project on your resume you are most proud of.",
			"How do you decide between readability and performance when they conflict?",
			"Describe a production bug you tracked down. What made it hard?",
			"How would you design a rate limiter for a public API?",
			"What do you look for when reviewing someone else's code?",
		},
	},
	{
		ID:          "data-analysis",
		Name:        "Data Analysis",
		Description: "Analytics and insight work: SQL, experiment design, storytelling with data.",
		Accent:      "#bb9af7",
		Icon:        "Σ",
		Questions: []string{
			"Tell me about a dataset you cleaned that fought back.",
			"How do you validate that a metric actually measures what stakeholders think it does?",
			"Explain p-values to a product manager in one minute.",
			"A dashboard shows a 20% drop overnight. Walk me through your first hour.",
			"When would you prefer a median over a mean, and why?",
		},
	},
	{
		ID:          "full-stack",
		Name:        "Full Stack",
		Description: "End-to-end product engineering across client, API, and data layers.",
		Accent:      "#9ece6a",
		Icon:        "⇅",
		Questions: []string{
			"Pick a feature you shipped end to end. Where did the real complexity live?",
			"How do you keep client and server validation from drifting apart?",
			"What state do you keep on the client versus the server, and how do you decide?",
			"Describe how you would add optimistic updates to a slow write path.",
			"How do you approach schema changes that touch every layer of the stack?",
		},
	},
	{
		ID:          "backend",
		Name:        "Backend",
		Description: "Server-side systems: APIs, storage, reliability under load.",
		Accent:      "#e0af68",
		Icon:        "⚙",
		Questions: []string{
			"Describe a service you own. What breaks first under 10x load?",
			"How do you make a retried request safe to process twice?",
			"Walk me through debugging a latency regression with no obvious cause.",
			"When would you reach for a queue instead of a synchronous call?",
		},
	},
	{
		ID:          "frontend",
		Name:        "Frontend",
		Description: "Interface engineering: rendering, accessibility, state management.",
		Accent:      "#f7768e",
		Icon:        "▣",
		Questions: []string{
			"Tell me about an interface you rebuilt. What was wrong with the original?",
			"How do you keep a component tree from turning into prop-drilling soup?",
			"A page janks while scrolling. How do you find the cause?",
			"What does accessible mean to you beyond passing an audit?",
			"How do you decide what belongs in global state?",
		},
	},
	{
		ID:          "devops",
		Name:        "DevOps",
		Description: "Delivery and operations: CI/CD, infrastructure as code, incident response.",
		Accent:      "#2ac3de",
		Icon:        "∞",
		Questions: []string{
			"Describe a deploy that went wrong and how you rolled it back.",
			"How do you decide what deserves an alert versus a dashboard?",
			"Walk me through hardening a CI pipeline that leaks secrets into logs.",
			"What does a good runbook contain, and who is it written for?",
		},
	},
}

// Catalog returns the ordered built-in role list.
func Catalog() []Role {
	out := make([]Role, len(builtin))
	copy(out, builtin)
	return out
}

// ByID looks up a role in the given catalog.
func ByID(catalog []Role, id string) *Role {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// Load reads a YAML catalog override. The override must describe a full,
// valid catalog; otherwise it is rejected and callers keep the built-in one.
func Load(path string) ([]Role, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []Role
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	if err := Validate(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Validate checks catalog shape: exactly CatalogSize roles, unique non-empty
// ids, at least one question each.
func Validate(list []Role) error {
	if len(list) != CatalogSize {
		return fmt.Errorf("catalog must contain %d roles, got %d", CatalogSize, len(list))
	}
	seen := make(map[string]bool, len(list))
	for _, r := range list {
		if r.ID == "" {
			return fmt.Errorf("role %q missing id", r.Name)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate role id %q", r.ID)
		}
		seen[r.ID] = true
		if r.Name == "" {
			return fmt.Errorf("role %q missing name", r.ID)
		}
		if len(r.Questions) == 0 {
			return fmt.Errorf("role %q has no questions", r.ID)
		}
	}
	return nil
}
