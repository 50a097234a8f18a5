package models

import (
	"errors"
	"strings"
)

// Tag-related errors
var (
	ErrEmptyTagName        = errors.New("tag name cannot be empty")
	ErrTagNameTooLong      = errors.New("tag name cannot exceed 50 characters")
	ErrInvalidTagCharacter = errors.New("tag name contains invalid characters")
)

// Tag represents a known tag with optional metadata, kept in the project
// tag registry.
type Tag struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// TagRegistry holds all tag metadata for a project.
type TagRegistry struct {
	Tags []Tag `yaml:"tags"`
}

// NormalizeTagName normalizes a tag name for consistency: lowercase,
// trimmed, spaces replaced with hyphens, invalid characters dropped.
func NormalizeTagName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")

	var result strings.Builder
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ValidateTagName checks if a tag name is valid.
func ValidateTagName(name string) error {
	if name == "" {
		return ErrEmptyTagName
	}

	if len(name) > 50 {
		return ErrTagNameTooLong
	}

	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == ' ') {
			return ErrInvalidTagCharacter
		}
	}

	return nil
}

// HasTag reports whether tags contains name (exact match, post-trim).
func HasTag(tags []string, name string) bool {
	name = strings.TrimSpace(name)
	for _, t := range tags {
		if t == name {
			return true
		}
	}
	return false
}
