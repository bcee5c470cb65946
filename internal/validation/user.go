// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minHandleLen   = 3
	maxHandleLen   = 30
	minPasswordLen = 8
	maxPasswordLen = 128
	maxNameLen     = 100
	maxBioLen      = 500
	maxTagLen      = 64
	maxTagsPerPost = 20
)

var (
	handleRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateHandle checks that a handle is URL-safe: alphanumeric plus
// underscore, within length bounds.
func ValidateHandle(handle string) error {
	if len(handle) < minHandleLen || len(handle) > maxHandleLen {
		return fmt.Errorf("handle must be between %d and %d characters", minHandleLen, maxHandleLen)
	}
	if !handleRe.MatchString(handle) {
		return fmt.Errorf("handle may only contain letters, digits and underscores")
	}
	return nil
}

// ValidateEmail performs a shape check; deliverability is not verified.
func ValidateEmail(email string) error {
	if email == "" || len(email) > 254 || !emailRe.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidatePassword enforces length bounds only.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLen)
	}
	return nil
}

// ValidateName checks the display name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("name must not exceed %d characters", maxNameLen)
	}
	return nil
}

// ValidateBio checks the profile bio.
func ValidateBio(bio string) error {
	if len(bio) > maxBioLen {
		return fmt.Errorf("bio must not exceed %d characters", maxBioLen)
	}
	return nil
}

// ValidateTags checks an ordered tag list. Tags are stored as discrete rows,
// so commas have no storage meaning anymore; they are still rejected to keep
// tags presentable as plain hashtag words.
func ValidateTags(tags []string) error {
	if len(tags) > maxTagsPerPost {
		return fmt.Errorf("a post may carry at most %d tags", maxTagsPerPost)
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tags must not be empty")
		}
		if len(tag) > maxTagLen {
			return fmt.Errorf("tag %q exceeds %d characters", tag, maxTagLen)
		}
		if strings.Contains(tag, ",") {
			return fmt.Errorf("tag %q must not contain commas", tag)
		}
	}
	return nil
}
