package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/templui/lifecoach/internal/model"
)

const (
	maxGoalTitle       = 200
	maxGoalDescription = 2000
	maxChatMessage     = 4000
	maxSessionSummary  = 4000
)

// ValidateGoalTitle validates a goal title
func ValidateGoalTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if utf8.RuneCountInString(trimmed) > maxGoalTitle {
		return fmt.Errorf("title is too long (max %d characters)", maxGoalTitle)
	}

	return nil
}

func ValidateGoalDescription(description string) error {
	if utf8.RuneCountInString(description) > maxGoalDescription {
		return fmt.Errorf("description is too long (max %d characters)", maxGoalDescription)
	}
	return nil
}

func ValidateGoalCategory(category string) error {
	if !model.IsGoalCategory(category) {
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}

// ValidateGoalPriority accepts an empty priority, which defaults to medium.
func ValidateGoalPriority(priority string) error {
	if priority != "" && !model.IsGoalPriority(priority) {
		return fmt.Errorf("unknown priority %q (low, medium, high)", priority)
	}
	return nil
}

// ValidateGoalStatus accepts an empty status, which defaults to active.
func ValidateGoalStatus(status string) error {
	if status != "" && !model.IsGoalStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}
	return nil
}

// ValidateSatisfaction validates a life-area rating
func ValidateSatisfaction(level int) error {
	if level < 1 || level > 10 {
		return errors.New("satisfaction level must be between 1 and 10")
	}
	return nil
}

func ValidateLifeArea(area string) error {
	if !model.IsGoalCategory(area) {
		return fmt.Errorf("unknown life area %q", area)
	}
	return nil
}

func ValidateCoachingStyle(style string) error {
	if !model.IsCoachingStyle(style) {
		return fmt.Errorf("unknown coaching style %q (%s)", style, strings.Join(model.CoachingStyles, ", "))
	}
	return nil
}

// ValidateChatMessage validates an inbound chat message
func ValidateChatMessage(message string) error {
	trimmed := strings.TrimSpace(message)

	if trimmed == "" {
		return errors.New("message is required")
	}

	if utf8.RuneCountInString(trimmed) > maxChatMessage {
		return fmt.Errorf("message is too long (max %d characters)", maxChatMessage)
	}

	return nil
}

func ValidateSessionSummary(summary string) error {
	if utf8.RuneCountInString(summary) > maxSessionSummary {
		return fmt.Errorf("summary is too long (max %d characters)", maxSessionSummary)
	}
	return nil
}
