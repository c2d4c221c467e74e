package validate

import "github.com/redmonkez12/goals-api/internal/apperr"

const (
	GoalTextMinLength = 3
	GoalTextMaxLength = 120
)

func GoalID(id string) error {
	if isBlank(id) {
		return apperr.InvalidGoal("id required")
	}
	if !isIdentifier(id) {
		return apperr.InvalidGoal("id not a valid identifier")
	}
	return nil
}

func GoalText(text string) error {
	if isBlank(text) {
		return apperr.InvalidGoal("text required")
	}
	if !lengthBetween(text, GoalTextMinLength, GoalTextMaxLength) {
		return apperr.InvalidGoal("text length out of range")
	}
	return nil
}
