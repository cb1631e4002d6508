/*
Package game
File: errors.go
Description:
    Machine-readable rule violation codes and the RuleError type returned to
    callers when an action fails validation. State is never modified when a
    RuleError is returned.

    Geometry violations (out-of-range sector, unknown disk) are programmer
    errors, not player errors: those panic instead of returning a RuleError.
*/

package game

import "fmt"

// Code is a machine-readable rule violation code.
type Code string

const (
	// Turn sequencing
	CodeNotYourTurn    Code = "NOT_YOUR_TURN"
	CodeMainActionUsed Code = "MAIN_ACTION_ALREADY_USED"
	CodeAlreadyPassed  Code = "ALREADY_PASSED"

	// Resources
	CodeInsufficientCredits Code = "INSUFFICIENT_CREDITS"
	CodeInsufficientEnergy  Code = "INSUFFICIENT_ENERGY"
	CodeInsufficientMedia   Code = "INSUFFICIENT_MEDIA"
	CodeInsufficientTrade   Code = "INSUFFICIENT_TRADE_VALUE"

	// Probes
	CodeProbeLimit      Code = "PROBE_LIMIT_REACHED"
	CodeUnknownProbe    Code = "UNKNOWN_PROBE"
	CodeNotProbeOwner   Code = "NOT_PROBE_OWNER"
	CodeWrongProbeState Code = "WRONG_PROBE_STATE"
	CodeNotAdjacent     Code = "NOT_ADJACENT"
	CodeNotCoLocated    Code = "NOT_CO_LOCATED"
	CodeBadTarget       Code = "BAD_TARGET"

	// Content lookups (stale references from an older snapshot)
	CodeUnknownPlayer     Code = "UNKNOWN_PLAYER"
	CodeUnknownPlanet     Code = "UNKNOWN_PLANET"
	CodeUnknownCard       Code = "UNKNOWN_CARD"
	CodeUnknownTechnology Code = "UNKNOWN_TECHNOLOGY"
	CodeCardNotInHand     Code = "CARD_NOT_IN_HAND"
	CodeCardNotInRow      Code = "CARD_NOT_IN_ROW"
	CodeTechnologyOwned   Code = "TECHNOLOGY_ALREADY_OWNED"
)

// RuleError is a recoverable validation failure. The caller decides how to
// present it; the engine guarantees the input snapshot is untouched.
type RuleError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ruleErrf builds a RuleError with a formatted message.
func ruleErrf(code Code, format string, args ...any) *RuleError {
	return &RuleError{Code: code, Message: fmt.Sprintf(format, args...)}
}
