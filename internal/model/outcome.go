package model

import "fmt"

// Outcome is the result of an admission decision.  Rejections are ordinary
// values; they are reported back to the caller, never raised as errors.
type Outcome int

const (
	Admitted Outcome = iota
	RejectedUnknownItem
	RejectedInsufficientBalance
	RejectedUserDailyLimitReached
	RejectedItemDailyLimitReached
)

// String returns a stable machine-readable code for the outcome.
func (o Outcome) String() string {
	switch o {
	case Admitted:
		return "admitted"
	case RejectedUnknownItem:
		return "unknown_song"
	case RejectedInsufficientBalance:
		return "insufficient_balance"
	case RejectedUserDailyLimitReached:
		return "user_daily_limit"
	case RejectedItemDailyLimitReached:
		return "song_daily_limit"
	default:
		return "unknown"
	}
}

// Message returns the text shown to the person who requested title.  cap is
// the daily limit that applies to the rejection, if any.
func (o Outcome) Message(title string, cap int) string {
	switch o {
	case Admitted:
		return fmt.Sprintf("The song '%s' has been added to the queue!", title)
	case RejectedUnknownItem:
		return "The song selected was not found in this Jukebox."
	case RejectedInsufficientBalance:
		return "Not enough time remaining in account."
	case RejectedUserDailyLimitReached:
		return fmt.Sprintf("You may only play a total of %d songs per day.", cap)
	case RejectedItemDailyLimitReached:
		return fmt.Sprintf("This song may not be selected more than %d times per day.", cap)
	default:
		return "No decision was made."
	}
}
