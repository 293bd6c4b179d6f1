package runner

// Trigger is an input to the state machine.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerEncounterLetter
	TriggerAnswerCorrect
	TriggerAnswerWrong
	TriggerWordComplete
	TriggerAnswerMissing
	TriggerCloseFeedback
	TriggerOpenShop
	TriggerCloseShop
	TriggerEndRun
	TriggerMenu
)

// String returns the name of the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "Start"
	case TriggerEncounterLetter:
		return "EncounterLetter"
	case TriggerAnswerCorrect:
		return "AnswerCorrect"
	case TriggerAnswerWrong:
		return "AnswerWrong"
	case TriggerWordComplete:
		return "WordComplete"
	case TriggerAnswerMissing:
		return "AnswerMissing"
	case TriggerCloseFeedback:
		return "CloseFeedback"
	case TriggerOpenShop:
		return "OpenShop"
	case TriggerCloseShop:
		return "CloseShop"
	case TriggerEndRun:
		return "EndRun"
	case TriggerMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

type transitionKey struct {
	from    Status
	trigger Trigger
}

// transitions is the complete state machine. A trigger missing for the
// current status is a no-op.
var transitions = map[transitionKey]Status{
	{StatusMenu, TriggerStart}:     StatusPlaying,
	{StatusGameOver, TriggerStart}: StatusPlaying,
	{StatusVictory, TriggerStart}:  StatusPlaying,
	{StatusPlaying, TriggerStart}:  StatusPlaying, // restart mid-run
	{StatusShop, TriggerStart}:     StatusPlaying,
	{StatusQuiz, TriggerStart}:     StatusPlaying,
	{StatusFeedback, TriggerStart}: StatusPlaying,

	{StatusPlaying, TriggerEncounterLetter}: StatusQuiz,

	{StatusQuiz, TriggerAnswerCorrect}: StatusPlaying,
	{StatusQuiz, TriggerWordComplete}:  StatusVictory,
	{StatusQuiz, TriggerAnswerWrong}:   StatusFeedback,

	{StatusQuiz, TriggerAnswerMissing}:     StatusPlaying,
	{StatusFeedback, TriggerAnswerMissing}: StatusPlaying,

	{StatusFeedback, TriggerCloseFeedback}: StatusPlaying,

	{StatusPlaying, TriggerOpenShop}: StatusShop,
	{StatusShop, TriggerCloseShop}:   StatusPlaying,

	{StatusPlaying, TriggerEndRun}:  StatusGameOver,
	{StatusShop, TriggerEndRun}:     StatusGameOver,
	{StatusQuiz, TriggerEndRun}:     StatusGameOver,
	{StatusFeedback, TriggerEndRun}: StatusGameOver,

	{StatusMenu, TriggerMenu}:     StatusMenu,
	{StatusPlaying, TriggerMenu}:  StatusMenu,
	{StatusShop, TriggerMenu}:     StatusMenu,
	{StatusQuiz, TriggerMenu}:     StatusMenu,
	{StatusFeedback, TriggerMenu}: StatusMenu,
	{StatusGameOver, TriggerMenu}: StatusMenu,
	{StatusVictory, TriggerMenu}:  StatusMenu,
}

// nextStatus looks up the transition for a trigger.
func nextStatus(from Status, trigger Trigger) (Status, bool) {
	to, ok := transitions[transitionKey{from, trigger}]
	return to, ok
}
