package interview

// Phase describes where the interview stands relative to its question budget.
// It only influences the wording of the model instructions; the controller
// never blocks turns based on it.
type Phase string

// interview phases
const (
	PhaseInProgress Phase = "in_progress"
	PhaseNearEnd    Phase = "near_end"
	PhaseConclude   Phase = "conclude"
)

// Progress is the derived numeric position within the question budget. It is
// recomputed from the message log each turn and never persisted.
type Progress struct {
	Current   int
	Total     int
	Remaining int
	Phase     Phase
}

// ComputeProgress derives progress from the question budget and the number
// of user messages answered so far, including the one currently being
// processed. A non-positive budget is clamped to 1 so misconfiguration can't
// produce a permanently concluded interview.
func ComputeProgress(questionBudget, userMessageCount int) Progress {
	if questionBudget < 1 {
		questionBudget = 1
	}
	if userMessageCount < 0 {
		userMessageCount = 0
	}

	remaining := questionBudget - userMessageCount
	if remaining < 0 {
		remaining = 0
	}

	phase := PhaseInProgress
	switch {
	case remaining == 0:
		phase = PhaseConclude
	case remaining <= 2:
		phase = PhaseNearEnd
	}

	return Progress{
		Current:   userMessageCount,
		Total:     questionBudget,
		Remaining: remaining,
		Phase:     phase,
	}
}
