package pipeline

import "testing"

func TestCanTransition_ForwardOneStage(t *testing.T) {
	forward := []struct{ from, to Stage }{
		{StageApplied, StageScreening},
		{StageScreening, StageInterview},
		{StageInterview, StageOffer},
		{StageOffer, StageHired},
	}
	for _, tc := range forward {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("CanTransition(%s, %s) = false, want true", tc.from, tc.to)
		}
	}
}

func TestCanTransition_NoSkippingOrBacktracking(t *testing.T) {
	blocked := []struct{ from, to Stage }{
		{StageApplied, StageInterview},
		{StageApplied, StageHired},
		{StageScreening, StageApplied},
		{StageOffer, StageScreening},
		{StageApplied, StageApplied},
	}
	for _, tc := range blocked {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("CanTransition(%s, %s) = true, want false", tc.from, tc.to)
		}
	}
}

func TestCanTransition_RejectedFromAnyNonTerminal(t *testing.T) {
	for _, from := range []Stage{StageApplied, StageScreening, StageInterview, StageOffer} {
		if !CanTransition(from, StageRejected) {
			t.Errorf("CanTransition(%s, Rejected) = false, want true", from)
		}
	}
}

func TestCanTransition_TerminalStagesAreFinal(t *testing.T) {
	for _, from := range []Stage{StageHired, StageRejected} {
		for _, to := range []Stage{StageApplied, StageScreening, StageInterview, StageOffer, StageHired, StageRejected} {
			if CanTransition(from, to) {
				t.Errorf("CanTransition(%s, %s) = true, want false", from, to)
			}
		}
	}
}

func TestCanTransition_InvalidStages(t *testing.T) {
	if CanTransition("Sourcing", StageScreening) {
		t.Error("unknown from stage must not transition")
	}
	if CanTransition(StageApplied, "Done") {
		t.Error("unknown to stage must not transition")
	}
}

func TestStageTerminal(t *testing.T) {
	if !StageHired.Terminal() || !StageRejected.Terminal() {
		t.Error("Hired and Rejected are terminal")
	}
	if StageApplied.Terminal() || StageOffer.Terminal() {
		t.Error("intermediate stages are not terminal")
	}
}
