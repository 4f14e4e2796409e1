package grading

import (
	"errors"
	"testing"
)

func fourQuestionKey() map[int]string {
	return map[int]string{
		1: "Correct Answer: a)",
		2: "Correct Answer: b)",
		3: "Correct Answer: c)",
		4: "Correct Answer: d)",
	}
}

func TestGrade_AllCorrect(t *testing.T) {
	r, err := Grade(fourQuestionKey(), map[int]string{1: "a", 2: "b", 3: "c", 4: "d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Correct != 4 || r.Total != 4 {
		t.Errorf("expected 4/4, got %d/%d", r.Correct, r.Total)
	}
	if r.Percentage != 100.0 {
		t.Errorf("expected 100.0, got %v", r.Percentage)
	}
	if r.Letter != "A" {
		t.Errorf("expected A, got %q", r.Letter)
	}
}

func TestGrade_AllWrong(t *testing.T) {
	r, err := Grade(fourQuestionKey(), map[int]string{1: "b", 2: "a", 3: "d", 4: "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Correct != 0 {
		t.Errorf("expected 0 correct, got %d", r.Correct)
	}
	if r.Percentage != 0.0 {
		t.Errorf("expected 0.0, got %v", r.Percentage)
	}
	if r.Letter != "F" {
		t.Errorf("expected F, got %q", r.Letter)
	}
}

func TestGrade_ThreeOfFour(t *testing.T) {
	r, err := Grade(fourQuestionKey(), map[int]string{1: "a", 2: "b", 3: "c", 4: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Correct != 3 {
		t.Errorf("expected 3 correct, got %d", r.Correct)
	}
	if r.Percentage != 75.0 {
		t.Errorf("expected 75.0, got %v", r.Percentage)
	}
	if r.Letter != "C" {
		t.Errorf("expected C, got %q", r.Letter)
	}
}

func TestGrade_PartialAttemptGradedOnSubmitted(t *testing.T) {
	// Two answers submitted against a four-question key: Total follows the
	// submission, not the exam size.
	r, err := Grade(fourQuestionKey(), map[int]string{1: "a", 2: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Total != 2 {
		t.Errorf("expected total 2, got %d", r.Total)
	}
	if r.Correct != 2 {
		t.Errorf("expected 2 correct, got %d", r.Correct)
	}
	if r.Percentage != 100.0 {
		t.Errorf("expected 100.0, got %v", r.Percentage)
	}
}

func TestGrade_NoAnswers(t *testing.T) {
	_, err := Grade(fourQuestionKey(), map[int]string{})
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
}

func TestGrade_MissingKeyEntryCountsIncorrect(t *testing.T) {
	// Question 4 has no key entry (truncated generation); answering it is
	// incorrect, never an error.
	key := fourQuestionKey()
	delete(key, 4)

	r, err := Grade(key, map[int]string{1: "a", 2: "b", 3: "c", 4: "d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Correct != 3 || r.Total != 4 {
		t.Errorf("expected 3/4, got %d/%d", r.Correct, r.Total)
	}
}

func TestGrade_CaseInsensitive(t *testing.T) {
	r, err := Grade(fourQuestionKey(), map[int]string{1: "A", 2: "B", 3: "C", 4: "D"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Correct != 4 {
		t.Errorf("expected 4 correct, got %d", r.Correct)
	}
}

func TestGrade_EmptySubmittedAnswerIsIncorrect(t *testing.T) {
	r, err := Grade(fourQuestionKey(), map[int]string{1: "", 2: "  ", 3: "c", 4: "d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Correct != 2 || r.Total != 4 {
		t.Errorf("expected 2/4, got %d/%d", r.Correct, r.Total)
	}
}

func TestAnswerToken_Variants(t *testing.T) {
	cases := []struct {
		entry string
		want  string
	}{
		{"Correct Answer: b)", "b"},
		{"Correct Answer: b) Paris", "b"},
		{"Correct Answer: B.", "B"},
		{"Correct Answer: c", "c"},
		{"Correct Answer:   d) with stray spaces", "d"},
		{"Correct Answer: b)\nCorrect Answer: c)", "b"}, // first line designates
		{"not a marker line", ""},
	}
	for _, tc := range cases {
		if got := answerToken(tc.entry); got != tc.want {
			t.Errorf("answerToken(%q) = %q, want %q", tc.entry, got, tc.want)
		}
	}
}

func TestLetterFor_Thresholds(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "A"}, {90, "A"}, {89.9, "B"}, {80, "B"},
		{79.9, "C"}, {70, "C"}, {69.9, "D"}, {60, "D"},
		{59.9, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		if got := letterFor(tc.pct); got != tc.want {
			t.Errorf("letterFor(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestSummary_PerfectScore(t *testing.T) {
	r := &Result{Correct: 4, Total: 4, Percentage: 100, Letter: "A"}
	want := "Exam results: 4 out of 4 answers correct! You achieved an A with a percentage score of 100.0."
	if got := r.Summary(); got != want {
		t.Errorf("unexpected summary:\n got %q\nwant %q", got, want)
	}
}

func TestSummary_FailingScore(t *testing.T) {
	r := &Result{Correct: 1, Total: 4, Percentage: 25, Letter: "F"}
	want := "Exam results: 1 out of 4 answers correct! You achieved an F with a percentage score of 25.0."
	if got := r.Summary(); got != want {
		t.Errorf("unexpected summary:\n got %q\nwant %q", got, want)
	}
}

func TestSummary_MiddleGradeUsesA(t *testing.T) {
	r := &Result{Correct: 3, Total: 4, Percentage: 75, Letter: "C"}
	want := "Exam results: 3 out of 4 answers correct! You achieved a C with a percentage score of 75.0."
	if got := r.Summary(); got != want {
		t.Errorf("unexpected summary:\n got %q\nwant %q", got, want)
	}
}
