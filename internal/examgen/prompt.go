package examgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/examly/internal/exam"
)

const systemPrompt = `You are an exam author writing multiple-choice exams.

Rules:
- Write in plain ASCII text. No markdown, no LaTeX, no Unicode symbols.
- Number each question, starting at 1.
- Put each option on its own line, labeled a), b), c) and so on.
- Exactly one option per question is correct; the others must be plausible
  but wrong.
- Immediately after the options of each question, add one line that starts
  with "` + exam.Marker + ` " followed by the label of the correct option.
- Do not add commentary before the first question or after the last answer.`

// BuildPrompt formats the user message requesting an exam matching spec.
// The output is a deterministic, purely syntactic function of the spec.
// It fails only when the spec violates its constraints.
func BuildPrompt(spec exam.Spec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a multiple choice exam about %s. ", spec.Topic)
	fmt.Fprintf(&b, "The exam should have %d questions. ", spec.NumQuestions)
	fmt.Fprintf(&b, "Each question should have %d options: one correct answer and %d incorrect answers. ",
		spec.NumChoices, spec.NumChoices-1)
	fmt.Fprintf(&b, "After the options of each question, add a line that starts with %q followed by the correct option.",
		exam.Marker+" ")

	return b.String(), nil
}
