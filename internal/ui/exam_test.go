package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testViews() map[int]string {
	return map[int]string{
		1: "1. What is the capital of France?\na) London\nb) Paris",
		2: "2. What is 2 + 2?\na) 3\nb) 4",
	}
}

func typeAnswer(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		m = next.(Model)
	}
	return m
}

func pressEnter(m Model) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return next.(Model), cmd
}

func TestExam_PresentsFirstQuestion(t *testing.T) {
	m := New("geography", testViews(), false)

	content := m.content()
	if !strings.Contains(content, "capital of France") {
		t.Errorf("expected first question in view:\n%s", content)
	}
	if !strings.Contains(content, "Question 1 of 2") {
		t.Errorf("expected progress line:\n%s", content)
	}
}

func TestExam_EnterRecordsAndAdvances(t *testing.T) {
	m := New("geography", testViews(), false)

	m = typeAnswer(m, "b")
	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Error("expected a focus command after advancing")
	}

	answers := m.Answers()
	if answers[1] != "b" {
		t.Errorf("expected answer 1 to be recorded, got %q", answers[1])
	}

	content := m.content()
	if !strings.Contains(content, "What is 2 + 2?") {
		t.Errorf("expected second question after enter:\n%s", content)
	}
}

func TestExam_LastAnswerQuits(t *testing.T) {
	m := New("geography", testViews(), false)

	m = typeAnswer(m, "b")
	m, _ = pressEnter(m)
	m = typeAnswer(m, "b")
	m, cmd := pressEnter(m)

	if cmd == nil {
		t.Fatal("expected quit command after the last question")
	}
	answers := m.Answers()
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	if answers[2] != "b" {
		t.Errorf("expected answer 2 to be recorded, got %q", answers[2])
	}
}

func TestExam_EscQuitsWithPartialAnswers(t *testing.T) {
	m := New("geography", testViews(), false)

	m = typeAnswer(m, "b")
	m, _ = pressEnter(m)

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected quit command on esc")
	}
	if len(m.Answers()) != 1 {
		t.Errorf("expected 1 partial answer, got %d", len(m.Answers()))
	}
}

func TestExam_EmptySubmissionRecorded(t *testing.T) {
	m := New("geography", testViews(), false)

	m, _ = pressEnter(m)

	answers := m.Answers()
	if v, ok := answers[1]; !ok || v != "" {
		t.Errorf("expected empty answer recorded for question 1, got %q (present=%v)", v, ok)
	}
}

func TestExam_TruncationNotice(t *testing.T) {
	m := New("geography", testViews(), true)

	content := m.content()
	if !strings.Contains(content, "incomplete") {
		t.Errorf("expected truncation notice:\n%s", content)
	}
}
