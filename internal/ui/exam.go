// Package ui is the interactive exam-taking surface. It presents each
// question in order and collects one free-text answer per question. Its
// only contract with the rest of the program is the submitted-answers
// mapping it hands back; grading happens outside.
package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// Model is the Bubble Tea model for taking one exam.
type Model struct {
	topic     string
	views     map[int]string
	total     int
	truncated bool

	idx     int // 0-based cursor into the question order
	input   textinput.Model
	answers map[int]string
	done    bool

	width int
}

// New creates a Model for the given exam views. Views are presented in
// ascending question order.
func New(topic string, views map[int]string, truncated bool) Model {
	return Model{
		topic:     topic,
		views:     views,
		total:     len(views),
		truncated: truncated,
		input:     newAnswerInput(),
		answers:   make(map[int]string, len(views)),
	}
}

func newAnswerInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "your answer, e.g. a"
	ti.CharLimit = 64
	return ti
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			// Quit early; whatever was answered gets graded.
			m.done = true
			return m, tea.Quit

		case "enter":
			m.answers[m.idx+1] = strings.TrimSpace(m.input.Value())
			m.idx++
			if m.idx >= m.total {
				m.done = true
				return m, tea.Quit
			}
			m.input = newAnswerInput()
			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	if m.done || m.total == 0 {
		return v
	}
	v.SetContent(m.content())
	return v
}

// content renders the current question screen.
func (m Model) content() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.topic))
	b.WriteString("\n")
	b.WriteString(progressStyle.Render(fmt.Sprintf("Question %d of %d", m.idx+1, m.total)))
	b.WriteString("\n")
	if m.truncated {
		b.WriteString(warnStyle.Render("(the generated exam is incomplete)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	body := strings.TrimSpace(m.views[m.idx+1])
	if body == "" {
		body = "(this question has no text; the generation was cut short)"
	}
	b.WriteString(bodyStyle.Render(body))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Enter to submit answer · Esc to stop and grade what you have"))

	return b.String()
}

// Answers returns the submitted answers keyed by 1-based question number.
// Only questions that were presented and submitted appear.
func (m Model) Answers() map[int]string {
	return m.answers
}
