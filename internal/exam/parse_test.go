package exam

import (
	"strings"
	"testing"
)

const wellFormed = `1. What is the capital of France?
a) London
b) Paris
c) Rome
d) Berlin
Correct Answer: b)
2. Which planet is closest to the sun?
a) Venus
b) Earth
c) Mercury
d) Mars
Correct Answer: c)
3. What is 2 + 2?
a) 3
b) 4
c) 5
d) 22
Correct Answer: b)`

func TestParse_WellFormed(t *testing.T) {
	e := Parse(wellFormed, 3)

	if e.Len() != 3 {
		t.Fatalf("expected 3 questions, got %d", e.Len())
	}

	key := e.AnswerKey()
	for n := 1; n <= 3; n++ {
		if _, ok := key[n]; !ok {
			t.Errorf("missing answer key entry for question %d", n)
		}
	}
	if key[2] != "Correct Answer: c)" {
		t.Errorf("unexpected key for question 2: %q", key[2])
	}
}

func TestParse_ViewsExcludeAnswerLines(t *testing.T) {
	e := Parse(wellFormed, 3)

	for n, view := range e.Views() {
		if strings.Contains(view, Marker) {
			t.Errorf("question %d view leaks an answer line:\n%s", n, view)
		}
	}

	view, ok := e.View(1)
	if !ok {
		t.Fatal("expected question 1 to exist")
	}
	for _, want := range []string{"capital of France", "a) London", "d) Berlin"} {
		if !strings.Contains(view, want) {
			t.Errorf("question 1 view missing %q", want)
		}
	}
}

func TestParse_TruncatedBeforeLastMarker(t *testing.T) {
	// The completion stops mid-question 3: its options never finish and
	// its marker never arrives.
	raw := `1. First?
a) yes
b) no
Correct Answer: a)
2. Second?
a) yes
b) no
Correct Answer: b)
3. Third?
a) y`
	e := Parse(raw, 4)

	if e.Len() != 3 {
		t.Fatalf("expected 3 opened slots, got %d", e.Len())
	}

	key := e.AnswerKey()
	if len(key) != 2 {
		t.Fatalf("expected 2 key entries, got %d", len(key))
	}
	if _, ok := key[3]; ok {
		t.Error("question 3 should have no answer key entry")
	}

	view, ok := e.View(3)
	if !ok {
		t.Fatal("expected question 3 to exist")
	}
	if !strings.Contains(view, "3. Third?") {
		t.Errorf("question 3 view missing its body: %q", view)
	}
}

func TestParse_RunOnMarkersStayInLastSlot(t *testing.T) {
	// Three markers but only two questions requested: the extra marker and
	// everything after it accumulate into the last slot instead of being
	// dropped.
	raw := `1. First?
Correct Answer: a)
2. Second?
Correct Answer: b)
3. Surplus?
Correct Answer: c)`
	e := Parse(raw, 2)

	if e.Len() != 2 {
		t.Fatalf("expected 2 slots, got %d", e.Len())
	}

	key := e.AnswerKey()
	if !strings.Contains(key[2], "Correct Answer: b)") {
		t.Errorf("question 2 key missing its own marker: %q", key[2])
	}
	if !strings.Contains(key[2], "Correct Answer: c)") {
		t.Errorf("question 2 key should retain the run-on marker: %q", key[2])
	}

	view, _ := e.View(2)
	if !strings.Contains(view, "3. Surplus?") {
		t.Errorf("run-on body lines should stay in the last slot: %q", view)
	}
}

func TestParse_EmptyCompletion(t *testing.T) {
	e := Parse("", 5)

	if e.Len() != 1 {
		t.Fatalf("expected a single opened slot, got %d", e.Len())
	}
	if len(e.AnswerKey()) != 0 {
		t.Error("empty completion should produce no answer key entries")
	}
}

func TestParse_MarkerMustStartLine(t *testing.T) {
	raw := `1. First?
The phrase Correct Answer: b) appears mid-sentence here.
Correct Answer: a)`
	e := Parse(raw, 1)

	key := e.AnswerKey()
	if key[1] != "Correct Answer: a)" {
		t.Errorf("mid-line marker text should not split: %q", key[1])
	}

	view, _ := e.View(1)
	if !strings.Contains(view, "mid-sentence") {
		t.Errorf("mid-line marker text should stay in the view: %q", view)
	}
}

func TestParse_ViewOutOfRange(t *testing.T) {
	e := Parse(wellFormed, 3)

	if _, ok := e.View(0); ok {
		t.Error("View(0) should report not found")
	}
	if _, ok := e.View(4); ok {
		t.Error("View(4) should report not found")
	}
}

func TestParse_Idempotent(t *testing.T) {
	a := Parse(wellFormed, 3)
	b := Parse(wellFormed, 3)

	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for n := 1; n <= a.Len(); n++ {
		av, _ := a.View(n)
		bv, _ := b.View(n)
		if av != bv {
			t.Errorf("question %d views differ", n)
		}
	}
	ak, bk := a.AnswerKey(), b.AnswerKey()
	if len(ak) != len(bk) {
		t.Fatalf("key sizes differ: %d vs %d", len(ak), len(bk))
	}
	for n, v := range ak {
		if bk[n] != v {
			t.Errorf("question %d keys differ", n)
		}
	}
}

func TestParse_PreservesLineOrder(t *testing.T) {
	e := Parse(wellFormed, 3)

	view, _ := e.View(2)
	lines := strings.Split(view, "\n")
	want := []string{"2. Which planet is closest to the sun?", "a) Venus", "b) Earth", "c) Mercury", "d) Mars"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), view)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}
