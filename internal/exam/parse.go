package exam

import "strings"

// Parse splits a raw completion into per-question blocks with a single
// linear scan. Lines before a question's marker line form its view; the
// marker line itself goes to the answer key. After a marker the scan
// advances to the next question, up to numQuestions. Once the last slot is
// reached nothing advances further: run-on markers and trailing body lines
// accumulate into that slot, so malformed tails are kept rather than
// dropped.
//
// Parse never fails. A completion truncated before the final marker simply
// leaves that question without an answer-key entry. It is a pure function
// of its inputs.
func Parse(raw string, numQuestions int) *Exam {
	if numQuestions < 1 {
		numQuestions = 1
	}

	e := &Exam{blocks: make([]block, 1, numQuestions)}
	cur := 0

	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, Marker) {
			e.blocks[cur].key = append(e.blocks[cur].key, line)
			if cur < numQuestions-1 {
				e.blocks = append(e.blocks, block{})
				cur++
			}
			continue
		}
		e.blocks[cur].body = append(e.blocks[cur].body, line)
	}

	return e
}
