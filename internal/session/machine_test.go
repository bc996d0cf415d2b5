package session

import (
	"testing"
	"time"

	"github.com/cypher-zh/cypher/internal/tonebank"
)

func fixedDraw(entries []tonebank.Entry) DrawFunc {
	return func(n int) []tonebank.Entry {
		if n > len(entries) {
			n = len(entries)
		}
		return entries[:n]
	}
}

func fourQuestions() []tonebank.Entry {
	return []tonebank.Entry{
		{Character: "妈", Pinyin: "mā", EffectiveTone: 1},
		{Character: "麻", Pinyin: "má", EffectiveTone: 2},
		{Character: "马", Pinyin: "mǎ", EffectiveTone: 3},
		{Character: "骂", Pinyin: "mà", EffectiveTone: 4},
	}
}

func TestMachineAllCorrect(t *testing.T) {
	m := NewMachine(fixedDraw(fourQuestions()))
	if m.State() != StateLoading {
		t.Fatalf("initial state = %v, want Loading", m.State())
	}
	m.Start(4)
	if m.State() != StateActive {
		t.Fatalf("state after Start = %v, want Active", m.State())
	}

	for i := 1; i <= 4; i++ {
		q, ok := m.Current()
		if !ok {
			t.Fatalf("no current question at index %d", i)
		}
		res, ok := m.Answer(q.EffectiveTone)
		if !ok {
			t.Fatalf("Answer rejected at question %d", i)
		}
		if !res.Correct {
			t.Fatalf("question %d marked incorrect", i)
		}
		if m.Feedback() != FeedbackCorrect {
			t.Fatalf("feedback = %v, want FeedbackCorrect", m.Feedback())
		}
		m.Advance()
	}

	if !m.Completed() {
		t.Fatal("session not completed after last advance")
	}
	if m.Score() != 4 {
		t.Errorf("score = %d, want 4", m.Score())
	}
}

func TestMachineIncorrectAnswer(t *testing.T) {
	m := NewMachine(fixedDraw(fourQuestions()))
	m.Start(1)

	res, ok := m.Answer(2) // actual tone is 1
	if !ok {
		t.Fatal("Answer rejected")
	}
	if res.Correct {
		t.Fatal("wrong answer marked correct")
	}
	if m.Feedback() != FeedbackIncorrect {
		t.Fatalf("feedback = %v, want FeedbackIncorrect", m.Feedback())
	}
	if m.Score() != 0 {
		t.Errorf("score = %d, want 0", m.Score())
	}
}

func TestMachineDoubleSubmitIgnored(t *testing.T) {
	m := NewMachine(fixedDraw(fourQuestions()))
	m.Start(2)

	if _, ok := m.Answer(1); !ok {
		t.Fatal("first Answer rejected")
	}
	score := m.Score()
	index := m.Index()

	// Feedback is showing; further submissions must change nothing.
	if _, ok := m.Answer(3); ok {
		t.Fatal("second Answer accepted during feedback")
	}
	if m.Score() != score || m.Index() != index {
		t.Errorf("state changed on double submit: score %d->%d index %d->%d", score, m.Score(), index, m.Index())
	}
}

func TestMachineAnswerOutsideActive(t *testing.T) {
	m := NewMachine(fixedDraw(fourQuestions()))
	if _, ok := m.Answer(1); ok {
		t.Fatal("Answer accepted before Start")
	}
	m.Start(1)
	m.Answer(1)
	m.Advance()
	if !m.Completed() {
		t.Fatal("expected summary")
	}
	if _, ok := m.Answer(1); ok {
		t.Fatal("Answer accepted in summary")
	}
}

func TestMachineAdvanceOnlyFromFeedback(t *testing.T) {
	m := NewMachine(fixedDraw(fourQuestions()))
	m.Start(2)
	m.Advance()
	if m.Index() != 0 || m.State() != StateActive {
		t.Fatalf("Advance changed an active session: index=%d state=%v", m.Index(), m.State())
	}
}

func TestMachineDelays(t *testing.T) {
	m := NewMachine(fixedDraw(fourQuestions()))
	m.Start(2)

	res, _ := m.Answer(1)
	if res.Delay != 1000*time.Millisecond {
		t.Errorf("correct delay = %v, want 1s", res.Delay)
	}
	m.Advance()
	res, _ = m.Answer(1) // actual tone is 2
	if res.Delay != 1500*time.Millisecond {
		t.Errorf("incorrect delay = %v, want 1.5s", res.Delay)
	}
}

func TestMachineCustomDelays(t *testing.T) {
	m := NewMachine(fixedDraw(fourQuestions()), WithDelays(10*time.Millisecond, 20*time.Millisecond))
	m.Start(1)
	res, _ := m.Answer(1)
	if res.Delay != 10*time.Millisecond {
		t.Errorf("delay = %v, want 10ms", res.Delay)
	}
}

func TestMachineEmptyDraw(t *testing.T) {
	m := NewMachine(fixedDraw(nil))
	m.Start(5)
	if !m.Completed() {
		t.Fatal("empty draw should complete immediately")
	}
	if _, ok := m.Current(); ok {
		t.Fatal("Current returned a question for an empty session")
	}
}

func TestMachineGenerationChangesOnRestart(t *testing.T) {
	m := NewMachine(fixedDraw(fourQuestions()))
	m.Start(2)
	first := m.Generation()
	if first == "" {
		t.Fatal("empty generation after Start")
	}
	m.Restart(2)
	if m.Generation() == first {
		t.Fatal("generation unchanged after Restart")
	}
	if m.Score() != 0 || m.Index() != 0 || m.State() != StateActive {
		t.Errorf("Restart did not reset session: score=%d index=%d state=%v", m.Score(), m.Index(), m.State())
	}
}
