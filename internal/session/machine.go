package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/cypher-zh/cypher/internal/tonebank"
)

// State identifies where a practice session is in its lifecycle.
type State int

const (
	// StateLoading means no session has been generated yet.
	StateLoading State = iota
	// StateActive means a question is presented and awaiting an answer.
	StateActive
	// StateFeedback means an answer was just submitted and feedback is visible.
	StateFeedback
	// StateSummary means all questions are consumed.
	StateSummary
)

// Feedback is the transient per-question answer feedback.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

const (
	defaultCorrectDelay   = 1000 * time.Millisecond
	defaultIncorrectDelay = 1500 * time.Millisecond
)

// DrawFunc produces the question sequence for a new session of size n.
type DrawFunc func(n int) []tonebank.Entry

// AnswerResult reports the outcome of a submitted answer and how long the
// feedback should stay visible before the session advances.
type AnswerResult struct {
	Correct bool
	Delay   time.Duration
}

// Option configures a Machine.
type Option func(*Machine)

// WithDelays overrides the feedback display delays.
func WithDelays(correct, incorrect time.Duration) Option {
	return func(m *Machine) {
		m.correctDelay = correct
		m.incorrectDelay = incorrect
	}
}

// Machine drives one practice session: question index, score, feedback,
// and completion. Score only changes in Answer; the index only changes in
// Advance. Each Start/Restart mints a new generation ID so scheduled
// effects from a superseded session can be discarded.
type Machine struct {
	draw DrawFunc

	questions []tonebank.Entry
	index     int
	score     int
	feedback  Feedback
	state     State

	generation     string
	correctDelay   time.Duration
	incorrectDelay time.Duration
}

// NewMachine constructs a Machine in the Loading state.
func NewMachine(draw DrawFunc, opts ...Option) *Machine {
	m := &Machine{
		draw:           draw,
		state:          StateLoading,
		correctDelay:   defaultCorrectDelay,
		incorrectDelay: defaultIncorrectDelay,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Start draws a fresh sample of n questions and activates the session.
// An empty draw completes the session immediately.
func (m *Machine) Start(n int) {
	m.questions = m.draw(n)
	m.index = 0
	m.score = 0
	m.feedback = FeedbackNone
	m.generation = uuid.NewString()
	if len(m.questions) == 0 {
		m.state = StateSummary
		return
	}
	m.state = StateActive
}

// Restart behaves like Start with a freshly drawn sample. It is valid from
// any state (explicit user action).
func (m *Machine) Restart(n int) {
	m.Start(n)
}

// Answer submits a tone choice for the current question. It reports ok=false
// when no question is active or feedback is already set (double-submit
// guard); in that case nothing changes.
func (m *Machine) Answer(choice int) (AnswerResult, bool) {
	if m.state != StateActive || m.feedback != FeedbackNone {
		return AnswerResult{}, false
	}
	correct := choice == m.questions[m.index].EffectiveTone
	if correct {
		m.score++
		m.feedback = FeedbackCorrect
		m.state = StateFeedback
		return AnswerResult{Correct: true, Delay: m.correctDelay}, true
	}
	m.feedback = FeedbackIncorrect
	m.state = StateFeedback
	return AnswerResult{Correct: false, Delay: m.incorrectDelay}, true
}

// Advance clears feedback and moves to the next question, or to the summary
// when the last question was answered. It is a no-op outside Feedback.
func (m *Machine) Advance() {
	if m.state != StateFeedback {
		return
	}
	m.feedback = FeedbackNone
	m.index++
	if m.index >= len(m.questions) {
		m.state = StateSummary
		return
	}
	m.state = StateActive
}

// Current returns the active question, if any.
func (m *Machine) Current() (tonebank.Entry, bool) {
	if m.index < 0 || m.index >= len(m.questions) {
		return tonebank.Entry{}, false
	}
	return m.questions[m.index], true
}

// State returns the current lifecycle state.
func (m *Machine) State() State {
	return m.state
}

// Feedback returns the transient answer feedback.
func (m *Machine) Feedback() Feedback {
	return m.feedback
}

// Score returns the count of correct answers so far.
func (m *Machine) Score() int {
	return m.score
}

// Index returns the 0-based current question index.
func (m *Machine) Index() int {
	return m.index
}

// Len returns the number of questions in the session.
func (m *Machine) Len() int {
	return len(m.questions)
}

// Questions returns a copy of the session's question sequence.
func (m *Machine) Questions() []tonebank.Entry {
	out := make([]tonebank.Entry, len(m.questions))
	copy(out, m.questions)
	return out
}

// Completed reports whether the session reached its summary.
func (m *Machine) Completed() bool {
	return m.state == StateSummary
}

// Generation identifies the current session instance. Timer and audio
// results tagged with an older generation must be discarded.
func (m *Machine) Generation() string {
	return m.generation
}
