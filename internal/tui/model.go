// Package tui provides the Bubble Tea tone practice interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cypher-zh/cypher/internal/audio"
	"github.com/cypher-zh/cypher/internal/model"
	"github.com/cypher-zh/cypher/internal/session"
	statsPkg "github.com/cypher-zh/cypher/internal/stats"
	"github.com/cypher-zh/cypher/internal/store"
	"github.com/cypher-zh/cypher/internal/tonebank"
)

type toneStat struct {
	correct   int
	incorrect int
}

// audioReadyMsg reports that a synthesis fetch settled. Messages carrying a
// stale generation belong to a superseded session and are dropped.
type audioReadyMsg struct {
	generation string
	key        string
	err        error
}

// advanceMsg fires when the feedback delay elapses.
type advanceMsg struct {
	generation string
}

// Model implements the Bubble Tea tone practice UI.
type Model struct {
	config            model.Config
	store             *store.Store
	gen               *session.Generator
	entries           []tonebank.Entry
	synth             audio.Synthesizer
	player            *audio.Player
	machine           *session.Machine
	cache             *audio.Cache
	weakSet           map[int]struct{}
	weakNoticePrinted bool

	width  int
	height int

	spin spinner.Model
	prog progress.Model

	startedAt time.Time
	toneStats map[int]*toneStat
	audioErr  error
	saved     bool
}

var (
	hanziStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	meaningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	pinyinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a tone practice TUI model.
func NewModel(cfg model.Config, st *store.Store, gen *session.Generator, entries []tonebank.Entry, synth audio.Synthesizer, weakSet map[int]struct{}, weakNoticePrinted bool) *Model {
	m := &Model{
		config:            cfg,
		store:             st,
		gen:               gen,
		entries:           entries,
		synth:             synth,
		player:            audio.NewPlayer(),
		weakSet:           weakSet,
		weakNoticePrinted: weakNoticePrinted,
	}
	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = pinyinStyle
	m.prog = progress.New(progress.WithDefaultGradient())
	m.machine = session.NewMachine(m.draw)
	return m
}

func (m *Model) draw(n int) []tonebank.Entry {
	if m.config.FocusWeak && len(m.weakSet) > 0 {
		return m.gen.SampleWeighted(m.entries, n, m.weakSet, m.config.WeakFactor)
	}
	return m.gen.Sample(m.entries, n)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.startSession())
}

// startSession draws a fresh sample and a fresh audio cache. Handles from
// the previous session are revoked first.
func (m *Model) startSession() tea.Cmd {
	if m.cache != nil {
		m.cache.ReleaseAll()
	}
	m.cache = audio.NewCache(m.synth)
	m.machine.Start(m.config.Questions)
	m.startedAt = time.Now()
	m.toneStats = map[int]*toneStat{}
	m.audioErr = nil
	m.saved = false
	if m.machine.Completed() {
		return nil
	}
	return m.fetchAudioCmd()
}

// fetchAudioCmd starts the current question's fetch and waits for it.
// Only the current question is ever fetched; later questions wait for
// their own advance.
func (m *Model) fetchAudioCmd() tea.Cmd {
	q, ok := m.machine.Current()
	if !ok {
		return nil
	}
	gen := m.machine.Generation()
	cache := m.cache
	key := q.Character
	return func() tea.Msg {
		_, err := cache.Wait(context.Background(), key)
		return audioReadyMsg{generation: gen, key: key, err: err}
	}
}

func (m *Model) playCurrent() {
	q, ok := m.machine.Current()
	if !ok {
		return
	}
	h, ok := m.cache.Get(q.Character)
	if !ok {
		return
	}
	if err := m.player.Play(h, nil); err != nil {
		logErrf("failed to play audio: %v\n", err)
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width / 2
		if w < 10 {
			w = 10
		}
		m.prog.Width = w
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case audioReadyMsg:
		return m.handleAudioReady(msg)
	case advanceMsg:
		return m.handleAdvance(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleAudioReady(msg audioReadyMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.machine.Generation() {
		return m, nil
	}
	if msg.err != nil {
		m.audioErr = msg.err
		return m, nil
	}
	m.audioErr = nil
	if q, ok := m.machine.Current(); ok && q.Character == msg.key {
		m.playCurrent()
	}
	return m, nil
}

func (m *Model) handleAdvance(msg advanceMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.machine.Generation() {
		return m, nil
	}
	m.machine.Advance()
	if m.machine.Completed() {
		m.finishSession()
		return m, nil
	}
	return m, m.fetchAudioCmd()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q", "esc":
		m.shutdown()
		return m, tea.Quit
	}

	switch m.machine.State() {
	case session.StateActive:
		switch key {
		case "1", "2", "3", "4":
			return m.submitAnswer(int(key[0] - '0'))
		case " ", "p":
			m.playCurrent()
		case "r":
			if m.audioErr != nil {
				return m, m.retryAudio()
			}
		}
	case session.StateSummary:
		if key == "enter" || key == "y" {
			m.refreshWeakSet()
			return m, m.startSession()
		}
	}
	return m, nil
}

func (m *Model) submitAnswer(choice int) (tea.Model, tea.Cmd) {
	q, ok := m.machine.Current()
	if !ok {
		return m, nil
	}
	res, ok := m.machine.Answer(choice)
	if !ok {
		return m, nil
	}
	entry := m.toneEntry(q.EffectiveTone)
	if res.Correct {
		entry.correct++
	} else {
		entry.incorrect++
	}
	gen := m.machine.Generation()
	return m, tea.Tick(res.Delay, func(time.Time) tea.Msg {
		return advanceMsg{generation: gen}
	})
}

func (m *Model) retryAudio() tea.Cmd {
	q, ok := m.machine.Current()
	if !ok {
		return nil
	}
	m.audioErr = nil
	m.cache.Retry(q.Character)
	return m.fetchAudioCmd()
}

func (m *Model) toneEntry(tone int) *toneStat {
	entry, ok := m.toneStats[tone]
	if !ok {
		entry = &toneStat{}
		m.toneStats[tone] = entry
	}
	return entry
}

func (m *Model) finishSession() {
	if m.saved || m.machine.Len() == 0 {
		return
	}
	m.saved = true
	endedAt := time.Now()
	stats := model.SessionStats{
		StartedAt:  m.startedAt,
		EndedAt:    endedAt,
		Voice:      m.config.Voice,
		Questions:  m.machine.Len(),
		Score:      m.machine.Score(),
		DurationMs: endedAt.Sub(m.startedAt).Milliseconds(),
	}

	toneStats := make([]model.ToneStats, 0, len(m.toneStats))
	for tone, entry := range m.toneStats {
		toneStats = append(toneStats, model.ToneStats{
			Tone:      tone,
			Correct:   entry.correct,
			Incorrect: entry.incorrect,
		})
	}

	ctx := context.Background()
	if _, err := m.store.InsertSession(ctx, stats, toneStats); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
	m.cache.ReleaseAll()
}

func (m *Model) refreshWeakSet() {
	if !m.config.FocusWeak {
		return
	}
	ctx := context.Background()
	aggs, err := m.store.GetWeakTones(ctx, m.config.WeakWindow, m.config.Voice)
	if err != nil {
		logErrf("failed to load weak tones: %v\n", err)
		return
	}
	if len(aggs) == 0 {
		if !m.weakNoticePrinted {
			logErrln("no stats available for weak-tone focus yet; using uniform sampling")
			m.weakNoticePrinted = true
		}
		m.weakSet = map[int]struct{}{}
		return
	}
	m.weakSet = statsPkg.SelectWeakTones(aggs, m.config.WeakTop)
}

// shutdown revokes audio handles on the way out.
func (m *Model) shutdown() {
	if m.cache != nil {
		m.cache.ReleaseAll()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.machine.State() {
	case session.StateLoading:
		content = fmt.Sprintf("%s Preparing session...", m.spin.View())
	case session.StateActive, session.StateFeedback:
		content = m.viewQuestion()
	case session.StateSummary:
		content = m.viewSummary()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewQuestion() string {
	q, ok := m.machine.Current()
	if !ok {
		return ""
	}
	var b strings.Builder
	total := m.machine.Len()
	b.WriteString(fmt.Sprintf("Question %d/%d  Score %d\n", m.machine.Index()+1, total, m.machine.Score()))
	if total > 0 && m.prog.Width > 0 {
		b.WriteString(m.prog.ViewAs(float64(m.machine.Index())/float64(total)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(hanziStyle.Render(q.Character) + "\n")
	b.WriteString(meaningStyle.Render(q.Meaning) + "\n\n")

	switch m.machine.Feedback() {
	case session.FeedbackCorrect:
		b.WriteString(correctStyle.Render("Correct!") + "\n")
		b.WriteString(pinyinStyle.Render(q.Pinyin) + "\n")
	case session.FeedbackIncorrect:
		b.WriteString(incorrectStyle.Render(fmt.Sprintf("Not quite. It is tone %d.", q.EffectiveTone)) + "\n")
		b.WriteString(pinyinStyle.Render(q.Pinyin) + "\n")
	default:
		switch {
		case m.audioErr != nil:
			b.WriteString(errorStyle.Render("Audio unavailable.") + " " + footerStyle.Render("Press r to retry.") + "\n")
		case m.cache.State(q.Character) == audio.StateLoading:
			b.WriteString(fmt.Sprintf("%s Loading audio...\n", m.spin.View()))
		default:
			b.WriteString(footerStyle.Render("Which tone did you hear?") + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("1-4: pick tone  space: replay  q: quit"))
	return b.String()
}

func (m *Model) viewSummary() string {
	total := m.machine.Len()
	score := m.machine.Score()
	var b strings.Builder
	b.WriteString("Session complete\n\n")
	if total > 0 {
		acc := statsPkg.SessionAccuracy(score, total) * 100
		b.WriteString(fmt.Sprintf("Score: %d/%d (%.0f%%)\n\n", score, total, acc))
	} else {
		b.WriteString("No questions available.\n\n")
	}
	b.WriteString(footerStyle.Render("enter: practice again  q: quit"))
	return b.String()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
