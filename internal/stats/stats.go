// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cypher-zh/cypher/internal/model"
)

const sparkChars = " .:-=+*#%@"

// SessionAccuracy computes the fraction of correct answers for a session.
func SessionAccuracy(score, questions int) float64 {
	if questions <= 0 {
		return 0
	}
	return float64(score) / float64(questions)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary block for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalAcc float64
	bestAcc := 0.0
	var totalQuestions, totalScore int
	for _, s := range sessions {
		acc := SessionAccuracy(s.Score, s.Questions)
		totalAcc += acc
		if acc > bestAcc {
			bestAcc = acc
		}
		totalQuestions += s.Questions
		totalScore += s.Score
	}
	count := float64(len(sessions))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sessions: %d\n", len(sessions)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Questions answered: %d\n", totalQuestions); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Correct: %d\n", totalScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", (totalAcc/count)*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best Accuracy: %.2f%%\n", bestAcc*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderAccuracyCurve prints a per-session accuracy sparkline smoothed
// over the configured window and sized to fit maxWidth columns.
func RenderAccuracyCurve(w io.Writer, sessions []model.SessionAggregate, window, maxWidth int) error {
	if len(sessions) == 0 {
		return nil
	}
	accs := make([]float64, len(sessions))
	for i, s := range sessions {
		accs[i] = SessionAccuracy(s.Score, s.Questions) * 100
	}
	accs = MovingAverage(accs, window)
	if maxWidth > 0 && len(accs) > maxWidth {
		accs = accs[len(accs)-maxWidth:]
	}
	if _, err := fmt.Fprintln(w, "Accuracy Trend"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s (last %d sessions)\n", Sparkline(accs), len(accs)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
