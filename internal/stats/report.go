// Package stats contains statistics calculations and reporting.
package stats

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/cypher-zh/cypher/internal/model"
	"github.com/cypher-zh/cypher/internal/store"
)

// toneLabel maps a tone number to its display label with an example mark.
func toneLabel(tone int) string {
	switch tone {
	case 1:
		return "1 (ā)"
	case 2:
		return "2 (á)"
	case 3:
		return "3 (ǎ)"
	case 4:
		return "4 (à)"
	case 0:
		return "0 (neutral)"
	default:
		return fmt.Sprintf("%d", tone)
	}
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Sessions       []model.SessionAggregate
	ToneAggsAll    []model.ToneAggregate
	ToneAggsWindow []model.ToneAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}

	allIDs := sessionIDs(sessions)
	windowIDs := lastSessionIDs(sessions, cfg.CurveWindow)
	toneAggsAll, err := st.ListToneAggregatesForSessions(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	toneAggsWindow, err := st.ListToneAggregatesForSessions(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Sessions:       sessions,
		ToneAggsAll:    toneAggsAll,
		ToneAggsWindow: toneAggsWindow,
	}, nil
}

// Render prints the full stats report. maxWidth bounds the curve width;
// zero means unbounded.
func Render(w io.Writer, report Report, cfg model.StatsConfig, maxWidth int) error {
	if err := RenderSummary(w, report.Sessions); err != nil {
		return err
	}
	if err := RenderAccuracyCurve(w, report.Sessions, cfg.CurveWindow, maxWidth); err != nil {
		return err
	}
	if err := RenderToneTable(w, "Per-Tone (All Sessions)", report.ToneAggsAll); err != nil {
		return err
	}
	return RenderToneTable(w, "Per-Tone (Windowed)", report.ToneAggsWindow)
}

// RenderToneTable prints per-tone aggregates sorted by lowest accuracy.
func RenderToneTable(w io.Writer, title string, aggs []model.ToneAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No tone stats found.")
		return err
	}
	rows := make([]model.ToneAggregate, len(aggs))
	copy(rows, aggs)
	sort.Slice(rows, func(i, j int) bool {
		ai := accuracy(rows[i])
		aj := accuracy(rows[j])
		if ai == aj {
			return rows[i].Tone < rows[j].Tone
		}
		return ai < aj
	})

	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	headers := []string{"Tone", "Accuracy", "Correct", "Incorrect"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			toneLabel(r.Tone),
			fmt.Sprintf("%.2f%%", accuracy(r)*100),
			fmt.Sprintf("%d", r.Correct),
			fmt.Sprintf("%d", r.Incorrect),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func sessionIDs(sessions []model.SessionAggregate) []int64 {
	ids := make([]int64, len(sessions))
	for i, s := range sessions {
		ids[i] = s.SessionID
	}
	return ids
}

func lastSessionIDs(sessions []model.SessionAggregate, window int) []int64 {
	if window <= 0 || len(sessions) <= window {
		return sessionIDs(sessions)
	}
	return sessionIDs(sessions[len(sessions)-window:])
}
