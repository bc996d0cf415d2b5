package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cypher-zh/cypher/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "cypher.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return st
}

func insertTestSession(t *testing.T, st *Store, endedAt time.Time, voice string, questions, score int, tones []model.ToneStats) int64 {
	t.Helper()
	id, err := st.InsertSession(context.Background(), model.SessionStats{
		StartedAt:  endedAt.Add(-time.Minute),
		EndedAt:    endedAt,
		Voice:      voice,
		Questions:  questions,
		Score:      score,
		DurationMs: time.Minute.Milliseconds(),
	}, tones)
	if err != nil {
		t.Fatalf("InsertSession: %v", err)
	}
	return id
}

func TestInsertAndListSessions(t *testing.T) {
	st := openTestStore(t)
	now := time.Now()

	insertTestSession(t, st, now.Add(-2*time.Hour), "zh-CN-XiaoxiaoNeural", 10, 7, nil)
	insertTestSession(t, st, now.Add(-1*time.Hour), "zh-CN-YunxiNeural", 10, 9, nil)

	sessions, err := st.ListSessions(context.Background(), model.StatsConfig{})
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(sessions))
	}
	if !sessions[0].EndedAt.Before(sessions[1].EndedAt) {
		t.Error("sessions not ordered by ended_at ascending")
	}
	if sessions[0].Questions != 10 || sessions[0].Score != 7 {
		t.Errorf("sessions[0] = %+v", sessions[0])
	}
}

func TestListSessionsFilters(t *testing.T) {
	st := openTestStore(t)
	now := time.Now()

	insertTestSession(t, st, now.Add(-48*time.Hour), "zh-CN-XiaoxiaoNeural", 10, 5, nil)
	insertTestSession(t, st, now.Add(-1*time.Hour), "zh-CN-YunxiNeural", 10, 9, nil)

	byVoice, err := st.ListSessions(context.Background(), model.StatsConfig{Voice: "zh-CN-YunxiNeural"})
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(byVoice) != 1 || byVoice[0].Score != 9 {
		t.Errorf("voice filter returned %+v", byVoice)
	}

	since := now.Add(-24 * time.Hour)
	recent, err := st.ListSessions(context.Background(), model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("since filter returned %d sessions, want 1", len(recent))
	}
}

func TestToneAggregates(t *testing.T) {
	st := openTestStore(t)
	now := time.Now()

	id1 := insertTestSession(t, st, now.Add(-2*time.Hour), "v", 4, 3, []model.ToneStats{
		{Tone: 1, Correct: 2, Incorrect: 0},
		{Tone: 3, Correct: 1, Incorrect: 1},
	})
	id2 := insertTestSession(t, st, now.Add(-1*time.Hour), "v", 4, 2, []model.ToneStats{
		{Tone: 3, Correct: 0, Incorrect: 2},
		{Tone: 4, Correct: 2, Incorrect: 0},
	})

	aggs, err := st.ListToneAggregatesForSessions(context.Background(), []int64{id1, id2})
	if err != nil {
		t.Fatalf("ListToneAggregatesForSessions: %v", err)
	}
	byTone := map[int]model.ToneAggregate{}
	for _, a := range aggs {
		byTone[a.Tone] = a
	}
	if got := byTone[3]; got.Correct != 1 || got.Incorrect != 3 {
		t.Errorf("tone 3 aggregate = %+v", got)
	}
	if got := byTone[1]; got.Correct != 2 || got.Incorrect != 0 {
		t.Errorf("tone 1 aggregate = %+v", got)
	}

	onlyFirst, err := st.ListToneAggregatesForSessions(context.Background(), []int64{id1})
	if err != nil {
		t.Fatalf("ListToneAggregatesForSessions: %v", err)
	}
	if len(onlyFirst) != 2 {
		t.Errorf("single session aggregates = %d, want 2", len(onlyFirst))
	}

	empty, err := st.ListToneAggregatesForSessions(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListToneAggregatesForSessions(nil): %v", err)
	}
	if empty != nil {
		t.Errorf("aggregates for no sessions = %v, want nil", empty)
	}
}

func TestGetWeakTonesWindow(t *testing.T) {
	st := openTestStore(t)
	now := time.Now()

	// Old session where tone 2 was bad; recent sessions where tone 4 is bad.
	insertTestSession(t, st, now.Add(-3*time.Hour), "v", 4, 1, []model.ToneStats{
		{Tone: 2, Correct: 0, Incorrect: 4},
	})
	insertTestSession(t, st, now.Add(-2*time.Hour), "v", 4, 2, []model.ToneStats{
		{Tone: 4, Correct: 1, Incorrect: 3},
	})
	insertTestSession(t, st, now.Add(-1*time.Hour), "v", 4, 2, []model.ToneStats{
		{Tone: 4, Correct: 0, Incorrect: 2},
	})

	aggs, err := st.GetWeakTones(context.Background(), 2, "")
	if err != nil {
		t.Fatalf("GetWeakTones: %v", err)
	}
	if len(aggs) != 1 || aggs[0].Tone != 4 {
		t.Fatalf("window aggregates = %+v, want only tone 4", aggs)
	}
	if aggs[0].Correct != 1 || aggs[0].Incorrect != 5 {
		t.Errorf("tone 4 aggregate = %+v", aggs[0])
	}

	none, err := st.GetWeakTones(context.Background(), 0, "")
	if err != nil {
		t.Fatalf("GetWeakTones(0): %v", err)
	}
	if none != nil {
		t.Errorf("window 0 aggregates = %v, want nil", none)
	}
}
