package audioscore

import "testing"

func series(vals ...float32) []float32 { return vals }

func TestFindHighlights(t *testing.T) {
	// Peaks at frame 7 (0.9) and frame 1 (0.8).
	s := ScoreSummary{
		ClassNames: []string{"a", "b"},
		Scores: [][]float32{
			series(0.1, 0.8, 0.1, 0.1, 0.1, 0.1, 0.1, 0.2, 0.1, 0.1),
			series(0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.9, 0.0, 0.0),
		},
	}
	got := FindHighlights(s, 4, 2)
	want := []Highlight{
		// lead = round(0.75*4) = 3; 7-3 = 4; frames 4..7.
		{StartFrame: 4, Frames: 4, PeakFrame: 7, PeakScore: 0.9},
		// 1-3 clamps to 0; frames 0..3.
		{StartFrame: 0, Frames: 4, PeakFrame: 1, PeakScore: 0.8},
	}
	if len(got.Segments) != len(want) {
		t.Fatalf("segments = %+v, want %+v", got.Segments, want)
	}
	for i := range want {
		if got.Segments[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got.Segments[i], want[i])
		}
	}
}

func TestFindHighlightsStopsAtUsedFrames(t *testing.T) {
	s := ScoreSummary{
		ClassNames: []string{"a"},
		Scores:     [][]float32{series(0.1, 0.2, 0.3, 0.9, 0.4, 0.5, 0.8)},
	}
	got := FindHighlights(s, 4, 3)
	want := []Highlight{
		{StartFrame: 0, Frames: 4, PeakFrame: 3, PeakScore: 0.9},
		// 6-3 = 3 is used, so the segment starts at 4 and ends at the last
		// frame.
		{StartFrame: 4, Frames: 3, PeakFrame: 6, PeakScore: 0.8},
	}
	if len(got.Segments) != len(want) {
		t.Fatalf("segments = %+v, want %+v", got.Segments, want)
	}
	for i := range want {
		if got.Segments[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got.Segments[i], want[i])
		}
	}
}

func TestFindHighlightsDisabled(t *testing.T) {
	s := ScoreSummary{ClassNames: []string{"a"}, Scores: [][]float32{series(1, 2)}}
	if got := FindHighlights(s, 4, 0); len(got.Segments) != 0 {
		t.Errorf("segments = %+v, want none", got.Segments)
	}
	if got := FindHighlights(ScoreSummary{}, 4, 3); got.Segments == nil || len(got.Segments) != 0 {
		t.Errorf("empty summary: segments = %#v, want empty non-nil", got.Segments)
	}
}
