package audioscore

import (
	"slices"
	"testing"
)

func TestMeanScores(t *testing.T) {
	m := ScoreMatrix{
		{0.1, 1.0, 0.0},
		{0.3, 0.0, 0.5},
	}
	got := MeanScores(m)
	want := []float64{0.2, 0.5, 0.25}
	for i := range want {
		if d := got[i] - want[i]; d > 1e-6 || d < -1e-6 {
			t.Errorf("mean[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if MeanScores(nil) != nil {
		t.Error("MeanScores(nil) should be nil")
	}
}

func TestTopClasses(t *testing.T) {
	means := []float64{0.1, 0.9, 0.5, 0.9, 0.0}
	if got, want := TopClasses(means, 3), []int{1, 3, 2}; !slices.Equal(got, want) {
		t.Errorf("TopClasses = %v, want %v", got, want)
	}
	if got := TopClasses(means, 10); len(got) != len(means) {
		t.Errorf("TopClasses(n > len) = %v", got)
	}
}

func TestDominant(t *testing.T) {
	if got := Dominant([]float64{0.2, 0.7, 0.1}); got != 1 {
		t.Errorf("Dominant = %d, want 1", got)
	}
	if got := Dominant(nil); got != -1 {
		t.Errorf("Dominant(nil) = %d, want -1", got)
	}
}

func TestSelectClasses(t *testing.T) {
	labels := []string{"Speech", "Music", "Shout", "Dog", "Laughter"}
	means := []float64{0.9, 0.8, 0.7, 0.1, 0.05}
	watch := []string{"Laughter", "Shout", "Siren"}

	got := SelectClasses(labels, means, 2, watch)
	// Top two, then Laughter; Shout is not repeated and Siren is absent.
	want := []int{0, 1, 4, 2}
	if !slices.Equal(got, want) {
		t.Errorf("SelectClasses = %v, want %v", got, want)
	}

	got = SelectClasses(labels, means, 3, watch)
	want = []int{0, 1, 2, 4}
	if !slices.Equal(got, want) {
		t.Errorf("SelectClasses(top 3) = %v, want %v", got, want)
	}
}

func TestSelectClassesFake(t *testing.T) {
	fake := newFakeClassifier()
	inf, err := fake.Classify(t.Context(), make([]float32, 16000))
	if err != nil {
		t.Fatal(err)
	}
	got := SelectClasses(fake.Labels(), MeanScores(inf.Scores), DefaultTopN, DefaultWatchClasses)
	// Classes with c%7 == 6 tie at the top and keep index order.
	want := []int{6, 13, 20, 27, 34, 41, 48, 55, 62, 69, 100, 200, 300}
	if !slices.Equal(got, want) {
		t.Errorf("SelectClasses = %v, want %v", got, want)
	}
}

func TestSummarizeTransposes(t *testing.T) {
	m := ScoreMatrix{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
	}
	s := Summarize(m, []string{"a", "b", "c"}, []int{2, 0})
	if !slices.Equal(s.ClassNames, []string{"c", "a"}) {
		t.Errorf("ClassNames = %v", s.ClassNames)
	}
	if len(s.Scores) != 2 {
		t.Fatalf("len(Scores) = %d, want 2", len(s.Scores))
	}
	if !slices.Equal(s.Scores[0], []float32{0.3, 0.6}) {
		t.Errorf("Scores[0] = %v, want [0.3 0.6]", s.Scores[0])
	}
	if !slices.Equal(s.Scores[1], []float32{0.1, 0.4}) {
		t.Errorf("Scores[1] = %v, want [0.1 0.4]", s.Scores[1])
	}
}
