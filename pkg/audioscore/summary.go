package audioscore

import (
	"slices"

	"github.com/haivivi/soundscore/pkg/classmap"
)

// ScoreSummary is the whole-file record: the selected classes and, for each,
// its score over time.
type ScoreSummary struct {
	ClassNames []string    `json:"classNames"`
	Scores     [][]float32 `json:"scores"`
}

// ChunkScores is the per-chunk record: the raw frame-major score matrix.
type ChunkScores struct {
	Scores ScoreMatrix `json:"scores"`
}

// MeanScores averages each class column over all frames.
func MeanScores(m ScoreMatrix) []float64 {
	if len(m) == 0 {
		return nil
	}
	means := make([]float64, len(m[0]))
	for _, row := range m {
		for c, v := range row {
			means[c] += float64(v)
		}
	}
	n := float64(len(m))
	for c := range means {
		means[c] /= n
	}
	return means
}

// TopClasses returns the indices of the n highest means, highest first.
// Equal means keep index order.
func TopClasses(means []float64, n int) []int {
	idx := make([]int, len(means))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case means[a] > means[b]:
			return -1
		case means[a] < means[b]:
			return 1
		}
		return 0
	})
	return idx[:min(n, len(idx))]
}

// Dominant returns the index of the class with the highest mean, or -1 for
// no classes.
func Dominant(means []float64) int {
	top := TopClasses(means, 1)
	if len(top) == 0 {
		return -1
	}
	return top[0]
}

// SelectClasses picks the topN classes by mean score and then appends each
// watched class that exists in labels and is not already selected, in
// watch-list order.
func SelectClasses(labels []string, means []float64, topN int, watch []string) []int {
	selected := TopClasses(means, topN)
	index := classmap.Index(labels)
	for _, name := range watch {
		i, ok := index[name]
		if !ok || slices.Contains(selected, i) {
			continue
		}
		selected = append(selected, i)
	}
	return selected
}

// Summarize extracts the selected classes from m and transposes them so each
// row of Scores is one class's time series.
func Summarize(m ScoreMatrix, labels []string, classes []int) ScoreSummary {
	s := ScoreSummary{
		ClassNames: make([]string, len(classes)),
		Scores:     make([][]float32, len(classes)),
	}
	for k, c := range classes {
		s.ClassNames[k] = labels[c]
		series := make([]float32, len(m))
		for f, row := range m {
			series[f] = row[c]
		}
		s.Scores[k] = series
	}
	return s
}
