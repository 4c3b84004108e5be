package audioscore

import (
	"math"
	"slices"
)

// Highlight is a run of frames around a scoring peak.
type Highlight struct {
	StartFrame int     `json:"startFrame"`
	Frames     int     `json:"frames"`
	PeakFrame  int     `json:"peakFrame"`
	PeakScore  float32 `json:"peakScore"`
}

// Highlights is the highlights.json record.
type Highlights struct {
	Segments []Highlight `json:"segments"`
}

// FindHighlights picks up to maxSegments non-overlapping segments from a
// class-major summary. Frames are visited by their highest score across the
// summary's classes, best first. Each unclaimed peak opens a segment that
// starts about three quarters of a segment before it, moves forward past
// claimed frames, and runs for framesPerSegment frames or until it meets a
// claimed frame or the end of the recording.
func FindHighlights(s ScoreSummary, framesPerSegment, maxSegments int) Highlights {
	out := Highlights{Segments: []Highlight{}}
	if len(s.Scores) == 0 || framesPerSegment <= 0 || maxSegments <= 0 {
		return out
	}
	frames := len(s.Scores[0])

	type peak struct {
		frame int
		score float32
	}
	peaks := make([]peak, frames)
	for f := range peaks {
		best := float32(math.Inf(-1))
		for _, series := range s.Scores {
			best = max(best, series[f])
		}
		peaks[f] = peak{frame: f, score: best}
	}
	slices.SortStableFunc(peaks, func(a, b peak) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	lead := int(math.Floor(float64(framesPerSegment)*0.75 + 0.5))
	used := make([]bool, frames)
	for _, p := range peaks {
		if used[p.frame] {
			continue
		}
		start := max(p.frame-lead, 0)
		for used[start] {
			start++
		}
		end := start
		for end < frames && end-start < framesPerSegment && !used[end] {
			used[end] = true
			end++
		}
		out.Segments = append(out.Segments, Highlight{
			StartFrame: start,
			Frames:     end - start,
			PeakFrame:  p.frame,
			PeakScore:  p.score,
		})
		if len(out.Segments) >= maxSegments {
			break
		}
	}
	return out
}
