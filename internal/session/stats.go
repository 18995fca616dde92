package session

import "math"

// Stats aggregates steep lengths in minutes. All values are rounded to
// two decimals; an empty log yields the zero value, which callers
// render as 0.00 rather than an error.
type Stats struct {
	Count        int
	Average      float64
	Shortest     float64
	Longest      float64
	TotalMinutes float64
}

// Point is one step of the steep-length trend: sequence index (from 1),
// minutes rounded to two decimals, and the date label to show for it.
type Point struct {
	Index   int
	Minutes float64
	Date    string
}

// Summarize recomputes aggregate stats over the given sessions. Always
// derived on demand from the full log, never cached or incrementally
// maintained.
func Summarize(sessions []Session) Stats {
	if len(sessions) == 0 {
		return Stats{}
	}

	var total float64
	shortest := sessions[0].Minutes()
	longest := shortest
	for _, s := range sessions {
		m := s.Minutes()
		total += m
		if m < shortest {
			shortest = m
		}
		if m > longest {
			longest = m
		}
	}

	return Stats{
		Count:        len(sessions),
		Average:      round2(total / float64(len(sessions))),
		Shortest:     round2(shortest),
		Longest:      round2(longest),
		TotalMinutes: round2(total),
	}
}

// Series maps sessions in insertion order onto trend points.
func Series(sessions []Session) []Point {
	points := make([]Point, len(sessions))
	for i, s := range sessions {
		points[i] = Point{
			Index:   i + 1,
			Minutes: round2(s.Minutes()),
			Date:    s.CreatedAt.Format("Jan 2 15:04"),
		}
	}
	return points
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
