package planner

const ChallengeDays = 100

// ChallengeGrid holds one cell per challenge day. Day n lives at index n-1.
type ChallengeGrid [ChallengeDays]bool

// Done reports whether day n is checked. Out-of-range days are never done.
func (g ChallengeGrid) Done(n int) bool {
	if n < 1 || n > ChallengeDays {
		return false
	}
	return g[n-1]
}

// Rows lays the grid out as ten rows of ten day numbers.
func (g ChallengeGrid) Rows() [][]int {
	rows := make([][]int, 0, 10)
	for r := 0; r < 10; r++ {
		row := make([]int, 10)
		for c := range row {
			row[c] = r*10 + c + 1
		}
		rows = append(rows, row)
	}
	return rows
}

type ChallengeSummary struct {
	Completed  int
	Remaining  int
	Percentage float64
}

func (g ChallengeGrid) Summary() ChallengeSummary {
	done := 0
	for _, v := range g {
		if v {
			done++
		}
	}
	return ChallengeSummary{
		Completed:  done,
		Remaining:  ChallengeDays - done,
		Percentage: float64(done*100) / ChallengeDays,
	}
}

// ToggleDay flips day n. Days outside 1..100 report false.
func (s State) ToggleDay(n int) (State, bool) {
	if n < 1 || n > ChallengeDays {
		return s, false
	}
	next := s.Clone()
	next.Challenge[n-1] = !next.Challenge[n-1]
	return next, true
}
