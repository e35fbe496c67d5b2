package simulation

import "sort"

// kthSmallest returns the rank-th smallest value of experiment (1-based).
// The experiment itself is left untouched.
func kthSmallest(experiment []float64, rank int) float64 {
	sorted := append([]float64(nil), experiment...)
	sort.Float64s(sorted)
	return sorted[rank-1]
}

// selectSatellites reduces each experiment to its order statistic,
// preserving generation order.
//
// Under the antithetic technique experiments arrive in generation pairs
// and each pair collapses to the average of its two order statistics; a
// trailing unpaired experiment (odd count) passes through unaveraged.
// Every other technique maps one experiment to one satellite value.
func selectSatellites(experiments [][]float64, rank int, technique Technique) []float64 {
	if technique != TechniqueAntithetic {
		satellites := make([]float64, 0, len(experiments))
		for _, experiment := range experiments {
			satellites = append(satellites, kthSmallest(experiment, rank))
		}
		return satellites
	}

	satellites := make([]float64, 0, len(experiments)/2+len(experiments)%2)
	for i := 0; i+1 < len(experiments); i += 2 {
		a := kthSmallest(experiments[i], rank)
		b := kthSmallest(experiments[i+1], rank)
		satellites = append(satellites, (a+b)/2)
	}
	if len(experiments)%2 == 1 {
		satellites = append(satellites, kthSmallest(experiments[len(experiments)-1], rank))
	}
	return satellites
}
