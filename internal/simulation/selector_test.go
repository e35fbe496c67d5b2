package simulation

import "testing"

func TestKthSmallest(t *testing.T) {
	experiment := []float64{4200, 1100, 3300, 2500, 4900}

	tests := []struct {
		rank int
		want float64
	}{
		{rank: 1, want: 1100},
		{rank: 2, want: 2500},
		{rank: 4, want: 4200},
		{rank: 5, want: 4900},
	}
	for _, tt := range tests {
		if got := kthSmallest(experiment, tt.rank); got != tt.want {
			t.Errorf("kthSmallest(rank=%d) = %v, want %v", tt.rank, got, tt.want)
		}
	}

	// Input order must survive the selection.
	if experiment[0] != 4200 {
		t.Errorf("kthSmallest mutated its input: %v", experiment)
	}
}

func TestSelectSatellitesPlain(t *testing.T) {
	experiments := [][]float64{
		{9, 1, 5},
		{2, 8, 4},
		{7, 7, 7},
	}

	satellites := selectSatellites(experiments, 2, TechniqueNone)

	want := []float64{5, 4, 7}
	if len(satellites) != len(want) {
		t.Fatalf("got %d satellites, want %d", len(satellites), len(want))
	}
	for i := range want {
		if satellites[i] != want[i] {
			t.Errorf("satellite %d = %v, want %v", i, satellites[i], want[i])
		}
	}
}

func TestSelectSatellitesAntitheticAveragesPairs(t *testing.T) {
	experiments := [][]float64{
		{10, 30, 20}, // 2nd smallest: 20
		{40, 60, 50}, // 2nd smallest: 50
		{5, 15, 25},  // 2nd smallest: 15
		{35, 55, 45}, // 2nd smallest: 45
	}

	satellites := selectSatellites(experiments, 2, TechniqueAntithetic)

	want := []float64{35, 30}
	if len(satellites) != len(want) {
		t.Fatalf("got %d satellites, want %d", len(satellites), len(want))
	}
	for i := range want {
		if satellites[i] != want[i] {
			t.Errorf("satellite %d = %v, want %v", i, satellites[i], want[i])
		}
	}
}

func TestSelectSatellitesAntitheticOddExtraUnaveraged(t *testing.T) {
	experiments := [][]float64{
		{10, 30, 20},
		{40, 60, 50},
		{100, 300, 200}, // unpaired, passes through
	}

	satellites := selectSatellites(experiments, 2, TechniqueAntithetic)

	if len(satellites) != 2 {
		t.Fatalf("got %d satellites, want 2", len(satellites))
	}
	if satellites[0] != 35 {
		t.Errorf("paired satellite = %v, want 35", satellites[0])
	}
	if satellites[1] != 200 {
		t.Errorf("unpaired satellite = %v, want 200", satellites[1])
	}
}

func TestSelectSatellitesLengths(t *testing.T) {
	tests := []struct {
		name        string
		experiments int
		technique   Technique
		want        int
	}{
		{name: "plain", experiments: 6, technique: TechniqueNone, want: 6},
		{name: "lhs", experiments: 6, technique: TechniqueLHS, want: 6},
		{name: "antithetic even", experiments: 6, technique: TechniqueAntithetic, want: 3},
		{name: "antithetic odd", experiments: 7, technique: TechniqueAntithetic, want: 4},
		{name: "empty", experiments: 0, technique: TechniqueNone, want: 0},
		{name: "antithetic empty", experiments: 0, technique: TechniqueAntithetic, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			experiments := make([][]float64, tt.experiments)
			for i := range experiments {
				experiments[i] = []float64{3, 1, 2}
			}
			satellites := selectSatellites(experiments, 1, tt.technique)
			if len(satellites) != tt.want {
				t.Errorf("got %d satellites, want %d", len(satellites), tt.want)
			}
		})
	}
}
