package scoring

// Band maps a value range onto a score range. Values inside the band
// interpolate linearly between LoScore and HiScore.
type Band struct {
	Lo      float64
	Hi      float64
	LoScore float64
	HiScore float64
}

// GradeBand maps a minimum composite score onto a letter grade.
type GradeBand struct {
	Min   int
	Grade string
}

// Bands holds the lookup tables the scorer works from. They are immutable
// by convention: build one with DefaultBands or construct a custom set and
// hand it to NewScorerWithBands.
type Bands struct {
	// WinRateBasis is the win rate percentage that maps to a full score.
	WinRateBasis float64
	// ProfitFactor bands; values at or above the last band's Hi score 100.
	ProfitFactor []Band
	// PayoffRatio bands for avgWin/avgLoss, same shape as ProfitFactor.
	PayoffRatio []Band
	// Grades in descending Min order; the first entry the composite
	// reaches decides the grade.
	Grades []GradeBand
}

// DefaultBands returns the standard Wolf Score tables.
func DefaultBands() Bands {
	ratio := []Band{
		{Lo: 0, Hi: 1.0, LoScore: 0, HiScore: 40},
		{Lo: 1.0, Hi: 1.5, LoScore: 40, HiScore: 60},
		{Lo: 1.5, Hi: 2.2, LoScore: 60, HiScore: 80},
		{Lo: 2.2, Hi: 2.6, LoScore: 80, HiScore: 89},
	}
	return Bands{
		WinRateBasis: 60,
		ProfitFactor: ratio,
		PayoffRatio:  ratio,
		Grades: []GradeBand{
			{Min: 90, Grade: "S"},
			{Min: 80, Grade: "A"},
			{Min: 70, Grade: "B"},
			{Min: 60, Grade: "C"},
			{Min: 50, Grade: "D"},
			{Min: 0, Grade: "F"},
		},
	}
}

// interpolate maps a value through a band table. Values at or above the
// last band's upper edge score 100; negative values score 0.
func interpolate(bands []Band, value float64) float64 {
	if len(bands) == 0 {
		return 0
	}
	if value <= bands[0].Lo {
		return bands[0].LoScore
	}
	last := bands[len(bands)-1]
	if value >= last.Hi {
		return 100
	}
	for _, b := range bands {
		if value < b.Hi {
			span := b.Hi - b.Lo
			if span == 0 {
				return b.HiScore
			}
			return b.LoScore + (value-b.Lo)/span*(b.HiScore-b.LoScore)
		}
	}
	return 100
}
