package score

// MaxScore is the composite score for top ratings on every scale.
const MaxScore = 10.0

// points for a 1..7 rating, in tenths
var sevenPointTenths = map[int]int{
	1: 4,
	2: 7,
	3: 11,
	4: 14,
	5: 18,
	6: 21,
	7: 25,
}

// Ratings are the raw ordinal ratings a client gives in a weekly check-in.
// Calories, Steps and Protein are on a 1..7 scale, Training on a 1..5 scale.
type Ratings struct {
	Calories int `json:"caloriesRating"`
	Steps    int `json:"stepsRating"`
	Protein  int `json:"proteinRating"`
	Training int `json:"trainingRating"`
}

// Valid reports whether all ratings are inside their scales.
// Compute does not require valid ratings.
func (r Ratings) Valid() bool {
	return inRange(r.Calories, 1, 7) &&
		inRange(r.Steps, 1, 7) &&
		inRange(r.Protein, 1, 7) &&
		inRange(r.Training, 1, 5)
}

// Complete reports whether every rating was given. A zero rating means it was left out.
func (r Ratings) Complete() bool {
	return r.Calories != 0 && r.Steps != 0 && r.Protein != 0 && r.Training != 0
}

// SevenPoint maps a 1..7 rating to its point value; out of range ratings give 0.
func SevenPoint(raw int) float64 {
	return float64(sevenPointTenths[raw]) / 10
}

// TrainingPoints maps the training rating linearly, raw * 0.5.
func TrainingPoints(raw int) float64 {
	return float64(raw*5) / 10
}

// Compute returns the composite 0..10 score for the given ratings.
// Sums are done in tenths, so the result is the nearest float64 to the exact decimal value
// (e.g. {1,1,1,1} gives exactly 1.7).
func Compute(r Ratings) float64 {
	tenths := sevenPointTenths[r.Calories] +
		sevenPointTenths[r.Steps] +
		sevenPointTenths[r.Protein] +
		r.Training*5
	return float64(tenths) / 10
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
