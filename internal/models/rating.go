package models

// RatingValue is the three-valued outcome used on every inspection criterion
type RatingValue string

const (
	RatingNeedsImprovement RatingValue = "needs_improvement"
	RatingGood             RatingValue = "good"
	RatingExcellent        RatingValue = "excellent"
)

// Valid reports whether r is one of the known rating values
func (r RatingValue) Valid() bool {
	switch r {
	case RatingNeedsImprovement, RatingGood, RatingExcellent:
		return true
	}
	return false
}

// QualitativeRating is the Hebrew-labelled scale used on exercise response criteria.
// The first three are what the exercise form offers; the last two appear on
// older stored records and score like needs-improvement.
type QualitativeRating string

const (
	QualitativeExcellent           QualitativeRating = "מצוין"
	QualitativeGood                QualitativeRating = "טוב"
	QualitativeNeedsImprovement    QualitativeRating = "צריך שיפור"
	QualitativeAverage             QualitativeRating = "בינוני"
	QualitativeRequiresImprovement QualitativeRating = "דורש שיפור"
)

// Valid reports whether q is one of the accepted qualitative labels
func (q QualitativeRating) Valid() bool {
	switch q {
	case QualitativeExcellent, QualitativeGood, QualitativeNeedsImprovement,
		QualitativeAverage, QualitativeRequiresImprovement:
		return true
	}
	return false
}
