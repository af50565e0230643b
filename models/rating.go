package models

import (
	"time"

	"github.com/rohanthewiz/serr"
)

// Score bounds for a single rating submission
const (
	MinScore = 1
	MaxScore = 5
)

// Rating is one submitted score for a catalog component
type Rating struct {
	ID        int64     `json:"id"`
	Component string    `json:"component"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummary aggregates all submissions for one component.
// Average is unrounded so fractional star fills stay accurate.
type RatingSummary struct {
	Component string  `json:"component"`
	Average   float64 `json:"average"`
	Count     int     `json:"count"`
}

// ClampScore forces a submitted score into the valid range
func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// SaveRating records one score for a component, clamping it into range.
// Returns the stored rating.
func SaveRating(component string, score int) (*Rating, error) {
	if component == "" {
		return nil, serr.New("component is required")
	}

	d, err := getDB()
	if err != nil {
		return nil, err
	}

	r := Rating{
		Component: component,
		Score:     ClampScore(score),
		CreatedAt: time.Now(),
	}

	err = d.QueryRow(
		"INSERT INTO component_ratings (component, score, created_at) VALUES (?, ?, ?) RETURNING id",
		r.Component, r.Score, r.CreatedAt,
	).Scan(&r.ID)
	if err != nil {
		return nil, serr.Wrap(err, "failed to save rating for "+component)
	}

	return &r, nil
}

// GetRatingSummary returns the aggregate for one component.
// A component with no submissions yields a zero summary, not an error.
func GetRatingSummary(component string) (RatingSummary, error) {
	s := RatingSummary{Component: component}

	d, err := getDB()
	if err != nil {
		return s, err
	}

	err = d.QueryRow(
		"SELECT COALESCE(AVG(score), 0), COUNT(*) FROM component_ratings WHERE component = ?",
		component,
	).Scan(&s.Average, &s.Count)
	if err != nil {
		return s, serr.Wrap(err, "failed to summarize ratings for "+component)
	}

	return s, nil
}

// ListRatingSummaries returns aggregates for every rated component,
// ordered by component name.
func ListRatingSummaries() ([]RatingSummary, error) {
	d, err := getDB()
	if err != nil {
		return nil, err
	}

	rows, err := d.Query(
		"SELECT component, AVG(score), COUNT(*) FROM component_ratings GROUP BY component ORDER BY component",
	)
	if err != nil {
		return nil, serr.Wrap(err, "failed to list rating summaries")
	}
	defer rows.Close()

	var summaries []RatingSummary
	for rows.Next() {
		var s RatingSummary
		if err := rows.Scan(&s.Component, &s.Average, &s.Count); err != nil {
			return nil, serr.Wrap(err, "failed to scan rating summary")
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.Wrap(err, "failed reading rating summaries")
	}

	return summaries, nil
}
