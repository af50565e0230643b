package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"plume/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// RatingInput is the request body for submitting a score
type RatingInput struct {
	Score int `json:"score"`
}

// SubmitRating handles POST /api/v1/ratings/:component
// Records one score for a component. Unlike the HTML form flow, which
// clamps silently, the API rejects out-of-range scores.
func SubmitRating(ctx rweb.Context) error {
	component := ctx.Request().Param("component")

	var input RatingInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode request body"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	if input.Score < models.MinScore || input.Score > models.MaxScore {
		return writeError(ctx, http.StatusBadRequest,
			"score must be between "+strconv.Itoa(models.MinScore)+" and "+strconv.Itoa(models.MaxScore))
	}

	rating, err := models.SaveRating(component, input.Score)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to save rating"), "component", component)
		return writeError(ctx, http.StatusInternalServerError, "failed to save rating")
	}

	logger.Info("Rating recorded", "component", component, "score", strconv.Itoa(rating.Score))
	return writeSuccess(ctx, http.StatusCreated, rating)
}

// GetRating handles GET /api/v1/ratings/:component
// Returns the aggregate for one component. Unrated components return
// a zero summary rather than 404 so clients need no special case.
func GetRating(ctx rweb.Context) error {
	component := ctx.Request().Param("component")

	summary, err := models.GetRatingSummary(component)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get rating summary"), "component", component)
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}

	return writeSuccess(ctx, http.StatusOK, summary)
}

// ListRatings handles GET /api/v1/ratings
// Returns aggregates for every rated component.
func ListRatings(ctx rweb.Context) error {
	summaries, err := models.ListRatingSummaries()
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list rating summaries"))
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}

	return writeSuccess(ctx, http.StatusOK, map[string]interface{}{
		"ratings": summaries,
		"count":   len(summaries),
	})
}
