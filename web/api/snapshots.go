package api

import (
	"encoding/json"
	"net/http"
	"time"

	"plume/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// Attrs transport encoding. Clients may send and request the attrs
// map as base64-wrapped msgpack instead of plain JSON.
const (
	AttrsEncodingHeader = "X-Attrs-Encoding"
	EncodingMsgPack     = "msgpack"
)

// SnapshotRequest is the request body for creating or updating a
// snapshot. AttrsPacked, when present, takes precedence over Attrs.
type SnapshotRequest struct {
	GUID        string            `json:"guid,omitempty"`
	Name        string            `json:"name"`
	Component   string            `json:"component"`
	Attrs       map[string]string `json:"attrs,omitempty"`
	AttrsPacked string            `json:"attrs_packed,omitempty"`
}

// toInput unwraps the transport encoding into a storage input
func (r SnapshotRequest) toInput() (models.SnapshotInput, error) {
	attrs := r.Attrs
	if r.AttrsPacked != "" {
		decoded, err := models.UnpackAttrs(r.AttrsPacked)
		if err != nil {
			return models.SnapshotInput{}, err
		}
		attrs = decoded
	}

	return models.SnapshotInput{
		GUID:      r.GUID,
		Name:      r.Name,
		Component: r.Component,
		Attrs:     attrs,
	}, nil
}

// SnapshotResponse mirrors a stored snapshot. Attrs and AttrsPacked
// are mutually exclusive depending on the requested encoding.
type SnapshotResponse struct {
	ID          int64             `json:"id"`
	GUID        string            `json:"guid"`
	Name        string            `json:"name"`
	Component   string            `json:"component"`
	Attrs       map[string]string `json:"attrs,omitempty"`
	AttrsPacked string            `json:"attrs_packed,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// wantsPacked checks whether the client asked for msgpack attrs
func wantsPacked(ctx rweb.Context) bool {
	return ctx.Request().Header(AttrsEncodingHeader) == EncodingMsgPack
}

// toResponse converts a stored snapshot for the requested encoding
func toResponse(s *models.Snapshot, packed bool) (SnapshotResponse, error) {
	resp := SnapshotResponse{
		ID:        s.ID,
		GUID:      s.GUID,
		Name:      s.Name,
		Component: s.Component,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if packed {
		encoded, err := models.PackAttrs(s.Attrs)
		if err != nil {
			return resp, err
		}
		resp.AttrsPacked = encoded
	} else {
		resp.Attrs = s.Attrs
	}

	return resp, nil
}

// CreateSnapshot handles POST /api/v1/snapshots
func CreateSnapshot(ctx rweb.Context) error {
	var req SnapshotRequest
	if err := json.Unmarshal(ctx.Request().Body(), &req); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode request body"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	if req.Name == "" {
		return writeError(ctx, http.StatusBadRequest, "name is required")
	}
	if req.Component == "" {
		return writeError(ctx, http.StatusBadRequest, "component is required")
	}

	input, err := req.toInput()
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid attrs_packed encoding")
	}

	// Check for duplicate GUID to provide a clear error message
	if input.GUID != "" {
		existing, err := models.GetSnapshotByGUID(input.GUID)
		if err != nil {
			logger.LogErr(serr.Wrap(err, "failed to check existing snapshot"), "database error")
			return writeError(ctx, http.StatusInternalServerError, "database error")
		}
		if existing != nil {
			return writeError(ctx, http.StatusConflict, "snapshot with this guid already exists")
		}
	}

	snap, err := models.CreateSnapshot(input)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to create snapshot"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to create snapshot")
	}

	resp, err := toResponse(snap, wantsPacked(ctx))
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to encode snapshot attrs"))
		return writeError(ctx, http.StatusInternalServerError, "failed to encode snapshot")
	}

	logger.Info("Snapshot created", "guid", snap.GUID, "component", snap.Component)
	return writeSuccess(ctx, http.StatusCreated, resp)
}

// GetSnapshot handles GET /api/v1/snapshots/:guid
func GetSnapshot(ctx rweb.Context) error {
	guid := ctx.Request().Param("guid")

	snap, err := models.GetSnapshotByGUID(guid)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get snapshot"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if snap == nil {
		return writeError(ctx, http.StatusNotFound, "snapshot not found")
	}

	resp, err := toResponse(snap, wantsPacked(ctx))
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to encode snapshot attrs"))
		return writeError(ctx, http.StatusInternalServerError, "failed to encode snapshot")
	}

	return writeSuccess(ctx, http.StatusOK, resp)
}

// ListSnapshots handles GET /api/v1/snapshots
func ListSnapshots(ctx rweb.Context) error {
	snapshots, err := models.ListSnapshots()
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list snapshots"))
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}

	packed := wantsPacked(ctx)
	responses := make([]SnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		resp, err := toResponse(&snapshots[i], packed)
		if err != nil {
			logger.LogErr(serr.Wrap(err, "failed to encode snapshot attrs"))
			return writeError(ctx, http.StatusInternalServerError, "failed to encode snapshot")
		}
		responses = append(responses, resp)
	}

	return writeSuccess(ctx, http.StatusOK, map[string]interface{}{
		"snapshots": responses,
		"count":     len(responses),
	})
}

// UpdateSnapshot handles PUT /api/v1/snapshots/:guid
func UpdateSnapshot(ctx rweb.Context) error {
	guid := ctx.Request().Param("guid")

	var req SnapshotRequest
	if err := json.Unmarshal(ctx.Request().Body(), &req); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode request body"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	if req.Name == "" {
		return writeError(ctx, http.StatusBadRequest, "name is required")
	}
	if req.Component == "" {
		return writeError(ctx, http.StatusBadRequest, "component is required")
	}

	input, err := req.toInput()
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid attrs_packed encoding")
	}

	snap, err := models.UpdateSnapshot(guid, input)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to update snapshot"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to update snapshot")
	}
	if snap == nil {
		return writeError(ctx, http.StatusNotFound, "snapshot not found")
	}

	resp, err := toResponse(snap, wantsPacked(ctx))
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to encode snapshot attrs"))
		return writeError(ctx, http.StatusInternalServerError, "failed to encode snapshot")
	}

	return writeSuccess(ctx, http.StatusOK, resp)
}

// DeleteSnapshot handles DELETE /api/v1/snapshots/:guid
func DeleteSnapshot(ctx rweb.Context) error {
	guid := ctx.Request().Param("guid")

	deleted, err := models.DeleteSnapshot(guid)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to delete snapshot"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to delete snapshot")
	}
	if !deleted {
		return writeError(ctx, http.StatusNotFound, "snapshot not found")
	}

	logger.Info("Snapshot deleted", "guid", guid)
	return writeSuccess(ctx, http.StatusOK, map[string]string{"guid": guid})
}
