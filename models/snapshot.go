package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
)

// Snapshot is a saved playground configuration: a component name plus
// the attribute map that reproduces it.
type Snapshot struct {
	ID        int64             `json:"id"`
	GUID      string            `json:"guid"`
	Name      string            `json:"name"`
	Component string            `json:"component"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SnapshotInput carries snapshot data from the API or playground form.
// GUID is optional on create; one is generated when absent.
type SnapshotInput struct {
	GUID      string            `json:"guid,omitempty"`
	Name      string            `json:"name"`
	Component string            `json:"component"`
	Attrs     map[string]string `json:"attrs,omitempty"`
}

func (in SnapshotInput) validate() error {
	if in.Name == "" {
		return serr.New("snapshot name is required")
	}
	if in.Component == "" {
		return serr.New("snapshot component is required")
	}
	return nil
}

// CreateSnapshot stores a new snapshot and returns it with its GUID.
func CreateSnapshot(input SnapshotInput) (*Snapshot, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	d, err := getDB()
	if err != nil {
		return nil, err
	}

	guid := input.GUID
	if guid == "" {
		guid = uuid.New().String()
	}

	attrs, err := EncodeAttrs(input.Attrs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_, err = d.Exec(
		`INSERT INTO snapshots (guid, name, component, attrs, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		guid, input.Name, input.Component, attrs, now, now,
	)
	if err != nil {
		return nil, serr.Wrap(err, "failed to create snapshot "+input.Name)
	}

	return GetSnapshotByGUID(guid)
}

// GetSnapshotByGUID fetches one snapshot. Returns (nil, nil) when the
// GUID is unknown so callers can distinguish absence from failure.
func GetSnapshotByGUID(guid string) (*Snapshot, error) {
	d, err := getDB()
	if err != nil {
		return nil, err
	}

	var s Snapshot
	var attrs []byte
	err = d.QueryRow(
		"SELECT id, guid, name, component, attrs, created_at, updated_at FROM snapshots WHERE guid = ?",
		guid,
	).Scan(&s.ID, &s.GUID, &s.Name, &s.Component, &attrs, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serr.Wrap(err, "failed to get snapshot "+guid)
	}

	if s.Attrs, err = DecodeAttrs(attrs); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSnapshots returns all snapshots, most recently updated first.
func ListSnapshots() ([]Snapshot, error) {
	d, err := getDB()
	if err != nil {
		return nil, err
	}

	rows, err := d.Query(
		"SELECT id, guid, name, component, attrs, created_at, updated_at FROM snapshots ORDER BY updated_at DESC",
	)
	if err != nil {
		return nil, serr.Wrap(err, "failed to list snapshots")
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		var attrs []byte
		if err := rows.Scan(&s.ID, &s.GUID, &s.Name, &s.Component, &attrs, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, serr.Wrap(err, "failed to scan snapshot")
		}
		if s.Attrs, err = DecodeAttrs(attrs); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.Wrap(err, "failed reading snapshots")
	}

	return snapshots, nil
}

// UpdateSnapshot replaces the stored name, component, and attrs.
// Returns (nil, nil) when the GUID is unknown.
func UpdateSnapshot(guid string, input SnapshotInput) (*Snapshot, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	d, err := getDB()
	if err != nil {
		return nil, err
	}

	attrs, err := EncodeAttrs(input.Attrs)
	if err != nil {
		return nil, err
	}

	res, err := d.Exec(
		"UPDATE snapshots SET name = ?, component = ?, attrs = ?, updated_at = ? WHERE guid = ?",
		input.Name, input.Component, attrs, time.Now(), guid,
	)
	if err != nil {
		return nil, serr.Wrap(err, "failed to update snapshot "+guid)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return GetSnapshotByGUID(guid)
}

// DeleteSnapshot removes a snapshot, reporting whether a row existed.
func DeleteSnapshot(guid string) (bool, error) {
	d, err := getDB()
	if err != nil {
		return false, err
	}

	res, err := d.Exec("DELETE FROM snapshots WHERE guid = ?", guid)
	if err != nil {
		return false, serr.Wrap(err, "failed to delete snapshot "+guid)
	}

	n, _ := res.RowsAffected()
	return n > 0, nil
}
