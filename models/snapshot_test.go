package models_test

import (
	"testing"

	"plume/models"
)

func TestSnapshotLifecycle(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	created, err := models.CreateSnapshot(models.SnapshotInput{
		Name:      "danger alert",
		Component: "alert",
		Attrs:     map[string]string{"variant": "solid", "color": "danger"},
	})
	if err != nil {
		t.Fatalf("failed to create snapshot: %v", err)
	}
	if created.GUID == "" {
		t.Fatal("expected generated guid")
	}
	if created.Attrs["color"] != "danger" {
		t.Errorf("attrs did not round-trip: %+v", created.Attrs)
	}

	// Update
	updated, err := models.UpdateSnapshot(created.GUID, models.SnapshotInput{
		Name:      "warning alert",
		Component: "alert",
		Attrs:     map[string]string{"variant": "solid", "color": "warning"},
	})
	if err != nil {
		t.Fatalf("failed to update snapshot: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated snapshot, got nil")
	}
	if updated.Name != "warning alert" || updated.Attrs["color"] != "warning" {
		t.Errorf("update not applied: %+v", updated)
	}

	// List
	list, err := models.ListSnapshots()
	if err != nil {
		t.Fatalf("failed to list snapshots: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(list))
	}

	// Delete
	deleted, err := models.DeleteSnapshot(created.GUID)
	if err != nil {
		t.Fatalf("failed to delete snapshot: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report an existing row")
	}

	got, err := models.GetSnapshotByGUID(created.GUID)
	if err != nil {
		t.Fatalf("unexpected error after delete: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted snapshot")
	}
}

func TestGetSnapshotUnknownGUID(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	got, err := models.GetSnapshotByGUID("no-such-guid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown guid, got %+v", got)
	}
}

func TestCreateSnapshotValidation(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	if _, err := models.CreateSnapshot(models.SnapshotInput{Component: "alert"}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := models.CreateSnapshot(models.SnapshotInput{Name: "x"}); err == nil {
		t.Error("expected error for missing component")
	}
}

func TestUpdateSnapshotUnknownGUID(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	updated, err := models.UpdateSnapshot("no-such-guid", models.SnapshotInput{
		Name:      "x",
		Component: "alert",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != nil {
		t.Error("expected nil for unknown guid")
	}
}
