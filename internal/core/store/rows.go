package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/libertypr/converge/internal/types"
)

// Row types mirror table columns. Timestamps are stored as RFC3339 UTC text
// and rule trees as JSON, keeping scans identical across drivers.

type segmentRow struct {
	ID                   string `db:"id"`
	Name                 string `db:"name"`
	Description          string `db:"description"`
	Language             string `db:"language"`
	Rules                string `db:"rules"`
	RestrictedAttributes string `db:"restricted_attributes"`
	Archived             bool   `db:"archived"`
	CreatedAt            string `db:"created_at"`
	UpdatedAt            string `db:"updated_at"`
}

type versionRow struct {
	ID        string `db:"id"`
	SegmentID string `db:"segment_id"`
	Summary   string `db:"summary"`
	Rules     string `db:"rules"`
	Metrics   string `db:"metrics"`
	CreatedAt string `db:"created_at"`
}

func (r segmentRow) toDefinition() (*types.SegmentDefinition, error) {
	var rules types.Group
	if err := json.Unmarshal([]byte(r.Rules), &rules); err != nil {
		return nil, fmt.Errorf("corrupt rules for segment %s: %w", r.ID, err)
	}

	var restricted []types.AttributeKey
	if err := json.Unmarshal([]byte(r.RestrictedAttributes), &restricted); err != nil {
		return nil, fmt.Errorf("corrupt restricted attributes for segment %s: %w", r.ID, err)
	}

	createdAt, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("corrupt created_at for segment %s: %w", r.ID, err)
	}
	updatedAt, err := parseTimestamp(r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("corrupt updated_at for segment %s: %w", r.ID, err)
	}

	return &types.SegmentDefinition{
		ID:                   types.SegmentID(r.ID),
		Name:                 r.Name,
		Description:          r.Description,
		Language:             types.Language(r.Language),
		Rules:                &rules,
		RestrictedAttributes: restricted,
		Archived:             r.Archived,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}, nil
}

func (r versionRow) toVersion() (*types.SegmentVersion, error) {
	var rules types.Group
	if err := json.Unmarshal([]byte(r.Rules), &rules); err != nil {
		return nil, fmt.Errorf("corrupt rules for version %s: %w", r.ID, err)
	}

	var metrics types.SegmentMetrics
	if err := json.Unmarshal([]byte(r.Metrics), &metrics); err != nil {
		return nil, fmt.Errorf("corrupt metrics for version %s: %w", r.ID, err)
	}

	createdAt, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("corrupt created_at for version %s: %w", r.ID, err)
	}

	return &types.SegmentVersion{
		ID:        types.VersionID(r.ID),
		SegmentID: types.SegmentID(r.SegmentID),
		Summary:   r.Summary,
		Rules:     &rules,
		Metrics:   metrics,
		CreatedAt: createdAt,
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
