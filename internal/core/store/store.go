// Package store persists segment definitions and their version history.
//
// Rule trees and metrics snapshots are stored as JSON text columns so the
// same schema serves SQLite and PostgreSQL. Every save that changes a
// segment's rules appends an immutable version row carrying the rule delta
// summary and the metrics frozen at save time.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/libertypr/converge/internal/core/db"
	"github.com/libertypr/converge/internal/segment"
	"github.com/libertypr/converge/internal/types"
)

// ErrMissingName indicates a segment save without a name.
var ErrMissingName = errors.New("segment name is required")

// SegmentInput carries the caller-editable fields of a segment save.
type SegmentInput struct {
	Name                 string               `json:"name"`
	Description          string               `json:"description"`
	Language             types.Language       `json:"language"`
	Rules                *types.Group         `json:"rules"`
	RestrictedAttributes []types.AttributeKey `json:"restrictedAttributes"`
}

// Store provides segment CRUD and version history over named queries.
type Store struct {
	queries *db.Queries
	engine  *segment.Engine
	log     zerolog.Logger
	now     func() time.Time
}

// New creates a Store backed by the given queries and evaluation engine.
func New(queries *db.Queries, engine *segment.Engine, log zerolog.Logger) *Store {
	return NewWithClock(queries, engine, log, time.Now)
}

// NewWithClock creates a Store with an injected clock for deterministic
// timestamps in tests.
func NewWithClock(queries *db.Queries, engine *segment.Engine, log zerolog.Logger, now func() time.Time) *Store {
	return &Store{queries: queries, engine: engine, log: log, now: now}
}

// Create validates and persists a new segment, recording its initial version
// with a metrics snapshot.
func (s *Store) Create(input SegmentInput) (*types.SegmentDefinition, error) {
	def, err := s.normalise(input)
	if err != nil {
		return nil, err
	}

	metrics, err := s.engine.Metrics(def.Rules)
	if err != nil {
		return nil, err
	}

	def.ID = types.NewSegmentID()
	now := s.now().UTC().Truncate(time.Second)
	def.CreatedAt = now
	def.UpdatedAt = now

	rulesJSON, restrictedJSON, err := encodeRules(def)
	if err != nil {
		return nil, err
	}

	if _, err := s.queries.Exec("insert-segment",
		string(def.ID), def.Name, def.Description, string(def.Language),
		rulesJSON, restrictedJSON, false,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	); err != nil {
		return nil, fmt.Errorf("failed to insert segment: %w", err)
	}

	if _, err := s.recordVersion(def.ID, nil, def.Rules, metrics, now); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("segment_id", string(def.ID)).
		Str("name", def.Name).
		Int("size", metrics.Size).
		Msg("segment created")

	return def, nil
}

// Get retrieves a segment by id, archived or not.
func (s *Store) Get(id types.SegmentID) (*types.SegmentDefinition, error) {
	var row segmentRow
	if err := s.queries.Get("get-segment", &row, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrSegmentNotFound
		}
		return nil, fmt.Errorf("failed to load segment: %w", err)
	}
	return row.toDefinition()
}

// List returns all non-archived segments, most recently updated first.
func (s *Store) List() ([]types.SegmentDefinition, error) {
	var rows []segmentRow
	if err := s.queries.Select("list-segments", &rows, false); err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}

	segments := make([]types.SegmentDefinition, 0, len(rows))
	for _, row := range rows {
		def, err := row.toDefinition()
		if err != nil {
			return nil, err
		}
		segments = append(segments, *def)
	}
	return segments, nil
}

// Update validates and saves new segment content, appending a version whose
// summary describes the rule delta against the previous save.
func (s *Store) Update(id types.SegmentID, input SegmentInput) (*types.SegmentDefinition, *types.SegmentVersion, error) {
	previous, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}

	def, err := s.normalise(input)
	if err != nil {
		return nil, nil, err
	}

	metrics, err := s.engine.Metrics(def.Rules)
	if err != nil {
		return nil, nil, err
	}

	// The delta summary compares against the last saved version, which is
	// the rules snapshot the analyst most recently confirmed.
	previousRules := previous.Rules
	if latest, err := s.latestVersion(id); err != nil {
		return nil, nil, err
	} else if latest != nil {
		previousRules = latest.Rules
	}

	def.ID = id
	def.CreatedAt = previous.CreatedAt
	def.Archived = previous.Archived
	now := s.now().UTC().Truncate(time.Second)
	def.UpdatedAt = now

	rulesJSON, restrictedJSON, err := encodeRules(def)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.queries.Exec("update-segment",
		def.Name, def.Description, string(def.Language),
		rulesJSON, restrictedJSON, now.Format(time.RFC3339), string(id),
	); err != nil {
		return nil, nil, fmt.Errorf("failed to update segment: %w", err)
	}

	version, err := s.recordVersion(id, previousRules, def.Rules, metrics, now)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().
		Str("segment_id", string(id)).
		Str("summary", version.Summary).
		Msg("segment updated")

	return def, version, nil
}

// Archive marks a segment as archived so it drops out of listings. Version
// history is retained.
func (s *Store) Archive(id types.SegmentID) error {
	now := s.now().UTC().Truncate(time.Second)
	result, err := s.queries.Exec("archive-segment", true, now.Format(time.RFC3339), string(id))
	if err != nil {
		return fmt.Errorf("failed to archive segment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return types.ErrSegmentNotFound
	}

	s.log.Info().Str("segment_id", string(id)).Msg("segment archived")
	return nil
}

// LatestVersion returns a segment's most recent version.
func (s *Store) LatestVersion(id types.SegmentID) (*types.SegmentVersion, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	version, err := s.latestVersion(id)
	if err != nil {
		return nil, err
	}
	if version == nil {
		// Create always records an initial version, so this indicates a
		// partially written segment.
		return nil, fmt.Errorf("segment %s has no versions", id)
	}
	return version, nil
}

func (s *Store) latestVersion(id types.SegmentID) (*types.SegmentVersion, error) {
	var row versionRow
	if err := s.queries.Get("get-latest-version", &row, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}
	return row.toVersion()
}

// Versions returns a segment's version history, newest first.
func (s *Store) Versions(id types.SegmentID) ([]types.SegmentVersion, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	var rows []versionRow
	if err := s.queries.Select("list-versions", &rows, string(id)); err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}

	versions := make([]types.SegmentVersion, 0, len(rows))
	for _, row := range rows {
		v, err := row.toVersion()
		if err != nil {
			return nil, err
		}
		versions = append(versions, *v)
	}
	return versions, nil
}

// normalise applies defaults and validates caller input.
func (s *Store) normalise(input SegmentInput) (*types.SegmentDefinition, error) {
	if input.Name == "" {
		return nil, ErrMissingName
	}

	language := input.Language
	if language == "" {
		language = types.LanguageSpanish
	}

	rules := input.Rules
	if rules == nil {
		rules = types.EmptyRoot()
	}
	if err := s.engine.Validate(rules); err != nil {
		return nil, err
	}

	restricted := input.RestrictedAttributes
	if restricted == nil {
		restricted = []types.AttributeKey{}
	}

	return &types.SegmentDefinition{
		Name:                 input.Name,
		Description:          input.Description,
		Language:             language,
		Rules:                rules,
		RestrictedAttributes: restricted,
	}, nil
}

func (s *Store) recordVersion(id types.SegmentID, previous, next *types.Group, metrics types.SegmentMetrics, now time.Time) (*types.SegmentVersion, error) {
	version := &types.SegmentVersion{
		ID:        types.NewVersionID(),
		SegmentID: id,
		Summary:   segment.SummariseChange(previous, next),
		Rules:     next,
		Metrics:   metrics,
		CreatedAt: now,
	}

	rulesJSON, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("failed to encode version rules: %w", err)
	}
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to encode version metrics: %w", err)
	}

	if _, err := s.queries.Exec("insert-version",
		string(version.ID), string(id), version.Summary,
		string(rulesJSON), string(metricsJSON), now.Format(time.RFC3339),
	); err != nil {
		return nil, fmt.Errorf("failed to insert version: %w", err)
	}

	return version, nil
}

func encodeRules(def *types.SegmentDefinition) (rulesJSON, restrictedJSON string, err error) {
	rules, err := json.Marshal(def.Rules)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode rules: %w", err)
	}
	restricted, err := json.Marshal(def.RestrictedAttributes)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode restricted attributes: %w", err)
	}
	return string(rules), string(restricted), nil
}
