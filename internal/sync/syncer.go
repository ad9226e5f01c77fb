// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package sync

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/tomtom215/ballotsync/internal/errors"
	"github.com/tomtom215/ballotsync/internal/graphql"
	"github.com/tomtom215/ballotsync/internal/logging"
	"github.com/tomtom215/ballotsync/internal/metrics"
	"github.com/tomtom215/ballotsync/internal/models"
)

// Source defines the interface for loading spreadsheet rows.
// *source.Reader implements it.
type Source interface {
	LoadPeople(ctx context.Context) ([]models.Person, error)
	LoadCandidates(ctx context.Context, fromID, toID int) ([]models.Candidate, error)
	LoadConstituencies(ctx context.Context, fromID, toID int) ([]models.Constituency, error)
}

// Options tune a Syncer.
type Options struct {
	// DryRun is recorded in reports. The Mutator decides whether anything
	// is actually sent.
	DryRun bool
}

// Syncer pushes spreadsheet rows to the backend one mutation at a time.
type Syncer struct {
	source  Source
	mutator graphql.Mutator
	logger  zerolog.Logger
	opts    Options
}

// New creates a Syncer.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(source Source, mutator graphql.Mutator, logger zerolog.Logger, opts Options) *Syncer {
	return &Syncer{
		source:  source,
		mutator: mutator,
		logger:  logger,
		opts:    opts,
	}
}

// validateRange rejects reversed or negative id bounds.
func validateRange(fromID, toID int) error {
	if fromID < 0 || toID < 0 || fromID > toID {
		return apperrors.InvalidRange(fromID, toID)
	}
	return nil
}

// sourceError makes sure a load failure carries the SOURCE_UNAVAILABLE code.
func sourceError(err error, table string) error {
	if apperrors.CodeOf(err) != "" {
		return err
	}
	return apperrors.SourceUnavailable(err, table)
}

// withRunID makes sure ctx carries a run id.
func withRunID(ctx context.Context) context.Context {
	if logging.RunIDFromContext(ctx) != "" {
		return ctx
	}
	return logging.ContextWithRunID(ctx, logging.GenerateRunID())
}

// log returns the logger stored in ctx, or the Syncer's own when there is
// none, tagged with run_id, component and operation.
func (s *Syncer) log(ctx context.Context, operation string) zerolog.Logger {
	return logging.WithComponent(*logging.CtxOr(ctx, s.logger), "sync").
		With().
		Str("operation", operation).
		Logger()
}

// begin starts a report for the run id in ctx.
func (s *Syncer) begin(ctx context.Context, operation string, fromID, toID int) *Report {
	return newReport(operation, logging.RunIDFromContext(ctx), fromID, toID, s.opts.DryRun)
}

// SyncCandidates updates every candidate with an id in [fromID, toID], and
// the person each candidate references.
//
// Range, load and empty-data problems abort before any mutation and are
// returned as errors. Row failures never abort the batch; they are recorded
// in the returned Report.
func (s *Syncer) SyncCandidates(ctx context.Context, fromID, toID int) (*Report, error) {
	ctx = withRunID(ctx)
	log := s.log(ctx, OperationCandidates)

	if err := validateRange(fromID, toID); err != nil {
		log.Error().Err(err).Msg("Invalid from_id and to_id")
		return nil, err
	}

	var (
		people     []models.Person
		candidates []models.Candidate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		people, err = s.source.LoadPeople(gctx)
		if err != nil {
			return sourceError(err, "people")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		candidates, err = s.source.LoadCandidates(gctx, fromID, toID)
		if err != nil {
			return sourceError(err, "candidates")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("error when loading data from spreadsheet")
		return nil, err
	}

	if len(candidates) == 0 {
		err := apperrors.EmptySourceData("candidates")
		log.Error().Err(err).Int("from_id", fromID).Int("to_id", toID).Msg("no candidates in range")
		return nil, err
	}
	if len(people) == 0 {
		err := apperrors.EmptySourceData("people")
		log.Error().Err(err).Msg("no people loaded")
		return nil, err
	}

	report := s.begin(ctx, OperationCandidates, fromID, toID)
	report.stats(EntityCandidate).Total = len(candidates)
	report.stats(EntityPerson).Total = len(candidates)

	log.Info().
		Int("candidates", len(candidates)).
		Int("people", len(people)).
		Bool("dry_run", s.opts.DryRun).
		Msg("Starting candidate sync")

	for i := range candidates {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Int("remaining", len(candidates)-i).Msg("sync interrupted")
			s.end(report, log)
			return report, err
		}
		s.syncCandidate(ctx, log, report, people, &candidates[i])
	}

	s.end(report, log)
	return report, nil
}

// syncCandidate updates one candidate and, when it resolves, its person.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (s *Syncer) syncCandidate(ctx context.Context, log zerolog.Logger, report *Report, people []models.Person, c *models.Candidate) {
	person, found := findPerson(people, c.PersonID)
	if !found {
		err := apperrors.PersonNotFound(c.PersonID)
		log.Error().Err(err).
			Str("candidate_id", c.ID).
			Str("name_zh", c.NameZH).
			Msg("people not found for candidate")
		s.skip(report, EntityPerson, c.PersonID, c.ID, err)
	}

	vars, malformed := candidateVariables(c)
	if len(malformed) > 0 {
		log.Warn().
			Str("candidate_id", c.ID).
			Strs("entries", malformed).
			Msg("ignoring tag entries without a type")
	}

	if _, err := s.mutator.Mutate(ctx, graphql.UpdateCandidate, vars); err != nil {
		log.Error().Err(err).Str("candidate_id", c.ID).Msg("error when updating candidate")
		s.fail(report, EntityCandidate, c.ID, "", err)
	} else {
		s.update(report, EntityCandidate)
	}

	if found {
		if _, err := s.mutator.Mutate(ctx, graphql.UpdatePerson, personVariables(c.PersonID, person)); err != nil {
			log.Error().Err(err).
				Str("candidate_id", c.ID).
				Str("person_id", c.PersonID).
				Msg("error when updating person")
			s.fail(report, EntityPerson, c.PersonID, c.ID, err)
		} else {
			s.update(report, EntityPerson)
		}
	}

	cand := report.Entity(EntityCandidate)
	pers := report.Entity(EntityPerson)
	log.Info().Msgf("candidates updated: %d/%d", cand.Updated, cand.Total)
	log.Info().Msgf("people updated: %d/%d", pers.Updated, pers.Total)
}

// SyncConstituencies updates the description of every constituency with an
// id in [fromID, toID].
func (s *Syncer) SyncConstituencies(ctx context.Context, fromID, toID int) (*Report, error) {
	ctx = withRunID(ctx)
	log := s.log(ctx, OperationConstituencies)

	if err := validateRange(fromID, toID); err != nil {
		log.Error().Err(err).Msg("Invalid from_id and to_id")
		return nil, err
	}

	constituencies, err := s.source.LoadConstituencies(ctx, fromID, toID)
	if err != nil {
		err = sourceError(err, "constituencies")
		log.Error().Err(err).Msg("error when loading data from spreadsheet")
		return nil, err
	}
	if len(constituencies) == 0 {
		err := apperrors.EmptySourceData("constituencies")
		log.Error().Err(err).Int("from_id", fromID).Int("to_id", toID).Msg("no constituencies in range")
		return nil, err
	}

	report := s.begin(ctx, OperationConstituencies, fromID, toID)
	report.stats(EntityConstituency).Total = len(constituencies)

	log.Info().
		Int("constituencies", len(constituencies)).
		Bool("dry_run", s.opts.DryRun).
		Msg("Starting constituency sync")

	for i := range constituencies {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Int("remaining", len(constituencies)-i).Msg("sync interrupted")
			s.end(report, log)
			return report, err
		}

		c := &constituencies[i]
		if _, err := s.mutator.Mutate(ctx, graphql.UpdateConstituency, constituencyVariables(c)); err != nil {
			log.Error().Err(err).Str("constituency_id", c.ID).Msg("error when updating constituency")
			s.fail(report, EntityConstituency, c.ID, "", err)
		} else {
			s.update(report, EntityConstituency)
		}

		stats := report.Entity(EntityConstituency)
		log.Info().Msgf("constituencies updated: %d/%d", stats.Updated, stats.Total)
	}

	s.end(report, log)
	return report, nil
}

func (s *Syncer) update(report *Report, entity string) {
	report.stats(entity).Updated++
	metrics.RecordRow(entity, metrics.OutcomeUpdated)
}

func (s *Syncer) fail(report *Report, entity, id, relatedID string, err error) {
	report.stats(entity).Failed++
	report.Failures = append(report.Failures, Failure{
		Entity:    entity,
		ID:        id,
		RelatedID: relatedID,
		Code:      string(apperrors.CodeOf(err)),
		Reason:    err.Error(),
	})
	metrics.RecordRow(entity, metrics.OutcomeFailed)
}

func (s *Syncer) skip(report *Report, entity, id, relatedID string, err error) {
	report.stats(entity).Skipped++
	report.Failures = append(report.Failures, Failure{
		Entity:    entity,
		ID:        id,
		RelatedID: relatedID,
		Code:      string(apperrors.CodeOf(err)),
		Reason:    err.Error(),
	})
	metrics.RecordRow(entity, metrics.OutcomeSkipped)
}

// end closes the report, records batch metrics and logs the final counters.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (s *Syncer) end(report *Report, log zerolog.Logger) {
	report.finish()
	metrics.RecordBatch(report.Operation, report.Duration(), report.HasFailures())

	event := log.Info()
	if report.HasFailures() {
		event = log.Warn()
	}
	summary := report.Summary()
	event.
		Dur("duration", report.Duration()).
		Int("failures", summary.FailureCount).
		Int("skipped", summary.SkippedCount).
		Msg("batch update completed")
}
