package service

import (
	"context"
	"fmt"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/matching"
	"github.com/mmqops/booking-api/internal/repository"
)

var ErrScenarioNotFound = repository.ErrScenarioNotFound

type ScenarioRepository interface {
	Create(ctx context.Context, scenario domain.Scenario) (domain.Scenario, error)
	FindByID(ctx context.Context, id uint) (domain.Scenario, error)
	FindAll(ctx context.Context) ([]domain.Scenario, error)
	Update(ctx context.Context, scenario domain.Scenario) (domain.Scenario, error)
}

type ScenarioService struct {
	repo      ScenarioRepository
	eventRepo ScheduleEventRepository
}

func NewScenarioService(repo ScenarioRepository, eventRepo ScheduleEventRepository) *ScenarioService {
	return &ScenarioService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *ScenarioService) List(ctx context.Context) ([]domain.Scenario, error) {
	scenarios, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return scenarios, nil
}

func (s *ScenarioService) Get(ctx context.Context, id uint) (domain.Scenario, error) {
	scenario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return scenario, nil
}

func (s *ScenarioService) Create(ctx context.Context, scenario domain.Scenario) (domain.Scenario, error) {
	if scenario.Status == "" {
		scenario.Status = domain.ScenarioAvailable
	}

	created, err := s.repo.Create(ctx, scenario)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ReconcileMatch records one event whose free-text scenario name resolved to
// a catalogue entry.
type ReconcileMatch struct {
	EventID       uint   `json:"event_id"`
	RawName       string `json:"raw_name"`
	MatchedTitle  string `json:"matched_title"`
	ScenarioID    uint   `json:"scenario_id"`
	UpdateApplied bool   `json:"update_applied"`
}

// ReconcileResult summarizes one reconciliation run.
type ReconcileResult struct {
	EventsScanned int              `json:"events_scanned"`
	Matched       int              `json:"matched"`
	Updated       int              `json:"updated"`
	DryRun        bool             `json:"dry_run"`
	Matches       []ReconcileMatch `json:"matches"`
}

// Reconcile links non-cancelled events that carry a scenario name but no
// scenario_id to catalogue entries, using the ordered normalization rules.
// With dryRun set it only reports what would change.
func (s *ScenarioService) Reconcile(ctx context.Context, dryRun bool) (ReconcileResult, error) {
	events, err := s.eventRepo.FindUnlinkedToScenario(ctx)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("s.eventRepo.FindUnlinkedToScenario -> %w", err)
	}

	scenarios, err := s.repo.FindAll(ctx)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	candidates := make([]matching.Candidate, 0, len(scenarios))
	for _, sc := range scenarios {
		candidates = append(candidates, matching.Candidate{ID: sc.ID, Title: sc.Title})
	}

	result := ReconcileResult{
		EventsScanned: len(events),
		DryRun:        dryRun,
		Matches:       []ReconcileMatch{},
	}

	for _, event := range events {
		matched, ok := matching.Match(event.Scenario, candidates)
		if !ok {
			continue
		}

		result.Matched++
		match := ReconcileMatch{
			EventID:      event.ID,
			RawName:      event.Scenario,
			MatchedTitle: matched.Title,
			ScenarioID:   matched.ID,
		}

		if !dryRun {
			if err = s.eventRepo.SetScenarioID(ctx, event.ID, matched.ID); err != nil {
				return ReconcileResult{}, fmt.Errorf("s.eventRepo.SetScenarioID -> %w", err)
			}
			match.UpdateApplied = true
			result.Updated++
		}

		result.Matches = append(result.Matches, match)
	}

	return result, nil
}
