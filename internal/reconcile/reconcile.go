package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/journal"
)

const defaultWorkers = 4

type Journal interface {
	List(ctx context.Context, status domain.OperationStatus) ([]domain.Operation, error)
	Update(ctx context.Context, id string, u journal.Update) error
}

type MetadataRepo interface {
	Put(ctx context.Context, meta *domain.ProjectMetadata) error
}

type SpendingRepo interface {
	Create(ctx context.Context, detail *domain.SpendingDetail) (*domain.SpendingDetail, error)
}

type Report struct {
	Replayed int      `json:"replayed"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// Service replays partial operations into the off-chain store. It only runs
// when asked to.
type Service struct {
	journal  Journal
	metadata MetadataRepo
	spending SpendingRepo
	workers  int

	inFlight sync.Map
}

func New(journal Journal, metadata MetadataRepo, spending SpendingRepo) *Service {
	return &Service{
		journal:  journal,
		metadata: metadata,
		spending: spending,
		workers:  defaultWorkers,
	}
}

func (s *Service) Run(ctx context.Context) (*Report, error) {
	if s.metadata == nil || s.spending == nil {
		return nil, domain.ErrStoreUnavailable
	}
	ops, err := s.journal.List(ctx, domain.OpPartial)
	if err != nil {
		zap.L().Error("Failed to fetch partial operations", zap.Error(err))
		return nil, err
	}

	report := &Report{}
	var mu sync.Mutex
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, err.Error())
			return
		}
		report.Replayed++
	}

	wp := NewWorkerPool(ctx, s.workers)
	var scheduleErr error
	for _, op := range ops {
		op := op
		if _, loaded := s.inFlight.LoadOrStore(op.ID, struct{}{}); loaded {
			continue
		}
		err := wp.AddTask(ctx, func(ctx context.Context) error {
			defer s.inFlight.Delete(op.ID)
			err := s.replay(ctx, op)
			record(err)
			return err
		})
		if err != nil {
			s.inFlight.Delete(op.ID)
			scheduleErr = err
			break
		}
	}
	wp.Close()

	if scheduleErr != nil {
		zap.L().Error("Error scheduling replays", zap.Error(scheduleErr))
		return report, scheduleErr
	}

	zap.L().Info("reconcile finished", zap.Int("replayed", report.Replayed), zap.Int("failed", report.Failed))
	return report, nil
}

func (s *Service) replay(ctx context.Context, op domain.Operation) error {
	err := s.apply(ctx, op)
	if err != nil {
		if uerr := s.journal.Update(ctx, op.ID, journal.Update{Status: domain.OpPartial, Error: err.Error()}); uerr != nil {
			zap.L().Error("can't record replay failure", zap.String("id", op.ID), zap.Error(uerr))
		}
		return fmt.Errorf("replay %s: %w", op.ID, err)
	}
	if err := s.journal.Update(ctx, op.ID, journal.Update{Status: domain.OpCommitted}); err != nil {
		return fmt.Errorf("mark %s committed: %w", op.ID, err)
	}
	return nil
}

func (s *Service) apply(ctx context.Context, op domain.Operation) error {
	switch op.Kind {
	case domain.OpCreateProject:
		var meta domain.ProjectMetadata
		if err := json.Unmarshal(op.Payload, &meta); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		if op.ProjectID == nil {
			return errors.New("project id unresolved")
		}
		meta.ProjectID = *op.ProjectID
		return s.metadata.Put(ctx, &meta)
	case domain.OpSpendFunds:
		var detail domain.SpendingDetail
		if err := json.Unmarshal(op.Payload, &detail); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		_, err := s.spending.Create(ctx, &detail)
		return err
	default:
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}
