package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/effortcal/internal/db"
	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/repository"
)

type recordService struct {
	records  repository.TimeRecordRepo
	uow      db.UnitOfWork
	rules    domain.CategoryRules
	observer UseCaseObserver
	now      func() time.Time
}

func NewRecordService(records repository.TimeRecordRepo, uow db.UnitOfWork, rules domain.CategoryRules, observers ...UseCaseObserver) RecordService {
	return &recordService{
		records:  records,
		uow:      uow,
		rules:    rules,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// prepare normalizes r in place and validates it.
func (s *recordService) prepare(r *domain.TimeRecord) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now().UTC()
	}
	r.Date = domain.CivilDate(r.Date)
	if err := s.rules.Resolve(r); err != nil {
		return err
	}
	return r.Validate()
}

func (s *recordService) Log(ctx context.Context, r *domain.TimeRecord) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "log-record",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = s.prepare(r); err != nil {
		return err
	}
	fields["date"] = r.Date.Format(domain.DateLayout)
	fields["category"] = string(r.Category)
	fields["hours"] = r.Hours

	if err = s.records.Create(ctx, r); err != nil {
		return fmt.Errorf("logging record: %w", err)
	}
	return nil
}

func (s *recordService) Import(ctx context.Context, records []*domain.TimeRecord) (n int, err error) {
	startedAt := time.Now()
	fields := map[string]any{"rows": len(records)}
	defer func() {
		fields["imported"] = n
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-records",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	for i, r := range records {
		if err = s.prepare(r); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteTimeRecordRepo(tx)
		for i, r := range records {
			if err := txRecords.Create(ctx, r); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("importing records: %w", err)
	}
	return len(records), nil
}

func (s *recordService) ListByYear(ctx context.Context, year int) ([]*domain.TimeRecord, error) {
	return s.records.ListByYear(ctx, year)
}

func (s *recordService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-record",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"id": id},
		})
	}()

	if err = s.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}
	return nil
}
