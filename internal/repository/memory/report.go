package memory

import (
	"context"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
)

type ReportRepository struct {
	s *Store
}

func NewReportRepository(s *Store) *ReportRepository {
	return &ReportRepository{s: s}
}

func (r *ReportRepository) List(ctx context.Context) ([]report.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]report.Report, 0, len(r.s.reports))
	for _, rep := range r.s.reports {
		out = append(out, rep)
	}
	sortStable(out,
		func(rep report.Report) int64 { return rep.Timestamp.UnixNano() },
		func(rep report.Report) string { return rep.ID })
	return out, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (report.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rep, ok := r.s.reports[id]
	if !ok {
		return report.Report{}, report.ErrReportNotFound
	}
	return rep, nil
}

func (r *ReportRepository) Replace(ctx context.Context, rep report.Report) (report.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// One report per employee: drop whatever consolidation wrote before.
	for id, existing := range r.s.reports {
		if existing.EmployeeID == rep.EmployeeID {
			delete(r.s.reports, id)
		}
	}

	if rep.ID == "" {
		rep.ID = newID()
	}
	if rep.Timestamp.IsZero() {
		rep.Timestamp = time.Now()
	}
	r.s.reports[rep.ID] = rep
	return rep, nil
}

func (r *ReportRepository) UpdateNotes(ctx context.Context, id, notes string) (report.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rep, ok := r.s.reports[id]
	if !ok {
		return report.Report{}, report.ErrReportNotFound
	}
	rep.Notes = &notes
	r.s.reports[id] = rep
	return rep, nil
}

func (r *ReportRepository) Clear(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.reports = make(map[string]report.Report)
	return nil
}
