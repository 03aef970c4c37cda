// Package memory implements the repository interfaces on an in-process
// snapshot store. It backs STORAGE_TYPE=memory deployments and the service
// tests; one mutex serializes all access.
package memory

import (
	"sort"
	"sync"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/schedule"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/google/uuid"
)

type Store struct {
	mu        sync.RWMutex
	turns     map[string]turn.Turn
	schedules map[string]schedule.Schedule
	employees map[string]employee.Employee
	positions map[string]master.Position
	marks     map[string]mark.Mark
	reports   map[string]report.Report
}

func NewStore() *Store {
	return &Store{
		turns:     make(map[string]turn.Turn),
		schedules: make(map[string]schedule.Schedule),
		employees: make(map[string]employee.Employee),
		positions: make(map[string]master.Position),
		marks:     make(map[string]mark.Mark),
		reports:   make(map[string]report.Report),
	}
}

func newID() string {
	return uuid.NewString()
}

// sortStable keeps List results deterministic: creation order, id as
// tiebreak.
func sortStable[T any](items []T, createdAt func(T) int64, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		if createdAt(items[i]) != createdAt(items[j]) {
			return createdAt(items[i]) < createdAt(items[j])
		}
		return id(items[i]) < id(items[j])
	})
}
