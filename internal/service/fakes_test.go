package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/internal/repository"
	"github.com/limbo/x3momentum/pkg/entity"
)

// In-memory repositories that follow the SQL semantics of the real ones,
// including the repair guards.

type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[entity.UserID]entity.Profile
}

func newFakeProfiles(profiles ...entity.Profile) *fakeProfiles {
	f := &fakeProfiles{profiles: make(map[entity.UserID]entity.Profile)}
	for _, p := range profiles {
		f.profiles[p.UserID] = p
	}
	return f
}

func (f *fakeProfiles) FindByUserID(_ context.Context, uid entity.UserID) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[uid]
	if !ok {
		return nil, errorvalues.ErrProfileNotFound
	}
	return &p, nil
}

func (f *fakeProfiles) Create(_ context.Context, profile *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[profile.UserID]; ok {
		return errorvalues.ErrProfileExists
	}
	f.profiles[profile.UserID] = *profile
	return nil
}

func (f *fakeProfiles) UpdateTimezone(_ context.Context, uid entity.UserID, timezone string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[uid]
	if !ok {
		return errorvalues.ErrProfileNotFound
	}
	p.Timezone = timezone
	f.profiles[uid] = p
	return nil
}

type fakeExercises struct {
	mu      sync.Mutex
	nextID  int64
	entries []entity.ExerciseLogEntry
}

func (f *fakeExercises) Create(_ context.Context, entry *entity.ExerciseLogEntry) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e := *entry
	e.ID = f.nextID
	f.entries = append(f.entries, e)
	return e.ID, nil
}

func (f *fakeExercises) List(_ context.Context, uid entity.UserID, filter repository.ExerciseFilter) ([]entity.ExerciseLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]entity.ExerciseLogEntry, 0)
	for _, e := range f.entries {
		if e.UserID != uid {
			continue
		}
		if filter.From != nil && e.PerformedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !e.PerformedAt.Before(*filter.To) {
			continue
		}
		if filter.WorkoutType != nil && e.WorkoutType != *filter.WorkoutType {
			continue
		}
		result = append(result, e)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PerformedAt.Before(result[j].PerformedAt)
	})
	return result, nil
}

type fakeDailyLog struct {
	mu      sync.Mutex
	nextID  int64
	entries map[entity.CalendarDate]entity.DailyLogEntry
}

func newFakeDailyLog(entries ...entity.DailyLogEntry) *fakeDailyLog {
	f := &fakeDailyLog{entries: make(map[entity.CalendarDate]entity.DailyLogEntry)}
	for _, e := range entries {
		f.put(e)
	}
	return f
}

func (f *fakeDailyLog) put(e entity.DailyLogEntry) {
	if old, ok := f.entries[e.Date]; ok {
		e.ID = old.ID
	} else {
		f.nextID++
		e.ID = f.nextID
	}
	f.entries[e.Date] = e
}

func (f *fakeDailyLog) GetByDate(_ context.Context, _ entity.UserID, date entity.CalendarDate) (*entity.DailyLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[date]
	if !ok {
		return nil, errorvalues.ErrLogEntryNotFound
	}
	return &e, nil
}

func (f *fakeDailyLog) List(_ context.Context, _ entity.UserID, filter repository.DailyLogFilter) ([]entity.DailyLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]entity.DailyLogEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (f *fakeDailyLog) Upsert(_ context.Context, entry *entity.DailyLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(*entry)
	return nil
}

func (f *fakeDailyLog) InsertIfAbsent(_ context.Context, entry *entity.DailyLogEntry) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[entry.Date]; ok {
		return false, nil
	}
	f.put(*entry)
	return true, nil
}

func (f *fakeDailyLog) ApplyRepair(_ context.Context, uid entity.UserID, repair entity.DailyLogRepair) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[repair.Date]
	if repair.Kind == entity.RepairInsertCompleted {
		if ok {
			return false, nil
		}
		f.put(entity.DailyLogEntry{
			UserID: uid, Date: repair.Date, WorkoutType: repair.WorkoutType,
			Status: entity.StatusCompleted, WeekNumber: repair.WeekNumber,
		})
		return true, nil
	}
	if !ok || e.Status != entity.StatusCompleted || e.WorkoutType != repair.PreviousType {
		return false, nil
	}
	switch repair.Kind {
	case entity.RepairCorrectWorkout:
		if e.WorkoutType == entity.WorkoutRest {
			return false, nil
		}
		e.WorkoutType = repair.WorkoutType
		e.WeekNumber = repair.WeekNumber
	case entity.RepairMarkMissed:
		if e.WorkoutType == entity.WorkoutRest {
			return false, nil
		}
		e.Status = entity.StatusMissed
	case entity.RepairCoerceRest:
		e.WorkoutType = entity.WorkoutRest
	}
	f.entries[repair.Date] = e
	return true, nil
}

type countingRecorder struct {
	mu        sync.Mutex
	completed map[entity.WorkoutType]int
	repairs   map[entity.RepairKind]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		completed: make(map[entity.WorkoutType]int),
		repairs:   make(map[entity.RepairKind]int),
	}
}

func (r *countingRecorder) WorkoutCompleted(wt entity.WorkoutType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed[wt]++
}

func (r *countingRecorder) RepairApplied(kind entity.RepairKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.repairs[kind]++
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
