package usecase

import (
	"context"
	"sync"
	"time"

	"labor-intel/internal/domain/job"
	"labor-intel/internal/domain/program"
	"labor-intel/internal/domain/skill"
	"labor-intel/internal/domain/university"
	"labor-intel/internal/repository"

	"github.com/goccy/go-json"
)

type fakeJobRepo struct {
	items      []job.Job
	err        error
	stats      repository.JobStats
	statsCalls int
	lastFilter repository.JobFilter
	lastPage   repository.Page
}

func (f *fakeJobRepo) List(_ context.Context, flt repository.JobFilter, p repository.Page) ([]job.Job, int, error) {
	f.lastFilter, f.lastPage = flt, p
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.items, len(f.items), nil
}

func (f *fakeJobRepo) ListAll(_ context.Context, flt repository.JobFilter) ([]job.Job, error) {
	f.lastFilter = flt
	return f.items, f.err
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (job.Job, error) {
	if f.err != nil {
		return job.Job{}, f.err
	}
	for _, j := range f.items {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrNotFound
}

func (f *fakeJobRepo) Stats(context.Context) (repository.JobStats, error) {
	f.statsCalls++
	return f.stats, f.err
}

type fakeProgramRepo struct {
	items      []program.Program
	err        error
	listCalls  int
	lastFilter repository.ProgramFilter
}

func (f *fakeProgramRepo) List(_ context.Context, flt repository.ProgramFilter, _ repository.Page) ([]program.Program, int, error) {
	f.lastFilter = flt
	return f.items, len(f.items), f.err
}

func (f *fakeProgramRepo) ListAll(_ context.Context, flt repository.ProgramFilter) ([]program.Program, error) {
	f.listCalls++
	f.lastFilter = flt
	return f.items, f.err
}

func (f *fakeProgramRepo) GetByID(_ context.Context, id string) (program.Program, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return program.Program{}, repository.ErrNotFound
}

type fakeSkillRepo struct {
	items    []skill.Skill
	err      error
	topCalls int
}

func (f *fakeSkillRepo) List(context.Context, repository.SkillFilter) ([]skill.Skill, error) {
	return f.items, f.err
}

func (f *fakeSkillRepo) Top(_ context.Context, limit int, _ skill.Type) ([]skill.Skill, error) {
	f.topCalls++
	return f.items[:min(limit, len(f.items))], f.err
}

func (f *fakeSkillRepo) GetByID(_ context.Context, id int64) (skill.Skill, error) {
	for _, s := range f.items {
		if s.ID == id {
			return s, nil
		}
	}
	return skill.Skill{}, repository.ErrNotFound
}

type fakeUniversityRepo struct {
	items []university.University
}

func (f *fakeUniversityRepo) List(context.Context, repository.UniversityFilter) ([]university.University, error) {
	return f.items, nil
}

func (f *fakeUniversityRepo) GetByID(_ context.Context, id int64) (university.University, error) {
	for _, u := range f.items {
		if u.ID == id {
			return u, nil
		}
	}
	return university.University{}, repository.ErrNotFound
}

type fakeAnalyticsRepo struct {
	mu     sync.Mutex
	counts map[repository.Entity]int
	err    error
	calls  int
}

func (f *fakeAnalyticsRepo) Count(_ context.Context, e repository.Entity) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[e], nil
}

func (f *fakeAnalyticsRepo) SalaryTrends(_ context.Context, by repository.SalaryGrouping) ([]repository.SalaryTrend, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return []repository.SalaryTrend{{Label: string(by), Value: 1000, Count: 6}}, f.err
}

func (f *fakeAnalyticsRepo) JobTrends(_ context.Context, by repository.TrendDimension, limit int) ([]repository.LabelCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return []repository.LabelCount{{Label: string(by), Count: limit}}, f.err
}

// memoryCache is a ResultCache backed by a map, storing values as JSON.
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) Available() bool { return true }

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = b
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *memoryCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[key]; ok {
		return false, nil
	}
	m.items[key] = []byte(value)
	return true, nil
}
