package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

var _ PlanStore = (*fileStore)(nil)

// fileStore 把所有計畫存在一個 JSON 檔，沒有 MongoDB 時使用
type fileStore struct {
	mu    sync.RWMutex
	path  string
	plans map[string]*TravelPlan
}

func newFileStore(path string) (*fileStore, error) {
	s := &fileStore{path: path, plans: make(map[string]*TravelPlan)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("No existing data file, starting fresh")
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &s.plans); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	if s.plans == nil {
		s.plans = make(map[string]*TravelPlan)
	}

	log.Printf("Loaded %d plans", len(s.plans))
	return nil
}

// commit 先寫檔，成功後才換掉記憶體中的資料；呼叫前必須持有寫鎖
func (s *fileStore) commit(next map[string]*TravelPlan) error {
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plans: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.plans = next
	return nil
}

// snapshot 複製 map，指標指向的計畫不會被修改，只會被替換
func (s *fileStore) snapshot() map[string]*TravelPlan {
	next := make(map[string]*TravelPlan, len(s.plans)+1)
	for id, p := range s.plans {
		next[id] = p
	}
	return next
}

func (s *fileStore) CreatePlan(_ context.Context, plan *TravelPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *plan
	next := s.snapshot()
	next[plan.ID] = &cp
	return s.commit(next)
}

func (s *fileStore) FindPlan(_ context.Context, id string) (*TravelPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[id]
	if !ok {
		return nil, errPlanNotFound
	}
	cp := *plan
	return &cp, nil
}

func (s *fileStore) FindPlans(_ context.Context, filter PlanFilter) ([]*TravelPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*TravelPlan, 0, len(s.plans))
	for _, p := range s.plans {
		if filter.UserID != "" && p.UserID != filter.UserID {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}

	// 新的在前
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (s *fileStore) UpdatePlan(_ context.Context, id string, upd PlanUpdate) (*TravelPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.plans[id]
	if !ok {
		return nil, errPlanNotFound
	}
	updated := *current
	applyUpdate(&updated, upd)

	next := s.snapshot()
	next[id] = &updated
	if err := s.commit(next); err != nil {
		return nil, err
	}
	cp := updated
	return &cp, nil
}

func (s *fileStore) DeletePlan(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plans[id]; !ok {
		return errPlanNotFound
	}
	next := s.snapshot()
	delete(next, id)
	return s.commit(next)
}

func (s *fileStore) Close(context.Context) error { return nil }
