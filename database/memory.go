package database

import (
	"context"
	"sync"
)

// Memory is an in-process Store for tests.
type Memory struct {
	mu       sync.Mutex
	records  map[string]map[string][]byte
	counters map[string]int64
}

func NewMemory() *Memory {
	return &Memory{
		records:  make(map[string]map[string][]byte),
		counters: make(map[string]int64),
	}
}

func namespace(userID, collection string) string {
	return userID + "/" + collection
}

func (m *Memory) Set(_ context.Context, userID, collection, key string, value []byte) error {
	if err := checkKey(userID, collection, key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ns := namespace(userID, collection)
	if m.records[ns] == nil {
		m.records[ns] = make(map[string][]byte)
	}
	m.records[ns][key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Get(_ context.Context, userID, collection string) (map[string][]byte, error) {
	if err := checkScope(userID, collection); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string][]byte, len(m.records[namespace(userID, collection)]))
	for k, v := range m.records[namespace(userID, collection)] {
		out[k] = append([]byte(nil), v...)
	}
	return out, nil
}

func (m *Memory) Delete(_ context.Context, userID, collection, key string) (bool, error) {
	if err := checkKey(userID, collection, key); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := m.records[namespace(userID, collection)]
	if _, ok := entries[key]; !ok {
		return false, nil
	}
	delete(entries, key)
	return true, nil
}

func (m *Memory) NextID(_ context.Context, userID, collection string) (int64, error) {
	if err := checkScope(userID, collection); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ns := namespace(userID, collection)
	m.counters[ns]++
	return m.counters[ns], nil
}
