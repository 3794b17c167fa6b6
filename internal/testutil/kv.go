package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrInjected is returned by FakeKV when a failure is switched on
var ErrInjected = errors.New("injected storage failure")

// FakeKV is an in-memory key-value store with switchable failures
type FakeKV struct {
	mu       sync.Mutex
	data     map[string]string
	FailGet  bool
	FailSet  bool
	SetCalls int
}

// NewFakeKV creates an empty FakeKV
func NewFakeKV() *FakeKV {
	return &FakeKV{data: make(map[string]string)}
}

func (f *FakeKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailGet {
		return "", false, ErrInjected
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *FakeKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetCalls++
	if f.FailSet {
		return ErrInjected
	}
	f.data[key] = value
	return nil
}

func (f *FakeKV) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *FakeKV) Keys(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Raw returns the stored value for key without going through failure switches
func (f *FakeKV) Raw(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

// Put stores a raw value without counting it as a Set call
func (f *FakeKV) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}
