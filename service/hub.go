package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

// Hub is the runtime container for service instances
// Manages lifecycle and provides type-safe access
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	sorted   []string        // Topological order, computed on InitAll
	started  []string        // Services that completed Start(), for rollback
	disabled map[string]bool // Optional services dropped after a failure
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{
		services: make(map[string]Service),
		disabled: make(map[string]bool),
	}
}

// Register adds a service instance to the hub
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}

	h.services[name] = svc
	h.sorted = nil // Invalidate cached order
	return nil
}

// Get retrieves a service by name, disabled services are not returned
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.disabled[name] {
		return nil, false
	}
	svc, ok := h.services[name]
	return svc, ok
}

// Lookup retrieves an enabled service and casts it to T
func Lookup[T any](h *Hub, name string) (T, bool) {
	var zero T
	svc, ok := h.Get(name)
	if !ok {
		return zero, false
	}
	typed, ok := svc.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Enabled reports whether name is registered and was not dropped
func (h *Hub) Enabled(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// InitAll resolves dependencies and calls Init on all services in dependency order
// A failing optional service is disabled along with its dependents
// A failing required service stops the already-initialized ones in reverse order
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		order, err := h.topologicalSort()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	var initialized []string
	for _, name := range h.sorted {
		svc := h.services[name]
		err := h.depsAvailable(svc)
		if err == nil {
			err = svc.Init()
		}
		if err != nil {
			if isOptional(svc) {
				log.Printf("service: %s disabled: %v", name, err)
				h.disabled[name] = true
				continue
			}
			for i := len(initialized) - 1; i >= 0; i-- {
				h.services[initialized[i]].Stop()
			}
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
		initialized = append(initialized, name)
	}

	return nil
}

func (h *Hub) depsAvailable(svc Service) error {
	for _, dep := range svc.Dependencies() {
		if h.disabled[dep] {
			return fmt.Errorf("dependency %s is disabled", dep)
		}
	}
	return nil
}

// StartAll calls Start on all enabled services in topological order
// Optional failures disable the service, required failures roll back started services
func (h *Hub) StartAll(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = nil

	for _, name := range h.sorted {
		if h.disabled[name] {
			continue
		}
		svc := h.services[name]
		err := h.depsAvailable(svc)
		if err == nil {
			err = svc.Start(ctx)
		}
		if err != nil {
			if isOptional(svc) {
				log.Printf("service: %s disabled: %v", name, err)
				h.disabled[name] = true
				svc.Stop()
				continue
			}
			for i := len(h.started) - 1; i >= 0; i-- {
				h.services[h.started[i]].Stop()
			}
			h.started = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
	}

	return nil
}

// StopAll calls Stop on all started services in reverse topological order
// Every service gets Stop called, errors are joined
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		name := h.started[i]
		if err := h.services[name].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("service %s stop: %w", name, err))
		}
	}
	h.started = nil
	return errors.Join(errs...)
}

// topologicalSort computes initialization order using Kahn's algorithm
// Ties resolve by name so the order is stable across runs
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int)
	dependents := make(map[string][]string) // dep -> services that depend on it

	for name := range h.services {
		inDegree[name] = 0
	}

	for name, svc := range h.services {
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		next := dependents[name]
		sort.Strings(next)
		for _, dependent := range next {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, fmt.Errorf("circular dependency detected in services")
	}

	return result, nil
}

// Names returns the registered service names in lifecycle order once InitAll ran
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.sorted != nil {
		return append([]string(nil), h.sorted...)
	}
	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
