/*
Copyright © 2024 the HAZOP authors.
This file is part of HAZOP.

HAZOP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

HAZOP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with HAZOP.  If not, see <http://www.gnu.org/licenses/>.
*/
// Package storetest provides an in-memory hazop.Store for tests.
package storetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/spatialmodel/hazop"
)

type key struct {
	kind hazop.Kind
	id   string
}

// Store keeps records in a map. Records are copied on the way in and on
// the way out, and nested records come back as plain
// map[string]interface{} and []interface{} values, the way a
// serializing store returns them.
type Store struct {
	mu sync.Mutex
	m  map[key]map[string]interface{}
}

// New returns an empty Store.
func New() *Store {
	return &Store{m: make(map[key]map[string]interface{})}
}

// Put implements hazop.Store.
func (s *Store) Put(ctx context.Context, kind hazop.Kind, id string, r hazop.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key{kind, id}] = cloneMap(r)
	return nil
}

// Get implements hazop.Store.
func (s *Store) Get(ctx context.Context, kind hazop.Kind, id string) (hazop.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.m[key{kind, id}]
	if !ok {
		return nil, fmt.Errorf("storetest: %s %q: %w", kind, id, hazop.ErrNotFound)
	}
	return hazop.Record(cloneMap(r)), nil
}

// Len returns the number of records of the given kind.
func (s *Store) Len(kind hazop.Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.m {
		if k.kind == kind {
			n++
		}
	}
	return n
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	o := make(map[string]interface{}, len(m))
	for k, v := range m {
		o[k] = clone(v)
	}
	return o
}

func clone(v interface{}) interface{} {
	switch t := v.(type) {
	case hazop.Record:
		return cloneMap(t)
	case map[string]interface{}:
		return cloneMap(t)
	case map[string]float64:
		o := make(map[string]interface{}, len(t))
		for k, f := range t {
			o[k] = f
		}
		return o
	case []hazop.Record:
		o := make([]interface{}, len(t))
		for i, r := range t {
			o[i] = cloneMap(r)
		}
		return o
	case []interface{}:
		o := make([]interface{}, len(t))
		for i, e := range t {
			o[i] = clone(e)
		}
		return o
	default:
		return v
	}
}
