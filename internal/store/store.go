package store

import (
	"context"
	"sync"

	"github.com/oneminch/devmenu/internal/sample"
	"github.com/oneminch/devmenu/pkg/model"
)

// ResolveFunc maps (pid, command line) to a project directory and
// metadata. It is the expensive step the store exists to avoid repeating.
type ResolveFunc func(ctx context.Context, pid int, cmdline string) (string, *model.ProjectInfo)

// Store is the pid-keyed cache of resolved details. It is the single
// writer; readers only ever get complete snapshots. Reconcile calls are
// serialized so a snapshot can never observe a half-rebuilt map.
type Store struct {
	mu      sync.Mutex
	resolve ResolveFunc
	sampler sample.Sampler
	details map[int]model.ResolvedDetails
}

func New(resolve ResolveFunc, sampler sample.Sampler) *Store {
	return &Store{
		resolve: resolve,
		sampler: sampler,
		details: make(map[int]model.ResolvedDetails),
	}
}

// Reconcile diffs the current pid set against the cache: entries for
// vanished pids are dropped, surviving entries are kept verbatim, and
// only newly seen pids pay for resolution and sampling. A steady-state
// poll with an unchanged pid set does zero expensive work.
func (s *Store) Reconcile(ctx context.Context, current []model.ServerProcess) model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	currentIDs := make(map[int]bool, len(current))
	for _, sp := range current {
		currentIDs[sp.PID] = true
	}

	// a pid listening on several ports in the range shows up once per
	// port in current; it still gets exactly one resolution
	var toAdd []model.ServerProcess
	queued := make(map[int]bool)
	for _, sp := range current {
		if _, known := s.details[sp.PID]; known || queued[sp.PID] {
			continue
		}
		queued[sp.PID] = true
		toAdd = append(toAdd, sp)
	}
	removed := false
	for pid := range s.details {
		if !currentIDs[pid] {
			removed = true
			break
		}
	}

	if len(toAdd) > 0 || removed {
		next := make(map[int]model.ResolvedDetails, len(current))
		for pid, d := range s.details {
			if currentIDs[pid] {
				next[pid] = d
			}
		}
		for _, sp := range toAdd {
			next[sp.PID] = s.resolveOne(ctx, sp)
		}
		// swap in the fully built map; readers never see it mid-build
		s.details = next
	}

	return s.snapshotLocked(current)
}

func (s *Store) resolveOne(ctx context.Context, sp model.ServerProcess) model.ResolvedDetails {
	dir, info := s.resolve(ctx, sp.PID, sp.Command)
	usage := s.sampler.Sample(ctx, sp.PID)
	return model.ResolvedDetails{
		Dir:      dir,
		Project:  info,
		MemoryMB: usage.MemoryMB,
		CPU:      usage.CPU,
	}
}

func (s *Store) snapshotLocked(current []model.ServerProcess) model.Snapshot {
	entries := make([]model.Entry, 0, len(current))
	for _, sp := range current {
		entries = append(entries, model.Entry{
			Server:  sp,
			Details: s.details[sp.PID],
		})
	}
	return model.Snapshot{Entries: entries}
}
