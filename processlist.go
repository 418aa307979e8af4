package insight

import (
	"sort"
	"sync"
	"time"
)

// Process is a query being performed.
type Process struct {
	ID        string
	Dataset   string
	StartedAt time.Time
}

// ProcessList is a structure that keeps track of all the queries being
// performed.
type ProcessList struct {
	mu    sync.RWMutex
	procs map[string]*Process
}

// NewProcessList creates a new process list.
func NewProcessList() *ProcessList {
	return &ProcessList{
		procs: make(map[string]*Process),
	}
}

// Processes returns a snapshot of the queries being performed, oldest
// first.
func (pl *ProcessList) Processes() []Process {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	var result = make([]Process, 0, len(pl.procs))

	for _, proc := range pl.procs {
		result = append(result, *proc)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartedAt.Before(result[j].StartedAt)
	})
	return result
}

// AddProcess adds the query with the given id to the list.
func (pl *ProcessList) AddProcess(id string) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	pl.procs[id] = &Process{
		ID:        id,
		StartedAt: time.Now(),
	}
}

// SetDataset records the dataset the query with the given id runs over.
// If the process does not exist, it will do nothing.
func (pl *ProcessList) SetDataset(id, dataset string) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	if proc, ok := pl.procs[id]; ok {
		proc.Dataset = dataset
	}
}

// Done removes the finished query with the given id from the process list.
// If the process does not exist, it will do nothing.
func (pl *ProcessList) Done(id string) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	delete(pl.procs, id)
}
