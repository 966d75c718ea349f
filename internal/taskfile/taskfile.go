package taskfile

import (
	"encoding/json"
	"fmt"
	"os"
)

// Task represents a single record in the task store.
type Task struct {
	ID                 int    `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	AcceptanceCriteria string `json:"acceptanceCriteria,omitempty"`
	Passes             bool   `json:"passes,omitempty"`
}

// File represents the task store structure.
type File struct {
	Tasks []Task `json:"tasks"`
}

// Counts summarizes completion status across a store.
type Counts struct {
	Total     int
	Passing   int
	Remaining int
}

// Load reads and parses a task store from path.
// A document without a tasks field is rejected; an empty tasks array is a
// valid empty store.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if f.Tasks == nil {
		return nil, fmt.Errorf("parse task file: missing tasks field")
	}

	return &f, nil
}

// GetTask returns the first task with the given id in store order,
// or nil if not found. Duplicate ids are tolerated; first match wins.
func (f *File) GetTask(id int) *Task {
	for i := range f.Tasks {
		if f.Tasks[i].ID == id {
			return &f.Tasks[i]
		}
	}
	return nil
}

// Passing returns the tasks whose passes flag is set, in store order.
func (f *File) Passing() []Task {
	var passing []Task
	for _, t := range f.Tasks {
		if t.Passes {
			passing = append(passing, t)
		}
	}
	return passing
}

// Remaining returns the tasks whose passes flag is unset or false,
// in store order.
func (f *File) Remaining() []Task {
	var remaining []Task
	for _, t := range f.Tasks {
		if !t.Passes {
			remaining = append(remaining, t)
		}
	}
	return remaining
}

// NextRemaining returns the first not-passing task in store order,
// or nil if every task passes.
func (f *File) NextRemaining() *Task {
	for i := range f.Tasks {
		if !f.Tasks[i].Passes {
			return &f.Tasks[i]
		}
	}
	return nil
}

// Count returns completion counts for the store. The counts always satisfy
// Total == Passing + Remaining.
func (f *File) Count() Counts {
	c := Counts{Total: len(f.Tasks)}
	for _, t := range f.Tasks {
		if t.Passes {
			c.Passing++
		} else {
			c.Remaining++
		}
	}
	return c
}
