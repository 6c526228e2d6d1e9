package domain

// Task is a to-do item. ID is assigned by the storage layer on creation and
// never changes afterwards.
type Task struct {
	ID        string
	Title     string
	Completed bool
}

// NewTask builds a validated task that has not been stored yet.
func NewTask(title string, completed bool) (*Task, error) {
	t := &Task{Title: title, Completed: completed}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the invariants of a stored task: the title must be
// non-empty.
func (t *Task) Validate() error {
	if t.Title == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	return nil
}
