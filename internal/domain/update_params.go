package domain

// Validate checks the creation input. It returns the validated title and completion flag.
func (p CreateTodoParams) Validate() (Title, bool, error) {
	if p.Title == nil {
		return Title{}, false, ErrTitleRequired
	}

	title, err := NewTitle(*p.Title)
	if err != nil {
		return Title{}, false, err
	}

	completed := false
	if p.Completed != nil {
		completed = *p.Completed
	}

	return title, completed, nil
}

// IsEmpty reports whether the update carries no fields.
func (p UpdateTodoParams) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}

// Validate checks that at least one field is present and that a present title is valid.
func (p *UpdateTodoParams) Validate() error {
	if p.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if p.Title != nil {
		if _, err := NewTitle(*p.Title); err != nil {
			return err
		}
	}

	return nil
}
