package client

// Form is the input surface a Manager reads from and writes to: the current
// title/content fields plus the add-vs-edit mode toggle.
type Form interface {
	Values() (title, content string)
	SetValues(title, content string)
	Clear()
	SetEditMode(editing bool)
}

// Display renders collection state and surfaces errors and confirmations to
// the user.
type Display interface {
	RenderList(items []Item)
	RenderEmpty()
	ShowError(message string)
	Confirm(prompt string) bool
}
