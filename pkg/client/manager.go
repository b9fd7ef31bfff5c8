// Package client drives the content API on behalf of a view: it issues the
// HTTP calls, tracks which record is currently being edited, and tells the
// view when to re-render.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when the server reports 404 for an identifier,
	// so callers can tell an absent record from other failures.
	ErrNotFound = errors.New("entry not found")
	// ErrNoPendingEdit is returned by SubmitEdit when no edit was started.
	ErrNoPendingEdit = errors.New("no entry is being edited")
)

// Item is the wire shape shared by both resource types; the blog-only fields
// stay empty for articles.
type Item struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	Category  string     `json:"category,omitempty"`
	Author    string     `json:"author,omitempty"`
}

// Manager is the client-side resource manager for one resource type. At most
// one record is being edited at a time; starting a new edit replaces the
// prior pending identifier.
type Manager struct {
	baseURL  string
	resource string
	http     *http.Client
	form     Form
	display  Display

	pendingEdit string
}

func NewManager(baseURL, resource string, httpClient *http.Client, form Form, display Display) *Manager {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Manager{
		baseURL:  strings.TrimRight(baseURL, "/"),
		resource: resource,
		http:     httpClient,
		form:     form,
		display:  display,
	}
}

// PendingEdit returns the identifier of the record currently being edited,
// or "" when the form is in add mode.
func (m *Manager) PendingEdit() string { return m.pendingEdit }

func (m *Manager) collectionURL() string { return m.baseURL + "/" + m.resource }

func (m *Manager) entryURL(id string) string { return m.collectionURL() + "/" + id }

// Add creates a record from the current form values. On success the form is
// cleared and the display refreshed; on failure the error is surfaced and the
// form left untouched.
func (m *Manager) Add() error {
	title, content := m.form.Values()
	body, _ := json.Marshal(map[string]string{"title": title, "content": content})

	resp, err := m.http.Post(m.collectionURL(), "application/json", bytes.NewReader(body))
	if err != nil {
		m.display.ShowError(fmt.Sprintf("Failed to add %s entry: %v", m.resource, err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg := apiMessage(resp)
		m.display.ShowError(fmt.Sprintf("Failed to add %s entry: %s", m.resource, msg))
		return errors.New(msg)
	}

	var created Item
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil || created.ID == "" {
		m.display.ShowError("Created entry is missing an identifier")
		return errors.New("created entry is missing an identifier")
	}

	m.form.Clear()
	return m.RefreshDisplay()
}

// RefreshDisplay fetches the full collection and re-renders it, showing the
// empty state when there is nothing to list.
func (m *Manager) RefreshDisplay() error {
	resp, err := m.http.Get(m.collectionURL())
	if err != nil {
		m.display.ShowError(fmt.Sprintf("Failed to load %s: %v", m.resource, err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg := apiMessage(resp)
		m.display.ShowError(fmt.Sprintf("Failed to load %s: %s", m.resource, msg))
		return errors.New(msg)
	}

	var items []Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		m.display.ShowError(fmt.Sprintf("Failed to decode %s: %v", m.resource, err))
		return err
	}

	if len(items) == 0 {
		m.display.RenderEmpty()
		return nil
	}
	m.display.RenderList(items)
	return nil
}

// fetchEntry loads one record by identifier, surfacing a distinct message
// when it no longer exists.
func (m *Manager) fetchEntry(id string) (*Item, error) {
	resp, err := m.http.Get(m.entryURL(id))
	if err != nil {
		m.display.ShowError(fmt.Sprintf("Failed to load %s entry: %v", m.resource, err))
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		m.display.ShowError(fmt.Sprintf("The %s entry no longer exists", m.resource))
		return nil, ErrNotFound
	default:
		msg := apiMessage(resp)
		m.display.ShowError(fmt.Sprintf("Failed to load %s entry: %s", m.resource, msg))
		return nil, errors.New(msg)
	}

	var item Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		m.display.ShowError(fmt.Sprintf("Failed to decode %s entry: %v", m.resource, err))
		return nil, err
	}
	return &item, nil
}

// Show fetches a single record and renders it, leaving the form and any
// pending edit alone.
func (m *Manager) Show(id string) error {
	item, err := m.fetchEntry(id)
	if err != nil {
		return err
	}
	m.display.RenderList([]Item{*item})
	return nil
}

// StartEdit fetches one record, loads it into the form, and switches the form
// to edit mode. The identifier is retained as the pending edit, replacing any
// edit already in progress.
func (m *Manager) StartEdit(id string) error {
	item, err := m.fetchEntry(id)
	if err != nil {
		return err
	}

	m.form.SetValues(item.Title, item.Content)
	m.form.SetEditMode(true)
	m.pendingEdit = id
	return nil
}

// SubmitEdit sends the current form values as an update of the pending-edit
// record, then clears the form, restores add mode, and refreshes. On failure
// nothing is cleared, so the edit can be retried.
func (m *Manager) SubmitEdit() error {
	if m.pendingEdit == "" {
		m.display.ShowError("No entry is being edited")
		return ErrNoPendingEdit
	}

	title, content := m.form.Values()
	body, _ := json.Marshal(map[string]string{"title": title, "content": content})

	req, err := http.NewRequest(http.MethodPut, m.entryURL(m.pendingEdit), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		m.display.ShowError(fmt.Sprintf("Failed to update %s entry: %v", m.resource, err))
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		m.display.ShowError(fmt.Sprintf("The %s entry no longer exists", m.resource))
		return ErrNotFound
	default:
		msg := apiMessage(resp)
		m.display.ShowError(fmt.Sprintf("Failed to update %s entry: %s", m.resource, msg))
		return errors.New(msg)
	}

	m.form.Clear()
	m.form.SetEditMode(false)
	m.pendingEdit = ""
	return m.RefreshDisplay()
}

// DeleteEntry asks for confirmation, deletes the record, and refreshes. A
// declined confirmation is not an error.
func (m *Manager) DeleteEntry(id string) error {
	if !m.display.Confirm(fmt.Sprintf("Delete this %s entry?", m.resource)) {
		return nil
	}

	req, err := http.NewRequest(http.MethodDelete, m.entryURL(id), nil)
	if err != nil {
		return err
	}

	resp, err := m.http.Do(req)
	if err != nil {
		m.display.ShowError(fmt.Sprintf("Failed to delete %s entry: %v", m.resource, err))
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		m.display.ShowError(fmt.Sprintf("The %s entry no longer exists", m.resource))
		return ErrNotFound
	default:
		msg := apiMessage(resp)
		m.display.ShowError(fmt.Sprintf("Failed to delete %s entry: %s", m.resource, msg))
		return errors.New(msg)
	}

	return m.RefreshDisplay()
}

// apiMessage pulls the {"message": ...} body off an error response, falling
// back to the HTTP status text.
func apiMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return resp.Status
}
