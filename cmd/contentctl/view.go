package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"contenthub/pkg/client"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// terminalForm holds the field values a command is about to send. Commands
// seed it from flags; StartEdit seeds it from the server.
type terminalForm struct {
	title   string
	content string
	editing bool
}

func (f *terminalForm) Values() (string, string) { return f.title, f.content }

func (f *terminalForm) SetValues(title, content string) {
	f.title = title
	f.content = content
}

func (f *terminalForm) Clear() {
	f.title = ""
	f.content = ""
}

func (f *terminalForm) SetEditMode(editing bool) { f.editing = editing }

type terminalDisplay struct {
	assumeYes bool
}

func (d *terminalDisplay) RenderList(items []client.Item) {
	for _, item := range items {
		fmt.Println(titleStyle.Render(item.Title) + " " + idStyle.Render("["+item.ID+"]"))
		if item.Author != "" || item.Category != "" {
			meta := item.Author + " · " + item.Category
			if item.CreatedAt != nil {
				meta += " · " + item.CreatedAt.Format("2006-01-02 15:04")
			}
			fmt.Println(metaStyle.Render(meta))
		}
		fmt.Println(item.Content)
		fmt.Println()
	}
}

func (d *terminalDisplay) RenderEmpty() {
	fmt.Println(metaStyle.Render("No entries available"))
}

func (d *terminalDisplay) ShowError(message string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+message))
}

func (d *terminalDisplay) Confirm(prompt string) bool {
	if d.assumeYes {
		return true
	}
	fmt.Print(prompt + " [y/N]: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
