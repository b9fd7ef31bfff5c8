package main

import (
	"fmt"
	"net/http"
	"os"

	"contenthub/pkg/client"

	"github.com/spf13/cobra"
)

func newManager(resource string) (*client.Manager, *terminalForm) {
	form := &terminalForm{}
	display := &terminalDisplay{assumeYes: assumeYes}
	return client.NewManager(apiURL, resource, http.DefaultClient, form, display), form
}

func newResourceCmd(resource, singular string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   resource,
		Short: fmt.Sprintf("Manage %s entries", singular),
	}
	cmd.AddCommand(
		newListCmd(resource),
		newShowCmd(resource, singular),
		newAddCmd(resource, singular),
		newEditCmd(resource, singular),
		newDeleteCmd(resource, singular),
	)
	return cmd
}

func newShowCmd(resource, singular string) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: fmt.Sprintf("Show a single %s", singular),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mgr, _ := newManager(resource)
			if err := mgr.Show(args[0]); err != nil {
				os.Exit(1)
			}
		},
	}
}

func newListCmd(resource string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %s", resource),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			mgr, _ := newManager(resource)
			if err := mgr.RefreshDisplay(); err != nil {
				os.Exit(1)
			}
		},
	}
}

func newAddCmd(resource, singular string) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Create a new %s", singular),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			mgr, form := newManager(resource)
			form.SetValues(title, content)
			if err := mgr.Add(); err != nil {
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVar(&title, "title", "", fmt.Sprintf("Title of the %s", singular))
	cmd.Flags().StringVar(&content, "content", "", fmt.Sprintf("Content of the %s", singular))
	return cmd
}

func newEditCmd(resource, singular string) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: fmt.Sprintf("Edit an existing %s", singular),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mgr, form := newManager(resource)
			if err := mgr.StartEdit(args[0]); err != nil {
				os.Exit(1)
			}

			// The form now holds the record's current values; overlay only
			// the flags that were set.
			curTitle, curContent := form.Values()
			if cmd.Flags().Changed("title") {
				curTitle = title
			}
			if cmd.Flags().Changed("content") {
				curContent = content
			}
			form.SetValues(curTitle, curContent)

			if err := mgr.SubmitEdit(); err != nil {
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVar(&title, "title", "", fmt.Sprintf("New title for the %s", singular))
	cmd.Flags().StringVar(&content, "content", "", fmt.Sprintf("New content for the %s", singular))
	return cmd
}

func newDeleteCmd(resource, singular string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: fmt.Sprintf("Delete a %s", singular),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mgr, _ := newManager(resource)
			if err := mgr.DeleteEntry(args[0]); err != nil {
				os.Exit(1)
			}
		},
	}
}
