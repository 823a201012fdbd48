package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

var (
	createTitle   string
	createContent string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new note",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := apiRequest(http.MethodPost, "/notes", map[string]string{
			"title":   createTitle,
			"content": createContent,
		})
		if err != nil {
			fatal("create note", err)
		}
		if err := printResponse(resp); err != nil {
			fatal("read response", err)
		}
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title (required)")
	createCmd.Flags().StringVar(&createContent, "content", "", "Note content (required)")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("content")
	rootCmd.AddCommand(createCmd)
}
