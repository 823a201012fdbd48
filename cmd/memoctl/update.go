package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

var (
	updateTitle   string
	updateContent string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a note (partial: only the provided flags are changed)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// В тело попадают только явно переданные флаги: отсутствующее поле
		// сервер оставляет без изменений
		body := map[string]string{}
		if cmd.Flags().Changed("title") {
			body["title"] = updateTitle
		}
		if cmd.Flags().Changed("content") {
			body["content"] = updateContent
		}

		resp, err := apiRequest(http.MethodPut, "/notes/"+args[0], body)
		if err != nil {
			fatal("update note", err)
		}
		if err := printResponse(resp); err != nil {
			fatal("read response", err)
		}
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New note title")
	updateCmd.Flags().StringVar(&updateContent, "content", "", "New note content")
	rootCmd.AddCommand(updateCmd)
}
