package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := apiRequest(http.MethodGet, "/notes", nil)
		if err != nil {
			fatal("list notes", err)
		}
		if err := printResponse(resp); err != nil {
			fatal("read response", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
