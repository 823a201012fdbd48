package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note by its ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := apiRequest(http.MethodDelete, "/notes/"+args[0], nil)
		if err != nil {
			fatal("delete note", err)
		}
		if err := printResponse(resp); err != nil {
			fatal("read response", err)
		}
		if resp.StatusCode == http.StatusNoContent {
			fmt.Println("deleted")
		}
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
