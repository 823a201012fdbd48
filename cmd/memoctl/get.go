package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a note by its ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := apiRequest(http.MethodGet, "/notes/"+args[0], nil)
		if err != nil {
			fatal("get note", err)
		}
		if err := printResponse(resp); err != nil {
			fatal("read response", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
