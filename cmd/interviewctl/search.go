package main

import (
	"fmt"

	"mockprep/interview/internal/search"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Look up public interview questions for a role via Serper",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			company, _ := cmd.Flags().GetString("company")
			title, _ := cmd.Flags().GetString("title")

			client := search.NewSerperClient(e.cfg.Search.APIKey, e.cfg.Search.Endpoint, e.logger)
			snippets := client.SearchQuestions(cmd.Context(), company, title)
			if len(snippets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No results.")
				return nil
			}
			for i, snippet := range snippets {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, snippet)
			}
			return nil
		},
	}

	cmd.Flags().String("company", "", "company name")
	cmd.Flags().String("title", "", "job title")
	cmd.MarkFlagRequired("title")
	return cmd
}
