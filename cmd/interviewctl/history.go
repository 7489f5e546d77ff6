package main

import (
	"encoding/json"

	"mockprep/interview/internal/models"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the interview history as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd, true)
			if err != nil {
				return err
			}
			defer e.close()

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")

			id, _ := cmd.Flags().GetUint("id")
			if id != 0 {
				history, err := e.repo.GetHistory(cmd.Context(), id)
				if err != nil {
					return err
				}
				return encoder.Encode(models.InterviewDetailResponse{Interview: *history})
			}

			history, err := e.repo.ListHistory(cmd.Context())
			if err != nil {
				return err
			}
			return encoder.Encode(models.InterviewHistoryResponse{Interviews: history})
		},
	}

	cmd.Flags().Uint("id", 0, "print a single interview")
	return cmd
}
