package main

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

// confirmClear is swapped in tests
var confirmClear = func() (bool, error) {
	prompt := promptui.Select{
		Label: "Delete all interviews, questions and scores?",
		Items: []string{PromptNo, PromptYes},
	}
	_, result, err := prompt.Run()
	if err != nil {
		return false, err
	}
	return result == PromptYes, nil
}

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every interview session, question and score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd, true)
			if err != nil {
				return err
			}
			defer e.close()

			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				ok, err := confirmClear()
				if err != nil {
					return fmt.Errorf("confirmation prompt: %w", err)
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted, nothing deleted.")
					return nil
				}
			}

			if err := e.repo.ClearAll(cmd.Context()); err != nil {
				return err
			}

			e.logger.Info("history cleared", zap.String("dsn", e.cfg.Database.DSN))
			fmt.Fprintln(cmd.OutOrStdout(), "All interview history cleared successfully.")
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	return cmd
}
