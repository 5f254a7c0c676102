package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fssp-tools/attest/internal/selfupdate"

	"github.com/pkg/errors"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Проверить наличие новой версии",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(30 * time.Second))

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, version)
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Проверка обновлений недоступна для сборки разработчика.")
			return nil
		}
		if err != nil {
			return err
		}

		if !result.UpdateAvailable {
			fmt.Println("Установлена последняя версия:", result.CurrentVersion)
			return nil
		}

		fmt.Printf("Доступна новая версия: %s (установлена %s)\n", result.LatestVersion, result.CurrentVersion)
		return nil
	},
}
