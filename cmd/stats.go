package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/telegram"

	"github.com/pkg/errors"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Показать статистику тестирований без запуска интерфейса",
	RunE: func(cmd *cobra.Command, args []string) error {
		telegramID := resolveTelegramID(cmd)
		if !telegram.IsSet(telegramID) {
			return errors.New("не задан Telegram ID: укажите --telegram-id или TELEGRAM_ID")
		}

		client := api.New(resolveAPIURL(cmd))

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		stats, err := client.Stats(ctx, telegramID)
		if err != nil {
			return err
		}

		if stats.TotalTests == 0 {
			fmt.Println("Тестирования ещё не проводились.")
			return nil
		}

		fmt.Printf("Пройдено тестов:    %d\n", stats.TotalTests)
		fmt.Printf("Средний результат:  %.1f%%\n", stats.AvgPercentage)
		fmt.Printf("Лучший результат:   %.1f%%\n", stats.BestPercentage)
		fmt.Println()
		fmt.Printf("отлично:             %d\n", stats.Grades.Excellent)
		fmt.Printf("хорошо:              %d\n", stats.Grades.Good)
		fmt.Printf("удовлетворительно:   %d\n", stats.Grades.Satisfactory)
		fmt.Printf("неудовлетворительно: %d\n", stats.Grades.Fail)

		if len(stats.RecentResults) > 0 {
			fmt.Println("\nПоследние тестирования:")
			for _, r := range stats.RecentResults {
				fmt.Printf("  %s  %-30s %-12s %s (%.0f%%)\n",
					r.Date, r.Specialization, r.Difficulty, r.Grade, r.Percentage)
			}
		}

		return nil
	},
}
