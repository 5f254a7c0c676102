package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/app"
	"github.com/fssp-tools/attest/internal/telegram"
)

// runApp builds the API client and launches the TUI.
func runApp(cmd *cobra.Command) error {
	client := api.New(resolveAPIURL(cmd))
	telegramID := resolveTelegramID(cmd)

	if !telegram.IsSet(telegramID) {
		fmt.Fprintln(os.Stderr, "Telegram ID не задан: статистика будет недоступна.")
		fmt.Fprintln(os.Stderr, "Укажите --telegram-id или переменную окружения TELEGRAM_ID.")
	}

	return app.Run(app.Options{
		API:        client,
		TelegramID: telegramID,
	})
}
