package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/telegram"
)

var rootCmd = &cobra.Command{
	Use:   "attest",
	Short: "Аттестация работников ФССП",
	Long:  "Attest — терминальный клиент сервиса аттестации: тестирование по специализациям с оценкой и историей результатов.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "Base URL of the attestation service (overrides ATTEST_API_URL env var)")
	rootCmd.PersistentFlags().Int64("telegram-id", 0, "Telegram identity for statistics (overrides TELEGRAM_ID env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveAPIURL returns the service base URL using the --api flag (highest
// priority), then ATTEST_API_URL, then the default.
func resolveAPIURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("api"); u != "" {
		return u
	}
	if u := os.Getenv("ATTEST_API_URL"); u != "" {
		return u
	}
	return api.DefaultBaseURL
}

// resolveTelegramID returns the identity from the --telegram-id flag or the
// TELEGRAM_ID env var.
func resolveTelegramID(cmd *cobra.Command) int64 {
	flagValue, _ := cmd.Flags().GetInt64("telegram-id")
	return telegram.Resolve(flagValue)
}
