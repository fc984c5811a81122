package cmd

import (
	"fmt"
	"os"

	"technopedia-registration/internal/config"
	"technopedia-registration/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "technopedia-registration",
	Short: "TECHNOPEDIA 14 Event Registration System",
	Long: `The registration and payment backend for TECHNOPEDIA 14.
This system provides:
- Fest registration API with duplicate detection
- Game-only registration with combo and early-bird pricing
- Hosted checkout integration with signature verification
- Immutable payment attempt history
- Redis-cached aggregate statistics
Example usage:
  technopedia-registration server --port 8080   # Start the API server
  technopedia-registration migrate up           # Apply database migrations
  technopedia-registration diagnose             # Check backing services`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		if err := logger.InitWithConfig(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
			// Fallback to simple init if config-based init fails
			logger.Init(verbose)
			logger.Warn("Failed to initialize logger with config, using fallback: %v", err)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.technopedia-registration.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	// Local development secrets live in .env; absence is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".technopedia-registration")
	}

	viper.AutomaticEnv()
	viper.BindEnv("payment.key_id", "PAYMENT_KEY_ID")
	viper.BindEnv("payment.key_secret", "PAYMENT_KEY_SECRET")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	config.Init()
}
