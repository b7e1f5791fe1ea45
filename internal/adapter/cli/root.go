package cli

import (
	"fmt"

	"vendor_listing/internal/adapter/persistence/repository"
	"vendor_listing/internal/adapter/persistence/session"
	"vendor_listing/internal/domain/wizard"
	"vendor_listing/internal/infrastructure/config"
	"vendor_listing/internal/infrastructure/logging"
	"vendor_listing/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the `wizard` command tree. Profiles are stored as YAML files under
// the configured store directory.
func NewRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "wizard",
		Short:         "Complete a vendor listing profile step by step",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Store.Dir, "store", cfg.Store.Dir, "directory holding profile YAML files")
	root.PersistentFlags().StringVar(&cfg.Logging.Level, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newRunCmd(&cfg), newScoreCmd())
	return root
}

func newRunCmd(cfg *config.Config) *cobra.Command {
	var profileID, seedPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive wizard",
		Example: `  wizard run
  wizard run --profile 6f1c...
  wizard run --seed draft.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := cliLogger(cfg.Logging)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			repo, err := repository.NewProfileFileRepository(cfg.Store.Dir)
			if err != nil {
				return err
			}
			uc := usecase.NewProfileWizardUseCase(repo, session.NewMemoryStore(cfg.Wizard.SessionTTL), logger)

			in := usecase.StartInput{ProfileID: profileID}
			if seedPath != "" {
				seed, err := repository.LoadProfile(seedPath)
				if err != nil {
					return err
				}
				seed.ID = ""
				in.Initial = &seed
			}

			runner, err := NewRunner(uc, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runner.Run(cmd.Context(), in)
		},
	}
	cmd.Flags().StringVar(&profileID, "profile", "", "resume a saved profile by id")
	cmd.Flags().StringVar(&seedPath, "seed", "", "start a new draft from a YAML file")
	cmd.MarkFlagsMutuallyExclusive("profile", "seed")
	return cmd
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <profile.yaml>",
		Short: "Print the completion breakdown of a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := repository.LoadProfile(args[0])
			if err != nil {
				return err
			}
			reg := wizard.DefaultRegistry()
			fmt.Fprintln(cmd.OutOrStdout(), FormatCompletionTable(reg, p))
			fmt.Fprintln(cmd.OutOrStdout(), FormatStepTable(wizard.StepSummaries(reg, p)))
			return nil
		},
	}
}

// cliLogger always uses the console encoder; it writes to stderr, away from the forms.
func cliLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	cfg.Format = "console"
	return logging.New(cfg)
}
