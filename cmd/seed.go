package cmd

import (
	"github.com/Mareeswari-2005/Sara-The-road-assist/services/mechanic"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample mechanics when the collection is empty",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := bootstrap(cmd.Context(), configDir)
		defer a.close()

		result, err := mechanic.NewMechanicService(a.repo, a.logger).Seed(cmd.Context())
		if err != nil {
			a.logger.Error("seed failed", zap.Error(err))
			return err
		}
		if !result.Seeded {
			a.logger.Info("nothing seeded", zap.String("reason", result.Message))
			return nil
		}
		a.logger.Info("seeded sample mechanics", zap.Int("count", result.Count))
		return nil
	},
}
