package cli

import (
	"github.com/spf13/cobra"
)

var cfgFile string

// Execute arma el árbol de comandos y lo corre.
func Execute(version, commit, date string) error {
	return newRootCmd(version, commit, date).Execute()
}

func newRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vetclinic",
		Short: "Backend de la clínica veterinaria (dueños, animales, citas)",
		Long: `vetclinic expone una API HTTP/JSON para dueños, animales y citas.

Storage en memoria por defecto; con storage.dsn usa Postgres o SQLite.
Configuración: vetclinic.yaml (., $HOME/.vetclinic o --config) y variables VETCLINIC_*.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./vetclinic.yaml)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHealthcheckCmd())
	cmd.AddCommand(newVersionCmd(version, commit, date))

	return cmd
}
