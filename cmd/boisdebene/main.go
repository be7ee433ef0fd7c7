package main

import (
	"os"

	"github.com/spf13/cobra"

	"boisdebene/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "boisdebene",
		Short: "Bois d'Ébène - restaurant-cabaret website",
		Long:  `Bilingual web server for the Bois d'Ébène restaurant-cabaret: informational pages and reservation requests by email.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
