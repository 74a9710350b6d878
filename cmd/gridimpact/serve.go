package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridimpact-org/gridimpact/server"
)

// EnvAddr names the environment variable overriding the listen address.
const EnvAddr = "GRIDIMPACT_ADDR"

func newServeCmd() *cobra.Command {
	var addr string
	var factorsPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the impact calculator HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = os.Getenv(EnvAddr)
			}
			if addr == "" {
				addr = ":8080"
			}

			set, err := loadFactorSet(factorsPath)
			if err != nil {
				return err
			}

			router := server.NewRouter(server.NewHandlers(server.NewStore(), set))
			log.Printf("🚀 gridimpact: serving on %s", addr)
			return router.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: $GRIDIMPACT_ADDR or :8080)")
	cmd.Flags().StringVar(&factorsPath, "factors", "", "Factor set YAML (default: $GRIDIMPACT_FACTORS or built-in)")
	return cmd
}
