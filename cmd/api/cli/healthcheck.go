package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vet-clinic/internal/platform/httpclient"
)

// healthcheck sirve como HEALTHCHECK de contenedor: exit != 0 si no está listo.
func newHealthcheckCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Check /health and /ready of a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := httpclient.New(baseURL, timeout)
			if err != nil {
				return err
			}
			st, err := c.Health(cmd.Context())
			if err != nil {
				if httpclient.IsNotFound(err) {
					return fmt.Errorf("%s does not expose /health or /ready (not a vetclinic server?): %w", c.BaseURL, err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.BaseURL, st.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "request timeout")

	return cmd
}
