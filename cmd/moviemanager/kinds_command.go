package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"moviemanager/internal/media"
)

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "kinds",
		Short:       "List the media kinds accepted by --kind",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, kind := range media.Kinds() {
				fmt.Fprintln(out, kind)
			}
			return nil
		},
	}
}
