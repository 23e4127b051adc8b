package main

import (
	"github.com/spf13/cobra"

	"moviemanager/internal/media"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	kind := &kindValue{}

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "moviemanager <directory>",
		Short: "Rename media files to \"Title (Year)\" using an online title lookup",
		Long: "moviemanager looks up every file and directory name in <directory> that has\n" +
			"no release year yet and renames it to \"Title (Year)\". Ambiguous titles are\n" +
			"offered for interactive selection. Existing names are never overwritten.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			selected, err := kind.resolve(cfg.Rename.DefaultKind)
			if err != nil {
				return err
			}
			return runOrganize(cmd, cfg, args[0], selected)
		},
	}

	rootCmd.Flags().VarP(kind, "kind", "k", "Kind of media to match ("+media.KindList()+")")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newKindsCommand())

	return rootCmd
}
