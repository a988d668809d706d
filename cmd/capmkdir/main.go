// Package main provides capmkdir, a mkdir that only creates directories
// beneath an explicitly opened root.
package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/boostgo/capfs"
	"github.com/spf13/cobra"
)

type options struct {
	root    string
	parents bool
	mode    string
	verbose bool
}

func createRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "capmkdir [--root <dir>] [-p] [-m <mode>] <path>...",
		Short: "Create directories beneath a directory capability",
		Long: `Create directories relative to --root without ever resolving a path outside of it.

Paths are relative to the root. Absolute paths and paths that escape the root
through ".." or symlinks are rejected.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := capfs.NewDirBuilder().SetRecursive(opts.parents)
			if opts.mode != "" {
				mode, err := strconv.ParseUint(opts.mode, 8, 32)
				if err != nil {
					return fmt.Errorf("invalid mode %q: %w", opts.mode, err)
				}
				if err := applyMode(builder, uint32(mode)); err != nil {
					return err
				}
			}

			dir, err := capfs.OpenDir(opts.root)
			if err != nil {
				return err
			}
			defer dir.Close()

			for _, path := range args {
				if err := dir.CreateDirWith(path, builder); err != nil {
					return err
				}
				if opts.verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "capmkdir: created directory '%s'\n", path)
				}
			}

			return nil
		},
	}

	rootCmd.Flags().StringVarP(&opts.root, "root", "r", ".", "Directory all paths are created beneath")
	rootCmd.Flags().BoolVarP(&opts.parents, "parents", "p", false, "Create missing parent directories, no error if existing")
	rootCmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Octal permission bits for created directories")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print a message for each created directory")

	return rootCmd
}

func main() {
	if err := createRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
