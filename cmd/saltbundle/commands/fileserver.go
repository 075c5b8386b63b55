package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newEnvsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "List the served environments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.Fileserver().Envs(cmd.Context()))
		},
	}
}

func (c *CLI) newFindCmd() *cobra.Command {
	var saltenv string
	cmd := &cobra.Command{
		Use:   "find <path>",
		Short: "Resolve a virtual path to its file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc := c.app.Fileserver().FindFile(cmd.Context(), c.opts, args[0], saltenv)
			return writeJSON(cmd.OutOrStdout(), desc.Map())
		},
	}
	cmd.Flags().StringVar(&saltenv, "saltenv", domain.BaseEnvironment, "Environment to search")
	return cmd
}

func (c *CLI) newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List every file of every formula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.Fileserver().FileList(cmd.Context(), c.opts))
		},
	}
}

func (c *CLI) newDirsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "List every directory of every formula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.Fileserver().DirList(cmd.Context(), c.opts))
		},
	}
}

func (c *CLI) newHashCmd() *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "hash <path>",
		Short: "Digest the file at a virtual path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := c.app.Fileserver().FileHash(cmd.Context(), c.opts, args[0], algorithm)
			return writeJSON(cmd.OutOrStdout(), sum.Map())
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Digest to use instead of the host default")
	return cmd
}

func (c *CLI) newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print the file at a virtual path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := c.app.Fileserver()
			if !fs.FindFile(cmd.Context(), c.opts, args[0], domain.BaseEnvironment).Found() {
				return zerr.With(zerr.Wrap(domain.ErrEntryNotFound, "nothing to print"), "path", args[0])
			}
			_, err := cmd.OutOrStdout().Write(fs.ServeFile(cmd.Context(), c.opts, args[0]))
			return err
		},
	}
}

func (c *CLI) newRootsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "List the formula roots to add to the file roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.Fileserver().FileRoots(cmd.Context(), c.opts))
		},
	}
}

func (c *CLI) newPillarCmd() *cobra.Command {
	var existing string
	cmd := &cobra.Command{
		Use:   "pillar <minion-id>",
		Short: "Print the external pillar for a minion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pillar map[string]any
			if existing != "" {
				if err := json.Unmarshal([]byte(existing), &pillar); err != nil {
					return zerr.Wrap(err, "invalid --pillar")
				}
			}
			return writeJSON(cmd.OutOrStdout(), c.app.Fileserver().ExtPillar(cmd.Context(), c.opts, args[0], pillar))
		},
	}
	cmd.Flags().StringVar(&existing, "pillar", "", "The minion's current pillar as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}
