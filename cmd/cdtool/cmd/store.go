/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/cdstream/pkg/codec"
	"github.com/ssargent/cdstream/pkg/itemstore"
)

func newPutCmd() *cobra.Command {
	putCmd := &cobra.Command{
		Use:   "put <file>",
		Short: "Store a record stream as a new item",
		Long: `Store a record stream in the item store. The stream is decoded first and
rejected if it is malformed. The new item id is printed.

Examples:
  cdtool put body.cd
  cdtool put --kind query --name Selection selection.cd`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				name = filepath.Base(args[0])
			}

			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			stream, err := codec.DecodeAll(data, e.kind)
			if err != nil {
				return fmt.Errorf("invalid record stream: %w", err)
			}

			store, err := e.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.Put(itemstore.Item{Name: name, Kind: e.kind, Data: data})
			if err != nil {
				return err
			}
			e.log.WithField("id", id.String()).WithField("records", len(stream)).Debug("item stored")
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}
	putCmd.Flags().String("name", "", "Item name (default: the file name)")
	return putCmd
}

func newGetCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Write the record stream of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			out, _ := cmd.Flags().GetString("out")

			id, err := itemstore.ParseID(args[0])
			if err != nil {
				return err
			}
			store, err := e.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			item, err := store.Get(id)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(item.Data)
				return err
			}
			if err := os.WriteFile(out, item.Data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			return nil
		},
	}
	getCmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
	return getCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			store, err := e.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			metas, err := store.List()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tSIZE\tCREATED\tNAME")
			for _, m := range metas {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", m.ID, m.Kind, m.Size, m.Created.Format(time.RFC3339), m.Name)
			}
			return w.Flush()
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			id, err := itemstore.ParseID(args[0])
			if err != nil {
				return err
			}
			store, err := e.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return nil
		},
	}
}
