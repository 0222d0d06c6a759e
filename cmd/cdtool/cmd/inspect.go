/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ssargent/cdstream/pkg/catalog"
	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/codec"
	"github.com/ssargent/cdstream/pkg/richtext"
	"github.com/ssargent/cdstream/pkg/segment"
	"github.com/ssargent/cdstream/pkg/table"
)

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func newDumpCmd() *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "List the records of a stream",
		Long: `List every record of a CD stream with its offset, size, signature and
catalog name. Decoding stops at the first malformed record.

Examples:
  cdtool dump body.cd
  cdtool dump --kind query selection.cd
  cdtool dump --summary body.cd`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			if summary, _ := cmd.Flags().GetBool("summary"); summary {
				s, err := richtext.Summarize(data, e.kind)
				printSummary(cmd, s)
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OFFSET\tSIZE\tSIGNATURE\tNAME")
			d := codec.NewDecoder(data, e.kind)
			for d.Next() {
				rec := d.Record()
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", d.RecordOffset(), d.Offset()-d.RecordOffset(),
					rec.Signature(), catalog.Name(e.kind, rec.Signature()))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			e.log.WithField("records", d.Count()).Debug("stream decoded")
			return d.Err()
		},
	}
	dumpCmd.Flags().Bool("summary", false, "Print record counts instead of the record list")
	return dumpCmd
}

func printSummary(cmd *cobra.Command, s richtext.Summary) {
	fmt.Fprintf(cmd.OutOrStdout(), "kind: %s\nbytes: %d\nrecords: %d\nunknown: %d\ntables: %d\nresources: %d\n",
		s.Kind, s.Bytes, s.Records, s.Unknown, s.Tables, s.Resources)
	for _, name := range s.TopNames() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %d\n", name, s.Names[name])
	}
}

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables <file>",
		Short: "Print the tables of a stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			return richtext.Walk(data, e.kind, table.Funcs{
				OnTableBegin: func(b table.Begin) error {
					fmt.Fprintf(cmd.OutOrStdout(), "table %d\n", b.Index)
					return nil
				},
				OnRow: func(r table.Row) error {
					fmt.Fprintf(cmd.OutOrStdout(), "  row %d\n", r.Index)
					return nil
				},
				OnCell: func(c table.Cell) error {
					text := strings.ReplaceAll(richtext.PlainText(c.Content), "\n", " / ")
					fmt.Fprintf(cmd.OutOrStdout(), "    [%d,%d] %s\n", c.Row, c.Column, text)
					return nil
				},
			})
		},
	}
}

func newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <file>",
		Short: "Print the plain text of a stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			stream, err := richtext.Decode(data, e.kind)
			fmt.Fprintln(cmd.OutOrStdout(), richtext.PlainText(stream))
			return err
		},
	}
}

// resourceFileName names an extracted resource: the stored name for files,
// otherwise its kind and stream index.
func resourceFileName(r segment.Resource) string {
	if name := filepath.Base(r.Name()); r.Name() != "" && name != "." && name != string(filepath.Separator) {
		return name
	}
	ext := ".bin"
	if h, ok := r.Header.(*cd.ImageHeader); ok {
		switch h.ImageType {
		case cd.ImageGIF:
			ext = ".gif"
		case cd.ImageJPEG:
			ext = ".jpg"
		case cd.ImageBMP:
			ext = ".bmp"
		case cd.ImagePNG:
			ext = ".png"
		case cd.ImageSVG:
			ext = ".svg"
		}
	}
	return fmt.Sprintf("%s-%d%s", r.Kind, r.Index, ext)
}

func newResourcesCmd() *cobra.Command {
	resourcesCmd := &cobra.Command{
		Use:   "resources <file>",
		Short: "List or extract the files, images and blobs of a stream",
		Long: `List the resources carried by a stream. With --out, each resource is
reassembled from its segments and written to the directory.

Examples:
  cdtool resources body.cd
  cdtool resources body.cd --out ./attachments`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			out, _ := cmd.Flags().GetString("out")
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			stream, err := richtext.Decode(data, e.kind)
			if err != nil {
				return err
			}
			resources, err := segment.Extract(stream, e.cfg.SegmentKinds()...)
			if err != nil {
				return err
			}

			if out != "" {
				if err := os.MkdirAll(out, 0750); err != nil {
					return fmt.Errorf("failed to create output dir: %w", err)
				}
			}
			for _, r := range resources {
				name := resourceFileName(r)
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %8d bytes  %3d segment(s)  %s\n", r.Kind, len(r.Data), r.Segments, name)
				if out == "" {
					continue
				}
				if err := os.WriteFile(filepath.Join(out, name), r.Data, 0600); err != nil {
					return fmt.Errorf("failed to write %s: %w", name, err)
				}
			}
			return nil
		},
	}
	resourcesCmd.Flags().StringP("out", "o", "", "Directory to extract resources into")
	return resourcesCmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the known record types of an item kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SIGNATURE\tNAME\tFIXED\tTYPED")
			for _, entry := range catalog.Entries(e.kind) {
				fmt.Fprintf(w, "%s\t%s\t%d\t%t\n", entry.Signature, entry.Name, entry.FixedSize, entry.Typed())
			}
			return w.Flush()
		},
	}
}
