/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/cdstream/pkg/builder"
	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/segment"
)

var imageTypes = map[string]uint16{
	".gif":  cd.ImageGIF,
	".jpg":  cd.ImageJPEG,
	".jpeg": cd.ImageJPEG,
	".bmp":  cd.ImageBMP,
	".png":  cd.ImagePNG,
	".svg":  cd.ImageSVG,
}

// loadImage reads an image file. Width and height come from the image
// itself when the format is decodable, zero otherwise.
func loadImage(path string) (builder.Image, error) {
	imageType, ok := imageTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return builder.Image{}, fmt.Errorf("unsupported image type: %s", path)
	}
	data, err := readInput(path)
	if err != nil {
		return builder.Image{}, err
	}

	img := builder.Image{Type: imageType, Data: data}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		img.Width, img.Height = uint16(cfg.Width), uint16(cfg.Height)
	}
	return img, nil
}

// addCSVTable appends a table with one cell per CSV field.
func addCSVTable(b *builder.Builder, path string, text builder.TextOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	opts := builder.TableOptions{}
	if len(rows) <= 0xFF {
		opts.Rows = uint8(len(rows))
	}
	if err := b.BeginTable(opts); err != nil {
		return err
	}
	for i, row := range rows {
		for j, field := range row {
			if err := b.Cell(i, j); err != nil {
				return err
			}
			if err := b.AddText(field, text); err != nil {
				return err
			}
		}
	}
	return b.EndTable()
}

func newBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a composite stream from text, tables, images and files",
		Long: `Build a composite record stream. Parts are written in this order: text
paragraphs, CSV tables, images, then file attachments. Segment sizes and
line splitting come from the codec section of the configuration.

Examples:
  cdtool build --text "Hello" --text "World" -o body.cd
  cdtool build --text "Totals" --csv totals.csv --file report.pdf -o body.cd
  cdtool build --image logo.png --caption "Logo" > body.cd`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			flags := cmd.Flags()
			texts, _ := flags.GetStringArray("text")
			tables, _ := flags.GetStringArray("csv")
			images, _ := flags.GetStringArray("image")
			files, _ := flags.GetStringArray("file")
			caption, _ := flags.GetString("caption")
			out, _ := flags.GetString("out")

			if e.kind != cd.KindComposite {
				return cd.UsageError("build writes composite streams, not %s", e.kind)
			}

			var (
				w io.Writer = cmd.OutOrStdout()
				f *os.File
			)
			if out != "" {
				var err error
				if f, err = os.Create(out); err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				w = f
			}

			b := builder.New(
				builder.WithWriter(w),
				builder.WithLogger(e.log),
				builder.WithCapacity(segment.File, e.cfg.Codec.FileSegmentSize),
				builder.WithCapacity(segment.Image, e.cfg.Codec.ImageSegmentSize),
				builder.WithCapacity(segment.Blob, e.cfg.Codec.BlobSegmentSize),
			)
			text := builder.TextOptions{SplitLines: e.cfg.Codec.SplitLines}

			err := func() error {
				for _, t := range texts {
					if err := b.AddText(t, text); err != nil {
						return err
					}
				}
				for _, path := range tables {
					if err := addCSVTable(b, path, text); err != nil {
						return err
					}
				}
				for _, path := range images {
					img, err := loadImage(path)
					if err != nil {
						return err
					}
					img.Caption = caption
					if err := b.AddImage(img); err != nil {
						return err
					}
				}
				for _, path := range files {
					data, err := readInput(path)
					if err != nil {
						return err
					}
					if err := b.AddFile(filepath.Base(path), data); err != nil {
						return err
					}
				}
				_, err := b.Finalize()
				return err
			}()
			if err != nil {
				b.Discard()
				if f != nil {
					// part of the stream may already be flushed
					_ = f.Close()
					_ = os.Remove(out)
				}
				return err
			}
			if f != nil {
				if err := f.Close(); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
			}

			e.log.WithField("records", b.Records()).WithField("bytes", b.Len()).Info("stream built")
			return nil
		},
	}

	buildCmd.Flags().StringArray("text", nil, "Text to add as paragraphs (repeatable)")
	buildCmd.Flags().StringArray("csv", nil, "CSV file to add as a table (repeatable)")
	buildCmd.Flags().StringArray("image", nil, "Image file to add (repeatable)")
	buildCmd.Flags().String("caption", "", "Caption for the images")
	buildCmd.Flags().StringArray("file", nil, "File to attach (repeatable)")
	buildCmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
	return buildCmd
}
