package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/kview-dev/kview/internal/config"
	"github.com/kview-dev/kview/pkg/export"
	"github.com/kview-dev/kview/showcase"
)

func exportCmd(load func() (*config.Config, error)) *cobra.Command {
	var (
		out    string
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the showcase to a static page",
		Long: `Render the showcase application once and publish index.html.

The page has no client script and no node ids. It is written to the
export directory, or uploaded to S3 when a bucket is configured.

Examples:
  kview export
  kview export --out=public
  kview export --bucket=my-site --prefix=releases/v1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if out != "" {
				cfg.Export.Dir = out
			}
			if bucket != "" {
				cfg.Export.Bucket = bucket
			}
			if prefix != "" {
				cfg.Export.Prefix = prefix
			}
			if region != "" {
				cfg.Export.Region = region
			}
			return runExport(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (default from kview.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Upload to this S3 bucket instead of a directory")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from the AWS configuration)")

	return cmd
}

func runExport(ctx context.Context, cfg *config.Config) error {
	pub, err := publisher(ctx, cfg)
	if err != nil {
		return err
	}

	res, err := export.Export(ctx, showcase.App, pub, export.Options{
		Title:  exportTitle(cfg),
		Logger: cfg.Logger(os.Stderr),
	})
	if err != nil {
		return err
	}

	success("Exported %d file(s) to %s", len(res.Files), pub)
	info("%d bytes, export %s", res.Bytes, res.ID)
	return nil
}

// publisher selects S3 when a bucket is configured, else the export
// directory.
func publisher(ctx context.Context, cfg *config.Config) (export.Publisher, error) {
	if cfg.Export.Bucket != "" {
		return export.NewS3PublisherFromEnv(ctx, cfg.Export.Region, cfg.Export.Bucket, cfg.Export.Prefix)
	}
	return export.NewDirPublisher(cfg.ExportPath()), nil
}

func exportTitle(cfg *config.Config) string {
	if title := cfg.Title(); title != "" {
		return title
	}
	return "kview"
}
