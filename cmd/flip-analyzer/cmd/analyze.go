package cmd

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <image>...",
		Short: "Analyze an item from photos",
		Long: "Upload item photos to the API server, run the full identification\n" +
			"and pricing pipeline, and print the resulting analysis.",
		Example: `  # Analyze a pair of sneakers from three photos
  flip-analyzer analyze front.jpg side.jpg sole.jpg

  # Emit the raw analysis as JSON
  flip-analyzer analyze --output json item.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			images, err := loadImages(args)
			if err != nil {
				return err
			}

			c := newClient()
			analysis, err := c.CreateAnalysis(context.Background(), images)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(analysis)
			}

			if err := printAnalysisDetail(analysis); err != nil {
				return err
			}
			if len(analysis.Samples) > 0 {
				fmt.Printf("\nRecent comparable sales:\n\n")
				return printSoldListingsTable(analysis.Samples)
			}
			return nil
		},
	}
	return cmd
}

func loadImages(paths []string) ([]domain.Image, error) {
	images := make([]domain.Image, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec // paths come from CLI args
		if err != nil {
			return nil, fmt.Errorf("reading image %s: %w", path, err)
		}

		mimeType := mime.TypeByExtension(filepath.Ext(path))
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		images = append(images, domain.Image{Data: data, MIMEType: mimeType})
	}
	return images, nil
}
