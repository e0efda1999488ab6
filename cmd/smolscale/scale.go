package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/smolscale/smolscale"
)

var (
	scaleInPath     string
	scaleOutPath    string
	scaleWidth      int
	scaleHeight     int
	scalePixelType  string
	scaleLinearize  bool
	scaleForceGenic bool
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Resize an image file",
	Long:  `Reads an image, resizes it with smolscale, and writes the result back out.`,
	RunE:  runScale,
}

func init() {
	scaleCmd.Flags().StringVar(&scaleInPath, "in", "", "Input image path (required)")
	scaleCmd.Flags().StringVar(&scaleOutPath, "out", "", "Output image path (required)")
	scaleCmd.Flags().IntVar(&scaleWidth, "width", 0, "Output width in pixels (required)")
	scaleCmd.Flags().IntVar(&scaleHeight, "height", 0, "Output height in pixels (required)")
	scaleCmd.Flags().StringVar(&scalePixelType, "pixel-type", "rgba8-unassociated", "Packed pixel type to scale through")
	scaleCmd.Flags().BoolVar(&scaleLinearize, "linearize", false, "Blend in linear light instead of sRGB gamma space")
	scaleCmd.Flags().BoolVar(&scaleForceGenic, "force-generic", false, "Disable SIMD-capable implementation selection")

	scaleCmd.MarkFlagRequired("in")
	scaleCmd.MarkFlagRequired("out")
	scaleCmd.MarkFlagRequired("width")
	scaleCmd.MarkFlagRequired("height")

	rootCmd.AddCommand(scaleCmd)
}

func runScale(cmd *cobra.Command, args []string) error {
	if scaleWidth < 1 || scaleHeight < 1 {
		return fmt.Errorf("width and height must both be at least 1")
	}

	pixelType, err := parsePixelType(scalePixelType)
	if err != nil {
		return err
	}

	start := time.Now()
	rgba, widthIn, heightIn, err := decodeImage(scaleInPath)
	if err != nil {
		return err
	}
	slog.Info("decoded input", "path", scaleInPath, "width", widthIn, "height", heightIn)

	pixelsIn := make([]byte, widthIn*heightIn*pixelType.BytesPerPixel())
	if err := smolscale.Scale(rgba, smolscale.RGBA8Unassociated, widthIn, heightIn,
		pixelsIn, pixelType, widthIn, heightIn); err != nil {
		return fmt.Errorf("convert input to %s: %w", pixelType, err)
	}

	var flags smolscale.Flags
	if scaleLinearize {
		flags |= smolscale.LinearizeSRGB
	}
	if scaleForceGenic {
		flags |= smolscale.ForceGeneric
	}

	ctx, err := smolscale.NewFull(pixelType, widthIn, heightIn, widthIn*pixelType.BytesPerPixel(),
		pixelType, scaleWidth, scaleHeight, scaleWidth*pixelType.BytesPerPixel(), flags)
	if err != nil {
		return fmt.Errorf("build scale context: %w", err)
	}

	pixelsOut := make([]byte, scaleWidth*scaleHeight*pixelType.BytesPerPixel())
	if err := ctx.Batch(pixelsIn, pixelsOut, 0, scaleHeight, nil); err != nil {
		return fmt.Errorf("scale: %w", err)
	}

	rgbaOut := make([]byte, scaleWidth*scaleHeight*4)
	if err := smolscale.Scale(pixelsOut, pixelType, scaleWidth, scaleHeight,
		rgbaOut, smolscale.RGBA8Unassociated, scaleWidth, scaleHeight); err != nil {
		return fmt.Errorf("convert output from %s: %w", pixelType, err)
	}

	if err := encodeImage(scaleOutPath, rgbaOut, scaleWidth, scaleHeight); err != nil {
		return err
	}

	elapsed := time.Since(start)
	slog.Info("scale complete",
		"in", scaleInPath, "out", scaleOutPath,
		"from", fmt.Sprintf("%dx%d", widthIn, heightIn),
		"to", fmt.Sprintf("%dx%d", scaleWidth, scaleHeight),
		"pixel_type", pixelType.String(),
		"linearize", scaleLinearize,
		"elapsed", elapsed,
	)
	fmt.Printf("Wrote %s (%dx%d -> %dx%d, %s)\n", scaleOutPath, widthIn, heightIn, scaleWidth, scaleHeight, elapsed)

	return nil
}
