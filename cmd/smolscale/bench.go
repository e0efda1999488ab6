package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/smolscale/smolscale"
)

var (
	benchInPath    string
	benchWidth     int
	benchHeight    int
	benchPixelType string
	benchIters     int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time repeated scaling of an image",
	Long:  `Repeatedly scales an image and reports throughput, mirroring the original project's benchmark tool.`,
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchInPath, "in", "", "Input image path (required)")
	benchCmd.Flags().IntVar(&benchWidth, "width", 0, "Output width in pixels (required)")
	benchCmd.Flags().IntVar(&benchHeight, "height", 0, "Output height in pixels (required)")
	benchCmd.Flags().StringVar(&benchPixelType, "pixel-type", "rgba8-unassociated", "Packed pixel type to scale through")
	benchCmd.Flags().IntVar(&benchIters, "iters", 50, "Number of scale calls to time")

	benchCmd.MarkFlagRequired("in")
	benchCmd.MarkFlagRequired("width")
	benchCmd.MarkFlagRequired("height")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	pixelType, err := parsePixelType(benchPixelType)
	if err != nil {
		return err
	}

	rgba, widthIn, heightIn, err := decodeImage(benchInPath)
	if err != nil {
		return err
	}

	pixelsIn := make([]byte, widthIn*heightIn*pixelType.BytesPerPixel())
	if err := smolscale.Scale(rgba, smolscale.RGBA8Unassociated, widthIn, heightIn,
		pixelsIn, pixelType, widthIn, heightIn); err != nil {
		return fmt.Errorf("convert input to %s: %w", pixelType, err)
	}

	ctx, err := smolscale.New(pixelType, widthIn, heightIn, pixelType, benchWidth, benchHeight)
	if err != nil {
		return fmt.Errorf("build scale context: %w", err)
	}

	pixelsOut := make([]byte, benchWidth*benchHeight*pixelType.BytesPerPixel())

	slog.Info("starting benchmark", "iters", benchIters, "from", fmt.Sprintf("%dx%d", widthIn, heightIn),
		"to", fmt.Sprintf("%dx%d", benchWidth, benchHeight))

	start := time.Now()
	for i := 0; i < benchIters; i++ {
		if err := ctx.Batch(pixelsIn, pixelsOut, 0, benchHeight, nil); err != nil {
			return fmt.Errorf("scale: %w", err)
		}
	}
	elapsed := time.Since(start)

	perCall := elapsed / time.Duration(benchIters)
	megapixels := float64(benchWidth*benchHeight) / 1e6
	mpxPerSec := megapixels / perCall.Seconds()

	slog.Info("benchmark complete", "elapsed", elapsed, "per_call", perCall, "megapixels_per_sec", mpxPerSec)
	fmt.Printf("%d calls in %v (%v/call, %.1f MPx/s)\n", benchIters, elapsed, perCall, mpxPerSec)

	return nil
}
