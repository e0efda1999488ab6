package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/smolscale/smolscale"
)

var (
	verifyInPath    string
	verifyWidth     int
	verifyHeight    int
	verifyPixelType string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check scaling invariants against an image",
	Long: `Runs a scale twice and checks it's deterministic, and runs a same-size
scale and checks it's byte-identical to the source, mirroring the original
project's verify tool.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyInPath, "in", "", "Input image path (required)")
	verifyCmd.Flags().IntVar(&verifyWidth, "width", 0, "Output width in pixels (required)")
	verifyCmd.Flags().IntVar(&verifyHeight, "height", 0, "Output height in pixels (required)")
	verifyCmd.Flags().StringVar(&verifyPixelType, "pixel-type", "rgba8-unassociated", "Packed pixel type to scale through")

	verifyCmd.MarkFlagRequired("in")
	verifyCmd.MarkFlagRequired("width")
	verifyCmd.MarkFlagRequired("height")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	pixelType, err := parsePixelType(verifyPixelType)
	if err != nil {
		return err
	}

	rgba, widthIn, heightIn, err := decodeImage(verifyInPath)
	if err != nil {
		return err
	}

	pixelsIn := make([]byte, widthIn*heightIn*pixelType.BytesPerPixel())
	if err := smolscale.Scale(rgba, smolscale.RGBA8Unassociated, widthIn, heightIn,
		pixelsIn, pixelType, widthIn, heightIn); err != nil {
		return fmt.Errorf("convert input to %s: %w", pixelType, err)
	}

	if err := verifyDeterminism(pixelsIn, pixelType, widthIn, heightIn); err != nil {
		return err
	}
	if err := verifyCopyPath(pixelsIn, pixelType, widthIn, heightIn); err != nil {
		return err
	}

	fmt.Println("OK: determinism and copy-path invariants hold")
	return nil
}

// verifyDeterminism checks that scaling the same input to the same output
// dimensions twice produces byte-identical output, the determinism
// invariant a pure function over immutable state must satisfy.
func verifyDeterminism(pixelsIn []byte, pixelType smolscale.PixelType, widthIn, heightIn int) error {
	out1 := make([]byte, verifyWidth*verifyHeight*pixelType.BytesPerPixel())
	out2 := make([]byte, verifyWidth*verifyHeight*pixelType.BytesPerPixel())

	if err := smolscale.Scale(pixelsIn, pixelType, widthIn, heightIn, out1, pixelType, verifyWidth, verifyHeight); err != nil {
		return fmt.Errorf("first scale: %w", err)
	}
	if err := smolscale.Scale(pixelsIn, pixelType, widthIn, heightIn, out2, pixelType, verifyWidth, verifyHeight); err != nil {
		return fmt.Errorf("second scale: %w", err)
	}

	if !bytes.Equal(out1, out2) {
		return fmt.Errorf("determinism check failed: two identical scale calls produced different output")
	}
	slog.Info("determinism check passed")
	return nil
}

// verifyCopyPath checks that scaling to the source's own dimensions is a
// byte-exact copy, since a same-size scale with no edge feathering takes
// the direct repack path, which copies rows unchanged when the pixel types
// match.
func verifyCopyPath(pixelsIn []byte, pixelType smolscale.PixelType, widthIn, heightIn int) error {
	out := make([]byte, widthIn*heightIn*pixelType.BytesPerPixel())
	if err := smolscale.Scale(pixelsIn, pixelType, widthIn, heightIn, out, pixelType, widthIn, heightIn); err != nil {
		return fmt.Errorf("copy-path scale: %w", err)
	}
	if !bytes.Equal(pixelsIn, out) {
		return fmt.Errorf("copy-path check failed: same-size scale is not byte-identical to source")
	}
	slog.Info("copy-path check passed")
	return nil
}
