// Command rectpack-demo is a demonstration harness for the growpack rectangle packer: it reads
// a list of rectangle sizes, packs them, and renders each resulting page as a PNG or SVG image.
//
// It is not part of the packing core and exists only to exercise it end-to-end; the core has no
// dependency on this package or any of the libraries it pulls in.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ForeverZer0/growpack"
	"github.com/ForeverZer0/growpack/internal/canvas"
)

type options struct {
	imageFormat string
	imagePrefix string
	maxSize     string
	maxPages    int
	outDir      string
	padding     string
	spacing     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func newRootCmd() *cobra.Command {
	opts := &options{
		imageFormat: "png",
		imagePrefix: "page_",
		maxSize:     fmt.Sprintf("%d", math.MaxInt32),
		maxPages:    9999,
	}

	cmd := &cobra.Command{
		Use:   "rectpack-demo [flags] input-file",
		Short: "Pack a list of rectangles and render the resulting pages",
		Long: "rectpack-demo reads WIDTHxHEIGHT[xCOUNT] rectangle descriptions, one per\n" +
			"line, from a file (or \"-\" for stdin) and writes one PNG or SVG\n" +
			"file per page the packer produces.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0])
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.imageFormat, "image-format", opts.imageFormat, `output format: "png" or "svg"`)
	flags.StringVar(&opts.imagePrefix, "image-prefix", opts.imagePrefix, "prefix for image names")
	flags.StringVar(&opts.maxSize, "max-size", opts.maxSize, "maximum size of one page, as WIDTH[:HEIGHT]")
	flags.IntVar(&opts.maxPages, "max-pages", opts.maxPages, "maximum number of pages to accept")
	flags.StringVar(&opts.outDir, "out-dir", opts.outDir, "output directory")
	flags.StringVar(&opts.padding, "padding", "0", "page padding, as TOP[:BOTTOM:LEFT:RIGHT]")
	flags.StringVar(&opts.spacing, "spacing", "0", "spacing between rectangles, as X[:Y]")

	return cmd
}

func run(opts *options, inFile string) error {
	if opts.imageFormat != "png" && opts.imageFormat != "svg" {
		return fmt.Errorf("unknown -image-format %q: must be \"png\" or \"svg\"", opts.imageFormat)
	}
	if opts.maxPages <= 0 {
		return fmt.Errorf("-max-pages must be > 0")
	}

	maxSize, err := parseGeometryList(opts.maxSize, 2)
	if err != nil {
		return fmt.Errorf("-max-size: %w", err)
	}
	padding, err := parseGeometryList(opts.padding, 4)
	if err != nil {
		return fmt.Errorf("-padding: %w", err)
	}
	spacing, err := parseGeometryList(opts.spacing, 2)
	if err != nil {
		return fmt.Errorf("-spacing: %w", err)
	}

	items, err := readItems(inFile)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		klog.Infof("no items loaded from %s; nothing to do", inFile)
		return nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		return growpack.CompareTallestFirst(items[i].size, items[j].size) < 0
	})

	packer := growpack.New(
		maxSize[0], maxSize[1],
		growpack.Spacing[int]{X: spacing[0], Y: spacing[1]},
		growpack.Padding[int]{Top: padding[0], Bottom: padding[1], Left: padding[2], Right: padding[3]},
	)

	for i := range items {
		result := packer.Insert(items[i].size.W, items[i].size.H)
		if !result.OK() {
			klog.Warningf("can't insert %s rect: %s", items[i].size, result.Status)
			items[i].skipped = true
			continue
		}
		items[i].pos = result.Pos
		items[i].pageIndex = result.PageIndex
	}

	if packer.NumPages() > opts.maxPages {
		return fmt.Errorf("too many pages: %d (limit is %d)", packer.NumPages(), opts.maxPages)
	}

	for i := range items {
		items[i].index = i
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].pageIndex < items[j].pageIndex
	})

	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return fmt.Errorf("can't create output directory %s: %w", opts.outDir, err)
		}
	}

	return renderPages(packer, items, opts)
}

func readItems(inFile string) ([]item, error) {
	if inFile == "-" {
		return loadItems(os.Stdin)
	}

	f, err := os.Open(inFile)
	if err != nil {
		return nil, fmt.Errorf("can't open %s for reading: %w", inFile, err)
	}
	defer f.Close()

	return loadItems(f)
}

func renderPages(packer *growpack.Packer[int], items []item, opts *options) error {
	digits := numDigits(opts.maxPages)

	itemIdx := 0
	for pageIdx := 0; pageIdx < packer.NumPages(); pageIdx++ {
		size := packer.PageSize(pageIdx)
		if size.W == 0 || size.H == 0 {
			continue
		}

		var c canvas.Canvas
		if opts.imageFormat == "svg" {
			c = canvas.NewSVG(size.W, size.H)
		} else {
			c = canvas.NewPNG(size.W, size.H)
		}

		for itemIdx < len(items) && items[itemIdx].pageIndex == pageIdx {
			it := items[itemIdx]
			if !it.skipped {
				c.DrawRect(canvas.Rect{X: it.pos.X, Y: it.pos.Y, W: it.size.W, H: it.size.H, Index: it.index})
			}
			itemIdx++
		}

		name := fmt.Sprintf("%s%0*d%s", opts.imagePrefix, digits, pageIdx, c.FileExtension())
		if err := saveCanvas(c, filepath.Join(opts.outDir, name)); err != nil {
			return err
		}
		klog.Infof("wrote %s (%dx%d)", name, size.W, size.H)
	}

	return nil
}

func saveCanvas(c canvas.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can't open %s for writing: %w", path, err)
	}
	defer f.Close()

	if err := c.Save(f); err != nil {
		return fmt.Errorf("can't write %s: %w", path, err)
	}
	return nil
}

func numDigits(n int) int {
	digits := 1
	for n /= 10; n > 0; n /= 10 {
		digits++
	}
	return digits
}
