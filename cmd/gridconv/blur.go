package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gridconv/gridconv/conv"
	"github.com/gridconv/gridconv/grid"
	"github.com/gridconv/gridconv/imaging"
	"github.com/gridconv/gridconv/kernel"
	"github.com/gridconv/gridconv/pixel"
)

type filterKind string

const (
	filterGaussian filterKind = "gaussian"
	filterBox      filterKind = "box"
)

func (f *filterKind) String() string {
	return string(*f)
}

func (f *filterKind) Set(s string) error {
	switch filterKind(s) {
	case filterGaussian, filterBox:
		*f = filterKind(s)
	default:
		return fmt.Errorf("%s is not a valid filter", s)
	}
	return nil
}

type blurArgs struct {
	commonArgs
	size   int
	sigma  float64
	filter filterKind
}

func createBlurCommand() *command {

	args := blurArgs{
		commonArgs: commonArgs{
			ext:    ".png",
			suffix: "_blur",
		},
		size:   9,
		sigma:  2,
		filter: filterGaussian,
	}

	flags := flag.NewFlagSet("blur", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)
	flags.IntVar(&args.size, "size", args.size, "the kernel size in pixels")
	flags.IntVar(&args.size, "s", args.size, "shorthand for size")
	flags.Float64Var(&args.sigma, "sigma", args.sigma, "the gaussian standard deviation")
	flags.Var(&args.filter, "filter", "the blur filter; gaussian or box")

	return &command{
		Name: "blur",
		Help: "blur images with a gaussian or box kernel",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 || args.size < 1 || args.sigma <= 0 {
				printCommandUsage(self, " file-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runBlur(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func runBlur(args blurArgs, inputFiles []string) {
	g := new(errgroup.Group)
	g.SetLimit(args.jobs)

	var success atomic.Int64
	start := time.Now()
	for i, p := range inputFiles {
		g.Go(func() error {
			if !cargs.quiet {
				fmt.Printf("Processing file %d/%d %q ...\n", i+1, len(inputFiles), filepath.ToSlash(filepath.Clean(p)))
			}
			if err := blurFile(args, p); !softerr(err) {
				success.Add(1)
			}
			return nil
		})
	}
	harderr(g.Wait())

	if !cargs.quiet {
		took := float32(time.Since(start).Milliseconds()) / 1000
		fmt.Printf("Blurred %d/%d files in %.3f seconds\n", success.Load(), len(inputFiles), took)
	}
}

func blurFile(args blurArgs, path string) error {
	img, err := decodeImage(path)
	if err != nil {
		return err
	}

	work := imaging.NormalizeRGB(imaging.FromImageRGB(img))

	kernelStart := time.Now()
	var k *grid.Dense[float64]
	switch args.filter {
	case filterBox:
		k = kernel.Box(args.size)
	default:
		k = kernel.Gaussian(args.size, args.sigma)
	}
	if !cargs.quiet {
		fmt.Printf("Kernel Generation Time: %.3fms\n", millis(time.Since(kernelStart)))
	}

	convStart := time.Now()
	blurred := conv.Convolve[pixel.RGB[float64], float64](work, k, pixel.RGBOps[float64]{})
	if !cargs.quiet {
		fmt.Printf("Convolution Time: %.3fms\n", millis(time.Since(convStart)))
	}

	out := imaging.ToImageRGB(imaging.DenormalizeRGB(blurred))
	return encodeImage(outputPath(path), out)
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
