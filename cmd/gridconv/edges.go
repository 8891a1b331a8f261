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

type edgeKernel string

const (
	edgeSobelX         edgeKernel = "sobel_x"
	edgeSobelY         edgeKernel = "sobel_y"
	edgeLaplacianCross edgeKernel = "laplacian_cross"
	edgeLaplacianFull  edgeKernel = "laplacian_full"
)

func (k *edgeKernel) String() string {
	return string(*k)
}

func (k *edgeKernel) Set(s string) error {
	switch edgeKernel(s) {
	case edgeSobelX, edgeSobelY, edgeLaplacianCross, edgeLaplacianFull:
		*k = edgeKernel(s)
	default:
		return fmt.Errorf("%s is not a valid edge kernel", s)
	}
	return nil
}

func (k edgeKernel) toGrid() *grid.Dense[int32] {
	switch k {
	case edgeSobelY:
		return kernel.SobelY()
	case edgeLaplacianCross:
		return kernel.LaplacianCross()
	case edgeLaplacianFull:
		return kernel.LaplacianFull()
	default:
		return kernel.SobelX()
	}
}

type edgesArgs struct {
	commonArgs
	kernel edgeKernel
}

func createEdgesCommand() *command {

	args := edgesArgs{
		commonArgs: commonArgs{
			ext:    ".png",
			suffix: "_edges",
		},
		kernel: edgeSobelX,
	}

	flags := flag.NewFlagSet("edges", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)
	flags.Var(&args.kernel, "kernel", "the edge kernel; sobel_x, sobel_y, laplacian_cross or laplacian_full")
	flags.Var(&args.kernel, "k", "shorthand for kernel")

	return &command{
		Name: "edges",
		Help: "detect edges with sobel or laplacian kernels",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 {
				printCommandUsage(self, " file-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runEdges(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func runEdges(args edgesArgs, inputFiles []string) {
	g := new(errgroup.Group)
	g.SetLimit(args.jobs)

	var success atomic.Int64
	start := time.Now()
	for i, p := range inputFiles {
		g.Go(func() error {
			if !cargs.quiet {
				fmt.Printf("Processing file %d/%d %q ...\n", i+1, len(inputFiles), filepath.ToSlash(filepath.Clean(p)))
			}
			if err := edgeFile(args, p); !softerr(err) {
				success.Add(1)
			}
			return nil
		})
	}
	harderr(g.Wait())

	if !cargs.quiet {
		took := float32(time.Since(start).Milliseconds()) / 1000
		fmt.Printf("Processed %d/%d files in %.3f seconds\n", success.Load(), len(inputFiles), took)
	}
}

func edgeFile(args edgesArgs, path string) error {
	img, err := decodeImage(path)
	if err != nil {
		return err
	}

	wide := imaging.GrayToInt(imaging.FromImageGray(img))

	convStart := time.Now()
	response := conv.Convolve[pixel.Gray[int32], int32](wide, args.kernel.toGrid(), pixel.GrayOps[int32]{})
	if !cargs.quiet {
		fmt.Printf("Convolution Time: %.3fms\n", millis(time.Since(convStart)))
	}

	out := imaging.ToImageGray(imaging.IntToGray(response))
	return encodeImage(outputPath(path), out)
}
