// Command starcount counts stars on an astrophoto: it loads an image,
// binarizes it by a luminance sensitivity, and reports the number of
// 8-connected bright clusters. Optionally it writes the binarized mask next
// to the input as <name>-starred.jpg (or to -output-name).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nightscan/starfield/cluster"
	"github.com/nightscan/starfield/imgio"
	"github.com/nightscan/starfield/render"
	"github.com/nightscan/starfield/threshold"
)

// Config represents the command-line parameters for the tool.
type Config struct {
	File        string
	Sensitivity uint
	OutputName  string
	OutputImage bool
	Otsu        bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sensitivity: 20}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "file", c.File, "image file to process")
	fs.UintVar(&c.Sensitivity, "sensitivity", c.Sensitivity, "white sensitivity from 0 (black) to 255 (white)")
	fs.StringVar(&c.OutputName, "output-name", c.OutputName, "optional output file name, extension required")
	fs.BoolVar(&c.OutputImage, "output-image", c.OutputImage, "write the binarized high-contrast mask image")
	fs.BoolVar(&c.Otsu, "otsu", c.Otsu, "derive the sensitivity automatically from the image histogram")
}

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: starcount -file image [-sensitivity n] [-otsu] [-output-image] [-output-name name]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if cfg.File == "" {
		flag.Usage()
		os.Exit(1)
	}
	if cfg.Sensitivity > 255 {
		log.Fatalf("sensitivity %d out of range [0,255]", cfg.Sensitivity)
	}

	field, err := imgio.Load(cfg.File)
	if err != nil {
		log.Fatalf("could not read image %s: %v", cfg.File, err)
	}

	sensitivity := uint8(cfg.Sensitivity)
	if cfg.Otsu {
		sensitivity = threshold.OtsuLevel(field)
	}
	mask := threshold.Binarize(field, sensitivity)

	count, err := cluster.Count(mask)
	if err != nil {
		log.Fatalf("could not count clusters: %v", err)
	}
	fmt.Printf("Found %d stars\n", count)

	if !cfg.OutputImage {
		return
	}
	fmt.Println("Processing into output...")
	out, err := imgio.OutputPath(cfg.File, cfg.OutputName)
	if err != nil {
		log.Fatalf("could not derive output path: %v", err)
	}
	if err := imgio.Save(out, render.Gray(mask)); err != nil {
		log.Fatalf("could not write image %s: %v", out, err)
	}
	fmt.Println("Done!")
}
