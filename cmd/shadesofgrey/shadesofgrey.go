package main

import(
	"flag"
	"fmt"
	"log"

	"github.com/abworrall/shadesofgrey/pkg/hostio"
	"github.com/abworrall/shadesofgrey/pkg/shades"
)

var(
	fVerbosity int
	fThreshold int
	fNorm int
	fWorkers int
	fConfig string
	fSaveConfig string
	fOutput string
	fRegion string
	fHDR string
	fAnnotate string
	fReport bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.IntVar(&fThreshold, "thresh", shades.DefaultThreshold, "pixels within this % of white are ignored when estimating (0-100)")
	flag.IntVar(&fNorm, "norm", shades.DefaultNorm, "Minkowski norm of the estimator; 0 is max-rgb, 1 is grey-world")
	flag.IntVar(&fWorkers, "workers", 0, "goroutines for the per-pixel passes (0 means one per CPU)")

	flag.StringVar(&fConfig, "config", "", "load settings from this YAML file; flags given on the command line win")
	flag.StringVar(&fSaveConfig, "save-config", "", "write the settings used to this YAML file, for a later -config")

	flag.StringVar(&fOutput, "o", "balanced.png", "output image (.png, .tif or .jpg)")
	flag.StringVar(&fRegion, "region", "", "only correct this region, as x,y,w,h; the rest of the image is left as it was")
	flag.StringVar(&fHDR, "hdr", "", "also write the corrected region in linear light to this Radiance .hdr file")
	flag.StringVar(&fAnnotate, "annotate", "", "also write a PNG of the output with the illuminant drawn on it")
	flag.BoolVar(&fReport, "report", false, "log how bright the input is, and how much of it the threshold rejects")
	flag.Parse()

	log.Printf("shadesofgrey starting\n")
}

// buildConfig starts from the config file if there is one, and lets any
// flag that was actually set override it.
func buildConfig() (shades.Config, error) {
	cfg := shades.NewConfig()
	if fConfig != "" {
		c, err := shades.LoadConfig(fConfig)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	override := func(name string) bool { return fConfig == "" || set[name] }

	if override("v")      { cfg.Verbosity = fVerbosity }
	if override("thresh") { cfg.Params.Threshold = fThreshold }
	if override("norm")   { cfg.Params.Norm = fNorm }
	if override("workers") && fWorkers > 0 { cfg.Workers = fWorkers }

	return cfg, cfg.Finalize()
}

func main() {
	if flag.NArg() != 1 {
		log.Fatalf("usage: shadesofgrey [flags] image\n")
	}

	cfg, err := buildConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	img, md, err := hostio.LoadImage(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %s\n", md)

	src := hostio.ToPixelBuffer(img)
	if fReport {
		log.Printf("Brightness: %s\n", hostio.NewBrightnessReport(src, cfg.Params))
	}

	region, err := hostio.ParseRegion(fRegion, src.Bounds())
	if err != nil {
		log.Fatal(err)
	}

	p := shades.NewPipeline(cfg)
	if err := p.SetSource(src); err != nil {
		log.Fatal(err)
	}
	res, err := p.Preview(region)
	if err != nil {
		log.Fatal(err)
	}

	if res.Degenerate {
		log.Printf("WARNING: %v; image left as it was\n", res.Warning)
	} else {
		log.Printf("Illuminant (%s): %s, hue %.0f, saturation %.2f\n", cfg.Params, res.Illuminant,
			res.Illuminant.Hue(), res.Illuminant.Saturation())
	}

	// A preview gets pasted back into the rest of the untouched image
	out := src
	if region != src.Bounds() {
		if err := out.Paste(region.Min, res.Output); err != nil {
			log.Fatal(err)
		}
	} else {
		out = res.Output
	}

	outImg := hostio.ToImage(out)
	if err := hostio.WriteImage(outImg, fOutput); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s\n", fOutput)

	if fHDR != "" && res.Linear != nil {
		if err := hostio.WriteHDR(res.Linear, fHDR); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s\n", fHDR)
	}

	if fAnnotate != "" {
		caption := fmt.Sprintf("%s  %s", res.Illuminant.Hex(), cfg.Params)
		if err := hostio.WriteAnnotatedPNG(outImg, res.Illuminant, caption, fAnnotate); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s\n", fAnnotate)
	}

	if fSaveConfig != "" {
		if err := cfg.SaveConfig(fSaveConfig); err != nil {
			log.Fatal(err)
		}
		log.Printf("Saved settings to %s\n", fSaveConfig)
	}
}
