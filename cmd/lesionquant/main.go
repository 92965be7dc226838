package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lesionquant/pkg/atlas"
	"lesionquant/pkg/config"
	"lesionquant/pkg/overlap"
)

func main() {
	// Parse command line arguments
	var lesionPath, outputPath, mapsDir, npyPath, configPath string
	flag.StringVar(&lesionPath, "lesions-path", "", "Path to the patient lesion volume file")
	flag.StringVar(&lesionPath, "l", "", "Shorthand for -lesions-path")
	flag.StringVar(&outputPath, "output-path", "WM_importance.csv", "Output path for the importance table")
	flag.StringVar(&outputPath, "o", "WM_importance.csv", "Shorthand for -output-path")
	flag.StringVar(&mapsDir, "maps-dir", "", "Directory containing the reference map library (overrides config)")
	flag.StringVar(&mapsDir, "m", "", "Shorthand for -maps-dir")
	flag.StringVar(&npyPath, "npy", "", "Optional path for a numpy export of the score row")
	flag.StringVar(&configPath, "config", "lesionquant.yaml", "Path to the YAML configuration file")
	flag.StringVar(&configPath, "c", "lesionquant.yaml", "Shorthand for -config")
	flag.Parse()

	// Validate inputs
	if lesionPath == "" {
		flag.Usage()
		os.Exit(1)
	}
	if _, err := os.Stat(lesionPath); err != nil {
		log.Fatalf("Lesion file not found: %s", lesionPath)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if mapsDir == "" {
		mapsDir = cfg.Atlas.Dir
	}
	if mapsDir == "" {
		log.Fatalf("No reference map directory: pass -maps-dir or set atlas.dir in %s", configPath)
	}

	params := &overlap.Params{
		LesionPath: lesionPath,
		Library:    atlas.NewLibrary(mapsDir, cfg.Atlas.Pattern, cfg.Atlas.Suffix),
		Percentile: cfg.Overlap.Percentile,
	}

	quantifier := overlap.NewQuantifier(params)
	result, err := quantifier.Run()
	if err != nil {
		log.Fatalf("Overlap quantification failed: %v", err)
	}

	table, err := result.Table()
	if err != nil {
		log.Fatalf("Failed to assemble results: %v", err)
	}
	if err := table.WriteCSV(outputPath); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
	if npyPath != "" {
		if err := table.WriteNpy(npyPath); err != nil {
			log.Fatalf("Failed to write numpy export: %v", err)
		}
	}

	fmt.Printf("Results saved to %s\n", outputPath)
	fmt.Printf("Processed patient: %s\n", result.PatientID)
	fmt.Printf("Scored %d reference maps from %s\n", len(result.MapNames), mapsDir)
}
