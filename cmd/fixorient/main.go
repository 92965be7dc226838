package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lesionquant/pkg/config"
	"lesionquant/pkg/orientation"
)

func main() {
	// Parse command line arguments
	var inputDir, outputDir, iop, configPath string
	flag.StringVar(&inputDir, "input-dir", "", "Directory containing the DICOM files to fix")
	flag.StringVar(&inputDir, "i", "", "Shorthand for -input-dir")
	flag.StringVar(&outputDir, "output-dir", "", "Directory for the corrected DICOM files")
	flag.StringVar(&outputDir, "o", "", "Shorthand for -output-dir")
	flag.StringVar(&iop, "iop", "", "Comma-separated ImageOrientationPatient sextet (overrides config)")
	flag.StringVar(&configPath, "config", "lesionquant.yaml", "Path to the YAML configuration file")
	flag.StringVar(&configPath, "c", "lesionquant.yaml", "Shorthand for -config")
	flag.Parse()

	// Validate inputs
	if inputDir == "" || outputDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var cosines orientation.Cosines
	if iop != "" {
		cosines, err = orientation.ParseCosines(iop)
		if err != nil {
			log.Fatalf("Invalid -iop value: %v", err)
		}
	} else {
		if len(cfg.Dicom.Orientation) != 6 {
			log.Fatalf("Config dicom.orientation needs 6 values, has %d", len(cfg.Dicom.Orientation))
		}
		copy(cosines[:], cfg.Dicom.Orientation)
	}

	count, err := orientation.Patch(inputDir, outputDir, cosines)
	if err != nil {
		log.Fatalf("Orientation patching failed: %v", err)
	}

	fmt.Printf("All DICOM files processed: %d written to %s\n", count, outputDir)
}
