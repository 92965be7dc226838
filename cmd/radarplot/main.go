package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"lesionquant/pkg/config"
	"lesionquant/pkg/radar"
)

func main() {
	// Parse command line arguments
	var gmPath, wmPath, outputDir, configPath string
	flag.StringVar(&gmPath, "gray-matter", "", "Path to the gray-matter importance CSV")
	flag.StringVar(&gmPath, "g", "", "Shorthand for -gray-matter")
	flag.StringVar(&wmPath, "white-matter", "", "Path to the white-matter importance CSV")
	flag.StringVar(&wmPath, "w", "", "Shorthand for -white-matter")
	flag.StringVar(&outputDir, "output-dir", ".", "Directory for the rendered charts")
	flag.StringVar(&outputDir, "o", ".", "Shorthand for -output-dir")
	flag.StringVar(&configPath, "config", "lesionquant.yaml", "Path to the YAML configuration file")
	flag.StringVar(&configPath, "c", "lesionquant.yaml", "Shorthand for -config")
	flag.Parse()

	// Validate inputs
	if gmPath == "" || wmPath == "" {
		flag.Usage()
		os.Exit(1)
	}
	if _, err := os.Stat(gmPath); err != nil {
		log.Fatalf("Gray-matter file not found: %s", gmPath)
	}
	if _, err := os.Stat(wmPath); err != nil {
		log.Fatalf("White-matter file not found: %s", wmPath)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gmColor, err := radar.HexColor(cfg.Radar.GrayMatterColor)
	if err != nil {
		log.Fatalf("Invalid gray-matter color: %v", err)
	}
	wmColor, err := radar.HexColor(cfg.Radar.WhiteMatterColor)
	if err != nil {
		log.Fatalf("Invalid white-matter color: %v", err)
	}

	gmData, err := radar.LoadSeries(gmPath)
	if err != nil {
		log.Fatalf("Failed to load gray-matter data: %v", err)
	}
	wmData, err := radar.LoadSeries(wmPath)
	if err != nil {
		log.Fatalf("Failed to load white-matter data: %v", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	order := cfg.Radar.Order
	if len(order) == 0 {
		order = radar.DefaultOrder
	}
	size := vg.Length(cfg.Radar.SizeInches) * vg.Inch

	gm := radar.Series{Label: "Gray Matter (GM)", Color: gmColor, Values: gmData}
	wm := radar.Series{Label: "White Matter (WM)", Color: wmColor, Values: wmData}

	common := radar.OrderCategories(radar.CommonCategories(gmData, wmData), order)
	if len(common) == 0 {
		log.Fatalf("No categories shared between %s and %s", gmPath, wmPath)
	}

	charts := []struct {
		chart  radar.Chart
		series []radar.Series
		file   string
	}{
		{
			chart:  radar.Chart{Title: "Cognitive Function Importance: GM vs WM", Categories: common, Size: size},
			series: []radar.Series{gm, wm},
			file:   "radar_comparison.png",
		},
		{
			chart:  radar.Chart{Title: "Gray Matter Importance", Categories: orderedKeys(gmData, order), Size: size},
			series: []radar.Series{gm},
			file:   "radar_gm.png",
		},
		{
			chart:  radar.Chart{Title: "White Matter Importance", Categories: orderedKeys(wmData, order), Size: size},
			series: []radar.Series{wm},
			file:   "radar_wm.png",
		},
	}

	for _, c := range charts {
		path := filepath.Join(outputDir, c.file)
		if err := c.chart.Render(path, c.series...); err != nil {
			log.Fatalf("Failed to render %s: %v", path, err)
		}
		fmt.Printf("Chart saved to %s\n", path)
	}
}

func orderedKeys(values map[string]float64, order []string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	return radar.OrderCategories(keys, order)
}
