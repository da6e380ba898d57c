// Command inferlanes parses an OSM PBF extract and prints the inferred
// lane sequence for each road as newline-delimited JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/azybler/osmlanes/pkg/lanes"
	osmparser "github.com/azybler/osmlanes/pkg/osm"
)

func main() {
	input := flag.String("input", "", "Path to .osm.pbf file")
	bbox := flag.String("bbox", "", "Bounding box filter: minLat,minLng,maxLat,maxLng (e.g. 1.15,103.6,1.48,104.1)")
	singapore := flag.Bool("singapore", false, "Shortcut for --bbox 1.15,103.6,1.48,104.1 (Singapore bounding box)")
	kl := flag.Bool("kl", false, "Shortcut for --bbox 2.75,101.2,3.5,102.0 (Selangor + Kuala Lumpur bounding box)")
	drivingSide := flag.String("driving-side", "right", "Driving side: right or left")
	inferredSidewalks := flag.Bool("inferred-sidewalks", true, "Synthesize sidewalk/shoulder lanes when not tagged")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: inferlanes --input <file.osm.pbf> [--driving-side right|left] [--inferred-sidewalks] [--singapore | --kl | --bbox minLat,minLng,maxLat,maxLng]")
		os.Exit(1)
	}

	cfg := lanes.Config{InferredSidewalks: *inferredSidewalks}
	switch *drivingSide {
	case "left":
		cfg.DrivingSide = lanes.Left
	case "right":
		cfg.DrivingSide = lanes.Right
	default:
		log.Fatalf("Invalid --driving-side %q (want right or left)", *drivingSide)
	}

	var opts osmparser.ParseOptions
	opts.Config = cfg
	if *kl {
		opts.BBox = osmparser.BBox{MinLat: 2.75, MaxLat: 3.5, MinLng: 101.2, MaxLng: 102.0}
		log.Println("Using Selangor + KL bounding box filter: lat [2.75, 3.50], lng [101.20, 102.00]")
	} else if *singapore {
		opts.BBox = osmparser.BBox{MinLat: 1.15, MaxLat: 1.48, MinLng: 103.6, MaxLng: 104.1}
		log.Println("Using Singapore bounding box filter: lat [1.15, 1.48], lng [103.6, 104.1]")
	} else if *bbox != "" {
		var minLat, minLng, maxLat, maxLng float64
		_, err := fmt.Sscanf(*bbox, "%f,%f,%f,%f", &minLat, &minLng, &maxLat, &maxLng)
		if err != nil {
			log.Fatalf("Invalid bbox format (expected minLat,minLng,maxLat,maxLng): %v", err)
		}
		opts.BBox = osmparser.BBox{MinLat: minLat, MaxLat: maxLat, MinLng: minLng, MaxLng: maxLng}
		log.Printf("Using bounding box filter: lat [%.4f, %.4f], lng [%.4f, %.4f]", minLat, maxLat, minLng, maxLng)
	}

	start := time.Now()

	log.Println("Opening OSM file...")
	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Failed to open input file: %v", err)
	}
	defer f.Close()

	log.Println("Parsing OSM data and inferring lanes...")
	result, err := osmparser.Parse(context.Background(), f, opts)
	if err != nil {
		log.Fatalf("Failed to parse OSM data: %v", err)
	}
	log.Printf("Inferred lanes for %d roads in %s", len(result.Roads), time.Since(start).Round(time.Millisecond))
	logTotalWayLength(result)

	enc := json.NewEncoder(os.Stdout)
	for _, road := range result.Roads {
		if err := enc.Encode(roadJSON(road)); err != nil {
			log.Fatalf("Failed to encode road %d: %v", road.WayID, err)
		}
	}
}

// logTotalWayLength reports aggregate way-length stats as a quick sanity
// check on the extract before lane output is consumed downstream.
func logTotalWayLength(result *osmparser.ParseResult) {
	var total float64
	var measured int
	for _, road := range result.Roads {
		meters, ok := result.WayLength(road.WayID)
		if !ok {
			continue
		}
		total += meters
		measured++
	}
	if measured == 0 {
		return
	}
	log.Printf("Total way length: %.1f km across %d roads (avg %.1f m)", total/1000, measured, total/float64(measured))
}
