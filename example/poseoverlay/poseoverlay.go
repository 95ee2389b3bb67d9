package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/posekit/posekit"
	"github.com/posekit/posekit/render"
	"gocv.io/x/gocv"
)

// landmarkJSON mirrors one entry of the landmarks file
type landmarkJSON struct {
	Type       string  `json:"type"`
	X          float32 `json:"x"`
	Y          float32 `json:"y"`
	Z          float32 `json:"z"`
	Likelihood float32 `json:"likelihood"`
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	imgFile := flag.String("i", "../data/pose.jpg", "Image file to draw the overlay on")
	lmFile := flag.String("p", "../data/landmarks.json", "JSON file of detected pose landmarks")
	outFile := flag.String("o", "./pose-out.jpg", "Output image file")
	labels := flag.String("c", "", "Comma separated classification labels to render")
	showLikelihood := flag.Bool("likelihood", false, "Render per landmark likelihood scores")
	visualizeZ := flag.Bool("z", false, "Color points and lines by relative depth")
	rescaleZ := flag.Bool("rescale", false, "Rescale depth coloring to the observed range")
	showRegion := flag.Bool("region", false, "Draw a highlight outline around the tracked joints")

	flag.Parse()

	pose, err := loadPose(*lmFile)

	if err != nil {
		log.Fatal("Error loading landmarks: ", err)
	}

	// load image
	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		log.Fatal("Error reading image from: ", *imgFile)
	}

	defer img.Close()

	var classifications []string

	if *labels != "" {
		classifications = strings.Split(*labels, ",")
	}

	overlay := render.NewOverlay(pose, render.Config{
		ShowLikelihood:  *showLikelihood,
		VisualizeZ:      *visualizeZ,
		RescaleZ:        *rescaleZ,
		ShowRegion:      *showRegion,
		Classifications: classifications,
	})

	overlay.Render(render.MatCanvas{Mat: &img})

	// Save the result
	if ok := gocv.IMWrite(*outFile, img); !ok {
		log.Fatal("Failed to save the image to: ", *outFile)
	}

	log.Println("Saved overlay to", *outFile)
}

// loadPose reads a pose estimation result from a JSON landmarks file
func loadPose(file string) (posekit.Pose, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return posekit.Pose{}, err
	}

	var entries []landmarkJSON

	if err := json.Unmarshal(data, &entries); err != nil {
		return posekit.Pose{}, fmt.Errorf("Error parsing landmarks file: %w", err)
	}

	lms := make([]posekit.Landmark, 0, len(entries))

	for _, e := range entries {

		lt, ok := posekit.ParseLandmarkType(e.Type)

		if !ok {
			return posekit.Pose{}, fmt.Errorf("unknown landmark type %q", e.Type)
		}

		lms = append(lms, posekit.Landmark{
			Type:       lt,
			X:          e.X,
			Y:          e.Y,
			Z:          e.Z,
			Likelihood: e.Likelihood,
		})
	}

	return posekit.Pose{Landmarks: lms}, nil
}
