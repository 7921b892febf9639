package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/app"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/playback"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/retarget"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/server"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/store"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "", "clip database path (default ~/.gesture-weaver/clips.db)")
	rigPath := flag.String("rig", "", "rig config YAML path (default built-in rig)")
	cameraID := flag.Int("camera", -1, "camera device ID for live capture (-1 disables)")
	motionThresh := flag.Float64("motion", 1.0, "motion threshold as percent pixel change")
	webDir := flag.String("web", "", "static file directory (default auto-detected)")
	flag.Parse()

	fmt.Println("Gesture Weaver - Motion Capture Retargeting")

	// Initialize the clip store
	path := *dbPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}
		dataDir := filepath.Join(homeDir, ".gesture-weaver")
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		path = filepath.Join(dataDir, "clips.db")
	}

	st, err := store.New(path)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Load rig tuning
	rigConfig := retarget.DefaultRigConfig()
	if *rigPath != "" {
		rigConfig, err = retarget.LoadRigConfig(*rigPath)
		if err != nil {
			log.Fatalf("Failed to load rig config: %v", err)
		}
		fmt.Printf("Loaded rig config from %s\n", *rigPath)
	}

	engine := retarget.NewEngine(rigConfig)
	player := playback.NewPlayer()

	// Start the live capture pipeline if a camera is configured. The
	// capture app doubles as the recording API's backend.
	var capApp *app.App
	if *cameraID >= 0 {
		capApp = app.New(app.Config{
			Store:        st,
			CameraID:     *cameraID,
			MotionThresh: *motionThresh,
		})
		if err := capApp.Start(); err != nil {
			log.Printf("Live capture unavailable: %v", err)
			capApp = nil
		} else {
			defer capApp.Stop()
		}
	}

	staticDir := *webDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		fmt.Printf("Serving static files from: %s\n", staticDir)
	}

	cfg := server.Config{
		StaticDir: staticDir,
		Store:     st,
		Player:    player,
		Engine:    engine,
	}
	if capApp != nil {
		cfg.Recorder = capApp
	}
	srv := server.New(cfg)

	fmt.Printf("Starting server on %s\n", *addr)
	if err := srv.ListenAndServe(*addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".gesture-weaver", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
