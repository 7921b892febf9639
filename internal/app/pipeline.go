package app

import (
	"log"
	"time"
)

// runPipeline is the main capture loop.
//
// Pipeline logic:
// 1. Start in idle mode (IdleFPS)
// 2. On motion detected, switch to active mode (ActiveFPS)
// 3. Run landmark tracking
// 4. Append the tracked frame to the recorder while recording
// 5. After 2s without motion, switch back to idle mode
//
// A recording forces active mode regardless of motion so frames are
// never dropped mid-clip.
func (a *App) runPipeline() {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)
			recording := a.recorder.Recording()

			if motionDetected || recording {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > idleTimeout() {
					activeMode = false
					a.camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode || a.tracker == nil {
				frame.Close()
				continue
			}

			tracked, err := a.tracker.Track(frame)
			frame.Close() // Done with the frame

			if err != nil {
				log.Printf("Error tracking landmarks: %v", err)
				continue
			}

			if recording && tracked != nil {
				if err := a.recorder.Append(*tracked); err != nil {
					log.Printf("Error appending frame: %v", err)
				}
			}
		}
	}
}
