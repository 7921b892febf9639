package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/playback"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/retarget"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/server"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/store"
	"github.com/Rohit-Kothawale/gesture-weaver/testdata"
)

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	player := playback.NewPlayer()
	engine := retarget.NewEngine(retarget.DefaultRigConfig())

	srv := server.New(server.Config{
		Store:  s,
		Player: player,
		Engine: engine,
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()
	var clipID string

	t.Run("ImportClip", func(t *testing.T) {
		var buf bytes.Buffer
		if err := landmark.WriteClip(&buf, testdata.WaveClip("wave", 24)); err != nil {
			t.Fatal(err)
		}

		resp, err := client.Post(ts.URL+"/api/clips", "text/csv", &buf)
		if err != nil {
			t.Fatalf("import clip error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}
		var created store.ClipInfo
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			t.Fatal(err)
		}
		if created.Frames != 24 {
			t.Errorf("frames = %d, want 24", created.Frames)
		}
		clipID = created.ID
	})

	t.Run("LoadAndPlay", func(t *testing.T) {
		resp, err := client.Post(
			ts.URL+"/api/playback/load",
			"application/json",
			strings.NewReader(`{"clip_id": "`+clipID+`"}`),
		)
		if err != nil {
			t.Fatalf("load clip error = %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("load status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		resp, err = client.Post(ts.URL+"/api/playback/play", "application/json", nil)
		if err != nil {
			t.Fatalf("play error = %v", err)
		}
		resp.Body.Close()

		if player.State() != playback.StatePlaying {
			t.Errorf("player state = %v, want %v", player.State(), playback.StatePlaying)
		}
	})

	t.Run("JointStream", func(t *testing.T) {
		wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/joints"
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("websocket dial error = %v", err)
		}
		defer conn.Close()

		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read joint message error = %v", err)
		}

		var update struct {
			Joints map[string]retarget.JointPose `json:"joints"`
			State  playback.State                `json:"state"`
		}
		if err := json.Unmarshal(msg, &update); err != nil {
			t.Fatalf("decode joint message: %v", err)
		}
		if update.State != playback.StatePlaying {
			t.Errorf("stream state = %v, want %v", update.State, playback.StatePlaying)
		}
		if len(update.Joints) == 0 {
			t.Fatal("joint stream carried no joints")
		}
		if _, ok := update.Joints["hand.L"]; !ok {
			t.Error("joint stream missing hand.L")
		}
	})

	t.Run("EngineConverges", func(t *testing.T) {
		// The broadcast loop applies frames continuously; after a few
		// ticks the tracked left hand carries a position target.
		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			if pose, ok := engine.JointState()["hand.L"]; ok && pose.HasPosition {
				return
			}
			time.Sleep(50 * time.Millisecond)
		}
		t.Error("left hand never received a position target")
	})

	t.Run("StatusReflectsPlayback", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/playback/status")
		if err != nil {
			t.Fatalf("status error = %v", err)
		}
		defer resp.Body.Close()

		var status struct {
			State           playback.State `json:"state"`
			Frames          int            `json:"frames"`
			LeftHandVisible bool           `json:"left_hand_visible"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			t.Fatal(err)
		}
		if status.State != playback.StatePlaying || status.Frames != 24 {
			t.Errorf("status = %+v", status)
		}
		if !status.LeftHandVisible {
			t.Error("left hand should be visible during the wave clip")
		}
	})

	t.Run("ExportRoundTrip", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/clips/" + clipID + "/export")
		if err != nil {
			t.Fatalf("export error = %v", err)
		}
		defer resp.Body.Close()

		clip, err := landmark.ReadClip(resp.Body)
		if err != nil {
			t.Fatalf("parse exported clip: %v", err)
		}
		if clip.Len() != 24 {
			t.Errorf("exported frames = %d, want 24", clip.Len())
		}
	})
}
