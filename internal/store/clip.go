package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// ErrClipNotFound is returned when a clip ID does not exist.
var ErrClipNotFound = errors.New("clip not found")

// ClipInfo describes a stored clip without its frame data.
type ClipInfo struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Frames    int       `json:"frames"`
	CreatedAt time.Time `json:"created_at"`
}

// ClipRepository provides CRUD operations for stored clips.
type ClipRepository struct {
	db *sql.DB
}

// Clips returns the clip repository for this store.
func (s *Store) Clips() *ClipRepository {
	return &ClipRepository{db: s.db}
}

// Create inserts a clip and all its frames in a single transaction.
func (r *ClipRepository) Create(clip *landmark.Clip) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO clips (id, label, frames) VALUES (?, ?, ?)`,
		clip.ID, clip.Label, clip.Len())
	if err != nil {
		return fmt.Errorf("insert clip: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO clip_frames (clip_id, frame_index, data) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range clip.Frames {
		data, err := json.Marshal(&clip.Frames[i])
		if err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
		if _, err := stmt.Exec(clip.ID, i, string(data)); err != nil {
			return fmt.Errorf("insert frame %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Get retrieves a clip with all its frames, in frame order.
func (r *ClipRepository) Get(id string) (*landmark.Clip, error) {
	var info ClipInfo
	err := r.db.QueryRow(`SELECT id, label, frames FROM clips WHERE id = ?`, id).
		Scan(&info.ID, &info.Label, &info.Frames)
	if err == sql.ErrNoRows {
		return nil, ErrClipNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		`SELECT data FROM clip_frames WHERE clip_id = ? ORDER BY frame_index`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frames []landmark.Frame
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var f landmark.Frame
		if err := json.Unmarshal([]byte(data), &f); err != nil {
			return nil, fmt.Errorf("decode frame %d: %w", len(frames), err)
		}
		frames = append(frames, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &landmark.Clip{ID: info.ID, Label: info.Label, Frames: frames}, nil
}

// List returns metadata for all stored clips, newest first.
func (r *ClipRepository) List() ([]ClipInfo, error) {
	rows, err := r.db.Query(
		`SELECT id, label, frames, created_at FROM clips ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clips []ClipInfo
	for rows.Next() {
		var c ClipInfo
		if err := rows.Scan(&c.ID, &c.Label, &c.Frames, &c.CreatedAt); err != nil {
			return nil, err
		}
		clips = append(clips, c)
	}

	return clips, rows.Err()
}

// Delete removes a clip and, via cascade, its frames.
func (r *ClipRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM clips WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrClipNotFound
	}
	return nil
}
