// Package retarget converts raw landmark frames into stable joint
// rotations for a fixed-topology skeletal rig: coordinate
// normalization, two-bone arm IK, palm orientation and finger angle
// decomposition, and temporal smoothing.
package retarget

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RigConfig collects the proportions and tuning constants for one
// avatar rig. A different rig topology is a config change, not a code
// change.
type RigConfig struct {
	// Skeleton proportions in scene units.
	ShoulderWidth  float64 `yaml:"shoulder_width"`
	ShoulderHeight float64 `yaml:"shoulder_height"`
	UpperArmLength float64 `yaml:"upper_arm_length"`
	ForearmLength  float64 `yaml:"forearm_length"`

	// HandReachScale maps unit-square perception coordinates onto
	// scene units. Empirically 2-3 depending on visualization mode.
	HandReachScale float64 `yaml:"hand_reach_scale"`

	// Smoothing factors in (0,1]. Fingers react faster than arms.
	ArmSmoothing    float64 `yaml:"arm_smoothing"`
	FingerSmoothing float64 `yaml:"finger_smoothing"`

	// Curl scale factors per joint level. A fully extended finger
	// yields curl 0; a closed fist approaches pi times the scale.
	CurlScaleProximal     float64 `yaml:"curl_scale_proximal"`
	CurlScaleIntermediate float64 `yaml:"curl_scale_intermediate"`
	CurlScaleDistal       float64 `yaml:"curl_scale_distal"`

	// Thumb bends less uniformly than the fingers.
	ThumbCurlScaleProximal     float64 `yaml:"thumb_curl_scale_proximal"`
	ThumbCurlScaleIntermediate float64 `yaml:"thumb_curl_scale_intermediate"`
	ThumbCurlScaleDistal       float64 `yaml:"thumb_curl_scale_distal"`

	// SpreadBaseline is subtracted from measured finger spread;
	// fingers held together never measure exactly zero apart.
	SpreadBaseline float64 `yaml:"spread_baseline"`

	// Relaxed pose targets used when a hand is not tracked.
	RelaxedArmLean    float64 `yaml:"relaxed_arm_lean"`
	RelaxedElbowBend  float64 `yaml:"relaxed_elbow_bend"`
	RelaxedFingerCurl float64 `yaml:"relaxed_finger_curl"`
}

// DefaultRigConfig returns the tuning for the stock avatar rig.
func DefaultRigConfig() RigConfig {
	return RigConfig{
		ShoulderWidth:  1.2,
		ShoulderHeight: 1.4,
		UpperArmLength: 0.55,
		ForearmLength:  0.5,
		HandReachScale: 3.0,

		ArmSmoothing:    0.2,
		FingerSmoothing: 0.25,

		CurlScaleProximal:     0.9,
		CurlScaleIntermediate: 1.0,
		CurlScaleDistal:       0.7,

		ThumbCurlScaleProximal:     0.5,
		ThumbCurlScaleIntermediate: 0.6,
		ThumbCurlScaleDistal:       0.4,

		SpreadBaseline: 0.12,

		RelaxedArmLean:    0.25,
		RelaxedElbowBend:  0.35,
		RelaxedFingerCurl: 0.3,
	}
}

// LoadRigConfig reads a YAML rig config. Fields omitted in the file
// keep their default values.
func LoadRigConfig(path string) (RigConfig, error) {
	cfg := DefaultRigConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read rig config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse rig config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *RigConfig) validate() error {
	if c.UpperArmLength <= 0 || c.ForearmLength <= 0 {
		return fmt.Errorf("rig config: bone lengths must be positive")
	}
	if c.HandReachScale <= 0 {
		return fmt.Errorf("rig config: hand_reach_scale must be positive")
	}
	if c.ArmSmoothing <= 0 || c.ArmSmoothing > 1 || c.FingerSmoothing <= 0 || c.FingerSmoothing > 1 {
		return fmt.Errorf("rig config: smoothing factors must be in (0,1]")
	}
	return nil
}
