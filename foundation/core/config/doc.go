// File: doc.go
// Title: Config Package Documentation
// Description: Package documentation for the chronos configuration loader.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

// Package config implements configuration loading for chronos.
//
// Configuration files may be TOML (default) or YAML; the format is detected
// from the file extension. Values are addressed with dot notation:
//
//	cfg, err := config.Load("chronos.toml")
//	mode := cfg.GetString("output.mode", "epoch")
//
// Environment variables override file values. With the prefix "CHRONOS",
// the key "output.mode" maps to CHRONOS_OUTPUT_MODE.
package config
