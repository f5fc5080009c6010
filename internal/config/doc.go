// Package config loads the splash options declared by the embedding
// application.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/curtain/config.toml (default)
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, use per-field defaults
//
// Files ending in .yaml or .yml are decoded as YAML; everything else as TOML.
//
// # Default Values
//
//   - enabled: true
//   - animationLight: none (required; without it the splash is disabled)
//   - animationDark: none
//   - backgroundLight: "#FFFFFF"
//   - backgroundDark: "#000000"
//   - autoHide, loop: false
//   - loopEvents: "every", loopDismiss: "immediate"
//   - fps: 12, appearance: "auto"
//
// # Normalization
//
// autoHide and loop are mutually exclusive. When both are set, loop is turned
// off (see Normalize). Unknown enum values and out-of-range fps fall back to
// their defaults. Every adjustment is logged as a warning and appended to
// Config.Diagnostics; none of them is returned as an error.
//
// # Asset References
//
// Relative animation paths are anchored at the directory holding the config
// file and "~" is expanded. References shaped like "scheme:value" (for example
// "spinner:moon") are passed through untouched.
//
// # TOML Format
//
//	enabled = true
//	animationLight = "splash/light.txt"
//	animationDark = "splash/dark.toml"
//	backgroundLight = "#FFFFFF"
//	backgroundDark = "#000000"
//	autoHide = false
//	loop = false
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and parse errors.
package config
