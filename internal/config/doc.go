// Package config resolves bratus settings from flags, environment and an
// optional YAML file.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags given explicitly (--color-free, --format, ...)
//  2. Environment variables (BRATUS_COLOR_*, BRATUS_FORMAT, NO_COLOR)
//  3. YAML config file (--config, ./.bratus.yaml or $XDG_CONFIG_HOME/bratus/config.yaml)
//  4. Hardcoded defaults (no colors, bar format, dedup on)
//
// Every color, whatever its source, must be empty or #RRGGBB. A bad value is
// a startup error that names where it came from.
//
// # Environment Variables
//
//   - BRATUS_COLOR_MONITOR, BRATUS_COLOR_FREE, BRATUS_COLOR_OCCUPIED,
//     BRATUS_COLOR_URGENT, BRATUS_COLOR_STATE: category colors
//   - BRATUS_FORMAT: auto, bar or terminal
//   - NO_COLOR: any non-empty value drops colors not given on the command line
//     from terminal output; bar markup is kept
//   - BRATUS_DEBUG: any non-empty value enables debug output
//
// # File Format
//
//	colors:
//	  monitor: "#ffffff"
//	  free: "#6c6c6c"
//	  occupied: "#a0a0a0"
//	  urgent: "#ff5555"
//	  state: "#8be9fd"
//	format: bar
//	max_label_width: 12
//	label_case: upper
//	dedup: true
package config
