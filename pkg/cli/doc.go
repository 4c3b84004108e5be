// Package cli holds the terminal plumbing shared by soundscore commands.
//
// This package includes:
//   - Config file loading (YAML/JSON) with unknown-key rejection
//   - Run summary output (YAML, JSON, table)
//   - Table styles built on lipgloss
//   - Human-readable duration and size formatting
//
// Example usage:
//
//	cfg := audioscore.DefaultConfig()
//	if err := cli.LoadFile("soundscore.yaml", &cfg); err != nil { ... }
//
//	cli.Output(report, cli.OutputOptions{Format: cli.FormatTable})
package cli
