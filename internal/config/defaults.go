package config

import (
	_ "embed"
)

//go:embed defaults/fifteen.yaml
var defaultFifteenYAML []byte

// DefaultWinMessage is shown once a move completes the puzzle.
const DefaultWinMessage = "Congratulations! You've solved the puzzle!"

// DefaultFifteenConfig returns the default puzzle configuration.
func DefaultFifteenConfig() FifteenConfig {
	return FifteenConfig{
		Shuffle: ShuffleConfig{
			Policy:  PolicyUniform,
			OnStart: false,
		},
		Display: DisplayConfig{
			WinMessage:     DefaultWinMessage,
			InPlaceColor:   "bright_green",
			MisplacedColor: "bright_white",
			CursorColor:    "bright_yellow",
			ShowHelp:       true,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleMinutes: 30,
		},
		Web: WebConfig{
			Address: ":8080",
		},
	}
}
