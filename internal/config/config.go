// Package config provides YAML-based configuration loading for the puzzle
// and its front ends.
package config

// FifteenConfig contains all configuration for the sliding puzzle.
type FifteenConfig struct {
	Shuffle ShuffleConfig `yaml:"shuffle"`
	Display DisplayConfig `yaml:"display"`
	SSH     SSHConfig     `yaml:"ssh"`
	Web     WebConfig     `yaml:"web"`
}

// ShuffleConfig controls how boards are shuffled.
type ShuffleConfig struct {
	Policy  string `yaml:"policy"`   // "uniform" or "solvable"
	OnStart bool   `yaml:"on_start"` // Shuffle right away instead of showing the solved board
}

// DisplayConfig controls the terminal and browser presentation.
type DisplayConfig struct {
	WinMessage     string `yaml:"win_message"`
	InPlaceColor   string `yaml:"in_place_color"`  // Tiles sitting on their goal slot
	MisplacedColor string `yaml:"misplaced_color"` // Every other tile
	CursorColor    string `yaml:"cursor_color"`
	ShowHelp       bool   `yaml:"show_help"`
}

// SSHConfig holds defaults for the SSH server.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleMinutes int    `yaml:"idle_minutes"`
}

// WebConfig holds defaults for the browser front end.
type WebConfig struct {
	Address string `yaml:"address"`
}

// ShufflePolicy values accepted in YAML.
const (
	PolicyUniform  = "uniform"
	PolicySolvable = "solvable"
)

// fillDefaults copies default values into fields left empty by a partial file.
func (c *FifteenConfig) fillDefaults() {
	d := DefaultFifteenConfig()

	if c.Shuffle.Policy != PolicyUniform && c.Shuffle.Policy != PolicySolvable {
		c.Shuffle.Policy = d.Shuffle.Policy
	}
	if c.Display.WinMessage == "" {
		c.Display.WinMessage = d.Display.WinMessage
	}
	if c.Display.InPlaceColor == "" {
		c.Display.InPlaceColor = d.Display.InPlaceColor
	}
	if c.Display.MisplacedColor == "" {
		c.Display.MisplacedColor = d.Display.MisplacedColor
	}
	if c.Display.CursorColor == "" {
		c.Display.CursorColor = d.Display.CursorColor
	}
	if c.SSH.Address == "" {
		c.SSH.Address = d.SSH.Address
	}
	if c.SSH.IdleMinutes <= 0 {
		c.SSH.IdleMinutes = d.SSH.IdleMinutes
	}
	if c.Web.Address == "" {
		c.Web.Address = d.Web.Address
	}
}
