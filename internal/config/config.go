/*
Package config holds the application settings.  Defaults are built in;
Setup overlays an optional TOML file on top of them.
*/
package config

import "github.com/BurntSushi/toml"

// Settings is the global application configuration.  Read-only after Setup.
var Settings = Conf{
	Search: searchConf{Depth: 3},
	// 4 == INFO in go-logging levels.
	Log: logConf{Level: 4},
	UI:  uiConf{Unicode: true, Color: true},
}

// Conf bundles every configurable knob of the program.
type Conf struct {
	Search searchConf
	Log    logConf
	UI     uiConf
}

type searchConf struct {
	// Depth is the fixed search depth in plies.  There is no time
	// management; callers wanting a time budget must bound the depth.
	Depth int
}

type logConf struct {
	// Level follows go-logging numeric levels, CRITICAL (0) to DEBUG (5).
	Level int
}

type uiConf struct {
	// Unicode selects chess figurines over ASCII letters on the rendered
	// board.
	Unicode bool
	// Color enables colored terminal output.
	Color bool
}

// Setup reads the TOML file at the given path into Settings.  An empty path
// keeps the defaults.
func Setup(path string) error {
	if path == "" {
		return nil
	}
	_, err := toml.DecodeFile(path, &Settings)
	return err
}
