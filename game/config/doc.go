// Package config provides the configuration manager for the snake
// game. It loads the JSON settings file defined by engine.Config and
// degrades to the built-in defaults when loading fails, so a missing or
// corrupt settings file never prevents the game from starting.
package config
