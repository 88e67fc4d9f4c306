package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; every entity is spawned on it.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	FPS        int
	Fullscreen bool
	Host       string // "ebiten" or "term"
	Debug      bool   // outline collision shapes
}

// PaddleConfig holds the geometry of both paddles. The paddles are
// deliberately asymmetric: the right one is twice as tall as the left.
type PaddleConfig struct {
	Width       int
	LeftHeight  int
	RightHeight int
	LeftX       int
	RightX      int
	LeftStep    int
	RightStep   int

	// Rows at each end drawn in the end color: max(1, height/EndCapDivisor)
	EndCapDivisor int
}

// BallConfig contains ball kinematics
type BallConfig struct {
	Diameter   int
	VX         int
	VY         int
	Multiplier float64 // applied to both axes on every paddle hit
	SlowStart  float64 // serve velocity divisor
	MaxSpeed   int     // per-axis cap, keeps the ball from skipping a paddle
}

// DividerConfig describes the dashed center line
type DividerConfig struct {
	Width    int
	Segments int
}

// DisplayConfig describes the score digits
type DisplayConfig struct {
	Coefficient int // DC: unit used to size and place digit glyphs
	GlyphCols   int
	GlyphRows   int
	Spacing     int // gap between glyphs, in DC units
}

// MatchConfig contains match rules and frame error tolerance
type MatchConfig struct {
	PointsToWin int

	// DrawFailureLimit failures within DrawFailureWindow frames are fatal.
	// The window is one second of frames.
	DrawFailureLimit  int
	DrawFailureWindow int

	// Seconds for one on/off cycle of the winner's digits
	WinBlinkPeriod float32
}

// ColorConfig holds every color drawn by the game
type ColorConfig struct {
	Background color.RGBA
	Paddle     color.RGBA
	PaddleEnd  color.RGBA
	Divider    color.RGBA
	Ball       color.RGBA
	Display    color.RGBA

	// Collision outlines drawn in debug mode
	DebugPaddle color.RGBA
	DebugBall   color.RGBA
	DebugOther  color.RGBA
}

// TerminalLogFile takes warnings and errors under the terminal host when no
// log file is given, since stderr is the game screen there.
const TerminalLogFile = "pong.log"

// LogConfig configures the logger package
type LogConfig struct {
	Level      string
	File       string // empty logs to stderr
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Global configuration instances
var C *Config
var Paddle PaddleConfig
var Ball BallConfig
var Divider DividerConfig
var Display DisplayConfig
var Match MatchConfig
var Colors ColorConfig
var Log LogConfig

func init() {
	C = &Config{
		Width:  1920,
		Height: 1080,
		FPS:    60,
		Host:   "ebiten",
	}

	Ball = BallConfig{
		Multiplier: 2.0,
		SlowStart:  1.5,
	}

	Divider = DividerConfig{
		Segments: 32,
	}

	Display = DisplayConfig{
		GlyphCols: 5,
		GlyphRows: 7,
		Spacing:   1,
	}

	Paddle = PaddleConfig{
		EndCapDivisor: 16,
	}

	Match = MatchConfig{
		PointsToWin:       5,
		DrawFailureLimit: 3,
		WinBlinkPeriod:   0.5,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Paddle:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		PaddleEnd:  color.RGBA{R: 127, G: 127, B: 127, A: 255},
		Divider:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Ball:       color.RGBA{R: 255, G: 255, B: 0, A: 255},
		Display:    color.RGBA{R: 191, G: 191, B: 191, A: 255},

		DebugPaddle: color.RGBA{R: 0, G: 0, B: 255, A: 255},   // Blue
		DebugBall:   color.RGBA{R: 255, G: 0, B: 0, A: 255},   // Red
		DebugOther:  color.RGBA{R: 0, G: 255, B: 255, A: 255}, // Cyan
	}

	Log = LogConfig{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}

	Derive()
}

// Derive recomputes every value that depends on C.Width, C.Height or C.FPS.
func Derive() {
	w, h := C.Width, C.Height

	Match.DrawFailureWindow = C.FPS

	Paddle.Width = w / 64
	Paddle.LeftHeight = h / 8
	Paddle.RightHeight = h / 4
	Paddle.LeftX = w/16 - Paddle.Width/2
	Paddle.RightX = (w - w/16) - Paddle.Width/2
	Paddle.LeftStep = Paddle.LeftHeight / 8
	Paddle.RightStep = Paddle.RightHeight / 8

	Ball.Diameter = (w + h) / 140
	Ball.VX = w / 100
	Ball.VY = Ball.VX
	Ball.MaxSpeed = Ball.Diameter - 1

	Divider.Width = w / 160

	Display.Coefficient = (w + h) / 90
}
