package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys understood by Load. Each is also a command line flag and, upper cased
// with a PONG_ prefix, an environment variable (PONG_LOG_LEVEL).
const (
	KeyHost       = "host"
	KeyFullscreen = "fullscreen"
	KeyPoints     = "points"
	KeyFPS        = "fps"
	KeyDebug      = "debug"
	KeyLogLevel   = "log-level"
	KeyLogFile    = "log-file"
)

// Flags returns the command line flags Load knows how to bind. None of them
// are required.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pong", pflag.ContinueOnError)
	fs.String("config", "", "optional config file (yaml, toml, json or properties)")
	fs.String(KeyHost, C.Host, "graphics host: ebiten or term")
	fs.Bool(KeyFullscreen, C.Fullscreen, "start fullscreen")
	fs.Int(KeyPoints, Match.PointsToWin, "points needed to win a match")
	fs.Int(KeyFPS, C.FPS, "frames per second")
	fs.Bool(KeyDebug, C.Debug, "outline collision shapes")
	fs.String(KeyLogLevel, Log.Level, "log level: trace, debug, info, warn, error")
	fs.String(KeyLogFile, Log.File, "write JSON logs to this rotating file instead of stderr (term host default: warnings and errors to "+TerminalLogFile+")")
	return fs
}

// Load overlays the defaults with values from an optional config file, the
// environment and flags, in increasing order of precedence.
func Load(path string, flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix("PONG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyHost, C.Host)
	v.SetDefault(KeyFullscreen, C.Fullscreen)
	v.SetDefault(KeyPoints, Match.PointsToWin)
	v.SetDefault(KeyFPS, C.FPS)
	v.SetDefault(KeyDebug, C.Debug)
	v.SetDefault(KeyLogLevel, Log.Level)
	v.SetDefault(KeyLogFile, Log.File)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	points, err := cast.ToIntE(v.Get(KeyPoints))
	if err != nil {
		return fmt.Errorf("%s: %w", KeyPoints, err)
	}
	fps, err := cast.ToIntE(v.Get(KeyFPS))
	if err != nil {
		return fmt.Errorf("%s: %w", KeyFPS, err)
	}
	fullscreen, err := cast.ToBoolE(v.Get(KeyFullscreen))
	if err != nil {
		return fmt.Errorf("%s: %w", KeyFullscreen, err)
	}
	debug, err := cast.ToBoolE(v.Get(KeyDebug))
	if err != nil {
		return fmt.Errorf("%s: %w", KeyDebug, err)
	}

	host := strings.ToLower(cast.ToString(v.Get(KeyHost)))
	switch host {
	case "ebiten", "term":
	default:
		return fmt.Errorf("%s: unknown host %q", KeyHost, host)
	}
	if points < 1 || points > 99 {
		return fmt.Errorf("%s: %d out of range [1, 99]", KeyPoints, points)
	}
	if fps < 1 {
		return fmt.Errorf("%s: %d must be positive", KeyFPS, fps)
	}

	C.Host = host
	C.Fullscreen = fullscreen
	C.FPS = fps
	C.Debug = debug
	Match.PointsToWin = points
	Log.Level = cast.ToString(v.Get(KeyLogLevel))
	Log.File = cast.ToString(v.Get(KeyLogFile))

	Derive()
	return nil
}
