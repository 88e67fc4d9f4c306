package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReset restarts the match on the frame the reset key goes down.
// Must run before paddles and ball move.
func UpdateReset(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionReset).JustPressed {
		return
	}
	if err := ResetMatch(ecs); err != nil {
		if match := GetMatch(ecs); match != nil {
			match.Fault = err
		}
	}
}

// ResetMatch puts ball, paddles and score back to the start of a match and
// gives it a new id.
func ResetMatch(ecs *ecs.ECS) error {
	match := GetMatch(ecs)
	score := GetScore(ecs)
	if match == nil || score == nil {
		return nil
	}
	if err := score.Reset(); err != nil {
		return err
	}

	resetPaddles(ecs)
	serveBall(ecs, cfg.SideRight)

	previous := match.ID
	*match = components.MatchData{
		ID:      uuid.New(),
		State:   cfg.MatchStatePlaying,
		Winner:  cfg.SideNone,
		Scored:  cfg.SideNone,
		BlinkOn: true,
	}

	logrus.WithFields(logrus.Fields{
		"match":    match.ID,
		"previous": previous,
	}).Info("match reset")
	return nil
}

// UpdateMatch counts the point scored this frame, if any, and ends the match
// when a side reaches cfg.Match.PointsToWin.
func UpdateMatch(ecs *ecs.ECS) {
	match := GetMatch(ecs)
	if match == nil {
		return
	}

	if match.IsWon() {
		updateBlink(match)
		return
	}
	match.Frame++

	side := match.Scored
	if side == cfg.SideNone {
		return
	}
	match.Scored = cfg.SideNone

	score := GetScore(ecs)
	if err := score.Increment(side); err != nil {
		match.Fault = err
		return
	}

	log := logrus.WithFields(logrus.Fields{
		"match": match.ID,
		"side":  side.String(),
		"left":  score.Left(),
		"right": score.Right(),
		"frame": match.Frame,
	})

	if score.Points(side) >= cfg.Match.PointsToWin {
		match.State = cfg.MatchStateWon
		match.Winner = side
		match.Blink = newBlink()
		match.BlinkOn = true
		if ball := GetBall(ecs); ball != nil {
			center(ball)
			syncBall(ecs)
		}
		log.Info("match won")
		return
	}

	serveBall(ecs, side.Opponent())
	log.Info("point scored")
}

// newBlink fades from on to off and back over one blink period.
func newBlink() *gween.Sequence {
	half := cfg.Match.WinBlinkPeriod / 2
	seq := gween.NewSequence()
	seq.Add(
		gween.New(1, 0, half, ease.Linear),
		gween.New(0, 1, half, ease.Linear),
	)
	return seq
}

func updateBlink(match *components.MatchData) {
	if match.Blink == nil {
		match.BlinkOn = true
		return
	}
	v, _, done := match.Blink.Update(1 / float32(cfg.C.FPS))
	if done {
		match.Blink.Reset()
	}
	match.BlinkOn = v >= 0.5
}

// serveBall serves toward side and moves the ball's collision shape with it.
func serveBall(ecs *ecs.ECS, toward cfg.SideID) {
	ball := GetBall(ecs)
	if ball == nil {
		return
	}
	Serve(ball, toward)
	syncBall(ecs)

	logrus.WithFields(logrus.Fields{
		"toward": toward.String(),
		"vx":     ball.VX,
		"vy":     ball.VY,
	}).Debug("serve")
}

func syncBall(ecs *ecs.ECS) {
	if entry, ok := tags.Ball.First(ecs.World); ok {
		ball := components.Ball.Get(entry)
		components.Object.Get(entry).Sync(ball.X, ball.Y)
	}
}

// GetMatch returns the match singleton, or nil if it has not been created.
func GetMatch(ecs *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

// GetScore returns the score display, or nil if it has not been created.
func GetScore(ecs *ecs.ECS) *components.ScoreData {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Score.Get(entry)
}
