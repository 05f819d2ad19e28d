package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one rejected field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks that the tuning describes a playable game.
// All problems are reported together.
func (c CatchConfig) Validate() error {
	var errs []error
	positive := func(field string, v float64) {
		if v <= 0 {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("must be positive, got %g", v)})
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("playfield.ground_y", c.Playfield.GroundY)
	positive("basket.width", c.Basket.Width)
	positive("basket.height", c.Basket.Height)
	positive("basket.speed", c.Basket.Speed)
	positive("apples.size", c.Apples.Size)
	positive("difficulty.initial_fall_speed", c.Difficulty.InitialFallSpeed)
	positive("difficulty.initial_spawn_interval", c.Difficulty.InitialSpawnInterval)
	positive("difficulty.min_spawn_interval", c.Difficulty.MinSpawnInterval)

	if c.Playfield.GroundY > c.Playfield.Height {
		errs = append(errs, ValidationError{Field: "playfield.ground_y", Message: "must not be below the playfield"})
	}
	if c.Basket.Margin < 0 || c.Basket.Width+2*c.Basket.Margin > c.Playfield.Width {
		errs = append(errs, ValidationError{Field: "basket.margin", Message: "basket and margins must fit the playfield width"})
	}
	if c.Apples.SpawnMargin < 0 || c.Apples.Size+2*c.Apples.SpawnMargin > c.Playfield.Width {
		errs = append(errs, ValidationError{Field: "apples.spawn_margin", Message: "apple and margins must fit the playfield width"})
	}
	if c.Apples.SpawnY+c.Apples.Size >= c.Playfield.GroundY {
		errs = append(errs, ValidationError{Field: "apples.spawn_y", Message: "apples must spawn above the ground line"})
	}
	if c.Apples.SpeedJitter < 0 {
		errs = append(errs, ValidationError{Field: "apples.speed_jitter", Message: "must not be negative"})
	}
	if c.Difficulty.PointsPerLevel <= 0 {
		errs = append(errs, ValidationError{Field: "difficulty.points_per_level", Message: "must be positive"})
	}
	if c.Difficulty.FallSpeedStep < 0 || c.Difficulty.SpawnIntervalStep < 0 {
		errs = append(errs, ValidationError{Field: "difficulty", Message: "steps must not be negative"})
	}
	if c.Difficulty.MinSpawnInterval > c.Difficulty.InitialSpawnInterval {
		errs = append(errs, ValidationError{Field: "difficulty.min_spawn_interval", Message: "must not exceed initial_spawn_interval"})
	}
	if c.Session.Lives <= 0 {
		errs = append(errs, ValidationError{Field: "session.lives", Message: "must be positive"})
	}
	if c.Input.FirstRepeatMS < 0 {
		errs = append(errs, ValidationError{Field: "input.first_repeat_ms", Message: "must not be negative"})
	}
	if c.Input.HoldTimeoutMS < 0 {
		errs = append(errs, ValidationError{Field: "input.hold_timeout_ms", Message: "must not be negative"})
	}

	return errors.Join(errs...)
}
