package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/vecmath/internal/config"
	"github.com/Faultbox/vecmath/internal/logger"
	vmath "github.com/Faultbox/vecmath/pkg/math"
)

// ErrUsage marks errors caused by bad command-line arguments.
var ErrUsage = errors.New("usage error")

type command struct {
	nargs int
	run   func(w io.Writer, v []float32, cfg *config.Config) error
}

var commands = map[string]command{
	"angles": {3, cmdAngles},
	"polar":  {3, cmdPolar},
	"frame":  {3, cmdFrame},
	"normal": {3, cmdNormal},
	"mask":   {3, cmdMask},
	"unmask": {1, cmdUnmask},
	"lerp":   {6, cmdLerp},
	"slerp":  {6, cmdSlerp},
	"sphere": {3, cmdSphere},
}

// run dispatches args[0] with the remaining arguments parsed as numbers.
func run(w io.Writer, args []string, cfg *config.Config) error {
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}
	if len(args)-1 != cmd.nargs {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrUsage, name, cmd.nargs, len(args)-1)
	}

	values, err := parseFloats(args[1:])
	if err != nil {
		return err
	}

	logger.Debug("running command", zap.String("command", name), zap.Float32s("args", values))
	return cmd.run(w, values, cfg)
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %w", ErrUsage, i+1, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func vec3(v []float32) vmath.Vec3 {
	return vmath.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func line(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-7s %s\n", label, value)
}

func formatScalar(f float32, precision int) string {
	return vmath.FloatArrayToString([]float32{f}, precision)
}

func cmdAngles(w io.Writer, v []float32, cfg *config.Config) error {
	dir := vec3(v)
	p := cfg.Output.Precision
	line(w, "yaw", formatScalar(dir.ToYaw(), p))
	line(w, "pitch", formatScalar(dir.ToPitch(), p))
	line(w, "angles", dir.ToAngles().ToString(p))
	return nil
}

func cmdPolar(w io.Writer, v []float32, cfg *config.Config) error {
	line(w, "polar", vec3(v).ToPolar().ToString(cfg.Output.Precision))
	return nil
}

func cmdFrame(w io.Writer, v []float32, cfg *config.Config) error {
	m := vec3(v).ToMat3()
	p := cfg.Output.Precision
	line(w, "forward", m[0].ToString(p))
	line(w, "left", m[1].ToString(p))
	line(w, "up", m[2].ToString(p))
	return nil
}

func cmdNormal(w io.Writer, v []float32, cfg *config.Config) error {
	line(w, "normal", vec3(v).ToNormal().ToString(cfg.Output.Precision))
	return nil
}

func cmdMask(w io.Writer, v []float32, _ *config.Config) error {
	mask := vec3(v).DirectionMask()
	line(w, "mask", fmt.Sprintf("%d (%06b)", mask, mask))
	return nil
}

func cmdUnmask(w io.Writer, v []float32, _ *config.Config) error {
	mask := int(v[0])
	if float32(mask) != v[0] || !vmath.ValidDirectionMask(mask) {
		return fmt.Errorf("%w: %v is not a valid direction mask", ErrUsage, v[0])
	}
	line(w, "vector", vmath.Vec3FromDirectionMask(mask).ToString(0))
	return nil
}

func cmdLerp(w io.Writer, v []float32, cfg *config.Config) error {
	from, to := vec3(v[:3]), vec3(v[3:])
	sample(w, cfg, func(t float32) vmath.Vec3 { return from.Lerp(to, t) })
	return nil
}

func cmdSlerp(w io.Writer, v []float32, cfg *config.Config) error {
	from, to := vec3(v[:3]).ToNormal(), vec3(v[3:]).ToNormal()
	if from == vmath.Vec3Origin || to == vmath.Vec3Origin {
		return fmt.Errorf("%w: slerp needs non-zero directions", ErrUsage)
	}
	sample(w, cfg, func(t float32) vmath.Vec3 { return from.SLerp(to, t) })
	return nil
}

// sample prints f at Steps+1 evenly spaced parameters from 0 to 1.
func sample(w io.Writer, cfg *config.Config, f func(t float32) vmath.Vec3) {
	steps := cfg.Interp.Steps
	p := cfg.Output.Precision
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		line(w, formatScalar(t, p), f(t).ToString(p))
	}
}

func cmdSphere(w io.Writer, v []float32, cfg *config.Config) error {
	if v[2] <= 0 {
		return fmt.Errorf("%w: radius must be positive", ErrUsage)
	}
	line(w, "point", vmath.Vec3{X: v[0], Y: v[1]}.ProjectOntoSphere(v[2]).ToString(cfg.Output.Precision))
	return nil
}
