package interpreter

import "github.com/rs/zerolog"

// Context stores the robot, the visited cells and the logger for one walk.

type Context struct {
	Robot  *Robot
	Visits *Visits
	Log    zerolog.Logger
}

// NewContext returns the initial walk state: facing North at the origin with
// only the origin visited.
func NewContext(log zerolog.Logger) *Context {
	return &Context{Robot: NewRobot(), Visits: NewVisits(), Log: log}
}

// Exec applies every instruction in order.
func (r *Route) Exec(ctx *Context) error {
	for i, in := range r.Instructions {
		if err := ctx.Step(in); err != nil {
			ctx.Log.Error().Err(err).Int("index", i).Stringer("instruction", in).Msg("walk aborted")
			return err
		}
	}
	return nil
}

// Step applies a single instruction and updates the visited cells.
func (ctx *Context) Step(in Instruction) error {
	path, err := ctx.Robot.Follow(in)
	if err != nil {
		return err
	}
	if ctx.Visits.Record(path) {
		dup, _ := ctx.Visits.FirstDuplicate()
		ctx.Log.Info().Stringer("position", dup).Int("distance", dup.Distance()).Msg("first location visited twice")
	}
	ctx.Log.Debug().
		Stringer("instruction", in).
		Stringer("heading", ctx.Robot.Heading).
		Stringer("position", ctx.Robot.Pos).
		Int("visited", ctx.Visits.Len()).
		Msg("step")
	return nil
}

// Report summarises the walk so far.
func (ctx *Context) Report() Report {
	rep := Report{Final: ctx.Robot.Pos}
	if dup, ok := ctx.Visits.FirstDuplicate(); ok {
		rep.Duplicate = &dup
	}
	return rep
}

// Simulate walks the whole route from the initial state.
func Simulate(r *Route, log zerolog.Logger) (Report, error) {
	ctx := NewContext(log)
	if err := r.Exec(ctx); err != nil {
		return Report{}, err
	}
	return ctx.Report(), nil
}
