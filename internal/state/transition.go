package state

// Step applies ev to ctx and returns the next context together with the
// segments that must be drawn, in order. color is the active color at the
// moment of the event; each segment takes it as-is.
func Step(ctx Context, ev Event, color string) (Context, []Segment) {
	switch ev.Kind {
	case PointerDown:
		return Context{
			Active:   true,
			Last:     ev.At,
			HasLast:  true,
			StrokeID: ev.StrokeID,
		}, nil

	case PointerMove:
		if !ctx.Active || !ctx.HasLast {
			return ctx, nil
		}
		seg := Segment{
			StrokeID: ctx.StrokeID,
			From:     ctx.Last,
			To:       ev.At,
			Color:    color,
			Width:    StrokeWidth,
		}
		ctx.Last = ev.At
		return ctx, []Segment{seg}

	case PointerUp, PointerLeave:
		// Last is kept but unused until the next PointerDown.
		ctx.Active = false
		return ctx, nil
	}
	return ctx, nil
}

// Replay folds events through Step with a fixed color, starting from an idle
// context.
func Replay(events []Event, color string) (Context, []Segment) {
	var (
		ctx  Context
		segs []Segment
	)
	for _, ev := range events {
		var out []Segment
		ctx, out = Step(ctx, ev, color)
		segs = append(segs, out...)
	}
	return ctx, segs
}
