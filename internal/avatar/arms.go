package avatar

// segment is the part of an arm a shape covers; it decides whether the
// shape is drawn in shirt or skin colors.
type segment int

const (
	segUpper segment = iota
	segLower
	segHand
)

type armShape struct {
	shape
	seg segment
}

// armLayout is one pose: each side is authored on its own because most
// poses are asymmetric.
type armLayout struct {
	left, right []armShape
}

func upper(x, y, w, h int, t tone) armShape { return armShape{shape{x, y, w, h, t}, segUpper} }
func lower(x, y, w, h int, t tone) armShape { return armShape{shape{x, y, w, h, t}, segLower} }
func hand(x, y, w, h int) armShape { return armShape{shape{x, y, w, h, base}, segHand} }

var idleLeft = []armShape{
	upper(2, 12, 2, 4, base),
	upper(3, 12, 1, 4, shadow),
	lower(2, 16, 2, 3, base),
	lower(3, 16, 1, 3, shadow),
	hand(2, 19, 2, 1),
}

var idleRight = []armShape{
	upper(12, 12, 2, 4, base),
	upper(12, 12, 1, 4, shadow),
	lower(12, 16, 2, 3, base),
	lower(12, 16, 1, 3, shadow),
	hand(12, 19, 2, 1),
}

var armLayouts = map[string]armLayout{
	PoseIdle: {left: idleLeft, right: idleRight},

	// Right arm raised beside the head, open palm.
	PoseWaving: {
		left: idleLeft,
		right: []armShape{
			upper(12, 9, 2, 4, base),
			upper(12, 9, 1, 4, shadow),
			lower(14, 5, 2, 4, base),
			lower(14, 5, 1, 4, shadow),
			hand(14, 2, 2, 3),
		},
	},

	// Both arms up, palms flat against the ceiling.
	PoseRaisingRoof: {
		left: []armShape{
			upper(2, 9, 2, 4, base),
			upper(3, 9, 1, 4, shadow),
			lower(1, 5, 2, 4, base),
			lower(2, 5, 1, 4, shadow),
			hand(0, 4, 3, 1),
		},
		right: []armShape{
			upper(12, 9, 2, 4, base),
			upper(12, 9, 1, 4, shadow),
			lower(13, 5, 2, 4, base),
			lower(13, 5, 1, 4, shadow),
			hand(13, 4, 3, 1),
		},
	},

	// Elbows out at shoulder height; left forearm down, right forearm up.
	PoseRobot: {
		left: []armShape{
			upper(1, 12, 3, 2, base),
			upper(1, 13, 3, 1, shadow),
			lower(0, 14, 2, 4, base),
			lower(1, 14, 1, 4, shadow),
			hand(0, 18, 2, 1),
		},
		right: []armShape{
			upper(12, 12, 3, 2, base),
			upper(12, 13, 3, 1, shadow),
			lower(14, 8, 2, 4, base),
			lower(14, 8, 1, 4, shadow),
			hand(14, 7, 2, 1),
		},
	},

	// Arms straight out to the canvas edge.
	PoseTPose: {
		left: []armShape{
			upper(2, 12, 2, 2, base),
			lower(1, 12, 1, 2, base),
			upper(2, 13, 2, 1, shadow),
			lower(1, 13, 1, 1, shadow),
			hand(0, 12, 1, 2),
		},
		right: []armShape{
			upper(12, 12, 2, 2, base),
			lower(14, 12, 1, 2, base),
			upper(12, 13, 2, 1, shadow),
			lower(14, 13, 1, 1, shadow),
			hand(15, 12, 1, 2),
		},
	},

	// Left fist punches across the body; right forearm up in guard.
	PoseKarate: {
		left: []armShape{
			upper(2, 12, 2, 3, base),
			upper(3, 12, 1, 3, shadow),
			lower(3, 15, 3, 2, base),
			lower(3, 16, 3, 1, shadow),
			hand(6, 15, 2, 2),
		},
		right: []armShape{
			upper(12, 12, 2, 3, base),
			upper(12, 12, 1, 3, shadow),
			lower(13, 9, 2, 3, base),
			lower(13, 9, 1, 3, shadow),
			hand(13, 7, 2, 2),
		},
	},
}

// arms emits exactly one layout per side. Tank tops show bare skin for the
// whole arm in every pose; otherwise the sleeve length decides which
// segments take the shirt palette.
func arms(pose string, sl sleeve, shirt, skin Palette) []Block {
	layout, ok := armLayouts[pose]
	if !ok {
		layout = armLayouts[PoseIdle]
	}

	colorFor := func(seg segment) Palette {
		if sl == sleeveNone {
			return skin
		}
		switch seg {
		case segUpper:
			return shirt
		case segLower:
			if sl == sleeveLong {
				return shirt
			}
		}
		return skin
	}

	var out []Block
	for _, side := range []struct {
		part   Part
		shapes []armShape
	}{
		{PartLeftArm, layout.left},
		{PartRightArm, layout.right},
	} {
		for _, s := range side.shapes {
			out = append(out, paint(LayerArms, side.part, colorFor(s.seg), s.shape)...)
		}
	}
	return out
}
