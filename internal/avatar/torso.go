package avatar

// sleeve is how much of the arm a shirt covers.
type sleeve int

const (
	sleeveNone  sleeve = iota // bare arms
	sleeveShort               // upper arm covered
	sleeveLong                // covered down to the wrist
)

// sleeveFor returns the sleeve length of a shirt style.
func sleeveFor(style string) sleeve {
	switch style {
	case ShirtTank:
		return sleeveNone
	case ShirtHoodie, ShirtSweater, ShirtFlannel:
		return sleeveLong
	default:
		return sleeveShort
	}
}

// torso emits the shared torso outline and fill, then the style's detail.
//
//	x  4 5 6 7 8 9 A B
//	y12 S c c c c c c S   c = collar/neckline (style)
//	y13 S h . . . . s S
//	..
//	y18 S m m m m m m S
//	y19 S S S S S S S S
func torso(style string, shirt, skin Palette) []Block {
	out := paint(LayerTorso, PartTorso, shirt,
		shape{4, 12, 8, 8, shadow},
		shape{5, 12, 6, 7, base},
		shape{5, 13, 1, 5, highlight},
		shape{10, 13, 1, 6, shadow},
		shape{5, 18, 6, 1, midtone},
	)

	switch style {
	case ShirtPolo:
		out = append(out, paint(LayerTorso, PartShirtDetail, shirt,
			shape{5, 12, 2, 1, highlight},
			shape{9, 12, 2, 1, highlight},
			shape{6, 13, 1, 1, shadow},
			shape{9, 13, 1, 1, shadow},
			shape{7, 12, 2, 3, midtone},
			shape{8, 13, 1, 1, highlight},
			shape{8, 14, 1, 1, highlight},
		)...)
	case ShirtHoodie:
		out = append(out, paint(LayerTorso, PartShirtDetail, shirt,
			shape{5, 12, 6, 1, shadow},
			shape{4, 12, 1, 2, midtone},
			shape{11, 12, 1, 2, midtone},
			shape{6, 13, 1, 3, highlight},
			shape{9, 13, 1, 3, highlight},
			shape{6, 16, 4, 2, midtone},
			shape{6, 16, 4, 1, shadow},
		)...)
	case ShirtSweater:
		out = append(out, paint(LayerTorso, PartShirtDetail, shirt,
			shape{6, 12, 4, 1, shadow},
			shape{5, 14, 6, 1, midtone},
			shape{5, 16, 6, 1, midtone},
			shape{4, 19, 8, 1, shadow},
		)...)
	case ShirtTank:
		// Shoulders and the scoop neck show skin; only the straps remain.
		out = append(out, paint(LayerTorso, PartShirtDetail, skin,
			shape{4, 12, 2, 1, base},
			shape{10, 12, 2, 1, base},
			shape{7, 12, 2, 1, shadow},
		)...)
		out = append(out, paint(LayerTorso, PartShirtDetail, shirt,
			shape{6, 12, 1, 1, highlight},
			shape{9, 12, 1, 1, highlight},
		)...)
	case ShirtFlannel:
		out = append(out, paint(LayerTorso, PartShirtDetail, shirt,
			shape{5, 12, 2, 1, shadow},
			shape{9, 12, 2, 1, shadow},
			shape{6, 13, 1, 6, shadow},
			shape{9, 13, 1, 6, shadow},
			shape{5, 15, 6, 1, midtone},
			shape{8, 13, 1, 5, highlight},
		)...)
	default: // tshirt
		out = append(out, paint(LayerTorso, PartShirtDetail, shirt,
			shape{6, 12, 4, 1, shadow},
		)...)
	}
	return out
}
