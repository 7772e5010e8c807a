package avatar

// legs emits legwear and any exposed skin below it. Karate is the one pose
// that reaches here: it swaps the right leg for a horizontal kick. A dress
// has no separate legs and ignores the kick.
//
//	x  2 3 4 5 6 7 8 9 A B C D
//	y20    w w w w w w w w          jeans: two legs, x4-6 and x9-11
//	y21    L L L . . R R R
//	..
//	y28    L L L . . R R R
func legs(style, pose string, pants, skin Palette) []Block {
	kick := pose == PoseKarate

	switch style {
	case PantsShorts:
		out := paint(LayerLegs, PartGarment, pants,
			shape{4, 20, 8, 2, base},
			shape{4, 22, 3, 2, base},
			shape{4, 23, 3, 1, shadow},
			shape{7, 20, 2, 1, midtone},
		)
		out = append(out, paint(LayerLegs, PartLeftLeg, skin,
			shape{4, 24, 3, 5, base},
			shape{6, 24, 1, 5, shadow},
		)...)
		if kick {
			out = append(out, paint(LayerLegs, PartKickLeg, pants, shape{9, 22, 3, 1, base})...)
			out = append(out, paint(LayerLegs, PartKickLeg, skin,
				shape{12, 21, 4, 2, base},
				shape{12, 22, 4, 1, shadow},
			)...)
			return out
		}
		out = append(out, paint(LayerLegs, PartGarment, pants,
			shape{9, 22, 3, 2, base},
			shape{9, 23, 3, 1, shadow},
		)...)
		return append(out, paint(LayerLegs, PartRightLeg, skin,
			shape{9, 24, 3, 5, base},
			shape{9, 24, 1, 5, shadow},
		)...)

	case PantsSkirt:
		out := paint(LayerLegs, PartGarment, pants,
			shape{4, 20, 8, 2, base},
			shape{3, 22, 10, 2, base},
			shape{5, 22, 1, 2, midtone},
			shape{10, 22, 1, 2, midtone},
			shape{3, 24, 10, 1, shadow},
		)
		out = append(out, paint(LayerLegs, PartLeftLeg, skin,
			shape{5, 25, 2, 4, base},
			shape{6, 25, 1, 4, shadow},
		)...)
		if kick {
			return append(out, paint(LayerLegs, PartKickLeg, skin,
				shape{12, 22, 4, 2, base},
				shape{12, 23, 4, 1, shadow},
			)...)
		}
		return append(out, paint(LayerLegs, PartRightLeg, skin,
			shape{9, 25, 2, 4, base},
			shape{9, 25, 1, 4, shadow},
		)...)

	case PantsDress:
		return paint(LayerLegs, PartGarment, pants,
			shape{4, 20, 8, 2, base},
			shape{3, 22, 10, 3, base},
			shape{2, 25, 12, 4, base},
			shape{4, 20, 8, 1, highlight},
			shape{3, 22, 1, 3, midtone},
			shape{2, 25, 1, 3, midtone},
			shape{12, 22, 1, 3, shadow},
			shape{13, 25, 1, 3, shadow},
			shape{2, 28, 12, 1, shadow},
		)

	default: // jeans
		out := paint(LayerLegs, PartWaist, pants,
			shape{4, 20, 8, 1, midtone},
			shape{7, 20, 2, 1, highlight},
		)
		out = append(out, paint(LayerLegs, PartLeftLeg, pants,
			shape{4, 21, 3, 8, base},
			shape{6, 21, 1, 8, shadow},
			shape{4, 22, 1, 5, highlight},
		)...)
		if kick {
			return append(out, paint(LayerLegs, PartKickLeg, pants,
				shape{9, 21, 3, 3, base},
				shape{12, 21, 4, 2, base},
				shape{9, 23, 7, 1, shadow},
			)...)
		}
		return append(out, paint(LayerLegs, PartRightLeg, pants,
			shape{9, 21, 3, 8, base},
			shape{9, 21, 1, 8, shadow},
			shape{11, 22, 1, 5, highlight},
		)...)
	}
}

// shoes are two two-tone blocks, the same for every pose and legwear.
func shoes(shoe Palette) []Block {
	out := paint(LayerShoes, PartLeftShoe, shoe,
		shape{3, 29, 4, 2, base},
		shape{3, 30, 4, 1, shadow},
	)
	return append(out, paint(LayerShoes, PartRightShoe, shoe,
		shape{9, 29, 4, 2, base},
		shape{9, 30, 4, 1, shadow},
	)...)
}
