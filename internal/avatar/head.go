package avatar

// Face features use fixed colors; everything else follows the skin palette.
var (
	eyeWhite  = Palette{ID: "eye-white", Base: EyeWhite}
	irisColor = Palette{ID: "iris", Base: Iris}
	lips      = Palette{ID: "mouth", Base: Mouth, Shadow: MouthDark}
	outline   = Palette{ID: "outline", Base: Outline}
)

// head emits the head and face. Its geometry never changes; only the skin
// palette varies.
//
//	x  3 4 5 6 7 8 9 A B C
//	y2   O O O O O O O O
//	y3   O h h h . . s O
//	y4   O . . . . . s O
//	y5 e O W i . . i W O e
//	y6 e O W i . . i W O e
//	y7   O m . n n . m O
//	y8   O . M d d M s O
//	y9   O s s s s s s O
//	y10  O O O O O O O O
func head(skin Palette) []Block {
	var out []Block
	out = append(out, paint(LayerHead, PartHeadOutline, outline,
		shape{4, 2, 8, 9, base},
	)...)
	out = append(out, paint(LayerHead, PartHeadFill, skin,
		shape{5, 3, 6, 7, base},
		shape{5, 3, 3, 1, highlight},
		shape{10, 3, 1, 7, shadow},
		shape{5, 9, 6, 1, shadow},
		shape{5, 7, 1, 1, midtone},
		shape{10, 7, 1, 1, midtone},
	)...)

	// Eyes: 2x2 sclera each, iris on the inner column.
	out = append(out, paint(LayerHead, PartEye, eyeWhite,
		shape{5, 5, 2, 2, base},
		shape{9, 5, 2, 2, base},
	)...)
	out = append(out, paint(LayerHead, PartEye, irisColor,
		shape{6, 5, 1, 2, base},
		shape{9, 5, 1, 2, base},
	)...)

	out = append(out, paint(LayerHead, PartNose, skin, shape{7, 7, 2, 1, shadow})...)
	out = append(out, paint(LayerHead, PartMouth, lips,
		shape{6, 8, 4, 1, base},
		shape{7, 8, 2, 1, shadow},
	)...)
	out = append(out, paint(LayerHead, PartEar, skin,
		shape{3, 5, 1, 2, midtone},
		shape{12, 5, 1, 2, midtone},
	)...)
	return out
}

// neck sits between the chin and the collar.
func neck(skin Palette) []Block {
	return paint(LayerNeck, PartNeck, skin, shape{6, 11, 4, 1, shadow})
}
