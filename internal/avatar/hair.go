package avatar

// Hairstyles are hand-authored layouts, one literal table per style. They
// share no geometry on purpose: each reads as a separate drawing.

// hairBackLayouts are drawn before the head so strands fall from behind the
// skull. Only long and dreads have one.
var hairBackLayouts = map[string][]shape{
	HairLong: {
		{3, 2, 10, 13, base},
		{3, 9, 1, 6, shadow},
		{12, 9, 1, 6, shadow},
		{4, 14, 8, 1, midtone},
	},
	HairDreads: {
		{3, 4, 1, 11, shadow},
		{4, 9, 1, 7, base},
		{11, 9, 1, 7, base},
		{12, 4, 1, 11, shadow},
		{5, 10, 1, 4, midtone},
		{10, 10, 1, 4, midtone},
	},
}

// hairFrontLayouts are drawn over the head. Bald has no entry.
var hairFrontLayouts = map[string][]shape{
	HairShort: {
		{4, 1, 8, 2, base},
		{6, 1, 3, 1, highlight},
		{4, 3, 1, 2, shadow},
		{11, 3, 1, 2, shadow},
		{5, 3, 4, 1, midtone},
	},
	HairMedium: {
		{4, 1, 8, 2, base},
		{3, 2, 2, 6, base},
		{11, 2, 2, 6, base},
		{5, 3, 6, 1, midtone},
		{3, 6, 1, 2, shadow},
		{12, 6, 1, 2, shadow},
		{6, 1, 2, 1, highlight},
	},
	HairLong: {
		{4, 1, 8, 2, base},
		{5, 3, 6, 1, midtone},
		{3, 3, 2, 9, base},
		{11, 3, 2, 9, base},
		{3, 8, 1, 4, shadow},
		{12, 8, 1, 4, shadow},
		{6, 1, 3, 1, highlight},
		{4, 3, 1, 3, highlight},
	},
	HairCurly: {
		{4, 1, 8, 2, base},
		{5, 0, 2, 1, base},
		{9, 0, 2, 1, base},
		{3, 2, 2, 3, base},
		{11, 2, 2, 3, base},
		{5, 3, 2, 1, midtone},
		{9, 3, 2, 1, midtone},
		{3, 4, 1, 2, shadow},
		{12, 4, 1, 2, shadow},
		{5, 1, 1, 1, highlight},
		{8, 1, 1, 1, highlight},
		{10, 2, 1, 1, highlight},
	},
	HairAfro: {
		{4, 0, 8, 1, base},
		{2, 1, 12, 3, base},
		{2, 4, 2, 5, base},
		{12, 4, 2, 5, base},
		{5, 3, 6, 1, midtone},
		{2, 7, 1, 2, shadow},
		{13, 7, 1, 2, shadow},
		{5, 1, 2, 1, highlight},
		{9, 1, 1, 1, highlight},
		{3, 2, 1, 1, highlight},
	},
	HairDreads: {
		{4, 1, 8, 2, base},
		{3, 2, 2, 3, base},
		{11, 2, 2, 3, base},
		{3, 5, 1, 5, base},
		{12, 5, 1, 5, base},
		{4, 5, 1, 3, shadow},
		{11, 5, 1, 3, shadow},
		{5, 3, 1, 2, midtone},
		{7, 3, 1, 1, midtone},
		{10, 3, 1, 2, midtone},
		{5, 1, 1, 1, highlight},
		{7, 1, 1, 1, highlight},
		{9, 1, 1, 1, highlight},
	},
	HairPonytail: {
		{4, 1, 8, 2, base},
		{5, 3, 6, 1, midtone},
		{4, 3, 1, 2, shadow},
		{11, 3, 1, 2, shadow},
		{12, 2, 1, 1, highlight},
		{13, 2, 2, 2, base},
		{13, 4, 2, 4, base},
		{14, 6, 1, 2, shadow},
		{14, 8, 1, 2, midtone},
		{6, 1, 2, 1, highlight},
	},
	HairBun: {
		{4, 2, 8, 1, base},
		{4, 3, 1, 2, base},
		{11, 3, 1, 2, base},
		{5, 3, 6, 1, midtone},
		{6, 0, 4, 2, base},
		{7, 0, 1, 1, highlight},
		{9, 1, 1, 1, shadow},
		{6, 2, 4, 1, shadow},
	},
	HairSpiky: {
		{4, 2, 8, 1, base},
		{4, 1, 1, 1, base},
		{6, 0, 1, 2, base},
		{8, 0, 1, 2, base},
		{10, 0, 1, 2, base},
		{11, 1, 1, 1, base},
		{6, 0, 1, 1, highlight},
		{8, 0, 1, 1, highlight},
		{4, 3, 1, 1, shadow},
		{11, 3, 1, 1, shadow},
		{5, 3, 2, 1, midtone},
		{9, 3, 2, 1, midtone},
	},
	HairMohawk: {
		{7, 0, 2, 3, base},
		{7, 0, 1, 2, highlight},
		{8, 2, 1, 1, shadow},
		{4, 2, 3, 1, midtone},
		{9, 2, 3, 1, midtone},
	},
	HairPigtails: {
		{4, 1, 8, 2, base},
		{5, 3, 6, 1, midtone},
		{4, 3, 1, 2, shadow},
		{11, 3, 1, 2, shadow},
		{1, 3, 2, 5, base},
		{13, 3, 2, 5, base},
		{3, 3, 1, 1, highlight},
		{12, 3, 1, 1, highlight},
		{1, 7, 1, 2, shadow},
		{14, 7, 1, 2, shadow},
		{2, 8, 1, 1, midtone},
		{13, 8, 1, 1, midtone},
	},
}

// hairBack emits the behind-the-head pass, or nothing for styles without one.
func hairBack(style string, hair Palette) []Block {
	layout, ok := hairBackLayouts[style]
	if !ok {
		return nil
	}
	return paint(LayerHairBack, PartHair, hair, layout...)
}

// hairFront emits the over-the-head pass. Bald emits nothing.
func hairFront(style string, hair Palette) []Block {
	layout, ok := hairFrontLayouts[style]
	if !ok {
		return nil
	}
	return paint(LayerHairFront, PartHair, hair, layout...)
}
