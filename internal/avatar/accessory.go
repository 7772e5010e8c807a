package avatar

// Accessory materials. Accessories are not recolorable.
var (
	gold    = Palette{ID: "gold", Base: "#F2C230", Shadow: "#C99A1A", Highlight: "#FFE27A", Midtone: "#FFF4C2"}
	ruby    = Palette{ID: "ruby", Base: "#D83A3A", Shadow: "#A82828", Highlight: "#EC6A6A"}
	frame   = Palette{ID: "frame", Base: "#2B2B2B", Shadow: "#1A1A1A", Highlight: "#6A6A6A"}
	denim   = Palette{ID: "denim", Base: "#3A7BD5", Shadow: "#2A5CA8", Highlight: "#F4F4F4"}
	leather = Palette{ID: "leather", Base: "#8B5A2B", Shadow: "#4A2E17", Midtone: "#6B4423"}
	feather = Palette{ID: "feather", Base: "#F4F4FA", Shadow: "#C9CCDA", Highlight: "#FFFFFF"}
	wood    = Palette{ID: "wood", Base: "#7A5230", Shadow: "#5A3B20"}
	arcane  = Palette{ID: "arcane", Base: "#8E5BD6", Highlight: "#D6C2F5"}
	pearl   = Palette{ID: "pearl", Base: "#F7F0FF", Shadow: "#E3B7F0", Highlight: "#FFE27A"}
	scarlet = Palette{ID: "scarlet", Base: "#C0392B", Shadow: "#8E2A1F", Highlight: "#E05A4B"}
	pole    = Palette{ID: "pole", Base: "#8A6A45"}
	rainbow = [...]Color{"#E40303", "#FF8C00", "#FFED00", "#008026", "#004DFF", "#750787"}
)

// piece is one accessory shape in a fixed material.
type piece struct {
	pal Palette
	shape
}

func pieces(pal Palette, shapes ...shape) []piece {
	out := make([]piece, len(shapes))
	for i, s := range shapes {
		out[i] = piece{pal, s}
	}
	return out
}

func join(groups ...[]piece) []piece {
	var out []piece
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// accessoryBackLayouts are drawn behind the head and body.
var accessoryBackLayouts = map[string][]piece{
	AccessoryWings: pieces(feather,
		shape{1, 8, 2, 2, base},
		shape{0, 10, 3, 8, base},
		shape{0, 14, 2, 4, shadow},
		shape{13, 8, 2, 2, base},
		shape{13, 10, 3, 8, base},
		shape{14, 14, 2, 4, shadow},
		shape{1, 10, 1, 1, highlight},
		shape{14, 10, 1, 1, highlight},
	),
	AccessoryStaff: join(
		pieces(wood,
			shape{14, 5, 1, 25, base},
			shape{14, 20, 1, 10, shadow},
		),
		pieces(arcane,
			shape{13, 2, 3, 3, base},
			shape{13, 2, 1, 1, highlight},
		),
	),
	// Only the tip of the horn sits behind; the base is drawn in front of the hair.
	AccessoryUnicornHorn: pieces(pearl,
		shape{7, 0, 2, 1, highlight},
	),
}

// accessoryFrontLayouts are drawn over the head and hair but under the
// neck, torso and arms.
var accessoryFrontLayouts = map[string][]piece{
	AccessoryGlasses: pieces(frame,
		shape{5, 4, 2, 1, base},
		shape{9, 4, 2, 1, base},
		shape{7, 5, 2, 1, base},
		shape{4, 5, 1, 1, base},
		shape{11, 5, 1, 1, base},
	),
	AccessorySunglasses: pieces(frame,
		shape{5, 5, 2, 2, shadow},
		shape{9, 5, 2, 2, shadow},
		shape{7, 5, 2, 1, base},
		shape{4, 5, 1, 1, base},
		shape{11, 5, 1, 1, base},
		shape{5, 5, 1, 1, highlight},
		shape{9, 5, 1, 1, highlight},
	),
	AccessoryCap: pieces(ruby,
		shape{4, 1, 8, 2, base},
		shape{5, 0, 6, 1, base},
		shape{3, 3, 10, 1, shadow},
		shape{7, 0, 2, 1, highlight},
	),
	AccessoryBeanie: pieces(denim,
		shape{4, 1, 8, 3, base},
		shape{4, 3, 8, 1, shadow},
		shape{5, 1, 1, 2, shadow},
		shape{8, 1, 1, 2, shadow},
		shape{7, 0, 2, 1, highlight},
	),
	AccessoryCowboyHat: pieces(leather,
		shape{5, 0, 6, 3, base},
		shape{5, 2, 6, 1, shadow},
		shape{2, 3, 12, 1, midtone},
	),
	AccessoryCrown: join(
		pieces(gold,
			shape{5, 1, 6, 2, base},
			shape{5, 0, 1, 1, base},
			shape{7, 0, 2, 1, base},
			shape{10, 0, 1, 1, base},
			shape{5, 2, 6, 1, shadow},
		),
		pieces(ruby, shape{7, 1, 2, 1, base}),
	),
	AccessoryHalo: pieces(gold,
		shape{4, 0, 8, 1, highlight},
		shape{6, 0, 4, 1, midtone},
	),
	AccessoryEarrings: pieces(gold,
		shape{3, 7, 1, 1, base},
		shape{12, 7, 1, 1, base},
	),
	AccessoryPrideFlag: join(
		pieces(pole, shape{13, 1, 1, 11, base}),
		flagStripes(),
	),
	AccessoryNecklace: pieces(gold,
		shape{4, 11, 2, 1, base},
		shape{10, 11, 2, 1, base},
		shape{5, 11, 1, 1, highlight},
		shape{10, 11, 1, 1, highlight},
	),
	AccessoryScarf: pieces(scarlet,
		shape{4, 10, 8, 2, base},
		shape{4, 11, 8, 1, shadow},
		shape{5, 10, 1, 1, highlight},
		shape{9, 10, 1, 1, highlight},
	),
	AccessoryUnicornHorn: pieces(pearl,
		shape{7, 1, 2, 2, base},
		shape{7, 2, 1, 1, shadow},
	),
}

// flagStripes is the six-stripe flag flying right of the pole.
func flagStripes() []piece {
	out := make([]piece, len(rainbow))
	for i, c := range rainbow {
		out[i] = piece{Palette{ID: "stripe", Base: c}, shape{14, 1 + i, 2, 1, base}}
	}
	return out
}

func paintPieces(layer Layer, ps []piece) []Block {
	var out []Block
	for _, p := range ps {
		out = append(out, paint(layer, PartAccessory, p.pal, p.shape)...)
	}
	return out
}

// accessoryBack emits the behind-the-body pass of the active accessory.
func accessoryBack(id string) []Block {
	return paintPieces(LayerAccessoryBack, accessoryBackLayouts[id])
}

// accessoryFront emits the in-front pass of the active accessory. "none"
// and back-only accessories emit nothing.
func accessoryFront(id string) []Block {
	return paintPieces(LayerAccessoryFront, accessoryFrontLayouts[id])
}
