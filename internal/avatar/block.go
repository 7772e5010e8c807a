package avatar

const (
	// CanvasW is the width of the logical canvas in grid units.
	CanvasW = 16
	// CanvasH is the height of the logical canvas in grid units.
	CanvasH = 32
)

// Layer is the z-order stage that emitted a block. Stages run in the order
// declared here, back to front.
type Layer int

const (
	LayerHairBack Layer = iota
	LayerAccessoryBack
	LayerHead
	LayerHairFront
	LayerAccessoryFront
	LayerNeck
	LayerTorso
	LayerArms
	LayerLegs
	LayerShoes
)

var layerNames = [...]string{
	LayerHairBack:       "hair-back",
	LayerAccessoryBack:  "accessory-back",
	LayerHead:           "head",
	LayerHairFront:      "hair-front",
	LayerAccessoryFront: "accessory-front",
	LayerNeck:           "neck",
	LayerTorso:          "torso",
	LayerArms:           "arms",
	LayerLegs:           "legs",
	LayerShoes:          "shoes",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

// Part names the body part or garment piece a block belongs to.
type Part string

const (
	PartHair        Part = "hair"
	PartHeadOutline Part = "head-outline"
	PartHeadFill    Part = "head-fill"
	PartEye         Part = "eye"
	PartNose        Part = "nose"
	PartMouth       Part = "mouth"
	PartEar         Part = "ear"
	PartNeck        Part = "neck"
	PartTorso       Part = "torso"
	PartShirtDetail Part = "shirt-detail"
	PartLeftArm     Part = "left-arm"
	PartRightArm    Part = "right-arm"
	PartWaist       Part = "waist"
	PartGarment     Part = "garment"
	PartLeftLeg     Part = "left-leg"
	PartRightLeg    Part = "right-leg"
	PartKickLeg     Part = "kick-leg"
	PartLeftShoe    Part = "left-shoe"
	PartRightShoe   Part = "right-shoe"
	PartAccessory   Part = "accessory"
)

// Block is one colored rectangle in grid units.
type Block struct {
	X, Y, W, H int
	Color      Color
	Layer      Layer
	Part       Part
}

// Scaled returns the block's rectangle in physical units.
func (b Block) Scaled(scale float64) (x, y, w, h float64) {
	return float64(b.X) * scale, float64(b.Y) * scale, float64(b.W) * scale, float64(b.H) * scale
}

// Frame is a composited avatar ready for a renderer adapter.
type Frame struct {
	Blocks []Block
	Width  int     // logical canvas width
	Height int     // logical canvas height
	Scale  float64 // physical size of one grid unit
}

// tone picks one of a palette's four colors.
type tone int

const (
	base tone = iota
	shadow
	highlight
	midtone
)

func (p Palette) tone(t tone) Color {
	switch t {
	case shadow:
		return p.Shadow
	case highlight:
		return p.Highlight
	case midtone:
		return p.Midtone
	default:
		return p.Base
	}
}

// shape is a hand-placed rectangle shaded with one palette tone.
type shape struct {
	x, y, w, h int
	t          tone
}

// paint colors shapes with pal, preserving their order.
func paint(layer Layer, part Part, pal Palette, shapes ...shape) []Block {
	out := make([]Block, len(shapes))
	for i, s := range shapes {
		out[i] = Block{X: s.x, Y: s.y, W: s.w, H: s.h, Color: pal.tone(s.t), Layer: layer, Part: part}
	}
	return out
}
