package avatar

import (
	"reflect"
	"sync"
	"testing"
)

func tones(p Palette) map[Color]bool {
	return map[Color]bool{p.Base: true, p.Shadow: true, p.Highlight: true, p.Midtone: true}
}

func byPart(blocks []Block, part Part) []Block {
	var out []Block
	for _, b := range blocks {
		if b.Part == part {
			out = append(out, b)
		}
	}
	return out
}

func byLayer(blocks []Block, layer Layer) []Block {
	var out []Block
	for _, b := range blocks {
		if b.Layer == layer {
			out = append(out, b)
		}
	}
	return out
}

type rect struct{ x, y, w, h int }

func rects(blocks []Block) []rect {
	out := make([]rect, len(blocks))
	for i, b := range blocks {
		out[i] = rect{b.X, b.Y, b.W, b.H}
	}
	return out
}

func shapeRects(shapes []armShape) []rect {
	out := make([]rect, len(shapes))
	for i, s := range shapes {
		out[i] = rect{s.x, s.y, s.w, s.h}
	}
	return out
}

func TestBlocksDeterministic(t *testing.T) {
	configs := []CharacterConfig{
		DefaultCharacter,
		{SkinTone: "deep", HairStyle: HairDreads, HairColor: "purple", ShirtStyle: ShirtFlannel,
			ShirtColor: "teal", PantsStyle: PantsSkirt, PantsColor: "khaki", ShoeColor: "red",
			Accessory: AccessoryWings, Pose: PoseKarate},
		{HairStyle: "nonexistent", Pose: "moonwalk"},
	}
	for _, cfg := range configs {
		a := Blocks(cfg)
		b := Blocks(cfg)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Blocks(%+v) differs between calls", cfg)
		}
	}
}

// TestBlocksEveryCombination composites every style, accessory and pose
// combination and checks each block is drawable.
func TestBlocksEveryCombination(t *testing.T) {
	combos := 0
	for _, hair := range HairStyles.IDs() {
		for _, shirt := range ShirtStyles.IDs() {
			for _, pants := range PantsStyles.IDs() {
				for _, acc := range Accessories.IDs() {
					for _, pose := range Poses.IDs() {
						cfg := DefaultCharacter
						cfg.HairStyle, cfg.ShirtStyle, cfg.PantsStyle = hair, shirt, pants
						cfg.Accessory, cfg.Pose = acc, pose

						blocks := Blocks(cfg)
						combos++
						if len(blocks) == 0 {
							t.Fatalf("no blocks for %+v", cfg)
						}
						for _, b := range blocks {
							if b.W <= 0 || b.H <= 0 || b.X < 0 || b.Y < 0 ||
								b.X+b.W > CanvasW || b.Y+b.H > CanvasH {
								t.Fatalf("block %+v out of canvas for %+v", b, cfg)
							}
							if len(b.Color) != 7 || b.Color[0] != '#' {
								t.Fatalf("block %+v has bad color for %+v", b, cfg)
							}
						}
					}
				}
			}
		}
	}
	if combos != 12*6*4*15*6 {
		t.Errorf("expected %d combinations, got %d", 12*6*4*15*6, combos)
	}
}

func TestBlocksLayerOrder(t *testing.T) {
	for _, acc := range Accessories.IDs() {
		for _, hair := range []string{HairLong, HairDreads, HairShort, HairBald} {
			cfg := DefaultCharacter
			cfg.Accessory, cfg.HairStyle = acc, hair
			blocks := Blocks(cfg)
			for i := 1; i < len(blocks); i++ {
				if blocks[i].Layer < blocks[i-1].Layer {
					t.Fatalf("%s/%s: block %d layer %v after %v", hair, acc, i, blocks[i].Layer, blocks[i-1].Layer)
				}
			}
		}
	}
}

func TestHairBackPassPrecedesHead(t *testing.T) {
	cfg := DefaultCharacter
	cfg.HairStyle = HairLong
	blocks := Blocks(cfg)

	if blocks[0].Layer != LayerHairBack {
		t.Fatalf("first block layer = %v, want hair-back", blocks[0].Layer)
	}
	lastBack, firstHead := -1, -1
	for i, b := range blocks {
		if b.Layer == LayerHairBack {
			lastBack = i
		}
		if b.Part == PartHeadFill && firstHead < 0 {
			firstHead = i
		}
	}
	if firstHead < 0 || lastBack > firstHead {
		t.Errorf("hair back pass (last %d) must precede head fill (first %d)", lastBack, firstHead)
	}

	cfg.HairStyle = HairShort
	if n := len(byLayer(Blocks(cfg), LayerHairBack)); n != 0 {
		t.Errorf("short hair emitted %d back-pass blocks", n)
	}
}

func TestHairFrontPass(t *testing.T) {
	for _, style := range HairStyles.IDs() {
		cfg := DefaultCharacter
		cfg.HairStyle = style
		front := byLayer(Blocks(cfg), LayerHairFront)
		if style == HairBald {
			if len(front) != 0 {
				t.Errorf("bald emitted %d hair blocks", len(front))
			}
			continue
		}
		if len(front) == 0 {
			t.Errorf("%s emitted no front-pass blocks", style)
		}
		hair := tones(HairColors.ResolveOrDefault(cfg.HairColor))
		for _, b := range front {
			if !hair[b.Color] {
				t.Errorf("%s: hair block %+v not in hair palette", style, b)
			}
		}
	}
}

func TestUnknownHairColorFallsBack(t *testing.T) {
	cfg := DefaultCharacter
	cfg.HairColor = "nonexistent_color"

	got := Blocks(cfg)
	want := Blocks(DefaultCharacter)
	if !reflect.DeepEqual(got, want) {
		t.Fatal("unknown hair color should render like the fallback entry")
	}

	def := HairColors.Default()
	for _, b := range byPart(got, PartHair) {
		if !tones(def)[b.Color] {
			t.Errorf("hair block %+v not drawn with fallback %q", b, def.ID)
		}
	}
}

func TestUnknownIDsNeverFail(t *testing.T) {
	cfg := CharacterConfig{
		SkinTone: "green-alien", HairStyle: "beehive", HairColor: "?", ShirtStyle: "tuxedo",
		ShirtColor: "", PantsStyle: "kilt", PantsColor: "plaid", ShoeColor: "glass",
		Accessory: "monocle", Pose: "moonwalk",
	}
	if !reflect.DeepEqual(Blocks(cfg), Blocks(DefaultCharacter)) {
		t.Error("fully unknown config should render the default character")
	}
}

func TestAccessoryExclusivity(t *testing.T) {
	for _, acc := range Accessories.IDs() {
		cfg := DefaultCharacter
		cfg.Accessory = acc
		got := byPart(Blocks(cfg), PartAccessory)
		want := append(accessoryBack(acc), accessoryFront(acc)...)

		if acc == AccessoryNone {
			if len(got) != 0 {
				t.Errorf("none emitted %d accessory blocks", len(got))
			}
			continue
		}
		if len(got) == 0 {
			t.Errorf("%s emitted no blocks", acc)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: accessory blocks do not match its own layout", acc)
		}
	}
}

func TestBackAccessories(t *testing.T) {
	tests := []struct {
		id        string
		back      bool
		frontSide bool
	}{
		{AccessoryWings, true, false},
		{AccessoryStaff, true, false},
		{AccessoryUnicornHorn, true, true},
		{AccessoryCrown, false, true},
		{AccessoryScarf, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cfg := DefaultCharacter
			cfg.Accessory = tt.id
			blocks := Blocks(cfg)
			if got := len(byLayer(blocks, LayerAccessoryBack)) > 0; got != tt.back {
				t.Errorf("back pass present = %v, want %v", got, tt.back)
			}
			if got := len(byLayer(blocks, LayerAccessoryFront)) > 0; got != tt.frontSide {
				t.Errorf("front pass present = %v, want %v", got, tt.frontSide)
			}
		})
	}
}

func TestDefaultCharacter(t *testing.T) {
	blocks := Blocks(DefaultCharacter)

	for _, part := range []Part{PartHeadFill, PartTorso, PartLeftLeg, PartRightLeg, PartLeftShoe, PartRightShoe} {
		if len(byPart(blocks, part)) == 0 {
			t.Errorf("default character is missing %s", part)
		}
	}
	if n := len(byPart(blocks, PartAccessory)); n != 0 {
		t.Errorf("default character has %d accessory blocks", n)
	}
	if n := len(byPart(blocks, PartKickLeg)); n != 0 {
		t.Errorf("default character has %d kick blocks", n)
	}

	if got, want := rects(byPart(blocks, PartLeftArm)), shapeRects(idleLeft); !reflect.DeepEqual(got, want) {
		t.Errorf("left arm = %v, want idle %v", got, want)
	}
	if got, want := rects(byPart(blocks, PartRightArm)), shapeRects(idleRight); !reflect.DeepEqual(got, want) {
		t.Errorf("right arm = %v, want idle %v", got, want)
	}

	// Jeans legs run the full height down to the shoes.
	for _, part := range []Part{PartLeftLeg, PartRightLeg} {
		leg := byPart(blocks, part)[0]
		if leg.H != 8 || leg.Y+leg.H != 29 {
			t.Errorf("%s = %+v, want full-length leg ending at y=29", part, leg)
		}
		if !tones(PantsColors.ResolveOrDefault("blue"))[leg.Color] {
			t.Errorf("%s color %s is not pants colored", part, leg.Color)
		}
	}
}

func TestTankTopWaving(t *testing.T) {
	cfg := DefaultCharacter
	cfg.ShirtStyle = ShirtTank
	cfg.Pose = PoseWaving
	blocks := Blocks(cfg)

	skin := tones(SkinTones.ResolveOrDefault(cfg.SkinTone))
	shirt := tones(ShirtColors.ResolveOrDefault(cfg.ShirtColor))
	for _, part := range []Part{PartLeftArm, PartRightArm} {
		arm := byPart(blocks, part)
		if len(arm) == 0 {
			t.Fatalf("no %s blocks", part)
		}
		for _, b := range arm {
			if !skin[b.Color] || shirt[b.Color] {
				t.Errorf("%s block %+v is not skin toned", part, b)
			}
		}
	}

	right := rects(byPart(blocks, PartRightArm))
	if want := shapeRects(armLayouts[PoseWaving].right); !reflect.DeepEqual(right, want) {
		t.Errorf("right arm = %v, want waving layout %v", right, want)
	}
	if reflect.DeepEqual(right, shapeRects(idleRight)) {
		t.Error("right arm uses the idle layout")
	}
	if left := rects(byPart(blocks, PartLeftArm)); !reflect.DeepEqual(left, shapeRects(idleLeft)) {
		t.Errorf("left arm = %v, want idle", left)
	}
}

func TestTankTopEveryPose(t *testing.T) {
	skin := tones(SkinTones.ResolveOrDefault("fair"))
	for _, pose := range Poses.IDs() {
		cfg := DefaultCharacter
		cfg.ShirtStyle = ShirtTank
		cfg.Pose = pose
		blocks := Blocks(cfg)
		for _, b := range byLayer(blocks, LayerArms) {
			if !skin[b.Color] {
				t.Errorf("%s: arm block %+v not skin toned", pose, b)
			}
		}
	}
}

func TestSleeveLength(t *testing.T) {
	tests := []struct {
		style       string
		upperShirt  bool
		forearmSkin bool
	}{
		{ShirtTShirt, true, true},
		{ShirtPolo, true, true},
		{ShirtHoodie, true, false},
		{ShirtSweater, true, false},
		{ShirtFlannel, true, false},
		{ShirtTank, false, true},
	}
	shirt := tones(ShirtColors.ResolveOrDefault("blue"))
	skin := tones(SkinTones.ResolveOrDefault("fair"))
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			cfg := DefaultCharacter
			cfg.ShirtStyle = tt.style
			left := byPart(Blocks(cfg), PartLeftArm)
			// idleLeft: upper, upper shade, lower, lower shade, hand
			if got := shirt[left[0].Color]; got != tt.upperShirt {
				t.Errorf("upper arm shirt colored = %v, want %v", got, tt.upperShirt)
			}
			if got := skin[left[2].Color]; got != tt.forearmSkin {
				t.Errorf("forearm skin colored = %v, want %v", got, tt.forearmSkin)
			}
			if !skin[left[4].Color] {
				t.Error("hand is not skin colored")
			}
		})
	}
}

func TestUnknownPoseUsesIdle(t *testing.T) {
	cfg := DefaultCharacter
	cfg.Pose = "breakdance"
	blocks := Blocks(cfg)
	if got := rects(byPart(blocks, PartRightArm)); !reflect.DeepEqual(got, shapeRects(idleRight)) {
		t.Errorf("right arm = %v, want idle", got)
	}
}

func TestKarateKick(t *testing.T) {
	for _, pants := range []string{PantsJeans, PantsShorts, PantsSkirt} {
		t.Run(pants, func(t *testing.T) {
			cfg := DefaultCharacter
			cfg.Pose = PoseKarate
			cfg.PantsStyle = pants
			blocks := Blocks(cfg)

			kick := byPart(blocks, PartKickLeg)
			if len(kick) == 0 {
				t.Fatal("no kick blocks")
			}
			horizontal := false
			for _, b := range kick {
				if b.W > b.H && b.X+b.W == CanvasW {
					horizontal = true
				}
			}
			if !horizontal {
				t.Errorf("kick blocks %v have no horizontal segment reaching the edge", rects(kick))
			}
			if n := len(byPart(blocks, PartRightLeg)); n != 0 {
				t.Errorf("karate still emits %d standing right leg blocks", n)
			}

			left := byPart(blocks, PartLeftLeg)
			if len(left) == 0 || left[0].H <= left[0].W {
				t.Errorf("left leg %v is not a vertical stance", rects(left))
			}
			if reflect.DeepEqual(rects(kick), rects(left)) {
				t.Error("kick group matches the standing leg")
			}
		})
	}
}

func TestDressIgnoresKick(t *testing.T) {
	cfg := DefaultCharacter
	cfg.PantsStyle = PantsDress
	idle := byLayer(Blocks(cfg), LayerLegs)
	cfg.Pose = PoseKarate
	karate := byLayer(Blocks(cfg), LayerLegs)
	if !reflect.DeepEqual(idle, karate) {
		t.Error("dress legs should not change with karate")
	}
	for _, b := range karate {
		if b.Part != PartGarment {
			t.Errorf("dress emitted %s block", b.Part)
		}
	}
}

func TestShoesIndependentOfPoseAndPants(t *testing.T) {
	want := byLayer(Blocks(DefaultCharacter), LayerShoes)
	if len(want) != 4 {
		t.Fatalf("expected two two-tone shoes, got %d blocks", len(want))
	}
	for _, pants := range PantsStyles.IDs() {
		for _, pose := range Poses.IDs() {
			cfg := DefaultCharacter
			cfg.PantsStyle, cfg.Pose = pants, pose
			if got := byLayer(Blocks(cfg), LayerShoes); !reflect.DeepEqual(got, want) {
				t.Errorf("%s/%s: shoes changed", pants, pose)
			}
		}
	}
}

func TestHeadIsConstant(t *testing.T) {
	a := DefaultCharacter
	b := DefaultCharacter
	b.HairStyle, b.Accessory, b.Pose, b.ShirtStyle = HairAfro, AccessoryCrown, PoseRobot, ShirtHoodie
	if !reflect.DeepEqual(rects(byLayer(Blocks(a), LayerHead)), rects(byLayer(Blocks(b), LayerHead))) {
		t.Error("head geometry depends on non-skin options")
	}
	eyes := byPart(Blocks(a), PartEye)
	if len(eyes) != 4 {
		t.Fatalf("expected sclera and iris for two eyes, got %d blocks", len(eyes))
	}
	for _, e := range eyes[:2] {
		if e.W != 2 || e.H != 2 || e.Color != EyeWhite {
			t.Errorf("sclera %+v is not a white 2x2 block", e)
		}
	}
}

func TestCompose(t *testing.T) {
	f := Compose(DefaultCharacter, 256)
	if f.Width != CanvasW || f.Height != CanvasH {
		t.Errorf("canvas = %dx%d", f.Width, f.Height)
	}
	if f.Scale != 16 {
		t.Errorf("scale = %v, want 16", f.Scale)
	}
	if !reflect.DeepEqual(f.Blocks, Blocks(DefaultCharacter)) {
		t.Error("Compose blocks differ from Blocks")
	}

	x, y, w, h := Block{X: 2, Y: 3, W: 4, H: 1}.Scaled(f.Scale)
	if x != 32 || y != 48 || w != 64 || h != 16 {
		t.Errorf("Scaled = %v,%v,%v,%v", x, y, w, h)
	}
}

func TestBlocksConcurrent(t *testing.T) {
	cfg := DefaultCharacter
	cfg.HairStyle, cfg.Accessory, cfg.Pose = HairLong, AccessoryStaff, PoseRaisingRoof
	want := Blocks(cfg)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !reflect.DeepEqual(Blocks(cfg), want) {
				errs <- "concurrent render differs"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestLayerString(t *testing.T) {
	if LayerHairBack.String() != "hair-back" || LayerShoes.String() != "shoes" {
		t.Error("unexpected layer names")
	}
	if Layer(99).String() != "unknown" {
		t.Error("out of range layer should be unknown")
	}
}
