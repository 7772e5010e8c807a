// Package avatar composes pixel-art avatars from a CharacterConfig.
//
// The compositor turns a configuration into an ordered list of colored
// rectangles on a 16x32 grid. It owns no state: every call recomputes the
// list from the read-only catalogs, so it is safe for concurrent use.
package avatar

// Blocks composites cfg into blocks ordered back to front. Later blocks
// overwrite earlier ones where they overlap. Unknown ids fall back to each
// catalog's default entry.
//
// Order:
//  1. hair back pass (long, dreads)
//  2. back accessories (wings, staff, unicorn horn tip)
//  3. head and face
//  4. hair front pass (all but bald)
//  5. front accessories
//  6. neck
//  7. torso with shirt detail
//  8. arms
//  9. legs
//  10. shoes
func Blocks(cfg CharacterConfig) []Block {
	return composite(Resolve(cfg))
}

func composite(r Resolved) []Block {
	out := make([]Block, 0, 96)
	out = append(out, hairBack(r.HairStyle, r.Hair)...)
	out = append(out, accessoryBack(r.Accessory)...)
	out = append(out, head(r.Skin)...)
	out = append(out, hairFront(r.HairStyle, r.Hair)...)
	out = append(out, accessoryFront(r.Accessory)...)
	out = append(out, neck(r.Skin)...)
	out = append(out, torso(r.ShirtStyle, r.Shirt, r.Skin)...)
	out = append(out, arms(r.Pose, sleeveFor(r.ShirtStyle), r.Shirt, r.Skin)...)
	out = append(out, legs(r.PantsStyle, r.Pose, r.Pants, r.Skin)...)
	out = append(out, shoes(r.Shoes)...)
	return out
}

// Compose composites cfg for a render of size physical units across.
// The scale is recorded on the frame for the adapter; block coordinates stay
// in grid units.
func Compose(cfg CharacterConfig, size float64) Frame {
	return Frame{
		Blocks: Blocks(cfg),
		Width:  CanvasW,
		Height: CanvasH,
		Scale:  size / CanvasW,
	}
}
