package avatar

import (
	"errors"
	"fmt"
	"strings"
)

// CharacterConfig selects one option per feature category. Ids are resolved
// against the catalogs at render time; unknown ids fall back, they never fail.
type CharacterConfig struct {
	SkinTone   string `json:"skinTone"`
	HairStyle  string `json:"hairStyle"`
	HairColor  string `json:"hairColor"`
	ShirtStyle string `json:"shirtStyle"`
	ShirtColor string `json:"shirtColor"`
	PantsStyle string `json:"pantsStyle"`
	PantsColor string `json:"pantsColor"`
	ShoeColor  string `json:"shoeColor"`
	Accessory  string `json:"accessory"`
	Pose       string `json:"pose,omitempty"`
}

// DefaultCharacter is used when a profile has no avatar yet.
var DefaultCharacter = CharacterConfig{
	SkinTone:   "fair",
	HairStyle:  HairShort,
	HairColor:  "brown",
	ShirtStyle: ShirtTShirt,
	ShirtColor: "blue",
	PantsStyle: PantsJeans,
	PantsColor: "blue",
	ShoeColor:  "brown",
	Accessory:  AccessoryNone,
	Pose:       PoseIdle,
}

// WithDefaults returns a copy with every empty field taken from
// DefaultCharacter. An absent pose becomes idle.
func (c CharacterConfig) WithDefaults() CharacterConfig {
	d := DefaultCharacter
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&c.SkinTone, d.SkinTone)
	fill(&c.HairStyle, d.HairStyle)
	fill(&c.HairColor, d.HairColor)
	fill(&c.ShirtStyle, d.ShirtStyle)
	fill(&c.ShirtColor, d.ShirtColor)
	fill(&c.PantsStyle, d.PantsStyle)
	fill(&c.PantsColor, d.PantsColor)
	fill(&c.ShoeColor, d.ShoeColor)
	fill(&c.Accessory, d.Accessory)
	fill(&c.Pose, d.Pose)
	return c
}

// ErrUnknownField is returned by ParseAssignments for a key that names no field.
var ErrUnknownField = errors.New("unknown avatar field")

// field returns a pointer to the config field named by key. Both the JSON
// names and short aliases are accepted.
func (c *CharacterConfig) field(key string) *string {
	switch strings.ToLower(key) {
	case "skintone", "skin":
		return &c.SkinTone
	case "hairstyle", "hair":
		return &c.HairStyle
	case "haircolor":
		return &c.HairColor
	case "shirtstyle", "shirt":
		return &c.ShirtStyle
	case "shirtcolor":
		return &c.ShirtColor
	case "pantsstyle", "pants":
		return &c.PantsStyle
	case "pantscolor":
		return &c.PantsColor
	case "shoecolor", "shoes":
		return &c.ShoeColor
	case "accessory":
		return &c.Accessory
	case "pose":
		return &c.Pose
	}
	return nil
}

// ParseAssignments applies key=value overrides to a copy of c.
// Values are not validated; unknown ids fall back when rendered.
func (c CharacterConfig) ParseAssignments(args []string) (CharacterConfig, error) {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return c, fmt.Errorf("parse %q: expected key=value", arg)
		}
		f := c.field(strings.TrimSpace(key))
		if f == nil {
			return c, fmt.Errorf("parse %q: %w", arg, ErrUnknownField)
		}
		*f = strings.TrimSpace(value)
	}
	return c, nil
}

// Resolved is a configuration with every id looked up in its catalog.
type Resolved struct {
	Skin, Hair, Shirt, Pants, Shoes Palette

	HairStyle  string
	ShirtStyle string
	PantsStyle string
	Accessory  string
	Pose       string

	// Fallbacks lists the config fields whose ids were unknown.
	Fallbacks []string
}

// Resolve looks up every field of c, substituting catalog fallbacks.
func Resolve(c CharacterConfig) Resolved {
	c = c.WithDefaults()
	var r Resolved
	note := func(name, id string, has bool) {
		if !has {
			r.Fallbacks = append(r.Fallbacks, name+"="+id)
		}
	}

	r.Skin = SkinTones.ResolveOrDefault(c.SkinTone)
	note("skinTone", c.SkinTone, SkinTones.Has(c.SkinTone))
	r.HairStyle = HairStyles.ResolveOrDefault(c.HairStyle).ID
	note("hairStyle", c.HairStyle, HairStyles.Has(c.HairStyle))
	r.Hair = HairColors.ResolveOrDefault(c.HairColor)
	note("hairColor", c.HairColor, HairColors.Has(c.HairColor))
	r.ShirtStyle = ShirtStyles.ResolveOrDefault(c.ShirtStyle).ID
	note("shirtStyle", c.ShirtStyle, ShirtStyles.Has(c.ShirtStyle))
	r.Shirt = ShirtColors.ResolveOrDefault(c.ShirtColor)
	note("shirtColor", c.ShirtColor, ShirtColors.Has(c.ShirtColor))
	r.PantsStyle = PantsStyles.ResolveOrDefault(c.PantsStyle).ID
	note("pantsStyle", c.PantsStyle, PantsStyles.Has(c.PantsStyle))
	r.Pants = PantsColors.ResolveOrDefault(c.PantsColor)
	note("pantsColor", c.PantsColor, PantsColors.Has(c.PantsColor))
	r.Shoes = ShoeColors.ResolveOrDefault(c.ShoeColor)
	note("shoeColor", c.ShoeColor, ShoeColors.Has(c.ShoeColor))
	r.Accessory = Accessories.ResolveOrDefault(c.Accessory).ID
	note("accessory", c.Accessory, Accessories.Has(c.Accessory))
	r.Pose = Poses.ResolveOrDefault(c.Pose).ID
	note("pose", c.Pose, Poses.Has(c.Pose))

	return r
}
