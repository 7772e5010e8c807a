package avatar

// Color is a #RRGGBB hex color. Adapters convert it to their native format.
type Color string

// Palette is a four-tone material: every emitter shades a surface with
// base for the bulk, shadow for the far edge, highlight for the lit edge and
// midtone for texture and trims.
type Palette struct {
	ID        string
	Name      string
	Base      Color
	Shadow    Color
	Highlight Color
	Midtone   Color
}

// Key implements Entry.
func (p Palette) Key() string { return p.ID }

// Fixed colors shared by the face and accessories.
const (
	Outline   Color = "#2B1D14"
	EyeWhite  Color = "#FFFFFF"
	Iris      Color = "#3B2A1E"
	Mouth     Color = "#B5535B"
	MouthDark Color = "#7E2F3A"
)

// Color catalogs are ordered so that the entry used by DefaultCharacter sits
// at index 1; that entry is also the catalog's fallback.

// SkinTones is the skin catalog. Fallback: "fair".
var SkinTones = newCatalog("fair",
	Palette{ID: "light", Name: "Light", Base: "#FFE0CC", Shadow: "#E8BFA4", Highlight: "#FFF0E6", Midtone: "#F4CFB6"},
	Palette{ID: "fair", Name: "Fair", Base: "#F5D0B5", Shadow: "#D9A98A", Highlight: "#FCE4D2", Midtone: "#E8BC9E"},
	Palette{ID: "medium", Name: "Medium", Base: "#E0AC84", Shadow: "#C08A62", Highlight: "#EEC4A2", Midtone: "#D09A72"},
	Palette{ID: "olive", Name: "Olive", Base: "#C9A074", Shadow: "#A57E54", Highlight: "#DDB98F", Midtone: "#B78F63"},
	Palette{ID: "tan", Name: "Tan", Base: "#C68A5A", Shadow: "#A16A3E", Highlight: "#DAA37A", Midtone: "#B47A4C"},
	Palette{ID: "brown", Name: "Brown", Base: "#9C6841", Shadow: "#7A4D2B", Highlight: "#B5825A", Midtone: "#8B5A36"},
	Palette{ID: "dark", Name: "Dark", Base: "#6E4529", Shadow: "#52301A", Highlight: "#8A5C3C", Midtone: "#603B22"},
	Palette{ID: "deep", Name: "Deep", Base: "#4A2E1B", Shadow: "#331E10", Highlight: "#634030", Midtone: "#3F2616"},
)

// HairColors is the hair catalog. Fallback: "brown".
var HairColors = newCatalog("brown",
	Palette{ID: "black", Name: "Black", Base: "#1C1C1C", Shadow: "#0A0A0A", Highlight: "#3A3A3A", Midtone: "#2A2A2A"},
	Palette{ID: "brown", Name: "Brown", Base: "#6B4226", Shadow: "#4A2C17", Highlight: "#8C5A36", Midtone: "#5A361E"},
	Palette{ID: "blonde", Name: "Blonde", Base: "#E6C35C", Shadow: "#C9A23F", Highlight: "#F5DD8A", Midtone: "#D8B24D"},
	Palette{ID: "red", Name: "Red", Base: "#B5401E", Shadow: "#8A2C12", Highlight: "#D4643E", Midtone: "#A0371A"},
	Palette{ID: "auburn", Name: "Auburn", Base: "#8B3A1E", Shadow: "#642812", Highlight: "#AC5634", Midtone: "#7A321A"},
	Palette{ID: "gray", Name: "Gray", Base: "#9A9A9A", Shadow: "#747474", Highlight: "#BDBDBD", Midtone: "#878787"},
	Palette{ID: "white", Name: "White", Base: "#ECECEC", Shadow: "#C8C8C8", Highlight: "#FFFFFF", Midtone: "#DADADA"},
	Palette{ID: "blue", Name: "Blue", Base: "#3A6FD8", Shadow: "#2550A8", Highlight: "#6A95EA", Midtone: "#3060C0"},
	Palette{ID: "pink", Name: "Pink", Base: "#F08CB8", Shadow: "#C9648F", Highlight: "#F8B4D2", Midtone: "#E07AA6"},
	Palette{ID: "green", Name: "Green", Base: "#3FAF5F", Shadow: "#2B8545", Highlight: "#6CCB84", Midtone: "#35995A"},
	Palette{ID: "purple", Name: "Purple", Base: "#8A4FC8", Shadow: "#6A379F", Highlight: "#AA7BDD", Midtone: "#7A43B4"},
)

// ShirtColors is the shirt catalog. Fallback: "blue".
var ShirtColors = newCatalog("blue",
	Palette{ID: "red", Name: "Red", Base: "#D83A3A", Shadow: "#A82828", Highlight: "#EC6A6A", Midtone: "#C23131"},
	Palette{ID: "blue", Name: "Blue", Base: "#3A7BD5", Shadow: "#2A5CA8", Highlight: "#6A9FE6", Midtone: "#3269BE"},
	Palette{ID: "green", Name: "Green", Base: "#3DAA5C", Shadow: "#2C8045", Highlight: "#68C682", Midtone: "#359650"},
	Palette{ID: "yellow", Name: "Yellow", Base: "#F2C94C", Shadow: "#CFA52E", Highlight: "#F8DD85", Midtone: "#E0B73D"},
	Palette{ID: "purple", Name: "Purple", Base: "#9B51E0", Shadow: "#7637B3", Highlight: "#B883EA", Midtone: "#8844CA"},
	Palette{ID: "orange", Name: "Orange", Base: "#F2994A", Shadow: "#CF7630", Highlight: "#F7B77F", Midtone: "#E0873C"},
	Palette{ID: "pink", Name: "Pink", Base: "#EC7FB0", Shadow: "#C75D8B", Highlight: "#F4A7CA", Midtone: "#DA6E9D"},
	Palette{ID: "black", Name: "Black", Base: "#2B2B2B", Shadow: "#151515", Highlight: "#474747", Midtone: "#202020"},
	Palette{ID: "white", Name: "White", Base: "#F4F4F4", Shadow: "#D0D0D0", Highlight: "#FFFFFF", Midtone: "#E2E2E2"},
	Palette{ID: "gray", Name: "Gray", Base: "#8A8F98", Shadow: "#686D75", Highlight: "#AAB0B8", Midtone: "#797E87"},
	Palette{ID: "teal", Name: "Teal", Base: "#2BB3A8", Shadow: "#1E8A81", Highlight: "#5CCFC6", Midtone: "#249E94"},
)

// PantsColors is the legwear catalog. Fallback: "blue".
var PantsColors = newCatalog("blue",
	Palette{ID: "black", Name: "Black", Base: "#2E2E33", Shadow: "#1A1A1E", Highlight: "#48484F", Midtone: "#25252A"},
	Palette{ID: "blue", Name: "Denim Blue", Base: "#3B5BA5", Shadow: "#2A427A", Highlight: "#5F7FC4", Midtone: "#32508F"},
	Palette{ID: "khaki", Name: "Khaki", Base: "#C8B48A", Shadow: "#A8946A", Highlight: "#DCCBA6", Midtone: "#B8A47A"},
	Palette{ID: "gray", Name: "Gray", Base: "#6F747C", Shadow: "#52565D", Highlight: "#8C9199", Midtone: "#60656C"},
	Palette{ID: "brown", Name: "Brown", Base: "#7A5533", Shadow: "#5A3D22", Highlight: "#96704C", Midtone: "#6A4A2B"},
	Palette{ID: "green", Name: "Olive Green", Base: "#4F6B3A", Shadow: "#394F29", Highlight: "#6C8A55", Midtone: "#445D32"},
	Palette{ID: "white", Name: "White", Base: "#EDEDED", Shadow: "#C9C9C9", Highlight: "#FFFFFF", Midtone: "#DBDBDB"},
	Palette{ID: "red", Name: "Red", Base: "#A83232", Shadow: "#7E2222", Highlight: "#C65252", Midtone: "#932A2A"},
	Palette{ID: "pink", Name: "Pink", Base: "#E89AC0", Shadow: "#C4779C", Highlight: "#F2BCD6", Midtone: "#D688AE"},
	Palette{ID: "purple", Name: "Purple", Base: "#6E4A9E", Shadow: "#513676", Highlight: "#8D6BBE", Midtone: "#5F408A"},
)

// ShoeColors is the footwear catalog. Fallback: "brown".
var ShoeColors = newCatalog("brown",
	Palette{ID: "black", Name: "Black", Base: "#222222", Shadow: "#0E0E0E", Highlight: "#3C3C3C", Midtone: "#181818"},
	Palette{ID: "brown", Name: "Brown", Base: "#6B4423", Shadow: "#4A2E17", Highlight: "#8A5C36", Midtone: "#5A391D"},
	Palette{ID: "white", Name: "White", Base: "#F2F2F2", Shadow: "#C8C8C8", Highlight: "#FFFFFF", Midtone: "#DDDDDD"},
	Palette{ID: "red", Name: "Red", Base: "#C0392B", Shadow: "#8E2A1F", Highlight: "#E05A4B", Midtone: "#A73125"},
	Palette{ID: "blue", Name: "Blue", Base: "#2E5C9A", Shadow: "#1F416D", Highlight: "#4F7DBF", Midtone: "#264E84"},
	Palette{ID: "gray", Name: "Gray", Base: "#7D7D7D", Shadow: "#5A5A5A", Highlight: "#A0A0A0", Midtone: "#6B6B6B"},
)
