package avatar

// Option is a selectable style, accessory or pose. PointsRequired of zero
// means the option is free.
type Option struct {
	ID             string
	Name           string
	Unlocked       bool
	PointsRequired int
}

// Key implements Entry.
func (o Option) Key() string { return o.ID }

// Hair styles.
const (
	HairShort    = "short"
	HairMedium   = "medium"
	HairLong     = "long"
	HairCurly    = "curly"
	HairAfro     = "afro"
	HairDreads   = "dreads"
	HairPonytail = "ponytail"
	HairBun      = "bun"
	HairSpiky    = "spiky"
	HairMohawk   = "mohawk"
	HairPigtails = "pigtails"
	HairBald     = "bald"
)

// Shirt styles.
const (
	ShirtTShirt  = "tshirt"
	ShirtPolo    = "polo"
	ShirtHoodie  = "hoodie"
	ShirtSweater = "sweater"
	ShirtTank    = "tank"
	ShirtFlannel = "flannel"
)

// Pants styles.
const (
	PantsJeans  = "jeans"
	PantsShorts = "shorts"
	PantsSkirt  = "skirt"
	PantsDress  = "dress"
)

// Accessories.
const (
	AccessoryNone        = "none"
	AccessoryGlasses     = "glasses"
	AccessorySunglasses  = "sunglasses"
	AccessoryCap         = "cap"
	AccessoryBeanie      = "beanie"
	AccessoryCowboyHat   = "cowboy_hat"
	AccessoryCrown       = "crown"
	AccessoryHalo        = "halo"
	AccessoryEarrings    = "earrings"
	AccessoryPrideFlag   = "pride_flag"
	AccessoryNecklace    = "necklace"
	AccessoryScarf       = "scarf"
	AccessoryWings       = "wings"
	AccessoryStaff       = "staff"
	AccessoryUnicornHorn = "unicorn_horn"
)

// Poses.
const (
	PoseIdle        = "idle"
	PoseWaving      = "waving"
	PoseRaisingRoof = "raising_roof"
	PoseRobot       = "robot"
	PoseTPose       = "tpose"
	PoseKarate      = "karate"
)

// HairStyles is the hair style catalog. Fallback: "short".
var HairStyles = newCatalog(HairShort,
	Option{ID: HairShort, Name: "Short", Unlocked: true},
	Option{ID: HairMedium, Name: "Medium", Unlocked: true},
	Option{ID: HairLong, Name: "Long", Unlocked: true},
	Option{ID: HairCurly, Name: "Curly", Unlocked: true},
	Option{ID: HairBald, Name: "Bald", Unlocked: true},
	Option{ID: HairPonytail, Name: "Ponytail", PointsRequired: 50},
	Option{ID: HairBun, Name: "Bun", PointsRequired: 50},
	Option{ID: HairAfro, Name: "Afro", PointsRequired: 100},
	Option{ID: HairPigtails, Name: "Pigtails", PointsRequired: 100},
	Option{ID: HairSpiky, Name: "Spiky", PointsRequired: 150},
	Option{ID: HairDreads, Name: "Dreads", PointsRequired: 200},
	Option{ID: HairMohawk, Name: "Mohawk", PointsRequired: 300},
)

// ShirtStyles is the shirt style catalog. Fallback: "tshirt".
var ShirtStyles = newCatalog(ShirtTShirt,
	Option{ID: ShirtTShirt, Name: "T-Shirt", Unlocked: true},
	Option{ID: ShirtTank, Name: "Tank Top", Unlocked: true},
	Option{ID: ShirtPolo, Name: "Polo", PointsRequired: 50},
	Option{ID: ShirtHoodie, Name: "Hoodie", PointsRequired: 100},
	Option{ID: ShirtSweater, Name: "Sweater", PointsRequired: 150},
	Option{ID: ShirtFlannel, Name: "Flannel", PointsRequired: 250},
)

// PantsStyles is the legwear style catalog. Fallback: "jeans".
var PantsStyles = newCatalog(PantsJeans,
	Option{ID: PantsJeans, Name: "Jeans", Unlocked: true},
	Option{ID: PantsShorts, Name: "Shorts", Unlocked: true},
	Option{ID: PantsSkirt, Name: "Skirt", PointsRequired: 75},
	Option{ID: PantsDress, Name: "Dress", PointsRequired: 150},
)

// Accessories is the accessory catalog. Fallback: "none".
var Accessories = newCatalog(AccessoryNone,
	Option{ID: AccessoryNone, Name: "None", Unlocked: true},
	Option{ID: AccessoryGlasses, Name: "Glasses", Unlocked: true},
	Option{ID: AccessorySunglasses, Name: "Sunglasses", PointsRequired: 50},
	Option{ID: AccessoryCap, Name: "Cap", PointsRequired: 100},
	Option{ID: AccessoryBeanie, Name: "Beanie", PointsRequired: 100},
	Option{ID: AccessoryEarrings, Name: "Earrings", PointsRequired: 150},
	Option{ID: AccessoryNecklace, Name: "Necklace", PointsRequired: 150},
	Option{ID: AccessoryScarf, Name: "Scarf", PointsRequired: 200},
	Option{ID: AccessoryCowboyHat, Name: "Cowboy Hat", PointsRequired: 250},
	Option{ID: AccessoryPrideFlag, Name: "Pride Flag", PointsRequired: 250},
	Option{ID: AccessoryHalo, Name: "Halo", PointsRequired: 500},
	Option{ID: AccessoryStaff, Name: "Wizard Staff", PointsRequired: 600},
	Option{ID: AccessoryWings, Name: "Wings", PointsRequired: 750},
	Option{ID: AccessoryCrown, Name: "Crown", PointsRequired: 1000},
	Option{ID: AccessoryUnicornHorn, Name: "Unicorn Horn", PointsRequired: 1500},
)

// Poses is the pose catalog. Fallback: "idle".
var Poses = newCatalog(PoseIdle,
	Option{ID: PoseIdle, Name: "Idle", Unlocked: true},
	Option{ID: PoseWaving, Name: "Waving", Unlocked: true},
	Option{ID: PoseRaisingRoof, Name: "Raise the Roof", PointsRequired: 100},
	Option{ID: PoseTPose, Name: "T-Pose", PointsRequired: 150},
	Option{ID: PoseRobot, Name: "Robot", PointsRequired: 250},
	Option{ID: PoseKarate, Name: "Karate", PointsRequired: 500},
)
