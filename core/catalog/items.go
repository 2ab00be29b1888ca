// Package catalog - Standard household item catalog
// This is the source of truth for item weights and volumes.
package catalog

// Categories used by tariff rules
const (
	CategoryBed       = "bed"
	CategoryMattress  = "mattress"
	CategoryDesk      = "desk"
	CategoryAppliance = "appliance"
	CategorySofa      = "sofa"
	CategoryTable     = "table"
	CategoryChair     = "chair"
	CategoryDresser   = "dresser"
	CategoryWardrobe  = "wardrobe"
	CategoryPiano     = "piano"
	CategoryRug       = "rug"
	CategoryCarton    = "carton"
	CategoryMisc      = "misc"
)

// RegisterStandard populates the catalog with the standard reference items
func RegisterStandard(c *Catalog) {
	// Beds and mattresses
	c.Register(Entry{Name: "bed_king_mattress", Aliases: []string{"king mattress", "king size mattress", "king size bed"}, WeightLbs: 150, VolumeCuft: 70, Category: CategoryMattress})
	c.Register(Entry{Name: "bed_king_box_spring", Aliases: []string{"king box spring", "box spring"}, WeightLbs: 60, VolumeCuft: 50, Category: CategoryBed})
	c.Register(Entry{Name: "bed_king_headboard", Aliases: []string{"king headboard", "headboard"}, WeightLbs: 40, VolumeCuft: 20, Category: CategoryBed})
	c.Register(Entry{Name: "bed_king_frame", Aliases: []string{"king bed frame"}, WeightLbs: 70, VolumeCuft: 15, Category: CategoryBed})
	c.Register(Entry{Name: "bed_queen_mattress", Aliases: []string{"queen mattress", "queen size mattress"}, WeightLbs: 120, VolumeCuft: 60, Category: CategoryMattress})
	c.Register(Entry{Name: "bed_queen_box_spring", Aliases: []string{"queen box spring"}, WeightLbs: 55, VolumeCuft: 45, Category: CategoryBed})
	c.Register(Entry{Name: "bed_queen_headboard", Aliases: []string{"queen headboard"}, WeightLbs: 35, VolumeCuft: 18, Category: CategoryBed})
	c.Register(Entry{Name: "bed_queen_frame", Aliases: []string{"queen bed frame", "bed frame"}, WeightLbs: 60, VolumeCuft: 12, Category: CategoryBed})
	c.Register(Entry{Name: "bed_twin_mattress", Aliases: []string{"twin mattress", "single mattress"}, WeightLbs: 60, VolumeCuft: 40, Category: CategoryMattress})

	// Appliances
	c.Register(Entry{Name: "refrigerator_standard", Aliases: []string{"refrigerator", "fridge", "regular refrigerator"}, WeightLbs: 250, VolumeCuft: 45, Category: CategoryAppliance})
	c.Register(Entry{Name: "washer_standard", Aliases: []string{"washer", "washing machine"}, WeightLbs: 200, VolumeCuft: 25, Category: CategoryAppliance})
	c.Register(Entry{Name: "dryer_standard", Aliases: []string{"dryer", "clothes dryer"}, WeightLbs: 180, VolumeCuft: 25, Category: CategoryAppliance})
	c.Register(Entry{Name: "freezer_chest", Aliases: []string{"freezer", "chest freezer"}, WeightLbs: 220, VolumeCuft: 30, Category: CategoryAppliance})

	// Living room
	c.Register(Entry{Name: "sofa_three_seat", Aliases: []string{"sofa", "couch", "three seat sofa"}, WeightLbs: 210, VolumeCuft: 65, Category: CategorySofa})
	c.Register(Entry{Name: "sofa_loveseat", Aliases: []string{"loveseat", "two seat sofa"}, WeightLbs: 150, VolumeCuft: 45, Category: CategorySofa})
	c.Register(Entry{Name: "armchair", Aliases: []string{"arm chair", "recliner"}, WeightLbs: 80, VolumeCuft: 25, Category: CategoryChair})
	c.Register(Entry{Name: "television_flat", Aliases: []string{"tv", "television", "flat screen tv"}, WeightLbs: 45, VolumeCuft: 8, Category: CategoryMisc})
	c.Register(Entry{Name: "mirror_large", Aliases: []string{"mirror", "wall mirror"}, WeightLbs: 30, VolumeCuft: 6, Category: CategoryMisc})
	c.Register(Entry{Name: "bookcase_standard", Aliases: []string{"bookcase", "bookshelf", "book shelf"}, WeightLbs: 90, VolumeCuft: 20, Category: CategoryMisc})
	c.Register(Entry{Name: "rug_large", Aliases: []string{"large rug"}, WeightLbs: 50, VolumeCuft: 10, Category: CategoryRug})
	c.Register(Entry{Name: "rug_large_rolled", Aliases: []string{"large rolled rug"}, WeightLbs: 55, VolumeCuft: 10, Category: CategoryRug})

	// Dining and kitchen
	c.Register(Entry{Name: "dining_table_medium", Aliases: []string{"dining table", "table dining", "kitchen table"}, WeightLbs: 180, VolumeCuft: 30, Category: CategoryTable})
	c.Register(Entry{Name: "dining_table_large", Aliases: []string{"large dining table", "dining table large solid wood"}, WeightLbs: 260, VolumeCuft: 35, Category: CategoryTable})
	c.Register(Entry{Name: "dining_chair", Aliases: []string{"chair", "kitchen chair"}, WeightLbs: 25, VolumeCuft: 5, Category: CategoryChair})
	c.Register(Entry{Name: "bar_stool", Aliases: []string{"barstool", "counter stool"}, WeightLbs: 15, VolumeCuft: 3, Category: CategoryChair})

	// Bedroom storage
	c.Register(Entry{Name: "dresser_standard", Aliases: []string{"dresser", "bureau"}, WeightLbs: 150, VolumeCuft: 35, Category: CategoryDresser})
	c.Register(Entry{Name: "dresser_tall", Aliases: []string{"tall dresser", "highboy", "chest of drawers"}, WeightLbs: 165, VolumeCuft: 32, Category: CategoryDresser})
	c.Register(Entry{Name: "dresser_double", Aliases: []string{"double dresser", "lowboy dresser"}, WeightLbs: 190, VolumeCuft: 45, Category: CategoryDresser})
	c.Register(Entry{Name: "wardrobe_large", Aliases: []string{"wardrobe", "armoire"}, WeightLbs: 240, VolumeCuft: 45, Category: CategoryWardrobe})
	c.Register(Entry{Name: "nightstand", Aliases: []string{"night stand", "bedside table"}, WeightLbs: 40, VolumeCuft: 8, Category: CategoryTable})

	// Office
	c.Register(Entry{Name: "desk_office", Aliases: []string{"desk", "office desk", "writing desk"}, WeightLbs: 115, VolumeCuft: 35, Category: CategoryDesk})
	c.Register(Entry{Name: "chair_office", Aliases: []string{"office chair", "desk chair"}, WeightLbs: 45, VolumeCuft: 12, Category: CategoryChair})
	c.Register(Entry{Name: "filing_cabinet", Aliases: []string{"file cabinet"}, WeightLbs: 100, VolumeCuft: 15, Category: CategoryMisc})

	// Specialty
	c.Register(Entry{Name: "piano_grand", Aliases: []string{"grand piano", "baby grand piano"}, WeightLbs: 700, VolumeCuft: 100, Category: CategoryPiano})
	c.Register(Entry{Name: "piano_upright", Aliases: []string{"upright piano", "spinet piano"}, WeightLbs: 480, VolumeCuft: 60, Category: CategoryPiano})
	c.Register(Entry{Name: "bench_piano", Aliases: []string{"piano bench"}, WeightLbs: 40, VolumeCuft: 5, Category: CategoryMisc})
	c.Register(Entry{Name: "safe_large", Aliases: []string{"safe", "gun safe", "floor safe"}, WeightLbs: 320, VolumeCuft: 18, Category: CategoryMisc})
	c.Register(Entry{Name: "treadmill", Aliases: []string{"exercise treadmill"}, WeightLbs: 220, VolumeCuft: 40, Category: CategoryMisc})

	// Cartons
	c.Register(Entry{Name: "box_small", Aliases: []string{"small box", "box 1.5", "1.5 cu ft box"}, WeightLbs: 15, VolumeCuft: 1.5, Category: CategoryCarton})
	c.Register(Entry{Name: "box_medium", Aliases: []string{"medium box", "box 3.0", "3.0 cu ft box"}, WeightLbs: 30, VolumeCuft: 3, Category: CategoryCarton})
	c.Register(Entry{Name: "box_large", Aliases: []string{"large box", "box 4.5", "4.5 cu ft box"}, WeightLbs: 45, VolumeCuft: 4.5, Category: CategoryCarton})
	c.Register(Entry{Name: "box_xl", Aliases: []string{"xl box", "extra large box", "box 6.0"}, WeightLbs: 60, VolumeCuft: 6, Category: CategoryCarton})
	c.Register(Entry{Name: "wardrobe_box", Aliases: []string{"wardrobe carton"}, WeightLbs: 50, VolumeCuft: 10, Category: CategoryCarton})
}

// Standard builds and validates the standard catalog
func Standard() *Catalog {
	c := NewCatalog()
	RegisterStandard(c)
	c.MustValidate()
	return c
}
