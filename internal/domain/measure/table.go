package measure

// Equivalence is a domain fact: for one ingredient, one informal unit
// corresponds to a canonical quantity in grams (Weight) or pieces (Count).
// A zero field means the entry does not encode that dimension. Approximate
// distinguishes kitchen heuristics from exact unit arithmetic.
type Equivalence struct {
	Ingredient  string // normalized name
	Unit        string // normalized unit label
	Weight      float64
	Count       float64
	Description string
	Approximate bool
}

// entry is the table-literal form of an Equivalence before the ingredient
// and unit keys are stamped in.
type entry struct {
	weight      float64
	count       float64
	description string
	approximate bool
}

// informalTable holds per-ingredient informal-unit equivalences, keyed by
// normalized ingredient name then normalized unit label. Quantities reflect
// typical market produce in the MiamBidi catalog; they are heuristics, not
// scale readings.
var informalTable = map[string]map[string]entry{
	"tomate": {
		"piece": {weight: 150, description: "1 pièce ≈ 150 g", approximate: true},
	},
	"oignon": {
		"piece": {weight: 110, description: "1 pièce ≈ 110 g", approximate: true},
	},
	"pomme de terre": {
		"piece": {weight: 170, description: "1 pièce ≈ 170 g", approximate: true},
	},
	"carotte": {
		"piece": {weight: 125, description: "1 pièce ≈ 125 g", approximate: true},
		"botte": {weight: 500, description: "1 botte ≈ 500 g", approximate: true},
	},
	"ail": {
		"gousse": {weight: 5, description: "1 gousse ≈ 5 g", approximate: true},
		"tete":   {weight: 50, description: "1 tête ≈ 50 g", approximate: true},
	},
	"citron": {
		"piece": {weight: 100, description: "1 pièce ≈ 100 g", approximate: true},
		"filet": {count: 6, description: "1 filet = 6 pièces", approximate: true},
	},
	"plantain": {
		"piece":  {weight: 250, description: "1 pièce ≈ 250 g", approximate: true},
		"regime": {weight: 3000, description: "1 régime ≈ 3 kg", approximate: true},
	},
	"oeuf": {
		"piece":    {weight: 60, count: 1, description: "1 pièce ≈ 60 g", approximate: true},
		"douzaine": {weight: 720, count: 12, description: "1 douzaine = 12 pièces ≈ 720 g", approximate: true},
	},
	"persil": {
		"botte": {weight: 50, description: "1 botte ≈ 50 g", approximate: true},
	},
	"basilic": {
		"botte": {weight: 40, description: "1 botte ≈ 40 g", approximate: true},
	},
	"gingembre": {
		"morceau": {weight: 30, description: "1 morceau ≈ 30 g", approximate: true},
	},
	"pain": {
		"tranche":  {weight: 30, description: "1 tranche ≈ 30 g", approximate: true},
		"baguette": {weight: 250, description: "1 baguette ≈ 250 g", approximate: true},
	},
	"jambon": {
		"tranche": {weight: 40, description: "1 tranche ≈ 40 g", approximate: true},
	},
	"cube assaisonnement": {
		"piece": {weight: 10, description: "1 cube ≈ 10 g", approximate: true},
	},
	"piment": {
		"piece": {weight: 20, description: "1 pièce ≈ 20 g", approximate: true},
	},
	"gombo": {
		"piece":  {weight: 25, description: "1 pièce ≈ 25 g", approximate: true},
		"paquet": {weight: 400, description: "1 paquet ≈ 400 g", approximate: true},
	},
	"feuille de laurier": {
		"feuille": {weight: 1, count: 1, description: "1 feuille ≈ 1 g", approximate: true},
	},
	"chocolat": {
		"tablette": {weight: 200, description: "1 tablette ≈ 200 g", approximate: true},
		"carre":    {weight: 10, description: "1 carré ≈ 10 g", approximate: true},
	},
}

// standardWeightEntries are merged into every ingredient that declares at
// least one weight-dimension equivalence, so informal-to-standard lookups
// ("pièce" to "g") resolve through the same two-sided table walk as
// informal-to-informal ones.
var standardWeightEntries = map[string]entry{
	"g":  {weight: 1, description: "1 g"},
	"kg": {weight: 1000, description: "1 kg"},
}

// densityTable holds gram equivalents of cooking volumes for the small set
// of ingredients with a known density-like equivalence.
var densityTable = map[string]map[string]float64{
	"farine": {"tasse": 120, "cuillere a soupe": 8},
	"sucre":  {"tasse": 200, "cuillere a soupe": 12},
	"riz":    {"tasse": 185, "cuillere a soupe": 12},
	"huile":  {"tasse": 220, "cuillere a soupe": 14},
	"eau":    {"tasse": 250, "cuillere a soupe": 15},
	"lait":   {"tasse": 245, "cuillere a soupe": 15},
}

// equivalences is the resolved lookup table: informalTable plus the merged
// standard weight entries. Built once at init and never mutated afterwards.
var equivalences map[string]map[string]Equivalence

func init() {
	equivalences = make(map[string]map[string]Equivalence, len(informalTable))
	for name, units := range informalTable {
		resolved := make(map[string]Equivalence, len(units)+len(standardWeightEntries))
		hasWeight := false
		for unit, e := range units {
			resolved[unit] = Equivalence{
				Ingredient:  name,
				Unit:        unit,
				Weight:      e.weight,
				Count:       e.count,
				Description: e.description,
				Approximate: e.approximate,
			}
			if e.weight > 0 {
				hasWeight = true
			}
		}
		if hasWeight {
			for unit, e := range standardWeightEntries {
				if _, exists := resolved[unit]; exists {
					continue
				}
				resolved[unit] = Equivalence{
					Ingredient:  name,
					Unit:        unit,
					Weight:      e.weight,
					Description: e.description,
				}
			}
		}
		equivalences[name] = resolved
	}
}
