package catalog

import "ecohome/internal/model"

// The full shop catalog: 3 categories, tiers 1-6, 5 items per tier.
// BasePrice drives both upgrade cost and the resale/commission math, so the
// values here are load-bearing game balance, not display data.

var energyItems = []model.CatalogItem{
	// Tier 1
	{ID: "hamster", Name: "Running Hamster", Category: model.CategoryEnergy, Tier: 1, BasePrice: 200, Efficiency: 1, Ecology: 3, Description: "A cute hamster in a wheel produces a trickle of power"},
	{ID: "hand-crank", Name: "Hand-Crank Generator", Category: model.CategoryEnergy, Tier: 1, BasePrice: 250, Efficiency: 1, Ecology: 4, Description: "A simple hand-powered generator"},
	{ID: "dynamo-flashlight", Name: "Dynamo Flashlight", Category: model.CategoryEnergy, Tier: 1, BasePrice: 180, Efficiency: 1, Ecology: 5, Description: "A flashlight with a built-in dynamo"},
	{ID: "potato-battery", Name: "Potato Battery", Category: model.CategoryEnergy, Tier: 1, BasePrice: 150, Efficiency: 1, Ecology: 6, Description: "An eco-friendly battery made of potatoes"},
	{ID: "lemon-battery", Name: "Lemon Battery", Category: model.CategoryEnergy, Tier: 1, BasePrice: 170, Efficiency: 1, Ecology: 6, Description: "An acid battery made of lemons"},
	// Tier 2
	{ID: "bicycle-gen", Name: "Bicycle Generator", Category: model.CategoryEnergy, Tier: 2, BasePrice: 500, Efficiency: 2, Ecology: 5, Description: "A pedal-powered generator"},
	{ID: "kinetic-floor", Name: "Kinetic Floor", Category: model.CategoryEnergy, Tier: 2, BasePrice: 550, Efficiency: 2, Ecology: 6, Description: "Flooring that generates power from footsteps"},
	{ID: "piezo-tiles", Name: "Piezo Tiles", Category: model.CategoryEnergy, Tier: 2, BasePrice: 480, Efficiency: 2, Ecology: 7, Description: "Tiles with piezoelectric elements"},
	{ID: "thermal-gen", Name: "Thermal Generator", Category: model.CategoryEnergy, Tier: 2, BasePrice: 520, Efficiency: 2, Ecology: 5, Description: "A generator driven by temperature differences"},
	{ID: "mini-windmill", Name: "Mini Windmill", Category: model.CategoryEnergy, Tier: 2, BasePrice: 600, Efficiency: 2, Ecology: 8, Description: "A small wind-powered generator"},
	// Tier 3
	{ID: "solar-charger", Name: "Solar Charger", Category: model.CategoryEnergy, Tier: 3, BasePrice: 1000, Efficiency: 4, Ecology: 8, Description: "A portable solar panel"},
	{ID: "water-wheel-small", Name: "Small Water Wheel", Category: model.CategoryEnergy, Tier: 3, BasePrice: 1100, Efficiency: 4, Ecology: 7, Description: "A compact water wheel"},
	{ID: "bio-reactor-mini", Name: "Mini Bioreactor", Category: model.CategoryEnergy, Tier: 3, BasePrice: 1200, Efficiency: 4, Ecology: 6, Description: "A small biogas reactor"},
	{ID: "stirling-engine", Name: "Stirling Engine", Category: model.CategoryEnergy, Tier: 3, BasePrice: 950, Efficiency: 4, Ecology: 7, Description: "A Stirling heat engine"},
	{ID: "flywheel-storage", Name: "Flywheel Storage", Category: model.CategoryEnergy, Tier: 3, BasePrice: 1050, Efficiency: 4, Ecology: 8, Description: "A mechanical energy store"},
	// Tier 4
	{ID: "solar-panel", Name: "Solar Panel", Category: model.CategoryEnergy, Tier: 4, BasePrice: 2000, Efficiency: 6, Ecology: 9, Description: "A standard solar panel"},
	{ID: "water-wheel", Name: "Water Wheel", Category: model.CategoryEnergy, Tier: 4, BasePrice: 2200, Efficiency: 6, Ecology: 8, Description: "A traditional water wheel"},
	{ID: "bio-generator", Name: "Bio Generator", Category: model.CategoryEnergy, Tier: 4, BasePrice: 2100, Efficiency: 6, Ecology: 7, Description: "A biofuel-driven generator"},
	{ID: "geothermal-pump", Name: "Geothermal Pump", Category: model.CategoryEnergy, Tier: 4, BasePrice: 2300, Efficiency: 6, Ecology: 9, Description: "A ground-source heat pump"},
	{ID: "micro-hydro", Name: "Micro Hydro Plant", Category: model.CategoryEnergy, Tier: 4, BasePrice: 2400, Efficiency: 6, Ecology: 8, Description: "A tiny hydroelectric station"},
	// Tier 5
	{ID: "solar-array", Name: "Solar Array", Category: model.CategoryEnergy, Tier: 5, BasePrice: 3500, Efficiency: 8, Ecology: 9, Description: "A large array of solar panels"},
	{ID: "wind-gen", Name: "Wind Generator", Category: model.CategoryEnergy, Tier: 5, BasePrice: 3800, Efficiency: 8, Ecology: 10, Description: "A powerful wind generator"},
	{ID: "biogas-plant", Name: "Biogas Plant", Category: model.CategoryEnergy, Tier: 5, BasePrice: 3600, Efficiency: 8, Ecology: 7, Description: "Biogas production from waste"},
	{ID: "tidal-gen", Name: "Tidal Generator", Category: model.CategoryEnergy, Tier: 5, BasePrice: 4000, Efficiency: 8, Ecology: 9, Description: "Power from the tides"},
	{ID: "hydrogen-cell", Name: "Hydrogen Cell", Category: model.CategoryEnergy, Tier: 5, BasePrice: 3700, Efficiency: 8, Ecology: 10, Description: "A hydrogen fuel cell"},
	// Tier 6
	{ID: "wind-turbine", Name: "Wind Turbine", Category: model.CategoryEnergy, Tier: 6, BasePrice: 5000, Efficiency: 10, Ecology: 10, Description: "A powerful industrial turbine"},
	{ID: "solar-farm", Name: "Solar Farm", Category: model.CategoryEnergy, Tier: 6, BasePrice: 5500, Efficiency: 10, Ecology: 10, Description: "A large solar power station"},
	{ID: "fusion-mini", Name: "Mini Fusion Reactor", Category: model.CategoryEnergy, Tier: 6, BasePrice: 6000, Efficiency: 10, Ecology: 10, Description: "An experimental fusion reactor"},
	{ID: "wave-power", Name: "Wave Power Station", Category: model.CategoryEnergy, Tier: 6, BasePrice: 5200, Efficiency: 10, Ecology: 9, Description: "Power from ocean waves"},
	{ID: "orbital-mirror", Name: "Orbital Mirror", Category: model.CategoryEnergy, Tier: 6, BasePrice: 5800, Efficiency: 10, Ecology: 10, Description: "A space-based solar concentrator"},
}

var waterItems = []model.CatalogItem{
	// Tier 1
	{ID: "bucket", Name: "Rain Bucket", Category: model.CategoryWater, Tier: 1, BasePrice: 150, Efficiency: 1, Ecology: 5, Description: "A simple bucket for collecting rainwater"},
	{ID: "tarp-collector", Name: "Tarp Collector", Category: model.CategoryWater, Tier: 1, BasePrice: 180, Efficiency: 1, Ecology: 5, Description: "A tarp for catching dew and rain"},
	{ID: "gutter-basic", Name: "Basic Gutter", Category: model.CategoryWater, Tier: 1, BasePrice: 200, Efficiency: 1, Ecology: 6, Description: "A basic rain gutter"},
	{ID: "clay-pot", Name: "Clay Pot", Category: model.CategoryWater, Tier: 1, BasePrice: 120, Efficiency: 1, Ecology: 7, Description: "A traditional clay water vessel"},
	{ID: "bamboo-pipe", Name: "Bamboo Pipe", Category: model.CategoryWater, Tier: 1, BasePrice: 160, Efficiency: 1, Ecology: 8, Description: "An eco-friendly bamboo pipe"},
	// Tier 2
	{ID: "barrel", Name: "Water Barrel", Category: model.CategoryWater, Tier: 2, BasePrice: 400, Efficiency: 2, Ecology: 6, Description: "A large barrel for storing water"},
	{ID: "rain-chain", Name: "Rain Chain", Category: model.CategoryWater, Tier: 2, BasePrice: 450, Efficiency: 2, Ecology: 7, Description: "A decorative water collection chain"},
	{ID: "sand-filter", Name: "Sand Filter", Category: model.CategoryWater, Tier: 2, BasePrice: 480, Efficiency: 2, Ecology: 8, Description: "A simple sand-based filter"},
	{ID: "cistern-small", Name: "Small Cistern", Category: model.CategoryWater, Tier: 2, BasePrice: 520, Efficiency: 2, Ecology: 6, Description: "A compact water cistern"},
	{ID: "fog-net", Name: "Fog Net", Category: model.CategoryWater, Tier: 2, BasePrice: 550, Efficiency: 2, Ecology: 9, Description: "A mesh that harvests water from fog"},
	// Tier 3
	{ID: "well", Name: "Well", Category: model.CategoryWater, Tier: 3, BasePrice: 900, Efficiency: 4, Ecology: 7, Description: "A traditional groundwater well"},
	{ID: "pump-manual", Name: "Manual Pump", Category: model.CategoryWater, Tier: 3, BasePrice: 950, Efficiency: 4, Ecology: 8, Description: "A mechanical water pump"},
	{ID: "bio-filter", Name: "Bio Filter", Category: model.CategoryWater, Tier: 3, BasePrice: 1000, Efficiency: 4, Ecology: 9, Description: "Filtration through living organisms"},
	{ID: "rain-garden", Name: "Rain Garden", Category: model.CategoryWater, Tier: 3, BasePrice: 1100, Efficiency: 4, Ecology: 10, Description: "A garden that collects and filters runoff"},
	{ID: "greywater-basic", Name: "Basic Greywater Loop", Category: model.CategoryWater, Tier: 3, BasePrice: 1050, Efficiency: 4, Ecology: 7, Description: "A simple greywater recycling setup"},
	// Tier 4
	{ID: "filter-system", Name: "Filtration System", Category: model.CategoryWater, Tier: 4, BasePrice: 1800, Efficiency: 6, Ecology: 8, Description: "A modern water purification system"},
	{ID: "cistern-large", Name: "Large Cistern", Category: model.CategoryWater, Tier: 4, BasePrice: 2000, Efficiency: 6, Ecology: 7, Description: "An industrial-size water cistern"},
	{ID: "solar-still", Name: "Solar Still", Category: model.CategoryWater, Tier: 4, BasePrice: 1900, Efficiency: 6, Ecology: 9, Description: "Water purification by solar heat"},
	{ID: "uv-purifier", Name: "UV Purifier", Category: model.CategoryWater, Tier: 4, BasePrice: 2100, Efficiency: 6, Ecology: 8, Description: "Ultraviolet disinfection"},
	{ID: "aquifer-pump", Name: "Aquifer Pump", Category: model.CategoryWater, Tier: 4, BasePrice: 2200, Efficiency: 6, Ecology: 6, Description: "A deep pump for groundwater"},
	// Tier 5
	{ID: "rain-collector", Name: "Rainwater Collector", Category: model.CategoryWater, Tier: 5, BasePrice: 3000, Efficiency: 8, Ecology: 9, Description: "A professional water collection system"},
	{ID: "greywater-system", Name: "Greywater System", Category: model.CategoryWater, Tier: 5, BasePrice: 3200, Efficiency: 8, Ecology: 8, Description: "Full household water recirculation"},
	{ID: "membrane-filter", Name: "Membrane Filter", Category: model.CategoryWater, Tier: 5, BasePrice: 3100, Efficiency: 8, Ecology: 9, Description: "Nanofiltration of water"},
	{ID: "rainwater-tank", Name: "Rainwater Tank", Category: model.CategoryWater, Tier: 5, BasePrice: 3300, Efficiency: 8, Ecology: 8, Description: "A large underground reservoir"},
	{ID: "water-recycler", Name: "Water Recycler", Category: model.CategoryWater, Tier: 5, BasePrice: 3400, Efficiency: 8, Ecology: 9, Description: "A complete water recycling loop"},
	// Tier 6
	{ID: "atmospheric-gen", Name: "Atmospheric Generator", Category: model.CategoryWater, Tier: 6, BasePrice: 4500, Efficiency: 10, Ecology: 10, Description: "Extracts water from the air"},
	{ID: "desalination", Name: "Desalination Plant", Category: model.CategoryWater, Tier: 6, BasePrice: 5000, Efficiency: 10, Ecology: 8, Description: "Desalinates seawater"},
	{ID: "closed-loop", Name: "Closed Loop", Category: model.CategoryWater, Tier: 6, BasePrice: 4800, Efficiency: 10, Ecology: 10, Description: "100% water recirculation"},
	{ID: "cloud-seeding", Name: "Cloud Seeding", Category: model.CategoryWater, Tier: 6, BasePrice: 5200, Efficiency: 10, Ecology: 7, Description: "Artificially induced rainfall"},
	{ID: "ice-harvester", Name: "Ice Harvester", Category: model.CategoryWater, Tier: 6, BasePrice: 4600, Efficiency: 10, Ecology: 9, Description: "Harvests water from icebergs"},
}

var greeneryItems = []model.CatalogItem{
	// Tier 1
	{ID: "grass", Name: "Lawn Grass", Category: model.CategoryGreenery, Tier: 1, BasePrice: 100, Efficiency: 1, Ecology: 4, Description: "A simple lawn for greening"},
	{ID: "moss", Name: "Moss", Category: model.CategoryGreenery, Tier: 1, BasePrice: 120, Efficiency: 1, Ecology: 5, Description: "Undemanding moss"},
	{ID: "clover", Name: "Clover", Category: model.CategoryGreenery, Tier: 1, BasePrice: 130, Efficiency: 1, Ecology: 6, Description: "Soil-friendly clover"},
	{ID: "fern-small", Name: "Small Fern", Category: model.CategoryGreenery, Tier: 1, BasePrice: 140, Efficiency: 1, Ecology: 5, Description: "A compact fern"},
	{ID: "succulent", Name: "Succulent", Category: model.CategoryGreenery, Tier: 1, BasePrice: 110, Efficiency: 1, Ecology: 4, Description: "A low-maintenance plant"},
	// Tier 2
	{ID: "flower-bed", Name: "Flower Bed", Category: model.CategoryGreenery, Tier: 2, BasePrice: 300, Efficiency: 2, Ecology: 5, Description: "A pretty flower bed"},
	{ID: "herbs", Name: "Herb Garden", Category: model.CategoryGreenery, Tier: 2, BasePrice: 350, Efficiency: 2, Ecology: 6, Description: "A garden of aromatic herbs"},
	{ID: "ivy", Name: "Ivy", Category: model.CategoryGreenery, Tier: 2, BasePrice: 280, Efficiency: 2, Ecology: 5, Description: "Climbing ivy for walls"},
	{ID: "fern-large", Name: "Large Fern", Category: model.CategoryGreenery, Tier: 2, BasePrice: 320, Efficiency: 2, Ecology: 6, Description: "A lush fern"},
	{ID: "bamboo-small", Name: "Small Bamboo", Category: model.CategoryGreenery, Tier: 2, BasePrice: 380, Efficiency: 2, Ecology: 7, Description: "Decorative bamboo"},
	// Tier 3
	{ID: "bush", Name: "Ornamental Bush", Category: model.CategoryGreenery, Tier: 3, BasePrice: 700, Efficiency: 4, Ecology: 6, Description: "A decorative garden bush"},
	{ID: "berry-bush", Name: "Berry Bush", Category: model.CategoryGreenery, Tier: 3, BasePrice: 750, Efficiency: 4, Ecology: 7, Description: "A bush with berries"},
	{ID: "rose-garden", Name: "Rose Garden", Category: model.CategoryGreenery, Tier: 3, BasePrice: 800, Efficiency: 4, Ecology: 6, Description: "A garden of roses"},
	{ID: "bamboo-grove", Name: "Bamboo Grove", Category: model.CategoryGreenery, Tier: 3, BasePrice: 850, Efficiency: 4, Ecology: 8, Description: "A cluster of bamboo plants"},
	{ID: "hedge", Name: "Hedge", Category: model.CategoryGreenery, Tier: 3, BasePrice: 720, Efficiency: 4, Ecology: 7, Description: "A living green fence"},
	// Tier 4
	{ID: "fruit-tree", Name: "Fruit Tree", Category: model.CategoryGreenery, Tier: 4, BasePrice: 1500, Efficiency: 6, Ecology: 8, Description: "A tree that yields fruit and oxygen"},
	{ID: "pine-tree", Name: "Pine Tree", Category: model.CategoryGreenery, Tier: 4, BasePrice: 1600, Efficiency: 6, Ecology: 8, Description: "An evergreen pine"},
	{ID: "willow", Name: "Willow", Category: model.CategoryGreenery, Tier: 4, BasePrice: 1400, Efficiency: 6, Ecology: 7, Description: "A graceful weeping willow"},
	{ID: "maple", Name: "Maple", Category: model.CategoryGreenery, Tier: 4, BasePrice: 1550, Efficiency: 6, Ecology: 8, Description: "A handsome maple"},
	{ID: "birch", Name: "Birch", Category: model.CategoryGreenery, Tier: 4, BasePrice: 1450, Efficiency: 6, Ecology: 8, Description: "A white-barked birch"},
	// Tier 5
	{ID: "oak-tree", Name: "Oak", Category: model.CategoryGreenery, Tier: 5, BasePrice: 2800, Efficiency: 8, Ecology: 9, Description: "A mighty oak, an excellent oxygen source"},
	{ID: "redwood", Name: "Redwood", Category: model.CategoryGreenery, Tier: 5, BasePrice: 3000, Efficiency: 8, Ecology: 10, Description: "A giant ancient tree"},
	{ID: "greenhouse", Name: "Greenhouse", Category: model.CategoryGreenery, Tier: 5, BasePrice: 2900, Efficiency: 8, Ecology: 7, Description: "An enclosed garden for year-round growing"},
	{ID: "orchard", Name: "Orchard", Category: model.CategoryGreenery, Tier: 5, BasePrice: 3100, Efficiency: 8, Ecology: 9, Description: "A whole garden of fruit trees"},
	{ID: "botanical", Name: "Botanical Corner", Category: model.CategoryGreenery, Tier: 5, BasePrice: 2850, Efficiency: 8, Ecology: 9, Description: "A collection of rare plants"},
	// Tier 6
	{ID: "vertical-garden", Name: "Vertical Garden", Category: model.CategoryGreenery, Tier: 6, BasePrice: 4000, Efficiency: 10, Ecology: 10, Description: "Maximum greenery in minimum space"},
	{ID: "rooftop-forest", Name: "Rooftop Forest", Category: model.CategoryGreenery, Tier: 6, BasePrice: 4500, Efficiency: 10, Ecology: 10, Description: "A full forest on the roof"},
	{ID: "biosphere", Name: "Biosphere", Category: model.CategoryGreenery, Tier: 6, BasePrice: 5000, Efficiency: 10, Ecology: 10, Description: "A closed ecosystem"},
	{ID: "algae-farm", Name: "Algae Farm", Category: model.CategoryGreenery, Tier: 6, BasePrice: 4200, Efficiency: 10, Ecology: 9, Description: "Oxygen production by algae"},
	{ID: "ancient-grove", Name: "Ancient Grove", Category: model.CategoryGreenery, Tier: 6, BasePrice: 4800, Efficiency: 10, Ecology: 10, Description: "A sacred grove of ancient trees"},
}
