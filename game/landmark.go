package game

// LandmarkKind says whether a landmark fires once at purchase or persists.
type LandmarkKind int

const (
	Immediate LandmarkKind = iota
	Infinite
)

func (k LandmarkKind) String() string {
	if k == Immediate {
		return "Immediate"
	}
	return "Infinite"
}

// Landmark identifies a landmark type. Each exists exactly once.
type Landmark int

const (
	Airport Landmark = iota
	AmusementPark
	Charterhouse
	ExhibitHall
	FarmersMarket
	Forge
	FrenchRestaurant
	LaunchPad
	LoanOffice
	MovingCompany
	Museum
	Observatory
	Park
	Publisher
	RadioTower
	SodaBottlingPlant
	ShoppingMall
	TechStartup
	Temple
	TvStation
	numLandmarks
)

// WinLandmark ends the game in its owner's favor.
const WinLandmark = LaunchPad

// LandmarkDef is the immutable catalog entry of a landmark. Cost is indexed
// by how many landmarks the buyer already owns.
type LandmarkDef struct {
	Name string
	Cost []uint
	Kind LandmarkKind
}

var (
	standardCost = []uint{12, 16, 22}
	cheapCost    = []uint{10, 14, 22}
)

var landmarkDefs = [numLandmarks]LandmarkDef{
	Airport:           {Name: "Airport", Cost: standardCost, Kind: Infinite},
	AmusementPark:     {Name: "Amusement Park", Cost: standardCost, Kind: Infinite},
	Charterhouse:      {Name: "Charterhouse", Cost: standardCost, Kind: Infinite},
	ExhibitHall:       {Name: "Exhibit Hall", Cost: standardCost, Kind: Immediate},
	FarmersMarket:     {Name: "Farmers Market", Cost: cheapCost, Kind: Infinite},
	Forge:             {Name: "Forge", Cost: standardCost, Kind: Infinite},
	FrenchRestaurant:  {Name: "French Restaurant", Cost: cheapCost, Kind: Immediate},
	LaunchPad:         {Name: "Launch Pad", Cost: []uint{45, 38, 25}, Kind: Immediate},
	LoanOffice:        {Name: "Loan Office", Cost: []uint{10}, Kind: Infinite},
	MovingCompany:     {Name: "Moving Company", Cost: cheapCost, Kind: Infinite},
	Museum:            {Name: "Museum", Cost: standardCost, Kind: Immediate},
	Observatory:       {Name: "Observatory", Cost: cheapCost, Kind: Infinite},
	Park:              {Name: "Park", Cost: standardCost, Kind: Immediate},
	Publisher:         {Name: "Publisher", Cost: cheapCost, Kind: Immediate},
	RadioTower:        {Name: "Radio Tower", Cost: standardCost, Kind: Immediate},
	SodaBottlingPlant: {Name: "Soda Bottling Plant", Cost: standardCost, Kind: Infinite},
	ShoppingMall:      {Name: "Shopping Mall", Cost: cheapCost, Kind: Infinite},
	TechStartup:       {Name: "Tech Startup", Cost: cheapCost, Kind: Infinite},
	Temple:            {Name: "Temple", Cost: standardCost, Kind: Infinite},
	TvStation:         {Name: "TV Station", Cost: standardCost, Kind: Immediate},
}

// Def returns the catalog entry for the landmark.
func (l Landmark) Def() LandmarkDef {
	return landmarkDefs[l]
}

func (l Landmark) String() string {
	if l < 0 || l >= numLandmarks {
		return "Unknown"
	}
	return landmarkDefs[l].Name
}

// AllLandmarks lists every landmark tag in catalog order.
func AllLandmarks() []Landmark {
	landmarks := make([]Landmark, 0, numLandmarks)
	for l := Landmark(0); l < numLandmarks; l++ {
		landmarks = append(landmarks, l)
	}
	return landmarks
}

// BaseCost is the schedule price for a buyer owning `owned` landmarks, or
// false when the schedule has no tier for that count.
func (d LandmarkDef) BaseCost(owned int) (uint, bool) {
	if owned < 0 || owned >= len(d.Cost) {
		return 0, false
	}
	return d.Cost[owned], true
}
