package game

// Color decides who may activate a card and when it fires during income.
type Color int

const (
	Blue   Color = iota // anyone's turn, bank pays
	Green               // owner's turn only
	Purple              // owner's turn only, fires last
	Red                 // opponents' turns, active player pays
)

var colorNames = map[Color]string{
	Blue:   "Blue",
	Green:  "Green",
	Purple: "Purple",
	Red:    "Red",
}

func (c Color) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return "Unknown"
}

// Category groups cards for combo effects and landmark bonuses.
type Category int

const (
	Bread Category = iota
	Building
	Combo
	Cup
	Flower
	Fruit
	Gear
	Wheat
)

var categoryNames = map[Category]string{
	Bread:    "Bread",
	Building: "Building",
	Combo:    "Combo",
	Cup:      "Cup",
	Flower:   "Flower",
	Fruit:    "Fruit",
	Gear:     "Gear",
	Wheat:    "Wheat",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "Unknown"
}

// EffectKind tags the economic effect a card applies when activated.
type EffectKind int

const (
	GetCoinsFromBank EffectKind = iota
	TakeCoinsFromActivePlayer
	TakeCoinsFromEachOpponent
	TakeCoinsFromEachOpponentWithMoreThan10Coins
	GetCoinsFromBankForEachCardCategory
	GetCoinsFromBankForEachCardColor
	ExchangeEstablishment
)

// Effect is a card's effect descriptor with its catalog parameters.
// Category and Color are only meaningful for the per-card bank effects.
type Effect struct {
	Kind     EffectKind
	Amount   uint
	Category Category
	Color    Color
}

// Card identifies an establishment type.
type Card int

const (
	SushiBar Card = iota
	WheatField
	Vineyard
	Bakery
	Cafe
	FlowerGarden
	ConvenienceStore
	Forest
	CornField
	HamburgerStand
	FamilyRestaurant
	AppleOrchard
	Mine
	FlowerShop
	BusinessCenter
	Stadium
	FurnitureFactory
	ShoppingDistrict
	Winery
	FoodWarehouse
	numCards
)

// CardDef is the immutable catalog entry of a card.
type CardDef struct {
	Name       string
	Cost       uint
	Activation []int
	Color      Color
	Category   Category
	Effect     Effect
	Copies     int
}

var cardDefs = [numCards]CardDef{
	SushiBar:         {Name: "Sushi Bar", Cost: 2, Activation: []int{1}, Color: Red, Category: Cup, Copies: 5, Effect: Effect{Kind: TakeCoinsFromActivePlayer, Amount: 3}},
	WheatField:       {Name: "Wheat Field", Cost: 1, Activation: []int{1, 2}, Color: Blue, Category: Wheat, Copies: 5, Effect: Effect{Kind: GetCoinsFromBank, Amount: 1}},
	Vineyard:         {Name: "Vineyard", Cost: 1, Activation: []int{1, 2}, Color: Blue, Category: Fruit, Copies: 5, Effect: Effect{Kind: GetCoinsFromBank, Amount: 2}},
	Bakery:           {Name: "Bakery", Cost: 1, Activation: []int{2, 3}, Color: Green, Category: Bread, Copies: 5, Effect: Effect{Kind: GetCoinsFromBank, Amount: 2}},
	Cafe:             {Name: "Cafe", Cost: 1, Activation: []int{3}, Color: Red, Category: Cup, Copies: 5, Effect: Effect{Kind: TakeCoinsFromActivePlayer, Amount: 2}},
	FlowerGarden:     {Name: "Flower Garden", Cost: 2, Activation: []int{4}, Color: Blue, Category: Flower, Copies: 5, Effect: Effect{Kind: GetCoinsFromBank, Amount: 2}},
	ConvenienceStore: {Name: "Convenience Store", Cost: 1, Activation: []int{4}, Color: Green, Category: Bread, Copies: 5, Effect: Effect{Kind: GetCoinsFromBank, Amount: 3}},
	Forest:           {Name: "Forest", Cost: 3, Activation: []int{5}, Color: Blue, Category: Gear, Copies: 5, Effect: Effect{Kind: GetCoinsFromBank, Amount: 2}},
	CornField:        {Name: "Corn Field", Cost: 2, Activation: []int{7}, Color: Blue, Category: Wheat, Copies: 5, Effect: Effect{Kind: GetCoinsFromBank, Amount: 3}},
	HamburgerStand:   {Name: "Hamburger Stand", Cost: 1, Activation: []int{8}, Color: Red, Category: Cup, Copies: 5, Effect: Effect{Kind: TakeCoinsFromActivePlayer, Amount: 2}},
	FamilyRestaurant: {Name: "Family Restaurant", Cost: 2, Activation: []int{9, 10}, Color: Red, Category: Cup, Copies: 5, Effect: Effect{Kind: TakeCoinsFromActivePlayer, Amount: 2}},
	AppleOrchard:     {Name: "Apple Orchard", Cost: 1, Activation: []int{10}, Color: Blue, Category: Fruit, Copies: 5, Effect: Effect{Kind: GetCoinsFromBank, Amount: 3}},
	Mine:             {Name: "Mine", Cost: 4, Activation: []int{11, 12}, Color: Blue, Category: Gear, Copies: 5, Effect: Effect{Kind: GetCoinsFromBank, Amount: 6}},
	FlowerShop:       {Name: "Flower Shop", Cost: 1, Activation: []int{6}, Color: Green, Category: Combo, Copies: 3, Effect: Effect{Kind: GetCoinsFromBankForEachCardCategory, Amount: 3, Category: Flower}},
	BusinessCenter:   {Name: "Business Center", Cost: 3, Activation: []int{6}, Color: Purple, Category: Building, Copies: 3, Effect: Effect{Kind: ExchangeEstablishment}},
	Stadium:          {Name: "Stadium", Cost: 3, Activation: []int{7}, Color: Purple, Category: Building, Copies: 3, Effect: Effect{Kind: TakeCoinsFromEachOpponent, Amount: 3}},
	FurnitureFactory: {Name: "Furniture Factory", Cost: 4, Activation: []int{8}, Color: Green, Category: Combo, Copies: 3, Effect: Effect{Kind: GetCoinsFromBankForEachCardCategory, Amount: 4, Category: Gear}},
	ShoppingDistrict: {Name: "Shopping District", Cost: 3, Activation: []int{8, 9}, Color: Purple, Category: Building, Copies: 3, Effect: Effect{Kind: TakeCoinsFromEachOpponentWithMoreThan10Coins}},
	Winery:           {Name: "Winery", Cost: 3, Activation: []int{9}, Color: Green, Category: Combo, Copies: 3, Effect: Effect{Kind: GetCoinsFromBankForEachCardCategory, Amount: 3, Category: Fruit}},
	FoodWarehouse:    {Name: "Food Warehouse", Cost: 2, Activation: []int{10, 11}, Color: Green, Category: Combo, Copies: 3, Effect: Effect{Kind: GetCoinsFromBankForEachCardCategory, Amount: 2, Category: Cup}},
}

func (c Card) inCatalog() bool {
	return c >= 0 && c < numCards
}

// Def returns the catalog entry for the card.
func (c Card) Def() CardDef {
	return cardDefs[c]
}

func (c Card) String() string {
	if !c.inCatalog() {
		return "Unknown"
	}
	return cardDefs[c].Name
}

// AllCards lists every card tag in catalog order.
func AllCards() []Card {
	cards := make([]Card, 0, numCards)
	for c := Card(0); c < numCards; c++ {
		cards = append(cards, c)
	}
	return cards
}

// Activates reports whether a roll summing to sum triggers the card.
func (d CardDef) Activates(sum int) bool {
	for _, a := range d.Activation {
		if a == sum {
			return true
		}
	}
	return false
}

// IsLow reports whether every activation number is at most 6.
func IsLow(d CardDef) bool {
	for _, a := range d.Activation {
		if a > 6 {
			return false
		}
	}
	return true
}

// IsHigh reports whether every activation number is above 6.
func IsHigh(d CardDef) bool {
	for _, a := range d.Activation {
		if a <= 6 {
			return false
		}
	}
	return true
}

// BuildCardDeck expands every catalog entry matching pred into its copies,
// in catalog order. The result is unshuffled.
func BuildCardDeck(pred func(CardDef) bool) []Card {
	var deck []Card
	for _, c := range AllCards() {
		def := c.Def()
		if !pred(def) {
			continue
		}
		for i := 0; i < def.Copies; i++ {
			deck = append(deck, c)
		}
	}
	return deck
}
