// meta/meta.go
package meta

// MIN_PLAYERS is the smallest supported table.
const MIN_PLAYERS = 2

// MAX_PLAYERS is the largest supported table.
const MAX_PLAYERS = 5

// BUY_ONLY_ROUNDS is the number of opening rounds where players only buy.
const BUY_ONLY_ROUNDS = 3

// STARTING_COINS is each player's balance at setup.
const STARTING_COINS = 5

// MARKET_SIZE caps the distinct tags shown face up per deck.
const MARKET_SIZE = 5

// LANDMARKS_TO_WIN is the number of landmarks that ends the game.
const LANDMARKS_TO_WIN = 3

// MAX_TURNS stops a run that never produces a winner.
const MAX_TURNS = 2000
