package entity

type Caffeine string

const (
	CaffeineNone Caffeine = "none"
	CaffeineLow  Caffeine = "low"
	CaffeineHigh Caffeine = "high"
)

// Product is a catalog ritual. The catalog is static and read-only.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PriceCents  int64    `json:"price_cents"`
	Description string   `json:"description"`
	Goals       []string `json:"goals"`
	Flavors     []string `json:"flavors"`
	Caffeine    Caffeine `json:"caffeine"`
}

// QuizAnswers is the transient input of the recommendation quiz. It is
// never persisted. EnergyLevel and BrewPreference are collected by the
// quiz but do not participate in scoring.
type QuizAnswers struct {
	Goal           string   `json:"goal"`
	Flavor         string   `json:"flavor"`
	Caffeine       Caffeine `json:"caffeine"`
	EnergyLevel    int      `json:"energy_level"`
	BrewPreference string   `json:"brew_preference"`
}
