package config

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Scoring  ScoringConfig  `toml:"scoring"`
	Review   ReviewConfig   `toml:"review"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ScoringConfig contains the keyword dictionary and scoring rules
type ScoringConfig struct {
	// BaseKeywords seeds the persistent weight table on first run.
	// Weights only ever grow from these values via reinforcement.
	BaseKeywords map[string]float64 `toml:"base_keywords"`

	// NegativeKeywords each subtract NegativePenalty when found in a description.
	NegativeKeywords []string `toml:"negative_keywords"`

	// DisqualifyingNames veto a company outright when found in its name.
	DisqualifyingNames []string `toml:"disqualifying_names"`

	NegativePenalty float64 `toml:"negative_penalty"`
	VetoScore       float64 `toml:"veto_score"`
}

// ReviewConfig contains manual review settings
type ReviewConfig struct {
	// DefaultThreshold is the score boundary used when --threshold is not given.
	// Records scoring above it enter the manual queue; everything at or below
	// is auto-labeled No.
	DefaultThreshold float64 `toml:"default_threshold"`

	// LearningRate is added to each matching keyword weight on a manual Yes.
	LearningRate float64 `toml:"learning_rate"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/startupscan/startupscan.db",
		},
		Scoring: ScoringConfig{
			BaseKeywords:       baseKeywords(),
			NegativeKeywords:   negativeKeywords(),
			DisqualifyingNames: []string{"Europe", "Consulting"},
			NegativePenalty:    5,
			VetoScore:          -100,
		},
		Review: ReviewConfig{
			DefaultThreshold: 0,
			LearningRate:     0.1,
		},
	}
}

// baseKeywords is the seed dictionary for the weight table. The register
// descriptions are German, so the dictionary mixes German and English terms.
func baseKeywords() map[string]float64 {
	return map[string]float64{
		"Entwicklung":              1,
		"ecommerce":                1,
		"digital":                  1,
		"digitale":                 1,
		"digitalen":                1,
		"Onlinehandel":             2,
		"SaaS":                     2,
		"Plattform":                1,
		"Web":                      1,
		"Mobilgeräte":              1,
		"Data Science":             2,
		"Data":                     1,
		"Daten":                    1,
		"künstliche":               1,
		"Intelligenz":              1,
		"KI":                       1,
		"AI":                       1,
		"Technologie":              1,
		"Technologien":             1,
		"CO2":                      1,
		"Software":                 1,
		"Development":              1,
		"Forschung":                1,
		"Innovation":               2,
		"Quantentechnologie":       2,
		"Quanten":                  1,
		"intelligent":              1,
		"intelligente":             1,
		"Computer":                 1,
		"Vision":                   1,
		"Erforschung":              1,
		"Blockchain":               2,
		"Virtual":                  1,
		"virtuell":                 1,
		"Realität":                 1,
		"Reality":                  1,
		"Softwareanwendung":        1,
		"Softwareanwendungen":      1,
		"Softwarelösungen":         1,
		"Chatbot":                  1,
		"Anwendungen":              1,
		"Treibhausgas":             1,
		"Treibhausgase":            1,
		"Emissionen":               1,
		"Treibhausgasemissionen":   1,
		"datengestützt":            1,
		"datengestützte":           1,
		"datengestützten":          1,
		"Cloud":                    1,
		"Analyse":                  1,
		"Softwareentwicklung":      1,
		"IT-Systeme":               1,
		"Sensorik":                 1,
		"medizinisch":              1,
		"Dokumentation":            1,
		"Informationstechnik":      1,
		"Informationstechnologien": 1,
		"Hardwareentwicklung":      1,
		"Algorithmen":              1,
		"Algorithmus":              1,
		"Artificial Intelligence":  1,
		"autonom":                  1,
		"autonomes":                1,
	}
}

func negativeKeywords() []string {
	return []string{
		"Wartung", "Consulting", "Beratungstätigkeiten", "jeglicher Art",
		"Elektrodienstleistungen", "Online-Kurse", "Marketingkommunikation",
		"Werbedienstleistungen", "Unternehmensberatung", "Agenturleistungen",
		"Erbringung", "Training", "Kulturorganisationen", "Schmuck", "Accessoires",
		"E-Books", "Vertriebs-Einheit", "Coachings", "Coaching",
	}
}
