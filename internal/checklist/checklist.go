// Package checklist holds the hand-maintained ledger of completed work items.
//
// The ledger is independent of the filesystem: it records what was claimed,
// not what exists. Callers compare its length to a declared expected total.
package checklist

// DefaultExpectedTotal is the number of items the built-in ledger claims.
const DefaultExpectedTotal = 23

// Item is one numbered ledger entry.
type Item struct {
	Ordinal     int    `json:"ordinal"`
	Description string `json:"description"`
}

// Ledger is an ordered, read-only list of claimed completions.
type Ledger struct {
	descriptions  []string
	expectedTotal int
}

// New creates a ledger from descriptions in declaration order.
func New(descriptions []string, expectedTotal int) *Ledger {
	return &Ledger{
		descriptions:  append([]string(nil), descriptions...),
		expectedTotal: expectedTotal,
	}
}

// Items returns the entries numbered from 1 in declaration order.
func (l *Ledger) Items() []Item {
	items := make([]Item, len(l.descriptions))
	for i, d := range l.descriptions {
		items[i] = Item{Ordinal: i + 1, Description: d}
	}
	return items
}

// Len returns the number of claimed items.
func (l *Ledger) Len() int {
	return len(l.descriptions)
}

// ExpectedTotal returns the declared number of items.
func (l *Ledger) ExpectedTotal() int {
	return l.expectedTotal
}

// CountMatches reports whether the ledger length equals the expected total.
func (l *Ledger) CountMatches() bool {
	return l.Len() == l.expectedTotal
}

// Default returns the built-in ledger.
func Default() *Ledger {
	return New(DefaultItems(), DefaultExpectedTotal)
}

// DefaultItems returns the built-in item descriptions.
func DefaultItems() []string {
	return []string{
		"Password Hashing & Security (SHA-256 + salt)",
		"Session Management (tokens, timeouts)",
		"Rate Limiting (DDoS protection)",
		"REST API Layer (HTTP endpoints)",
		"JSON Processing (parsing & serialization)",
		"Enhanced DAO Layer (enterprise methods)",
		"AI Recommendation Engine (collaborative filtering)",
		"Content-Based Filtering (genre analysis)",
		"User Preference Learning (implicit ratings)",
		"Internationalization (5 languages)",
		"Language Auto-Detection",
		"Cloud Integration (AWS simulation)",
		"Kubernetes Deployment Configs",
		"Microservices Architecture",
		"Database Connection Pooling",
		"Performance Monitoring",
		"Metrics Collection",
		"Backup Management System",
		"Configuration Management",
		"Advanced Search Engine",
		"Error Handling & Logging",
		"Enterprise Security Model",
		"Scalable Architecture Design",
	}
}
