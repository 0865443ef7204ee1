package dataset

import (
	"fmt"
	"math/rand"
	"strings"
)

// maxEmailAttempts bounds the retry loop when drawing a globally unique
// email before generation aborts with ErrUniqueExhausted.
const maxEmailAttempts = 1000

type faker struct {
	rand       *rand.Rand
	usedEmails map[string]bool
}

func newFaker(r *rand.Rand) *faker {
	return &faker{
		rand:       r,
		usedEmails: make(map[string]bool),
	}
}

var firstNames = []string{
	"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank",
	"Grace", "Henry", "Ivy", "Jack", "Karen", "Liam", "Maria", "Noah",
	"Olivia", "Paul", "Quinn", "Rosa", "Sam", "Tina", "Victor", "Wendy",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor",
	"Thomas", "Moore", "Lee", "Clark", "Walker", "Hall", "Young",
}

var emailDomains = []string{"example.com", "example.org", "example.net", "mail.com"}

var productAdjectives = []string{
	"Compact", "Deluxe", "Classic", "Modern", "Portable", "Premium",
	"Wireless", "Ergonomic", "Vintage", "Smart", "Durable", "Foldable",
}

var productNouns = []string{
	"Speaker", "Notebook", "Lamp", "Backpack", "Blender", "Keyboard",
	"Jacket", "Kettle", "Monitor", "Chair", "Puzzle", "Racket",
	"Headphones", "Mug", "Tent", "Scarf", "Camera", "Drill",
}

var productVariants = []string{
	"Pro", "Mini", "Max", "Plus", "Lite", "XL", "Classic", "Edition",
}

func (f *faker) name() string {
	return firstNames[f.rand.Intn(len(firstNames))] + " " + lastNames[f.rand.Intn(len(lastNames))]
}

// email derives a unique address from a customer name. Duplicate draws
// are retried with a fresh random suffix; exhaustion is an error, never
// a silent duplicate.
func (f *faker) email(name string) (string, error) {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	for attempt := 0; attempt < maxEmailAttempts; attempt++ {
		candidate := fmt.Sprintf("%s%d@%s", local, f.rand.Intn(100000), emailDomains[f.rand.Intn(len(emailDomains))])
		if !f.usedEmails[candidate] {
			f.usedEmails[candidate] = true
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no unique email for %q after %d attempts", ErrUniqueExhausted, name, maxEmailAttempts)
}

func (f *faker) phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", f.rand.Intn(1000), f.rand.Intn(1000), f.rand.Intn(10000))
}

// productName builds a short phrase like "Portable Speaker Mini".
func (f *faker) productName() string {
	name := productAdjectives[f.rand.Intn(len(productAdjectives))] + " " + productNouns[f.rand.Intn(len(productNouns))]
	if f.rand.Intn(2) == 1 {
		name += " " + productVariants[f.rand.Intn(len(productVariants))]
	}
	return name
}
