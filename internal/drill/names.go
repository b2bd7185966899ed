package drill

import "math/rand/v2"

// SecondLanguageProbability is the share of names drawn from the French lists
const SecondLanguageProbability = 0.20

var (
	englishFirstNames = []string{
		"James", "Mary", "Robert", "Patricia", "Michael", "Linda", "David", "Susan",
		"Joseph", "Karen", "Thomas", "Nancy", "Daniel", "Emily", "Andrew", "Helen",
		"Kevin", "Rachel", "Brian", "Laura", "Samuel", "Grace", "Owen", "Hazel",
	}

	englishLastNames = []string{
		"Smith", "Johnson", "Brown", "Garcia", "Miller", "Davis", "Wilson", "Moore",
		"Taylor", "Clark", "Walker", "Young", "Allen", "Wright", "Hill", "Baker",
	}

	frenchFirstNames = []string{
		"Jean", "Marie", "Pierre", "Camille", "Louis", "Chloé", "Hugo", "Léa",
		"Théo", "Manon", "Lucas", "Élodie",
	}

	frenchLastNames = []string{
		"Martin", "Bernard", "Dubois", "Lefèvre", "Moreau", "Laurent", "Girard", "Rousseau",
	}
)

// PatientName returns a "First Last" name, mostly English with a share of
// French names. A nil rng uses a time-seeded generator.
func PatientName(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG()
	}

	first, last := englishFirstNames, englishLastNames
	if rng.Float64() < SecondLanguageProbability {
		first, last = frenchFirstNames, frenchLastNames
	}
	return first[rng.IntN(len(first))] + " " + last[rng.IntN(len(last))]
}
