// Package perturb normalizes sentiment-labeled text datasets into a
// canonical {id, text, label} schema and injects synthetic spelling errors
// to build degraded evaluation sets.
//
// Quick start:
//
//	p := perturb.New(perturb.WithSeed(42))
//
//	records, err := p.NormalizeFile("movies", "final_data/imdb_movie_reviews.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	noisy := p.CorruptRecords(records, perturb.Moderate)
//	fmt.Println(noisy[0].Text)
//
// Corruption never mutates its input: CorruptRecords returns a fresh set,
// so clean and corrupted text can be compared side by side. A Perturber
// holds a single random source and is not safe for concurrent use; create
// one per goroutine if parallelizing.
package perturb
