package dealgen

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/demanghon/contree.ai/search"
)

// solveJob is one unit of PIMC work: score southHand at index in the
// caller's input slice, so results can be reassembled in order.
type solveJob struct {
	index     int
	southHand uint32
}

// solveResult pairs a job's index with its per-trump scores.
type solveResult struct {
	index  int
	scores [4]TrumpScore
}

// SolveHandBatchParallel scores a slice of South hands under PIMC,
// partitioning the work across a worker pool. Each worker owns a private
// Solver (and therefore a private transposition table and generation
// counter), matching the solver's single-threaded design. Results are
// returned in the same order as hands regardless of completion order.
func SolveHandBatchParallel(hands []uint32, m int, seed uint64, ttSizeLog2 uint) [][4]TrumpScore {
	numWorkers := runtime.NumCPU()
	if numWorkers > len(hands) && len(hands) > 0 {
		numWorkers = len(hands)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	jobs := make(chan solveJob, len(hands))
	results := make(chan solveResult, len(hands))

	var wg sync.WaitGroup
	seedRng := rand.New(rand.NewSource(int64(seed)))

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		workerSeed := seedRng.Int63()
		go func(workerSeed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(workerSeed))
			sv := search.NewSolver(ttSizeLog2)
			for job := range jobs {
				scores := SolveHandBatch(rng, sv, job.southHand, m)
				results <- solveResult{index: job.index, scores: scores}
			}
		}(workerSeed)
	}

	for i, hand := range hands {
		jobs <- solveJob{index: i, southHand: hand}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([][4]TrumpScore, len(hands))
	for r := range results {
		out[r.index] = r.scores
	}
	return out
}
