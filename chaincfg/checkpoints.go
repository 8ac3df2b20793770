package chaincfg

import (
	"sort"
	"time"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/lavrovcoin/lavrovd/errors"
)

// sigcheckVerificationFactor is how much more expensive a transaction after
// the last checkpoint is to verify than one below it.
const sigcheckVerificationFactor = 5.0

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointSet is the ordered checkpoint table of a network together with
// the statistics used to estimate sync progress past the newest checkpoint.
// It is read only once built.
type CheckpointSet struct {
	checkpoints []Checkpoint
	byHeight    map[int32]*chainhash.Hash

	// lastCheckpointTime is the block time of the newest checkpoint.
	lastCheckpointTime time.Time

	// transactionsLastCheckpoint is the number of transactions from genesis
	// up to and including the newest checkpoint.
	transactionsLastCheckpoint int64

	// transactionsPerDay estimates the transaction rate after the newest
	// checkpoint.
	transactionsPerDay float64
}

// NewCheckpointSet validates and copies checkpoints. Heights must be strictly
// increasing and every hash must be set. An empty table is valid.
func NewCheckpointSet(checkpoints []Checkpoint, lastCheckpointTime time.Time, txCount int64, txPerDay float64) (*CheckpointSet, error) {
	if txCount < 0 || txPerDay < 0 {
		return nil, errors.NewInvalidArgumentError("checkpoint statistics must not be negative: %d txs, %f txs/day", txCount, txPerDay)
	}

	s := &CheckpointSet{
		checkpoints:                make([]Checkpoint, 0, len(checkpoints)),
		byHeight:                   make(map[int32]*chainhash.Hash, len(checkpoints)),
		lastCheckpointTime:         lastCheckpointTime,
		transactionsLastCheckpoint: txCount,
		transactionsPerDay:         txPerDay,
	}

	for i, cp := range checkpoints {
		if cp.Hash == nil {
			return nil, errors.NewInvalidArgumentError("checkpoint at height %d has no hash", cp.Height)
		}

		if cp.Height < 0 {
			return nil, errors.NewInvalidArgumentError("checkpoint height %d is negative", cp.Height)
		}

		if i > 0 && cp.Height <= checkpoints[i-1].Height {
			return nil, errors.NewInvalidArgumentError("checkpoint heights must be strictly increasing: %d follows %d", cp.Height, checkpoints[i-1].Height)
		}

		hash := *cp.Hash
		s.checkpoints = append(s.checkpoints, Checkpoint{Height: cp.Height, Hash: &hash})
		s.byHeight[cp.Height] = &hash
	}

	return s, nil
}

// Checkpoints returns a copy of the table ordered by height.
func (s *CheckpointSet) Checkpoints() []Checkpoint {
	out := make([]Checkpoint, len(s.checkpoints))
	for i, cp := range s.checkpoints {
		hash := *cp.Hash
		out[i] = Checkpoint{Height: cp.Height, Hash: &hash}
	}

	return out
}

func (s *CheckpointSet) Len() int {
	return len(s.checkpoints)
}

func (s *CheckpointSet) LastCheckpointTime() time.Time {
	return s.lastCheckpointTime
}

func (s *CheckpointSet) TransactionsLastCheckpoint() int64 {
	return s.transactionsLastCheckpoint
}

func (s *CheckpointSet) TransactionsPerDay() float64 {
	return s.transactionsPerDay
}

// Lookup returns the checkpointed hash at height.
func (s *CheckpointSet) Lookup(height int32) (chainhash.Hash, bool) {
	hash, ok := s.byHeight[height]
	if !ok {
		return chainhash.Hash{}, false
	}

	return *hash, true
}

// CheckBlock reports whether a block with hash may exist at height. It only
// returns false when a checkpoint at that height names a different block.
func (s *CheckpointSet) CheckBlock(height int32, hash *chainhash.Hash) bool {
	expected, ok := s.byHeight[height]
	if !ok {
		return true
	}

	return hash != nil && expected.IsEqual(hash)
}

// LastCheckpoint returns the newest checkpoint or nil for an empty table.
func (s *CheckpointSet) LastCheckpoint() *Checkpoint {
	if len(s.checkpoints) == 0 {
		return nil
	}

	cp := s.checkpoints[len(s.checkpoints)-1]
	hash := *cp.Hash

	return &Checkpoint{Height: cp.Height, Hash: &hash}
}

// TotalBlocksEstimate is the height of the newest checkpoint, the minimum
// chain height a syncing node can expect.
func (s *CheckpointSet) TotalBlocksEstimate() int32 {
	if len(s.checkpoints) == 0 {
		return 0
	}

	return s.checkpoints[len(s.checkpoints)-1].Height
}

// LastKnownCheckpoint walks the table from the newest entry down and returns
// the first checkpoint whose block the caller already has.
func (s *CheckpointSet) LastKnownCheckpoint(haveBlock func(hash *chainhash.Hash) bool) *Checkpoint {
	for i := len(s.checkpoints) - 1; i >= 0; i-- {
		if haveBlock(s.checkpoints[i].Hash) {
			cp := s.checkpoints[i]
			hash := *cp.Hash

			return &Checkpoint{Height: cp.Height, Hash: &hash}
		}
	}

	return nil
}

// CheckpointBefore returns the newest checkpoint strictly below height.
func (s *CheckpointSet) CheckpointBefore(height int32) *Checkpoint {
	i := sort.Search(len(s.checkpoints), func(i int) bool {
		return s.checkpoints[i].Height >= height
	})
	if i == 0 {
		return nil
	}

	cp := s.checkpoints[i-1]
	hash := *cp.Hash

	return &Checkpoint{Height: cp.Height, Hash: &hash}
}

// GuessVerificationProgress estimates the fraction of the work needed to
// verify the whole chain that has been done once the tip holds chainTx
// transactions and has block time tipTime. Transactions below the newest
// checkpoint are cheap, later ones cost sigcheckVerificationFactor times
// more. The result is in [0, 1].
func (s *CheckpointSet) GuessVerificationProgress(chainTx int64, tipTime, now time.Time) float64 {
	if chainTx <= 0 {
		return 0
	}

	var workBefore, workAfter float64

	if chainTx <= s.transactionsLastCheckpoint {
		cheapBefore := float64(chainTx)
		cheapAfter := float64(s.transactionsLastCheckpoint - chainTx)
		expensiveAfter := daysBetween(s.lastCheckpointTime, now) * s.transactionsPerDay

		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*sigcheckVerificationFactor
	} else {
		cheapBefore := float64(s.transactionsLastCheckpoint)
		expensiveBefore := float64(chainTx - s.transactionsLastCheckpoint)
		expensiveAfter := daysBetween(tipTime, now) * s.transactionsPerDay

		workBefore = cheapBefore + expensiveBefore*sigcheckVerificationFactor
		workAfter = expensiveAfter * sigcheckVerificationFactor
	}

	if workBefore+workAfter <= 0 {
		return 0
	}

	return workBefore / (workBefore + workAfter)
}

func daysBetween(from, to time.Time) float64 {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}

	return d.Hours() / 24
}
