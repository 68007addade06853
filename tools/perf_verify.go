package tools

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/cespare/xxhash"
	"github.com/dcastro/dequenet/std/types/lockfree"
	"github.com/dcastro/dequenet/std/utils"
	"github.com/dcastro/dequenet/std/utils/toolutils"
)

var ErrVerify = errors.New("deque verification failed")

// orderDigest hashes a sequence of values in order.
func orderDigest(seq iter.Seq[int]) uint64 {
	h := xxhash.New()
	var buf [8]byte
	for v := range seq {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// verifyDeque checks a quiescent deque against the bookkeeping of the run:
// it must hold count values adding up to sum, and iterating it backwards
// must give the forward order reversed. Returns the order digest.
func verifyDeque(d *lockfree.Deque[int], count int64, sum int64) (uint64, error) {
	fwd := d.ToSlice()
	if int64(len(fwd)) != count {
		return 0, fmt.Errorf("%w: count %d, expected %d", ErrVerify, len(fwd), count)
	}
	if got := toolutils.Sum(slices.Values(fwd)); got != sum {
		return 0, fmt.Errorf("%w: sum %d, expected %d", ErrVerify, got, sum)
	}

	digest := orderDigest(slices.Values(fwd))
	bwd := utils.Reversed(slices.Collect(d.Backward()))
	if rdigest := orderDigest(slices.Values(bwd)); rdigest != digest {
		return 0, fmt.Errorf("%w: backward order digest %016x, forward %016x", ErrVerify, rdigest, digest)
	}
	return digest, nil
}
