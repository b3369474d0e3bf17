package libtubes

import (
	"encoding/binary"
	"slices"

	"github.com/dgraph-io/badger/v3"
	"github.com/fine-structures/fliptubes/gotubes"
)

// GraphSet allows adding graphs and reporting if a graph with the same edge set was already added.
type GraphSet interface {

	// TryAdd adds the given graph if an equivalent graph is not already present.
	//
	// If an equivalent of X already is in this GraphSet, this call has no effect and TryAdd() returns false.
	// If X isn't in this set, X is added and TryAdd() returns true.
	//
	// After one or more calls to TryAdd(), call Close() for cleanup.
	TryAdd(X *Graph) (bool, error)

	// Close removes all previously added items from this set.
	Close()
}

// NewGraphSet returns an in-memory GraphSet.
func NewGraphSet() GraphSet {
	return &graphSet{}
}

type graphSet struct {
	lsmSet
}

func (set *graphSet) TryAdd(X *Graph) (bool, error) {
	return set.tryAdd(AppendEdgeSetKey(nil, X))
}

// AppendEdgeSetKey appends a key that is equal for two graphs iff they have the same set of (unordered) edges.
func AppendEdgeSetKey(key []byte, X *Graph) []byte {
	edges := make([]gotubes.Edge, len(X.edges))
	for i, e := range X.edges {
		edges[i] = e.Normalized()
	}
	slices.SortFunc(edges, func(a, b gotubes.Edge) int {
		return slices.Compare(a[:], b[:])
	})
	edges = slices.Compact(edges)

	for _, e := range edges {
		key = binary.BigEndian.AppendUint32(key, uint32(e[0]))
		key = binary.BigEndian.AppendUint32(key, uint32(e[1]))
	}
	return key
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() error {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			return err
		}
	}
	return nil
}

func (set *lsmSet) tryAdd(key []byte) (bool, error) {
	if err := set.autoOpen(); err != nil {
		return false, err
	}

	// Badger doesn't allow empty keys (a graph with no edges)
	key = append([]byte{0x01}, key...)

	added := false
	err := set.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil // no-op since the key is already in the db
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true
		return txn.Set(key, nil)
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
