package repositories

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for different entity types
	postKeyPrefix    = "post:"
	commentKeyPrefix = "comment:"

	// Sequence keys for id assignment
	postSeqKey    = "seq:post"
	commentSeqKey = "seq:comment"
)

// postKey builds a zero-padded key so that prefix iteration order matches
// creation order ("post:10" would otherwise sort before "post:2").
func postKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%012d", postKeyPrefix, id))
}

func commentKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%012d", commentKeyPrefix, id))
}

// OpenBadger opens a badger database for use by the badger-backed
// repositories. With inMemory set, nothing touches the filesystem and path
// is ignored.
func OpenBadger(path string, inMemory bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	if inMemory {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}
	return db, nil
}

// getNextID returns the next id for the given sequence key. The first id
// handed out is 0.
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 0
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			last, err := strconv.Atoi(string(val))
			if err != nil {
				return err
			}
			id = last + 1
			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	if err := txn.Set([]byte(seqKey), []byte(strconv.Itoa(id))); err != nil {
		return 0, err
	}

	return id, nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
