package repositories

import (
	"chat-gate/errors"
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
)

// storeError keeps the taxonomy intact: typed rejections and decoding
// failures pass through, anything coming from badger is a store failure.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsRejection(err); ok {
		return err
	}
	if stderrors.Is(err, errors.ErrInvalidRecord) {
		return err
	}
	return errors.StoreUnavailable(op, err)
}

func isNotFound(err error) bool {
	return stderrors.Is(err, badger.ErrKeyNotFound)
}

// getValue copies the value of key out of the transaction.
func getValue(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}
