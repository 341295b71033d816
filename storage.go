package bank

import (
	"errors"
	"io/fs"
	"log"
)

// StorageKey is the durable slot holding the JSON encoded account.
const StorageKey = "savedAccount"

// Storage is a durable key/value store that survives between runs.
//
// Get must return an error wrapping fs.ErrNotExist when the key is missing.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// loadAccount reads the saved account, nil if there is none or it is unreadable.
func loadAccount(s Storage) *Account {
	data, err := s.Get(StorageKey)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		log.Printf("cannot read saved account (ignored): %v", err)
		return nil
	}
	acc, err := DecodeAccount(data)
	if err != nil {
		log.Printf("saved account is corrupted (ignored): %v", err)
		return nil
	}
	return acc
}

// saveAccount writes the account in the durable slot, failures are only logged.
func saveAccount(s Storage, acc *Account) {
	data, err := EncodeAccount(acc)
	if err != nil {
		log.Printf("cannot save account (ignored): %v", err)
		return
	}
	if err := s.Set(StorageKey, data); err != nil {
		log.Printf("cannot save account (ignored): %v", err)
	}
}

// clearAccount empties the durable slot.
func clearAccount(s Storage) {
	if err := s.Remove(StorageKey); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("cannot clear saved account (ignored): %v", err)
	}
}
