package domain

// KeyValueStore is the storage handle a command operates on for one
// invocation. Mutations are in-memory until Close.
type KeyValueStore interface {
	Add(key, value string) bool
	Update(key, value string) bool
	Get(key string) (string, bool)
	Remove(key string) bool
	Close() error
}

// StoreOpener acquires a KeyValueStore. Commands call it only once they know
// they need storage, so help and argument errors never touch the disk.
type StoreOpener func() (KeyValueStore, error)

// Clipboard is a text clipboard used as an implicit key or value argument.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
