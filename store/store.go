package store

import (
	"errors"

	"github.com/vasilii314/kennel/dog"
	"github.com/vasilii314/kennel/post"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	// ErrMismatch is returned by Replace when the
	// record's pk differs from the key being replaced.
	ErrMismatch = errors.New("pk mismatch")
)

// Store is the keyed lookup every store offers.
type Store[K comparable, V any] interface {
	Get(key K) (V, error)
	Count() int
}

type DogStore interface {
	Store[int, dog.Dog]
	List(kind *dog.Kind) []dog.Dog
	Create(d dog.Dog) (dog.Dog, error)
	Replace(pk int, d dog.Dog) (dog.Dog, error)
}

// PostStore is append-only, so it has no keyed Get.
type PostStore interface {
	Create() post.Timestamp
	Count() int
}
