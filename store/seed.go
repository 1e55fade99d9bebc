package store

import (
	"github.com/vasilii314/kennel/dog"
	"github.com/vasilii314/kennel/post"
)

// SeedDogs returns the catalog every process starts with.
func SeedDogs() []dog.Dog {
	return []dog.Dog{
		{Name: "Bob", PK: 0, Kind: dog.Terrier},
		{Name: "Marli", PK: 1, Kind: dog.Bulldog},
		{Name: "Snoopy", PK: 2, Kind: dog.Dalmatian},
		{Name: "Rex", PK: 3, Kind: dog.Dalmatian},
		{Name: "Pongo", PK: 4, Kind: dog.Dalmatian},
		{Name: "Tillman", PK: 5, Kind: dog.Bulldog},
		{Name: "Uga", PK: 6, Kind: dog.Bulldog},
	}
}

func SeedPosts() []post.Timestamp {
	return []post.Timestamp{
		{ID: 0, Timestamp: 12},
		{ID: 1, Timestamp: 10},
	}
}
