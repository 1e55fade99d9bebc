package dog

import (
	"encoding/json"
	"fmt"
)

type Kind string

const (
	Terrier   Kind = "terrier"
	Bulldog   Kind = "bulldog"
	Dalmatian Kind = "dalmatian"
)

// Kinds lists every accepted kind in declaration order.
var Kinds = []Kind{Terrier, Bulldog, Dalmatian}

// ParseKind returns the Kind named by s or
// an error if s is not one of Kinds.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid kind %q, expected one of %v", s, Kinds)
}

func (k Kind) String() string {
	return string(k)
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("kind must be a string: %w", err)
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Dog is a single catalog record.
// PK is also the key it is stored under.
type Dog struct {
	Name string `json:"name"`
	PK   int    `json:"pk"`
	Kind Kind   `json:"kind"`
}
