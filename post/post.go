package post

// Timestamp is a post created by the server.
//
//	Timestamp.ID - assigned from a counter, strictly increasing
//	Timestamp.Timestamp - creation time in unix seconds
type Timestamp struct {
	ID        int   `json:"id"`
	Timestamp int64 `json:"timestamp"`
}
