package domain

// InsertResult is the write acknowledgement returned to clients after an insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// UpdateResult is the write acknowledgement returned after an update or upsert.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// Changed reports whether the write touched or created a document.
func (r *UpdateResult) Changed() bool {
	return r != nil && (r.ModifiedCount > 0 || r.UpsertedCount > 0)
}
