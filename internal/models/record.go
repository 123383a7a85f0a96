package models

import "time"

// HistoryRecord is the persisted snapshot of one resume-processing
// request. Immutable after insertion.
type HistoryRecord struct {
	Filename  string    `bson:"filename" json:"filename"`
	Skills    []string  `bson:"skills" json:"skills"`
	Questions []string  `bson:"questions" json:"questions"`
	Answers   []string  `bson:"answers" json:"answers"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
