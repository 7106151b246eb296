package models

// Message represents a single chat message submitted for triage.
// Text drives classification; Author and Timestamp are carried through unused.
type Message struct {
    Text      string  `json:"text"`
    Author    string  `json:"author"`
    Timestamp float64 `json:"timestamp"`
}

// Bucket represents one non-empty category with its total match count
// and up to three sample messages in encounter order
type Bucket struct {
    Label          string   `json:"label"`
    Count          int      `json:"count"`
    SampleMessages []string `json:"sample_messages"`
}

// ClassificationResult groups the processed messages into buckets
// ordered by category priority; categories with no matches are omitted
type ClassificationResult struct {
    Buckets        []Bucket `json:"buckets"`
    ProcessedCount int      `json:"processed_count"`
}
