package models

import "time"

// ItemCategory is the fixed set of equipment categories on the checklist.
type ItemCategory string

const (
	CategoryComputers   ItemCategory = "COMPUTADORES"
	CategoryPeripherals ItemCategory = "PERIFÉRICOS"
	CategoryCables      ItemCategory = "CABOS"
)

// SubmissionStatus is the lifecycle state of a submission record.
type SubmissionStatus string

const (
	// StatusPending exists in the type but is never produced by the form
	// flow; it is reserved for future use.
	StatusPending SubmissionStatus = "pending"

	StatusCompleted SubmissionStatus = "completed"
)

// InventoryItem is one line of the equipment checklist: an expected baseline
// quantity and the quantity actually counted by the teacher.
type InventoryItem struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Category         ItemCategory `json:"category"`
	ExpectedQuantity int          `json:"expectedQuantity"`
	CurrentQuantity  int          `json:"currentQuantity"` // clamped >= 0 at every mutation
	// IsComplete is informational only. It is never recomputed from the
	// quantities; callers that use it must keep it consistent themselves.
	IsComplete bool `json:"isComplete"`
}

// SubmissionRecord is the snapshot of a checklist taken at preview time.
// Items is a copy of the working list, so later edits do not retroactively
// alter an already-previewed record.
type SubmissionRecord struct {
	ID             string           `json:"id"`
	TeacherName    string           `json:"teacherName"`
	Date           time.Time        `json:"date"`
	UsageStartTime string           `json:"usageStartTime,omitempty"`
	UsageEndTime   string           `json:"usageEndTime,omitempty"`
	Items          []InventoryItem  `json:"items"`
	Justification  string           `json:"justification,omitempty"`
	Signature      string           `json:"signature,omitempty"` // encoded image payload
	Status         SubmissionStatus `json:"status"`
}

// HistoryEntry is one stored receipt in the history listing. Date is the
// last-modified time read from the storage medium at list time, so it
// reflects the write time of the underlying bytes.
type HistoryEntry struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}
