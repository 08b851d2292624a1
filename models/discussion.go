package models

import "time"

// DiscussionThread groups the messages attached to a single report. Threads
// reference reports by ID only; the stores do not enforce the foreign key.
type DiscussionThread struct {
	ThreadID  string    `bson:"_id" json:"threadId" gorm:"primaryKey;column:thread_id"`
	ReportID  string    `bson:"reportId" json:"reportId" gorm:"column:report_id;index:idx_threads_report"`
	CreatedBy string    `bson:"createdBy" json:"createdBy" gorm:"column:created_by"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt" gorm:"column:created_at"`
}

// TableName keeps the cache table name aligned with the remote collection.
func (DiscussionThread) TableName() string { return "discussion_threads" }

// DiscussionMessage is a single message inside a thread. A thread's lifecycle
// is independent of its messages; deleting a thread does not delete them.
type DiscussionMessage struct {
	MessageID string    `bson:"_id" json:"messageId" gorm:"primaryKey;column:message_id"`
	ThreadID  string    `bson:"threadId" json:"threadId" gorm:"column:thread_id;index:idx_messages_thread"`
	AuthorID  string    `bson:"authorId" json:"authorId" gorm:"column:author_id"`
	Text      string    `bson:"text" json:"text" gorm:"column:text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp" gorm:"column:timestamp"`
	Upvotes   int       `bson:"upvotes" json:"upvotes" gorm:"column:upvotes"`
}

// TableName keeps the cache table name aligned with the remote collection.
func (DiscussionMessage) TableName() string { return "discussion_messages" }
