package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — target scope
// =========================================================

type TargetScope string

const (
	TargetScopeAll        TargetScope = "ALL"
	TargetScopeBuilding   TargetScope = "BUILDING"
	TargetScopeRoom       TargetScope = "ROOM"
	TargetScopeIndividual TargetScope = "INDIVIDUAL"
)

func (s TargetScope) Valid() bool {
	switch s {
	case TargetScopeAll, TargetScopeBuilding, TargetScopeRoom, TargetScopeIndividual:
		return true
	}
	return false
}

// NeedsRecipients reports whether the scope requires target ids at creation.
// ALL-scope notifications have no recipient rows; every student matches them
// at read time.
func (s TargetScope) NeedsRecipients() bool {
	return s != TargetScopeAll
}

// ReadRowsPrecreated reports whether read-state rows for this scope already
// exist from fan-out. Mark-read may lazily insert a row for the other
// scopes; for INDIVIDUAL a missing row means the student is not a recipient.
func (s TargetScope) ReadRowsPrecreated() bool {
	return s == TargetScopeIndividual
}

// =========================================================
// MODELS
// =========================================================

type Notification struct {
	NotificationID             uuid.UUID      `gorm:"column:notification_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	NotificationTitle          string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationContent        string         `gorm:"column:notification_content;type:text;not null" json:"notification_content"`
	NotificationAttachmentPath string         `gorm:"column:notification_attachment_path;type:text" json:"notification_attachment_path"`
	NotificationSenderRole     string         `gorm:"column:notification_sender_role;type:varchar(20);not null" json:"notification_sender_role"`
	NotificationSenderID       uuid.UUID      `gorm:"column:notification_sender_id;type:uuid;not null;index" json:"notification_sender_id"`
	NotificationTargetScope    TargetScope    `gorm:"column:notification_target_scope;type:varchar(15);not null;index" json:"notification_target_scope"`
	NotificationType           string         `gorm:"column:notification_type;type:varchar(30);not null;default:'GENERAL'" json:"notification_type"`
	NotificationTags           pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationCreatedAt      time.Time      `gorm:"column:notification_created_at;not null;default:now();index" json:"notification_created_at"`
	NotificationDeletedAt      gorm.DeletedAt `gorm:"column:notification_deleted_at;index" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationRecipient maps a notification to one target of its scope:
// exactly one of student/room/building id is set.
type NotificationRecipient struct {
	NotificationRecipientID             uuid.UUID  `gorm:"column:notification_recipient_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_recipient_id"`
	NotificationRecipientNotificationID uuid.UUID  `gorm:"column:notification_recipient_notification_id;type:uuid;not null;index" json:"notification_recipient_notification_id"`
	NotificationRecipientStudentID      *uuid.UUID `gorm:"column:notification_recipient_student_id;type:uuid;index" json:"notification_recipient_student_id,omitempty"`
	NotificationRecipientRoomID         *uuid.UUID `gorm:"column:notification_recipient_room_id;type:uuid;index" json:"notification_recipient_room_id,omitempty"`
	NotificationRecipientBuildingID     *uuid.UUID `gorm:"column:notification_recipient_building_id;type:uuid;index" json:"notification_recipient_building_id,omitempty"`
	NotificationRecipientCreatedAt      time.Time  `gorm:"column:notification_recipient_created_at;not null;default:now()" json:"notification_recipient_created_at"`
}

func (NotificationRecipient) TableName() string {
	return "notification_recipients"
}

// NotificationRead tracks per-student read state. INDIVIDUAL-scope
// notifications get a row at creation; other scopes get one lazily on the
// first mark-read.
type NotificationRead struct {
	NotificationReadID             uuid.UUID  `gorm:"column:notification_read_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_read_id"`
	NotificationReadNotificationID uuid.UUID  `gorm:"column:notification_read_notification_id;type:uuid;not null;uniqueIndex:uq_notification_read,priority:1" json:"notification_read_notification_id"`
	NotificationReadStudentID      uuid.UUID  `gorm:"column:notification_read_student_id;type:uuid;not null;uniqueIndex:uq_notification_read,priority:2;index" json:"notification_read_student_id"`
	NotificationReadIsRead         bool       `gorm:"column:notification_read_is_read;not null;default:false" json:"notification_read_is_read"`
	NotificationReadReadAt         *time.Time `gorm:"column:notification_read_read_at" json:"notification_read_read_at,omitempty"`
	NotificationReadCreatedAt      time.Time  `gorm:"column:notification_read_created_at;not null;default:now()" json:"notification_read_created_at"`
}

func (NotificationRead) TableName() string {
	return "notification_reads"
}
