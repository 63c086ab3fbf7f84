// file: internals/features/home/notifications/service/fanout_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ktx_backend/internals/features/home/notifications/model"
)

var (
	ErrNoTargets      = errors.New("target ids are required for this scope")
	ErrScopeNoTargets = errors.New("target ids are not accepted for scope ALL")
)

// BuildRecipients expands a notification's scope over its target ids into
// recipient rows. ALL-scope notifications produce no rows and must not carry
// targets.
func BuildRecipients(scope model.TargetScope, notificationID uuid.UUID, targetIDs []uuid.UUID) ([]model.NotificationRecipient, error) {
	if !scope.NeedsRecipients() {
		if len(targetIDs) > 0 {
			return nil, ErrScopeNoTargets
		}
		return nil, nil
	}
	if len(targetIDs) == 0 {
		return nil, ErrNoTargets
	}

	rows := make([]model.NotificationRecipient, 0, len(targetIDs))
	for _, id := range targetIDs {
		id := id
		row := model.NotificationRecipient{NotificationRecipientNotificationID: notificationID}
		switch scope {
		case model.TargetScopeIndividual:
			row.NotificationRecipientStudentID = &id
		case model.TargetScopeRoom:
			row.NotificationRecipientRoomID = &id
		case model.TargetScopeBuilding:
			row.NotificationRecipientBuildingID = &id
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FanOut persists the recipient rows for a freshly created notification.
// INDIVIDUAL scope also pre-creates unread read-state rows, so the unread
// count is right without waiting for the student's first fetch.
func FanOut(tx *gorm.DB, n *model.Notification, targetIDs []uuid.UUID) error {
	rows, err := BuildRecipients(n.NotificationTargetScope, n.NotificationID, targetIDs)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return err
	}

	if n.NotificationTargetScope == model.TargetScopeIndividual {
		reads := make([]model.NotificationRead, 0, len(targetIDs))
		for _, sid := range targetIDs {
			reads = append(reads, model.NotificationRead{
				NotificationReadNotificationID: n.NotificationID,
				NotificationReadStudentID:      sid,
			})
		}
		if err := tx.Create(&reads).Error; err != nil {
			return err
		}
	}
	return nil
}
