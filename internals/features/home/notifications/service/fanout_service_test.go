package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ktx_backend/internals/features/home/notifications/model"
)

func TestBuildRecipients(t *testing.T) {
	notifID := uuid.New()
	targets := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("all scope produces no rows", func(t *testing.T) {
		rows, err := BuildRecipients(model.TargetScopeAll, notifID, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("all scope rejects targets", func(t *testing.T) {
		_, err := BuildRecipients(model.TargetScopeAll, notifID, targets)
		assert.ErrorIs(t, err, ErrScopeNoTargets)
	})

	t.Run("scoped notification without targets fails", func(t *testing.T) {
		for _, scope := range []model.TargetScope{
			model.TargetScopeBuilding, model.TargetScopeRoom, model.TargetScopeIndividual,
		} {
			_, err := BuildRecipients(scope, notifID, nil)
			assert.ErrorIs(t, err, ErrNoTargets, "scope %s", scope)
		}
	})

	t.Run("individual fills student ids", func(t *testing.T) {
		rows, err := BuildRecipients(model.TargetScopeIndividual, notifID, targets)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for i, row := range rows {
			assert.Equal(t, notifID, row.NotificationRecipientNotificationID)
			require.NotNil(t, row.NotificationRecipientStudentID)
			assert.Equal(t, targets[i], *row.NotificationRecipientStudentID)
			assert.Nil(t, row.NotificationRecipientRoomID)
			assert.Nil(t, row.NotificationRecipientBuildingID)
		}
	})

	t.Run("room fills room ids", func(t *testing.T) {
		rows, err := BuildRecipients(model.TargetScopeRoom, notifID, targets[:1])
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].NotificationRecipientRoomID)
		assert.Equal(t, targets[0], *rows[0].NotificationRecipientRoomID)
		assert.Nil(t, rows[0].NotificationRecipientStudentID)
	})

	t.Run("building fills building ids", func(t *testing.T) {
		rows, err := BuildRecipients(model.TargetScopeBuilding, notifID, targets[:1])
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].NotificationRecipientBuildingID)
		assert.Equal(t, targets[0], *rows[0].NotificationRecipientBuildingID)
	})
}
