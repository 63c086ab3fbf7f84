// file: internals/features/home/notifications/controller/notification_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "ktx_backend/internals/features/campus/rooms/model"
	"ktx_backend/internals/features/home/notifications/dto"
	"ktx_backend/internals/features/home/notifications/model"
	"ktx_backend/internals/features/home/notifications/service"
	studentModel "ktx_backend/internals/features/users/students/model"
	helper "ktx_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

// -----------------------------------------
// Create (POST /api/m/notifications) — multipart
// Fields: title, content, target_scope, target_ids, type, tags;
// optional file field "attachment".
// -----------------------------------------
func (h *NotificationController) Create(c *fiber.Ctx) error {
	managerID, err := helper.GetManagerID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "manager account required")
	}

	var repeated []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		repeated = form.Value["target_ids"]
	}
	targetIDs, err := helper.ParseUUIDList(targetListShape(repeated, c.FormValue("target_ids")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	in := dto.NotificationCreateRequest{
		Title:       c.FormValue("title"),
		Content:     c.FormValue("content"),
		TargetScope: c.FormValue("target_scope"),
		TargetIDs:   targetIDs,
		Type:        c.FormValue("type"),
	}
	in.Tags = splitTags(c.FormValue("tags"))
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	attachmentPath := ""
	if fh, err := c.FormFile("attachment"); err == nil && fh != nil {
		attachmentPath, err = helper.SaveUpload("notifications", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "could not store attachment")
		}
	}

	nType := in.Type
	if nType == "" {
		nType = "GENERAL"
	}
	n := model.Notification{
		NotificationTitle:          in.Title,
		NotificationContent:        in.Content,
		NotificationAttachmentPath: attachmentPath,
		NotificationSenderRole:     helper.GetRole(c),
		NotificationSenderID:       managerID,
		NotificationTargetScope:    model.TargetScope(in.TargetScope),
		NotificationType:           nType,
		NotificationTags:           in.Tags,
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&n).Error; err != nil {
			return err
		}
		return service.FanOut(tx, &n, in.TargetIDs)
	})
	if txErr != nil {
		if errors.Is(txErr, service.ErrNoTargets) || errors.Is(txErr, service.ErrScopeNoTargets) {
			return helper.JsonError(c, fiber.StatusBadRequest, txErr.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}
	return helper.JsonCreated(c, "notification sent", dto.ToNotificationResponse(&n))
}

// targetListShape picks what goes into the id-list parser: repeated
// multipart fields arrive as a slice, a single field stays a string so CSV
// and JSON-array payloads keep working.
func targetListShape(repeated []string, single string) interface{} {
	if len(repeated) > 1 {
		return repeated
	}
	return single
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// feedRow carries a notification plus one student's read state.
type feedRow struct {
	model.Notification
	IsRead *bool      `gorm:"column:is_read"`
	ReadAt *time.Time `gorm:"column:read_at"`
}

// visibilityScope resolves the student's room and building for feed matching.
func (h *NotificationController) visibilityScope(studentID uuid.UUID) (roomID, buildingID uuid.UUID) {
	var st studentModel.Student
	if err := h.DB.First(&st, "student_id = ?", studentID).Error; err != nil || st.StudentCurrentRoomID == nil {
		return uuid.Nil, uuid.Nil
	}
	roomID = *st.StudentCurrentRoomID
	var room roomModel.Room
	if err := h.DB.First(&room, "room_id = ?", roomID).Error; err == nil {
		buildingID = room.RoomBuildingID
	}
	return roomID, buildingID
}

const feedVisibilityCond = `notifications.notification_target_scope = 'ALL'
	OR notifications.notification_id IN (
		SELECT notification_recipient_notification_id FROM notification_recipients
		WHERE notification_recipient_student_id = ?
		   OR notification_recipient_room_id = ?
		   OR notification_recipient_building_id = ?)`

// -----------------------------------------
// MyFeed (GET /api/s/notifications)
// Union of ALL-scope, direct, current-room and current-building
// notifications, newest first, with the caller's read state attached.
// -----------------------------------------
func (h *NotificationController) MyFeed(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "student account required")
	}
	p := helper.ResolvePaging(c, 20, 100)
	roomID, buildingID := h.visibilityScope(studentID)

	base := h.DB.Model(&model.Notification{}).
		Where(feedVisibilityCond, studentID, roomID, buildingID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []feedRow
	err = h.DB.Model(&model.Notification{}).
		Select("notifications.*, nr.notification_read_is_read AS is_read, nr.notification_read_read_at AS read_at").
		Joins("LEFT JOIN notification_reads nr ON nr.notification_read_notification_id = notifications.notification_id AND nr.notification_read_student_id = ?", studentID).
		Where(feedVisibilityCond, studentID, roomID, buildingID).
		Order("notifications.notification_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.FeedItem, 0, len(rows))
	for i := range rows {
		item := dto.FeedItem{
			NotificationResponse: dto.ToNotificationResponse(&rows[i].Notification),
			ReadAt:               rows[i].ReadAt,
		}
		if rows[i].IsRead != nil {
			item.IsRead = *rows[i].IsRead
		}
		items = append(items, item)
	}
	return helper.JsonList(c, items, helper.BuildPagination(total, p))
}

// -----------------------------------------
// UnreadCount (GET /api/s/notifications/unread-count)
// -----------------------------------------
func (h *NotificationController) UnreadCount(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "student account required")
	}
	roomID, buildingID := h.visibilityScope(studentID)

	var count int64
	err = h.DB.Model(&model.Notification{}).
		Joins("LEFT JOIN notification_reads nr ON nr.notification_read_notification_id = notifications.notification_id AND nr.notification_read_student_id = ?", studentID).
		Where(feedVisibilityCond, studentID, roomID, buildingID).
		Where("nr.notification_read_is_read IS NOT TRUE").
		Count(&count).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", fiber.Map{"unread": count})
}

// -----------------------------------------
// MarkRead (PUT /api/s/notifications/:id/read) — idempotent
// -----------------------------------------
func (h *NotificationController) MarkRead(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "student account required")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var n model.Notification
	if err := h.DB.First(&n, "notification_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var rec model.NotificationRead
		err := tx.Where("notification_read_notification_id = ? AND notification_read_student_id = ?", id, studentID).
			First(&rec).Error
		switch {
		case err == nil:
			if rec.NotificationReadIsRead {
				return nil // already read, keep the original read_at
			}
			now := time.Now()
			rec.NotificationReadIsRead = true
			rec.NotificationReadReadAt = &now
			return tx.Save(&rec).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			// INDIVIDUAL rows exist from fan-out; a missing one means this
			// student was never a recipient
			if n.NotificationTargetScope.ReadRowsPrecreated() {
				return errNotRecipient
			}
			now := time.Now()
			return tx.Create(&model.NotificationRead{
				NotificationReadNotificationID: id,
				NotificationReadStudentID:      studentID,
				NotificationReadIsRead:         true,
				NotificationReadReadAt:         &now,
			}).Error
		default:
			return err
		}
	})
	if txErr != nil {
		if errors.Is(txErr, errNotRecipient) {
			return helper.JsonError(c, fiber.StatusNotFound, "notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}
	return helper.JsonUpdated(c, "notification marked read", nil)
}

var errNotRecipient = errors.New("student is not a recipient")

// -----------------------------------------
// Sent (GET /api/m/notifications)
// -----------------------------------------
func (h *NotificationController) Sent(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.Notification{})
	if v := c.Query("scope"); v != "" {
		q = q.Where("notification_target_scope = ?", v)
	}
	if v := c.Query("sender_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("notification_sender_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Notification
	if err := q.Order("notification_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, dto.ToNotificationResponses(list), helper.BuildPagination(total, p))
}

// -----------------------------------------
// Delete (DELETE /api/m/notifications/:id)
// Soft-deletes the notification; recipient and read rows stay for audit.
// -----------------------------------------
func (h *NotificationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var n model.Notification
	if err := h.DB.First(&n, "notification_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "notification deleted", dto.ToNotificationResponse(&n))
}
