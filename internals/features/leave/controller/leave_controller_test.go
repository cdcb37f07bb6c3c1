package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "hostelku_backend/internals/features/leave/model"
)

func openLeaveTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE leaves (
		leave_id text PRIMARY KEY,
		leave_student_id text NOT NULL,
		leave_type text NOT NULL DEFAULT 'leave',
		leave_status text NOT NULL DEFAULT 'pending',
		leave_reason text NOT NULL,
		leave_from_date date NOT NULL,
		leave_to_date date,
		leave_max_visits integer NOT NULL DEFAULT 2,
		leave_outgoing_visit_count integer NOT NULL DEFAULT 0,
		leave_incoming_visit_count integer NOT NULL DEFAULT 0,
		leave_visit_locked numeric NOT NULL DEFAULT 0,
		leave_reviewed_by text,
		leave_reviewed_at datetime,
		leave_reject_reason text,
		leave_created_at datetime,
		leave_updated_at datetime
	)`).Error)
	return db
}

func newReviewApp(db *gorm.DB, reviewerID uuid.UUID) *fiber.App {
	ctrl := NewLeaveController(db)
	seed := func(c *fiber.Ctx) error {
		c.Locals("user_id", reviewerID)
		return c.Next()
	}

	app := fiber.New()
	app.Post("/api/leave/approve/:id", seed, ctrl.Approve)
	app.Post("/api/leave/reject/:id", seed, ctrl.Reject)
	return app
}

func postReview(t *testing.T, app *fiber.App, path string, payload any) int {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func pendingLeaveRow() model.LeaveModel {
	return model.LeaveModel{
		LeaveID:        uuid.New(),
		LeaveStudentID: uuid.New(),
		LeaveType:      model.LeaveTypeLeave,
		LeaveStatus:    model.LeavePending,
		LeaveReason:    "Sister's wedding at home",
		LeaveFromDate:  time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		LeaveMaxVisits: maxVisitsLeave,
	}
}

// The second of two racing review decisions must land as a conflict, leaving
// the first one untouched.
func TestLeaveReviewSecondDecisionConflicts(t *testing.T) {
	db := openLeaveTestDB(t)
	reviewer := uuid.New()
	app := newReviewApp(db, reviewer)

	leave := pendingLeaveRow()
	require.NoError(t, db.Create(&leave).Error)

	id := leave.LeaveID.String()
	assert.Equal(t, fiber.StatusOK, postReview(t, app, "/api/leave/approve/"+id, nil))
	assert.Equal(t, fiber.StatusConflict,
		postReview(t, app, "/api/leave/reject/"+id, fiber.Map{"reason": "dates clash with exams"}))

	var got model.LeaveModel
	require.NoError(t, db.First(&got, "leave_id = ?", leave.LeaveID).Error)
	assert.Equal(t, model.LeaveApproved, got.LeaveStatus)
	assert.Nil(t, got.LeaveRejectReason)
	require.NotNil(t, got.LeaveReviewedBy)
	assert.Equal(t, reviewer, *got.LeaveReviewedBy)
}

func TestLeaveReviewApproveAfterReject(t *testing.T) {
	db := openLeaveTestDB(t)
	app := newReviewApp(db, uuid.New())

	leave := pendingLeaveRow()
	require.NoError(t, db.Create(&leave).Error)

	id := leave.LeaveID.String()
	assert.Equal(t, fiber.StatusOK,
		postReview(t, app, "/api/leave/reject/"+id, fiber.Map{"reason": "dates clash with exams"}))
	assert.Equal(t, fiber.StatusConflict, postReview(t, app, "/api/leave/approve/"+id, nil))

	var got model.LeaveModel
	require.NoError(t, db.First(&got, "leave_id = ?", leave.LeaveID).Error)
	assert.Equal(t, model.LeaveRejected, got.LeaveStatus)
	require.NotNil(t, got.LeaveRejectReason)
	assert.Equal(t, "dates clash with exams", *got.LeaveRejectReason)
}
