package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "hostelku_backend/internals/features/hostel/students/model"
	userModel "hostelku_backend/internals/features/users/user/model"
)

// openPreregTestDB builds an in-memory database with just the tables the
// preregistration flow touches. uuid and array columns are stored as text,
// which is all the SQL in the controller needs.
func openPreregTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, so every query sees the same :memory: database.
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range []string{
		`CREATE TABLE preregistrations (
			prereg_id text PRIMARY KEY,
			prereg_name text NOT NULL,
			prereg_email text NOT NULL UNIQUE,
			prereg_phone text NOT NULL,
			prereg_roll_no text NOT NULL,
			prereg_course text NOT NULL,
			prereg_branch text,
			prereg_year integer NOT NULL,
			prereg_status text NOT NULL DEFAULT 'pending',
			prereg_reviewed_by text,
			prereg_reviewed_at datetime,
			prereg_reject_reason text,
			prereg_created_at datetime,
			prereg_updated_at datetime
		)`,
		`CREATE TABLE users (
			id text PRIMARY KEY,
			user_name text NOT NULL,
			email text NOT NULL UNIQUE,
			password text NOT NULL,
			google_id text UNIQUE,
			role text NOT NULL,
			permissions text,
			permission_access_levels text,
			requires_password_change numeric NOT NULL DEFAULT 0,
			is_active numeric NOT NULL DEFAULT 1,
			profile_photo blob,
			principal_courses text,
			principal_branch text,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE students (
			student_id text PRIMARY KEY,
			student_user_id text NOT NULL UNIQUE,
			student_name text NOT NULL,
			student_roll_no text NOT NULL UNIQUE,
			student_course text NOT NULL,
			student_branch text,
			student_year integer NOT NULL,
			student_room_id text,
			student_guardian_name text,
			student_guardian_phone text,
			student_created_at datetime,
			student_updated_at datetime,
			student_deleted_at datetime
		)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func newPreregApp(db *gorm.DB, reviewerID uuid.UUID) *fiber.App {
	ctrl := NewPreregistrationController(db)
	seed := func(c *fiber.Ctx) error {
		c.Locals("user_id", reviewerID)
		return c.Next()
	}

	app := fiber.New()
	app.Post("/api/student/preregistrations/:id/approve", seed, ctrl.Approve)
	app.Post("/api/student/preregistrations/:id/reject", seed, ctrl.Reject)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) int {
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

// A reject landing after a committed approve must not flip the row; the first
// decision stands and the created account stays live.
func TestPreregistrationRejectAfterApprove(t *testing.T) {
	db := openPreregTestDB(t)
	app := newPreregApp(db, uuid.New())

	prereg := model.PreregistrationModel{
		PreregID:     uuid.New(),
		PreregName:   "Asha Verma",
		PreregEmail:  "asha.verma@example.com",
		PreregPhone:  "9876543210",
		PreregRollNo: "21CS104",
		PreregCourse: "B.Tech",
		PreregBranch: "CSE",
		PreregYear:   2,
		PreregStatus: model.PreregPending,
	}
	require.NoError(t, db.Create(&prereg).Error)

	base := "/api/student/preregistrations/" + prereg.PreregID.String()

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, base+"/approve", nil))
	assert.Equal(t, fiber.StatusConflict,
		postJSON(t, app, base+"/reject", fiber.Map{"reason": "duplicate entry"}))

	var got model.PreregistrationModel
	require.NoError(t, db.Where("prereg_id = ?", prereg.PreregID).First(&got).Error)
	assert.Equal(t, model.PreregApproved, got.PreregStatus)
	assert.Nil(t, got.PreregRejectReason)

	var account userModel.UserModel
	require.NoError(t, db.Where("email = ?", prereg.PreregEmail).First(&account).Error)
	assert.True(t, account.IsActive)
	assert.True(t, account.RequiresPasswordChange)

	var students int64
	require.NoError(t, db.Table("students").
		Where("student_user_id = ?", account.ID).Count(&students).Error)
	assert.Equal(t, int64(1), students)
}

// The mirror race: once rejected, an approve must not create an account.
func TestPreregistrationApproveAfterReject(t *testing.T) {
	db := openPreregTestDB(t)
	app := newPreregApp(db, uuid.New())

	prereg := model.PreregistrationModel{
		PreregID:     uuid.New(),
		PreregName:   "Rohan Nair",
		PreregEmail:  "rohan.nair@example.com",
		PreregPhone:  "9123456780",
		PreregRollNo: "21ME077",
		PreregCourse: "B.Tech",
		PreregBranch: "Mechanical",
		PreregYear:   3,
		PreregStatus: model.PreregPending,
	}
	require.NoError(t, db.Create(&prereg).Error)

	base := "/api/student/preregistrations/" + prereg.PreregID.String()

	assert.Equal(t, fiber.StatusOK,
		postJSON(t, app, base+"/reject", fiber.Map{"reason": "no vacancy this term"}))
	assert.Equal(t, fiber.StatusConflict, postJSON(t, app, base+"/approve", nil))

	var got model.PreregistrationModel
	require.NoError(t, db.Where("prereg_id = ?", prereg.PreregID).First(&got).Error)
	assert.Equal(t, model.PreregRejected, got.PreregStatus)

	// The rolled-back approval must leave no account behind.
	var accounts int64
	require.NoError(t, db.Table("users").
		Where("email = ?", prereg.PreregEmail).Count(&accounts).Error)
	assert.Equal(t, int64(0), accounts)
}
