package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "hostelku_backend/internals/features/engagement/dto"
	model "hostelku_backend/internals/features/engagement/model"
	helper "hostelku_backend/internals/helpers"
)

type PollController struct {
	DB *gorm.DB
}

func NewPollController(db *gorm.DB) *PollController {
	return &PollController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /api/polls
func (h *PollController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.ClosesAt != nil && req.ClosesAt.Before(time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "closes_at is in the past")
	}

	m := model.PollModel{
		PollQuestion: req.Question,
		PollOptions:  pq.StringArray(req.Options),
		PollClosesAt: req.ClosesAt,
		PollIsActive: true,
		PollCreatedBy: userID,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create poll")
	}
	return helper.JsonCreated(c, "Poll created", m)
}

/* ======================= LIST ======================= */
// GET /api/polls?active_only=
func (h *PollController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.PollModel{})
	if strings.EqualFold(c.Query("active_only"), "true") {
		q = q.Where("poll_is_active = TRUE AND (poll_closes_at IS NULL OR poll_closes_at > NOW())")
	}

	var rows []model.PollModel
	if err := q.Order("poll_created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ======================= VOTE ======================= */
// POST /api/polls/vote/:id — one vote per student, no revoting
func (h *PollController) Vote(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := resolveStudentID(h.DB, userID)
	if err != nil {
		return err
	}

	pollID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid poll ID")
	}

	var req dto.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	var poll model.PollModel
	if err := h.DB.First(&poll, "poll_id = ?", pollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Poll not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !poll.IsOpen(time.Now()) {
		return fiber.NewError(fiber.StatusConflict, "Poll is closed")
	}
	if req.OptionIndex < 0 || req.OptionIndex >= len(poll.PollOptions) {
		return fiber.NewError(fiber.StatusBadRequest, "option_index is out of range")
	}

	vote := model.PollVoteModel{
		VotePollID:      pollID,
		VoteStudentID:   studentID,
		VoteOptionIndex: req.OptionIndex,
	}
	if err := h.DB.Create(&vote).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "You have already voted in this poll")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record vote")
	}
	return helper.JsonCreated(c, "Vote recorded", vote)
}

/* ======================= RESULTS ======================= */
// GET /api/polls/results/:id
func (h *PollController) Results(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	pollID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid poll ID")
	}

	var poll model.PollModel
	if err := h.DB.First(&poll, "poll_id = ?", pollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Poll not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	type tally struct {
		OptionIndex int
		Count       int64
	}
	var tallies []tally
	if err := h.DB.Table("poll_votes").
		Select("vote_option_index AS option_index, COUNT(*) AS count").
		Where("vote_poll_id = ?", pollID).
		Group("vote_option_index").
		Scan(&tallies).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := dto.PollResults{
		PollID:   poll.PollID,
		Question: poll.PollQuestion,
		Options:  poll.PollOptions,
		Counts:   make([]int64, len(poll.PollOptions)),
	}
	for _, t := range tallies {
		if t.OptionIndex >= 0 && t.OptionIndex < len(out.Counts) {
			out.Counts[t.OptionIndex] = t.Count
			out.Total += t.Count
		}
	}

	// Include the caller's own vote when they are a student.
	if studentID, err := resolveStudentID(h.DB, userID); err == nil {
		var vote model.PollVoteModel
		if err := h.DB.
			Where("vote_poll_id = ? AND vote_student_id = ?", pollID, studentID).
			First(&vote).Error; err == nil {
			idx := vote.VoteOptionIndex
			out.MyVote = &idx
		}
	}

	return helper.JsonOK(c, "OK", out)
}

/* ======================= CLOSE / DELETE ======================= */
// POST /api/polls/close/:id
func (h *PollController) Close(c *fiber.Ctx) error {
	pollID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid poll ID")
	}

	res := h.DB.Model(&model.PollModel{}).
		Where("poll_id = ? AND poll_is_active = TRUE", pollID).
		Update("poll_is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No open poll with this ID")
	}
	return helper.JsonUpdated(c, "Poll closed", fiber.Map{"poll_id": pollID})
}

// DELETE /api/polls/:id — removes the poll and its votes
func (h *PollController) Delete(c *fiber.Ctx) error {
	pollID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid poll ID")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PollVoteModel{}, "vote_poll_id = ?", pollID).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.PollModel{}, "poll_id = ?", pollID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Poll not found")
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Poll removed", fiber.Map{"poll_id": pollID})
}

// resolveStudentID maps the authenticated user to their student row.
func resolveStudentID(db *gorm.DB, userID uuid.UUID) (uuid.UUID, error) {
	var studentID uuid.UUID
	err := db.Table("students").
		Select("student_id").
		Where("student_user_id = ? AND student_deleted_at IS NULL", userID).
		Scan(&studentID).Error
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if studentID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No student profile linked to this account")
	}
	return studentID, nil
}
