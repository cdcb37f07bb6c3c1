package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	dto "hostelku_backend/internals/features/users/user/dto"
	model "hostelku_backend/internals/features/users/user/model"
	helper "hostelku_backend/internals/helpers"
)

type AdminManagementController struct {
	DB *gorm.DB
}

func NewAdminManagementController(db *gorm.DB) *AdminManagementController {
	return &AdminManagementController{DB: db}
}

var staffRoles = []string{
	constants.RoleAdmin, constants.RoleSubAdmin, constants.RoleWarden,
	constants.RolePrincipal, constants.RoleSecurity, constants.RoleCustom,
}

// principalScopeIssue says why the branch pin is invalid, or "" when it is
// fine. Branch may only be pinned when the principal holds exactly one course,
// and it has to be one of that course's branches; more than one course leaves
// the branch open. courseBranches are the branches of the single assigned
// course.
func principalScopeIssue(courses []string, branch *string, courseBranches []string) string {
	if branch == nil || *branch == "" {
		return ""
	}
	if len(courses) != 1 {
		return "principal_branch can only be set when exactly one course is assigned"
	}
	for _, b := range courseBranches {
		if b == *branch {
			return ""
		}
	}
	return "Branch " + *branch + " does not belong to course " + courses[0]
}

func (h *AdminManagementController) validatePrincipalScope(courses []string, branch *string) error {
	if branch == nil || *branch == "" {
		return nil
	}
	var branches []string
	if len(courses) == 1 {
		var course model.CourseModel
		if err := h.DB.Where("course_name = ?", courses[0]).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown course: "+courses[0])
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		branches = course.CourseBranches
	}
	if msg := principalScopeIssue(courses, branch, branches); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}
	return nil
}

/* ======================= CREATE ======================= */
// POST /api/admin-management
func (h *AdminManagementController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ValidateGrants(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Role == constants.RolePrincipal {
		if err := h.validatePrincipalScope(req.PrincipalCourses, req.PrincipalBranch); err != nil {
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := req.ToModel(string(hashed))
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "An account with this email already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Account created", dto.FromUserModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/admin-management?role=&q=&page=&per_page=
func (h *AdminManagementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.UserModel{}).
		Where("role IN ?", staffRoles)

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		if !constants.IsValidRole(role) {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown role filter")
		}
		base = base.Where("role = ?", role)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("user_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.UserModel
	if err := base.
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.AdminResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromUserModel(r))
	}

	return helper.JsonList(c, "OK", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/admin-management/:id
func (h *AdminManagementController) GetByID(c *fiber.Ctx) error {
	var row model.UserModel
	if err := h.DB.
		Where("id = ? AND role IN ?", c.Params("id"), staffRoles).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Account not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromUserModel(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/admin-management/:id
func (h *AdminManagementController) Update(c *fiber.Ctx) error {
	var row model.UserModel
	if err := h.DB.
		Where("id = ? AND role IN ?", c.Params("id"), staffRoles).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Account not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ValidateGrants(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)

	if row.Role == constants.RolePrincipal {
		if err := h.validatePrincipalScope(row.PrincipalCourses, row.PrincipalBranch); err != nil {
			return err
		}
	}

	if err := h.DB.Save(&row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "An account with this email already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update account")
	}

	return helper.JsonUpdated(c, "Account updated", dto.FromUserModel(row))
}

/* ======================== DELETE ======================== */
// DELETE /api/admin-management/:id — deactivates rather than removes, so the
// account's history (attendance, approvals) keeps its author.
func (h *AdminManagementController) Delete(c *fiber.Ctx) error {
	res := h.DB.Model(&model.UserModel{}).
		Where("id = ? AND role IN ?", c.Params("id"), staffRoles).
		Update("is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Account not found")
	}
	return helper.JsonDeleted(c, "Account deactivated", fiber.Map{"id": c.Params("id")})
}

/* ======================== COURSES ======================== */
// GET /api/admin-management/courses — course/branch catalog for the dropdowns
func (h *AdminManagementController) ListCourses(c *fiber.Ctx) error {
	var rows []model.CourseModel
	if err := h.DB.Order("course_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}
