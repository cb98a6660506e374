// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/app/services"
	"github.com/yigit/studentdesk/internal/middleware"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/auth"
	"github.com/yigit/studentdesk/internal/pkg/logger"
)

// AuthController handles admin and student sessions
type AuthController struct {
	studentService services.StudentService
	sessions       *auth.SessionService
	admin          auth.AdminCredentials
}

// NewAuthController creates a new AuthController
func NewAuthController(studentService services.StudentService, sessions *auth.SessionService, admin auth.AdminCredentials) *AuthController {
	return &AuthController{
		studentService: studentService,
		sessions:       sessions,
		admin:          admin,
	}
}

// AdminLogin marks the session as admin when the shared credentials match
// @Summary Admin login
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Admin username"
// @Param password formData string true "Admin password"
// @Success 200 {object} dto.APIResponse{data=dto.IdentityResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid form data"))
		return
	}

	if !c.admin.Matches(req.Username, req.Password) {
		logger.Warn().Str("username", req.Username).Msg("Failed admin login attempt")
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	identity := middleware.GetIdentity(ctx).WithAdmin(true)
	c.writeSession(ctx, identity)
}

// AdminLogout drops the admin flag, keeping any student login
// @Summary Admin logout
// @Tags auth
// @Success 200 {object} dto.APIResponse{data=dto.IdentityResponse}
// @Router /admin/logout [post]
func (c *AuthController) AdminLogout(ctx *gin.Context) {
	c.writeSession(ctx, middleware.GetIdentity(ctx).WithAdmin(false))
}

// StudentRegister creates a student account and logs it in
// @Summary Register a student
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Name"
// @Param rollNo formData string true "Roll number"
// @Param password formData string true "Password"
// @Success 201 {object} dto.APIResponse{data=dto.IdentityResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 409 {object} dto.ErrorResponse "Roll number already registered"
// @Router /student/register [post]
func (c *AuthController) StudentRegister(ctx *gin.Context) {
	var req dto.StudentRegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid form data"))
		return
	}

	student, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIErrorWithDetails(ctx, err, gin.H{"form": gin.H{"name": req.Name, "rollNo": req.RollNo}})
		return
	}

	identity := middleware.GetIdentity(ctx).WithStudent(studentIdentity(student))
	c.writeSessionStatus(ctx, http.StatusCreated, identity)
}

// StudentLogin authenticates a student by roll number
// @Summary Student login
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param rollNo formData string true "Roll number"
// @Param password formData string true "Password"
// @Success 200 {object} dto.APIResponse{data=dto.IdentityResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /student/login [post]
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid form data"))
		return
	}

	student, err := c.studentService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIErrorWithDetails(ctx, err, gin.H{"form": gin.H{"rollNo": req.RollNo}})
		return
	}

	identity := middleware.GetIdentity(ctx).WithStudent(studentIdentity(student))
	c.writeSession(ctx, identity)
}

// StudentLogout clears the student, keeping any admin flag
// @Summary Student logout
// @Tags auth
// @Success 200 {object} dto.APIResponse{data=dto.IdentityResponse}
// @Router /student/logout [post]
func (c *AuthController) StudentLogout(ctx *gin.Context) {
	c.writeSession(ctx, middleware.GetIdentity(ctx).WithStudent(nil))
}

// Me describes the current session
// @Summary Current identity
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.IdentityResponse}
// @Router /me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(identityResponse(middleware.GetIdentity(ctx))))
}

func (c *AuthController) writeSession(ctx *gin.Context, identity auth.Identity) {
	c.writeSessionStatus(ctx, http.StatusOK, identity)
}

func (c *AuthController) writeSessionStatus(ctx *gin.Context, status int, identity auth.Identity) {
	ctx.SetSameSite(http.SameSiteLaxMode)

	if identity.IsAnonymous() {
		ctx.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
		ctx.JSON(status, dto.NewSuccessResponse(identityResponse(identity)))
		return
	}

	token, err := c.sessions.Issue(identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.SetCookie(auth.SessionCookieName, token, int(c.sessions.TTL().Seconds()), "/", "", false, true)
	ctx.JSON(status, dto.NewSuccessResponse(identityResponse(identity)))
}

func studentIdentity(student *models.Student) *auth.StudentIdentity {
	return &auth.StudentIdentity{
		ID:     student.ID,
		Name:   student.Name,
		RollNo: student.RollNo,
	}
}

func identityResponse(identity auth.Identity) dto.IdentityResponse {
	resp := dto.IdentityResponse{IsAdmin: identity.IsAdmin()}
	if student, ok := identity.Student(); ok {
		resp.Student = &dto.StudentResponse{
			ID:     student.ID,
			Name:   student.Name,
			RollNo: student.RollNo,
		}
	}
	return resp
}
