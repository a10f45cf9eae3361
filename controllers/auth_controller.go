package controllers

import (
	"net/http"
	"strconv"

	"articlehub/apperrors"
	"articlehub/middlewares"
	"articlehub/models"
	"articlehub/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

func respondError(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input services.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.svc.Register(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"token": token})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

// CurrentUser answers with the identity resolved from the token.
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	identity := middlewares.CurrentIdentity(ctx)
	user, err := c.svc.GetUser(ctx.Request.Context(), identity.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *AuthController) ShowUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	user, err := c.svc.GetUser(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

type changeRoleRequest struct {
	UserID  uint        `json:"user_id" binding:"required"`
	Role    models.Role `json:"role" binding:"required"`
	Replace bool        `json:"replace"`
}

func (c *AuthController) ChangeRole(ctx *gin.Context) {
	var req changeRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := middlewares.CurrentIdentity(ctx)
	user, err := c.svc.ChangeRole(ctx.Request.Context(), identity, req.UserID, req.Role, req.Replace)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
